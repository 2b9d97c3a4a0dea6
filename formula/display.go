package formula

import (
	"fmt"
	"strings"

	"prover/colors"
)

const (
	precedenceImplication = iota + 1
	precedenceDisjunction
	precedenceConjunction
	precedenceUnary
)

type style struct {
	atom       func(string) string
	connective func(string) string
}

var plain = style{
	atom:       func(s string) string { return s },
	connective: func(s string) string { return s },
}

var styled = style{
	atom:       colors.Atom,
	connective: colors.Connective,
}

// Display prints f in the syntax Parse accepts, with as few parentheses as
// possible. Parse(Display(f)) is f.
func Display(f Formula) string {
	var s strings.Builder
	display(&s, f, precedenceImplication, plain)
	return s.String()
}

// Render is Display with terminal colors.
func Render(f Formula) string {
	var s strings.Builder
	display(&s, f, precedenceImplication, styled)
	return s.String()
}

func precedence(f Formula) int {
	switch f := f.(type) {
	case Atom:
		return precedenceUnary
	case Implication:
		if _, ok := Negated(f); ok {
			return precedenceUnary
		}

		return precedenceImplication
	case Disjunction:
		return precedenceDisjunction
	case Conjunction:
		return precedenceConjunction
	default:
		panic(fmt.Sprintf("invalid formula: %T", f))
	}
}

func display(s *strings.Builder, f Formula, minimum int, st style) {
	if precedence(f) < minimum {
		s.WriteString("(")
		defer s.WriteString(")")
	}

	switch f := f.(type) {
	case Atom:
		s.WriteString(st.atom(f.Name))
	case Implication:
		if operand, ok := Negated(f); ok {
			s.WriteString(st.connective("~"))
			display(s, operand, precedenceUnary, st)
			return
		}

		display(s, f.Premise, precedenceDisjunction, st)
		s.WriteString(" " + st.connective("->") + " ")
		display(s, f.Conclusion, precedenceImplication, st)
	case Disjunction:
		display(s, f.Left, precedenceDisjunction, st)
		s.WriteString(" " + st.connective("|") + " ")
		display(s, f.Right, precedenceConjunction, st)
	case Conjunction:
		display(s, f.Left, precedenceConjunction, st)
		s.WriteString(" " + st.connective("&") + " ")
		display(s, f.Right, precedenceUnary, st)
	}
}
