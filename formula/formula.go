// Package formula reads, prints and compares propositional formulas, and reads
// the Go type of a proof back as the formula it proves.
package formula

import (
	"fmt"
	"slices"
)

// Formula is one of Atom, Implication, Conjunction or Disjunction. Negation
// is not a node of its own: ~X is X -> False.
type Formula interface {
	formula()
}

type Atom struct {
	Name string
}

type Implication struct {
	Premise    Formula
	Conclusion Formula
}

type Conjunction struct {
	Left  Formula
	Right Formula
}

type Disjunction struct {
	Left  Formula
	Right Formula
}

func (Atom) formula()        {}
func (Implication) formula() {}
func (Conjunction) formula() {}
func (Disjunction) formula() {}

var (
	Falsum = Atom{Name: "False"}
	Verum  = Atom{Name: "True"}
)

func Negate(f Formula) Formula {
	return Implication{Premise: f, Conclusion: Falsum}
}

// Negated reports whether f is ~X and returns X.
func Negated(f Formula) (Formula, bool) {
	if implication, ok := f.(Implication); ok && implication.Conclusion == Falsum {
		return implication.Premise, true
	}

	return nil, false
}

func Equal(left Formula, right Formula) bool {
	return left == right
}

// Substitute replaces every atom named in bindings. Atoms without a binding are
// left alone.
func Substitute(f Formula, bindings map[string]Formula) Formula {
	switch f := f.(type) {
	case Atom:
		if replacement, ok := bindings[f.Name]; ok {
			return replacement
		}

		return f
	case Implication:
		return Implication{Premise: Substitute(f.Premise, bindings), Conclusion: Substitute(f.Conclusion, bindings)}
	case Conjunction:
		return Conjunction{Left: Substitute(f.Left, bindings), Right: Substitute(f.Right, bindings)}
	case Disjunction:
		return Disjunction{Left: Substitute(f.Left, bindings), Right: Substitute(f.Right, bindings)}
	default:
		panic(fmt.Sprintf("invalid formula: %T", f))
	}
}

// Atoms lists the distinct atom names in f in order of first appearance.
func Atoms(f Formula) []string {
	var names []string

	var visit func(f Formula)
	visit = func(f Formula) {
		switch f := f.(type) {
		case Atom:
			if !slices.Contains(names, f.Name) {
				names = append(names, f.Name)
			}
		case Implication:
			visit(f.Premise)
			visit(f.Conclusion)
		case Conjunction:
			visit(f.Left)
			visit(f.Right)
		case Disjunction:
			visit(f.Left)
			visit(f.Right)
		default:
			panic(fmt.Sprintf("invalid formula: %T", f))
		}
	}

	visit(f)

	return names
}
