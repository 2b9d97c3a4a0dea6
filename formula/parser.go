package formula

import (
	"fmt"
)

type Parser struct {
	Source string
	tokens []*Token
	index  int
}

func NewParser(source string) (*Parser, *Error) {
	parser := &Parser{Source: source}

	var err *Error
	parser.tokens, err = Tokenize(source)
	if err != nil {
		return nil, err
	}

	return parser, nil
}

// Parse reads a single formula. `~` binds tightest, then `&`, then `|`; `->`
// binds loosest and associates to the right.
func Parse(source string) (Formula, *Error) {
	parser, err := NewParser(source)
	if err != nil {
		return nil, err
	}

	f, err := parser.parseFormula()
	if err != nil {
		return nil, err
	}

	if err := parser.Finish(); err != nil {
		return nil, err
	}

	return f, nil
}

// MustParse is Parse for formulas that are known to be well formed.
func MustParse(source string) Formula {
	f, err := Parse(source)
	if err != nil {
		panic(err)
	}

	return f
}

func (parser *Parser) Finish() *Error {
	if parser.index < len(parser.tokens) {
		return parser.ErrorWithReason("Expected end of formula", fmt.Sprintf("found %s", parser.describeNext()))
	}

	return nil
}

func (parser *Parser) Error(message string) *Error {
	return parser.ErrorWithReason(message, "")
}

func (parser *Parser) ErrorWithReason(message string, reason string) *Error {
	span := parser.eofSpan()
	if parser.index < len(parser.tokens) {
		span = parser.tokens[parser.index].span
	}

	return &Error{
		Message: message,
		Reason:  reason,
		Span:    span,
	}
}

func (parser *Parser) eofSpan() Span {
	end := locationAt(parser.Source, len(parser.Source))
	return Span{Start: end, End: end}
}

func (parser *Parser) peek() (*Token, bool) {
	if parser.index >= len(parser.tokens) {
		return nil, false
	}

	return parser.tokens[parser.index], true
}

func (parser *Parser) next(kind string) (*Token, bool) {
	token, ok := parser.peek()
	if !ok || token.kind != kind {
		return nil, false
	}

	parser.index++
	return token, true
}

func (parser *Parser) expect(kind string) (*Token, *Error) {
	token, ok := parser.next(kind)
	if !ok {
		return nil, parser.ErrorWithReason(fmt.Sprintf("Expected %s", TokenName(kind)), fmt.Sprintf("found %s", parser.describeNext()))
	}

	return token, nil
}

func (parser *Parser) describeNext() string {
	token, ok := parser.peek()
	if !ok {
		return "end of formula"
	}

	return TokenName(token.kind)
}

func (parser *Parser) parseFormula() (Formula, *Error) {
	premise, err := parser.parseDisjunction()
	if err != nil {
		return nil, err
	}

	if _, ok := parser.next("ImpliesOperator"); !ok {
		return premise, nil
	}

	conclusion, err := parser.parseFormula()
	if err != nil {
		return nil, err
	}

	return Implication{Premise: premise, Conclusion: conclusion}, nil
}

func (parser *Parser) parseDisjunction() (Formula, *Error) {
	left, err := parser.parseConjunction()
	if err != nil {
		return nil, err
	}

	for {
		if _, ok := parser.next("OrOperator"); !ok {
			return left, nil
		}

		right, err := parser.parseConjunction()
		if err != nil {
			return nil, err
		}

		left = Disjunction{Left: left, Right: right}
	}
}

func (parser *Parser) parseConjunction() (Formula, *Error) {
	left, err := parser.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		if _, ok := parser.next("AndOperator"); !ok {
			return left, nil
		}

		right, err := parser.parseUnary()
		if err != nil {
			return nil, err
		}

		left = Conjunction{Left: left, Right: right}
	}
}

func (parser *Parser) parseUnary() (Formula, *Error) {
	if _, ok := parser.next("NotOperator"); ok {
		operand, err := parser.parseUnary()
		if err != nil {
			return nil, err
		}

		return Negate(operand), nil
	}

	if _, ok := parser.next("LeftParenthesis"); ok {
		inner, err := parser.parseFormula()
		if err != nil {
			return nil, err
		}

		if _, err := parser.expect("RightParenthesis"); err != nil {
			return nil, err
		}

		return inner, nil
	}

	if name, ok := parser.next("Name"); ok {
		return Atom{Name: name.value}, nil
	}

	return nil, parser.ErrorWithReason("Expected a proposition", fmt.Sprintf("found %s", parser.describeNext()))
}
