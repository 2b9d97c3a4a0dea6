package formula

import (
	"fmt"

	lex "github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

type Token struct {
	kind  string
	value string
	span  Span
}

type tokenRule struct {
	kind    string
	pattern string
	name    string
	skip    bool
}

var rules = []tokenRule{
	{kind: "Space", pattern: `[ \t\r\n]+`, skip: true},
	{kind: "ImpliesOperator", pattern: `->`, name: "`->`"},
	{kind: "AndOperator", pattern: `&`, name: "`&`"},
	{kind: "OrOperator", pattern: `\|`, name: "`|`"},
	{kind: "NotOperator", pattern: `~`, name: "`~`"},
	{kind: "LeftParenthesis", pattern: `\(`, name: "`(`"},
	{kind: "RightParenthesis", pattern: `\)`, name: "`)`"},
	{kind: "Name", pattern: `[A-Za-z_][A-Za-z0-9_]*`, name: "a proposition name"},
}

var lexer *lex.Lexer

var tokenKinds = make([]string, 0, len(rules))
var tokenNames = make(map[string]string, len(rules))

func token(id int) lex.Action {
	return func(s *lex.Scanner, m *machines.Match) (any, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

func skip(*lex.Scanner, *machines.Match) (any, error) {
	return nil, nil
}

func init() {
	lexer = lex.NewLexer()

	for _, rule := range rules {
		f := skip
		if !rule.skip {
			f = token(len(tokenKinds))
			tokenKinds = append(tokenKinds, rule.kind)
		}

		lexer.Add([]byte(rule.pattern), f)
		tokenNames[rule.kind] = rule.name
	}

	err := lexer.CompileNFA()
	if err != nil {
		panic(err)
	}
}

func Tokenize(source string) ([]*Token, *Error) {
	scanner, err := lexer.Scanner([]byte(source))
	if err != nil {
		panic(err)
	}

	var tokens []*Token
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			return nil, unexpectedCharacter(source, err)
		}

		token := tok.(*lex.Token)
		startIndex := token.TC
		endIndex := scanner.TC

		tokens = append(tokens, &Token{
			kind:  tokenKinds[token.Type],
			value: token.Value.(string),
			span: Span{
				Start:  locationAt(source, startIndex),
				End:    locationAt(source, endIndex),
				Source: source[startIndex:endIndex],
			},
		})
	}

	return tokens, nil
}

func unexpectedCharacter(source string, err error) *Error {
	span := NullSpan()

	if unconsumed, ok := err.(*machines.UnconsumedInput); ok {
		start := min(unconsumed.StartTC, len(source))
		end := min(start+1, len(source))
		span = Span{
			Start:  locationAt(source, start),
			End:    locationAt(source, end),
			Source: source[start:end],
		}
	}

	return &Error{
		Message: "Unexpected character",
		Reason:  fmt.Sprintf("%q", span.Source),
		Span:    span,
	}
}

// locationAt converts a byte index into a 1-based line and column.
func locationAt(source string, index int) Location {
	location := NullLocation()
	location.Index = index

	for _, c := range source[:index] {
		if c == '\n' {
			location.Line++
			location.Column = 1
		} else {
			location.Column++
		}
	}

	return location
}

func TokenName(kind string) string {
	return tokenNames[kind]
}
