package formula

import (
	"fmt"
)

type Span struct {
	Start  Location `json:"start"`
	End    Location `json:"end"`
	Source string   `json:"source"`
}

type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Index  int `json:"index"`
}

func (span Span) String() string {
	return fmt.Sprintf("%d:%d", span.Start.Line, span.Start.Column)
}

func NullSpan() Span {
	return Span{
		Start:  NullLocation(),
		End:    NullLocation(),
		Source: "",
	}
}

func NullLocation() Location {
	return Location{
		Line:   1,
		Column: 1,
		Index:  0,
	}
}
