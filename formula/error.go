package formula

import (
	"fmt"
)

type Error struct {
	Message string
	Reason  string
	Span    Span
}

func (e *Error) Error() string {
	s := fmt.Sprintf("%v: %s", e.Span, e.Message)

	if e.Reason != "" {
		s += fmt.Sprintf(" (%s)", e.Reason)
	}

	return s
}
