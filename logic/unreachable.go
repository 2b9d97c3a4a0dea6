package logic

import (
	"github.com/pkg/errors"
)

// ErrUnreachable marks a proof state that a well-typed proof never reaches,
// such as a real proof of False being consumed.
var ErrUnreachable = errors.New("unreachable proof state")

// Unreachable returns ErrUnreachable annotated with the rule that hit it.
func Unreachable(rule string) error {
	return errors.Wrapf(ErrUnreachable, "%s", rule)
}

// Catch runs f and returns the unreachable-state error it panicked with, if
// any. Other panics are re-raised.
func Catch(f func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if e, ok := r.(error); ok && errors.Is(e, ErrUnreachable) {
			err = e
			return
		}

		panic(r)
	}()

	f()

	return nil
}
