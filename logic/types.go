// Package logic encodes intuitionistic propositional logic in Go's type
// system. A proposition is a type and a proof is a value of that type, so a
// proof is accepted exactly when it compiles.
package logic

// False is absurdity. Go cannot declare an empty type, so False has a zero
// value, but no honest proof ever produces one. Consuming a False for real
// signals ErrUnreachable.
type False struct {
	_ [0]func()
}

// True is the trivial proposition.
type True struct{}

// Trivial is the canonical proof of True.
var Trivial = True{}

// Implies is a proof of A → B: a function turning any proof of A into a proof
// of B.
type Implies[A, B any] func(A) B

// And is a proof of A ∧ B.
type And[A, B any] struct {
	Left  A
	Right B
}

// Not is ¬A, sugar for A → False.
type Not[A any] = Implies[A, False]

// Iff is A ↔ B.
type Iff[A, B any] = And[Implies[A, B], Implies[B, A]]

type side uint8

const (
	noSide side = iota
	leftSide
	rightSide
)

// Or is a proof of A ∨ B. Exactly one side is active; the zero value has none
// and cannot be eliminated.
type Or[A, B any] struct {
	side  side
	left  A
	right B
}

func inLeft[A, B any](a A) Or[A, B] {
	return Or[A, B]{side: leftSide, left: a}
}

func inRight[A, B any](b B) Or[A, B] {
	return Or[A, B]{side: rightSide, right: b}
}

func (or Or[A, B]) IsLeft() bool {
	return or.side == leftSide
}

func (or Or[A, B]) IsRight() bool {
	return or.side == rightSide
}

func (or Or[A, B]) String() string {
	switch or.side {
	case leftSide:
		return "Or(left)"
	case rightSide:
		return "Or(right)"
	default:
		return "Or(none)"
	}
}
