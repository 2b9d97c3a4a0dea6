package logic

// Identity proves A → A.
func Identity[A any]() Implies[A, A] {
	return func(a A) A {
		return a
	}
}

// ModusPonens proves B from A and A → B.
func ModusPonens[A, B any](a A, ab Implies[A, B]) B {
	return ab(a)
}

// AndIntro proves A → (B → A ∧ B).
func AndIntro[A, B any]() Implies[A, Implies[B, And[A, B]]] {
	return func(a A) Implies[B, And[A, B]] {
		return pairWith[A, B]{left: a}.apply
	}
}

type pairWith[A, B any] struct {
	left A
}

func (p pairWith[A, B]) apply(b B) And[A, B] {
	return And[A, B]{Left: p.left, Right: b}
}

// AndElimLeft proves A ∧ B → A.
func AndElimLeft[A, B any]() Implies[And[A, B], A] {
	return func(ab And[A, B]) A {
		return ab.Left
	}
}

// AndElimRight proves A ∧ B → B.
func AndElimRight[A, B any]() Implies[And[A, B], B] {
	return func(ab And[A, B]) B {
		return ab.Right
	}
}

// OrIntroLeft proves A → A ∨ B.
func OrIntroLeft[A, B any]() Implies[A, Or[A, B]] {
	return inLeft[A, B]
}

// OrIntroRight proves B → A ∨ B.
func OrIntroRight[A, B any]() Implies[B, Or[A, B]] {
	return inRight[A, B]
}

// Match eliminates a disjunction by applying the handler for whichever side is
// active. Both handlers must conclude the same C. Matching the zero Or signals
// ErrUnreachable.
func Match[A, B, C any](or Or[A, B], onLeft Implies[A, C], onRight Implies[B, C]) C {
	switch or.side {
	case leftSide:
		return onLeft(or.left)
	case rightSide:
		return onRight(or.right)
	default:
		panic(Unreachable("or elimination on a disjunction with no active side"))
	}
}

// OrElim proves A ∨ B → (A → C) → (B → C) → C.
func OrElim[A, B, C any]() Implies[Or[A, B], Implies[Implies[A, C], Implies[Implies[B, C], C]]] {
	return func(or Or[A, B]) Implies[Implies[A, C], Implies[Implies[B, C], C]] {
		return cases[A, B, C]{or: or}.withLeft
	}
}

type cases[A, B, C any] struct {
	or     Or[A, B]
	onLeft Implies[A, C]
}

func (c cases[A, B, C]) withLeft(onLeft Implies[A, C]) Implies[Implies[B, C], C] {
	c.onLeft = onLeft
	return c.withRight
}

func (c cases[A, B, C]) withRight(onRight Implies[B, C]) C {
	return Match(c.or, c.onLeft, onRight)
}

// DoubleNegationIntro proves A → ¬¬A.
func DoubleNegationIntro[A any]() Implies[A, Not[Not[A]]] {
	return func(a A) Not[Not[A]] {
		return func(notA Not[A]) False {
			return notA(a)
		}
	}
}

// Explosion proves False → A. Since no honest False exists, invoking the proof
// signals ErrUnreachable instead of fabricating an A.
func Explosion[A any]() Implies[False, A] {
	return func(False) A {
		panic(Unreachable("explosion"))
	}
}

// Reject returns a refutation of A that is never expected to run. Invoking it
// signals ErrUnreachable.
func Reject[A any](rule string) Not[A] {
	return func(A) False {
		panic(Unreachable(rule))
	}
}

// Contraposition proves (A → B) → (¬B → ¬A).
func Contraposition[A, B any]() Implies[Implies[A, B], Implies[Not[B], Not[A]]] {
	return func(ab Implies[A, B]) Implies[Not[B], Not[A]] {
		return func(notB Not[B]) Not[A] {
			return chain[A, B, False]{first: ab, second: notB}.apply
		}
	}
}

// Permute swaps the order of two curried hypotheses:
// (A → (B → C)) → (B → (A → C)).
func Permute[A, B, C any](f Implies[A, Implies[B, C]]) Implies[B, Implies[A, C]] {
	return func(b B) Implies[A, C] {
		return swap[A, B, C]{f: f, b: b}.apply
	}
}

type swap[A, B, C any] struct {
	f Implies[A, Implies[B, C]]
	b B
}

func (s swap[A, B, C]) apply(a A) C {
	return s.f(a)(s.b)
}
