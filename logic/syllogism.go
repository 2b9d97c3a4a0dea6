package logic

type chain[A, B, C any] struct {
	first  Implies[A, B]
	second Implies[B, C]
}

func (c chain[A, B, C]) apply(a A) C {
	return c.second(c.first(a))
}

// Syllogism chains A → B and B → C into A → C.
func Syllogism[A, B, C any](ab Implies[A, B], bc Implies[B, C]) Implies[A, C] {
	return chain[A, B, C]{first: ab, second: bc}.apply
}

// SyllogismCurried proves (A → B) → ((B → C) → (A → C)).
func SyllogismCurried[A, B, C any]() Implies[Implies[A, B], Implies[Implies[B, C], Implies[A, C]]] {
	return func(ab Implies[A, B]) Implies[Implies[B, C], Implies[A, C]] {
		return func(bc Implies[B, C]) Implies[A, C] {
			return Syllogism(ab, bc)
		}
	}
}

// SyllogismTheorem proves ((A → B) ∧ (B → C)) → (A → C) as a single proof.
func SyllogismTheorem[A, B, C any]() Implies[And[Implies[A, B], Implies[B, C]], Implies[A, C]] {
	return func(premises And[Implies[A, B], Implies[B, C]]) Implies[A, C] {
		return Syllogism(premises.Left, premises.Right)
	}
}
