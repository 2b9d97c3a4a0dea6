package logic

type curried[A, B, C any] struct {
	f Implies[And[A, B], C]
	a A
}

func (c curried[A, B, C]) apply(b B) C {
	return c.f(And[A, B]{Left: c.a, Right: b})
}

type uncurried[A, B, C any] struct {
	g Implies[A, Implies[B, C]]
}

func (u uncurried[A, B, C]) apply(premises And[A, B]) C {
	return u.g(premises.Left)(premises.Right)
}

// Exportation proves ((A ∧ B) → C) → (A → (B → C)).
func Exportation[A, B, C any](f Implies[And[A, B], C]) Implies[A, Implies[B, C]] {
	return func(a A) Implies[B, C] {
		return curried[A, B, C]{f: f, a: a}.apply
	}
}

// Importation proves (A → (B → C)) → ((A ∧ B) → C). It is the inverse of
// Exportation.
func Importation[A, B, C any](g Implies[A, Implies[B, C]]) Implies[And[A, B], C] {
	return uncurried[A, B, C]{g: g}.apply
}

// CurryIso packages Exportation and Importation as a biconditional.
func CurryIso[A, B, C any]() Iff[Implies[And[A, B], C], Implies[A, Implies[B, C]]] {
	return Iff[Implies[And[A, B], C], Implies[A, Implies[B, C]]]{
		Left:  Exportation[A, B, C],
		Right: Importation[A, B, C],
	}
}
