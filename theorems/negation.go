package theorems

import (
	"prover/logic"
)

type absurdity[A, B any] struct {
	proves  logic.Implies[A, B]
	refutes logic.Implies[A, logic.Not[B]]
}

func (r absurdity[A, B]) apply(a A) logic.False {
	b := logic.ModusPonens(a, r.proves)
	notB := logic.ModusPonens(a, r.refutes)
	return logic.ModusPonens(b, notB)
}

// ReductioAdAbsurdum proves (A → B) → ((A → ¬B) → ¬A).
func ReductioAdAbsurdum[A, B any]() logic.Implies[logic.Implies[A, B], logic.Implies[logic.Implies[A, logic.Not[B]], logic.Not[A]]] {
	return func(proves logic.Implies[A, B]) logic.Implies[logic.Implies[A, logic.Not[B]], logic.Not[A]] {
		return func(refutes logic.Implies[A, logic.Not[B]]) logic.Not[A] {
			return absurdity[A, B]{proves: proves, refutes: refutes}.apply
		}
	}
}

// NonContradiction proves ¬(A ∧ ¬A).
func NonContradiction[A any]() logic.Not[logic.And[A, logic.Not[A]]] {
	return logic.Importation[A, logic.Not[A], logic.False](logic.DoubleNegationIntro[A]())
}

// TripleNegation proves ¬¬¬A → ¬A.
func TripleNegation[A any]() logic.Implies[logic.Not[logic.Not[logic.Not[A]]], logic.Not[A]] {
	return logic.Contraposition[A, logic.Not[logic.Not[A]]]()(logic.DoubleNegationIntro[A]())
}
