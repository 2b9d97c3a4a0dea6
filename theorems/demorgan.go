// Package theorems derives propositional theorems by composing the primitive
// rules in package logic. Nothing here introduces a new inference rule.
package theorems

import (
	"prover/logic"
)

// DeMorgan1 proves ¬(A ∨ B) → ¬A ∧ ¬B.
func DeMorgan1[A, B any]() logic.Implies[logic.Not[logic.Or[A, B]], logic.And[logic.Not[A], logic.Not[B]]] {
	return func(notOr logic.Not[logic.Or[A, B]]) logic.And[logic.Not[A], logic.Not[B]] {
		notA := logic.Syllogism(logic.OrIntroLeft[A, B](), notOr)
		notB := logic.Syllogism(logic.OrIntroRight[A, B](), notOr)
		return logic.AndIntro[logic.Not[A], logic.Not[B]]()(notA)(notB)
	}
}

type refutations[A, B any] struct {
	notA logic.Not[A]
	notB logic.Not[B]
}

func (r refutations[A, B]) refute(or logic.Or[A, B]) logic.False {
	return logic.OrElim[A, B, logic.False]()(or)(r.notA)(r.notB)
}

// DeMorgan2 proves ¬A ∧ ¬B → ¬(A ∨ B).
func DeMorgan2[A, B any]() logic.Implies[logic.And[logic.Not[A], logic.Not[B]], logic.Not[logic.Or[A, B]]] {
	return func(both logic.And[logic.Not[A], logic.Not[B]]) logic.Not[logic.Or[A, B]] {
		return refutations[A, B]{
			notA: logic.AndElimLeft[logic.Not[A], logic.Not[B]]()(both),
			notB: logic.AndElimRight[logic.Not[A], logic.Not[B]]()(both),
		}.refute
	}
}

// DeMorgan3 proves ¬A ∨ ¬B → ¬(A ∧ B). The converse needs a classical axiom.
func DeMorgan3[A, B any]() logic.Implies[logic.Or[logic.Not[A], logic.Not[B]], logic.Not[logic.And[A, B]]] {
	return func(either logic.Or[logic.Not[A], logic.Not[B]]) logic.Not[logic.And[A, B]] {
		viaLeft := logic.Contraposition[logic.And[A, B], A]()(logic.AndElimLeft[A, B]())
		viaRight := logic.Contraposition[logic.And[A, B], B]()(logic.AndElimRight[A, B]())
		return logic.OrElim[logic.Not[A], logic.Not[B], logic.Not[logic.And[A, B]]]()(either)(viaLeft)(viaRight)
	}
}
