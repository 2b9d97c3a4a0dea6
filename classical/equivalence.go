package classical

import (
	"prover/logic"
	"prover/theorems"
)

// DNEFromLEM turns excluded middle at A into double negation elimination at A.
func DNEFromLEM[A any](lem LEM[A]) DNE[A] {
	return func(notNotA logic.Not[logic.Not[A]]) A {
		refuted := func(notA logic.Not[A]) A {
			contradiction := logic.ModusPonens(notA, notNotA)
			return logic.Explosion[A]()(contradiction)
		}

		return logic.OrElim[A, logic.Not[A], A]()(lem)(logic.Identity[A]())(refuted)
	}
}

// PeirceFromDNE turns double negation elimination at A into Peirce's law at A
// and any B.
func PeirceFromDNE[A, B any](dne DNE[A]) Peirce[A, B] {
	return func(hypothesis logic.Implies[logic.Implies[A, B], A]) A {
		notNotA := func(notA logic.Not[A]) logic.False {
			anyB := func(a A) B {
				contradiction := logic.ModusPonens(a, notA)
				return logic.Explosion[B]()(contradiction)
			}

			a := hypothesis(anyB)
			return logic.ModusPonens(a, notA)
		}

		return dne(notNotA)
	}
}

// DNEFromPeirce turns Peirce's law at A and False, which reads (¬A → A) → A,
// into double negation elimination at A.
func DNEFromPeirce[A any](peirce Peirce[A, logic.False]) DNE[A] {
	return func(notNotA logic.Not[logic.Not[A]]) A {
		specialized := logic.Implies[logic.Implies[logic.Not[A], A], A](peirce)

		fromNotA := func(notA logic.Not[A]) A {
			contradiction := logic.ModusPonens(notA, notNotA)
			return logic.Explosion[A]()(contradiction)
		}

		return specialized(fromNotA)
	}
}

// LEMIrrefutable proves ¬¬(A ∨ ¬A) without any classical axiom: refuting
// A ∨ ¬A refutes both A and ¬A, which contradict each other.
func LEMIrrefutable[A any]() logic.Not[logic.Not[LEM[A]]] {
	return logic.Syllogism(theorems.DeMorgan1[A, logic.Not[A]](), theorems.NonContradiction[logic.Not[A]]())
}

// LEMFromDNE turns double negation elimination at A ∨ ¬A into excluded middle
// at A.
func LEMFromDNE[A any](dne DNE[LEM[A]]) LEM[A] {
	return dne(LEMIrrefutable[A]())
}

// PeirceFromLEM composes DNEFromLEM and PeirceFromDNE.
func PeirceFromLEM[A, B any](lem LEM[A]) Peirce[A, B] {
	return PeirceFromDNE[A, B](DNEFromLEM[A](lem))
}
