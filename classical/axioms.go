// Package classical studies the classical axioms that intuitionistic logic
// does not assume. None of them is ever taken as given: each transformer
// consumes an instance of one axiom and builds an instance of another, which
// shows the three are interderivable.
//
// Go has no rank-2 polymorphism, so "A ∨ ¬A for every A" cannot be passed as
// a single value. Each transformer instead takes the instances it needs as
// parameters and is itself generic in every proposition.
package classical

import (
	"prover/logic"
)

// LEM is the law of excluded middle at A: A ∨ ¬A.
type LEM[A any] = logic.Or[A, logic.Not[A]]

// DNE is double negation elimination at A: ¬¬A → A.
type DNE[A any] = logic.Implies[logic.Not[logic.Not[A]], A]

// Peirce is Peirce's law at A and B: ((A → B) → A) → A.
type Peirce[A, B any] = logic.Implies[logic.Implies[logic.Implies[A, B], A], A]
