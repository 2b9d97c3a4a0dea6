package catalog

import (
	"prover/logic"
	"prover/theorems"
)

func registerTheorems() {
	refuteTrue := logic.Reject[T]("refutation of the trivial proposition")
	both := logic.And[T, T]{Left: logic.Trivial, Right: logic.Trivial}

	register(Entry{
		Name:      "de-morgan-1",
		Group:     GroupTheorem,
		Statement: "~(A | B) -> ~A & ~B",
		Summary:   "A refutation of a disjunction refutes each side.",
		Proof:     theorems.DeMorgan1[A, B](),
		Exercise: unreachable(func() {
			refutations := theorems.DeMorgan1[T, T]()(logic.Reject[logic.Or[T, T]]("refutation of a trivial disjunction"))
			refutations.Left(logic.Trivial)
		}),
	})

	register(Entry{
		Name:      "de-morgan-2",
		Group:     GroupTheorem,
		Statement: "~A & ~B -> ~(A | B)",
		Summary:   "Refuting both sides refutes their disjunction.",
		Proof:     theorems.DeMorgan2[A, B](),
		Exercise: unreachable(func() {
			refutations := logic.And[logic.Not[T], logic.Not[T]]{Left: refuteTrue, Right: refuteTrue}
			theorems.DeMorgan2[T, T]()(refutations)(logic.OrIntroRight[T, T]()(logic.Trivial))
		}),
	})

	register(Entry{
		Name:      "de-morgan-3",
		Group:     GroupTheorem,
		Statement: "~A | ~B -> ~(A & B)",
		Summary:   "Refuting either side refutes the conjunction. The converse is not intuitionistically valid.",
		Proof:     theorems.DeMorgan3[A, B](),
		Exercise: unreachable(func() {
			either := logic.OrIntroLeft[logic.Not[T], logic.Not[T]]()(refuteTrue)
			theorems.DeMorgan3[T, T]()(either)(both)
		}),
	})

	register(Entry{
		Name:      "reductio-ad-absurdum",
		Group:     GroupTheorem,
		Statement: "(A -> B) -> (A -> ~B) -> ~A",
		Summary:   "A hypothesis that proves both B and ~B is refuted.",
		Proof:     theorems.ReductioAdAbsurdum[A, B](),
		Exercise: unreachable(func() {
			refutes := func(T) logic.Not[T] { return refuteTrue }
			theorems.ReductioAdAbsurdum[T, T]()(id)(refutes)(logic.Trivial)
		}),
	})

	register(Entry{
		Name:      "non-contradiction",
		Group:     GroupTheorem,
		Statement: "~(A & ~A)",
		Summary:   "No proposition is both proved and refuted.",
		Proof:     theorems.NonContradiction[A](),
		Exercise: unreachable(func() {
			theorems.NonContradiction[T]()(logic.And[T, logic.Not[T]]{Left: logic.Trivial, Right: refuteTrue})
		}),
	})

	register(Entry{
		Name:      "triple-negation",
		Group:     GroupTheorem,
		Statement: "~~~A -> ~A",
		Summary:   "Three negations reduce to one.",
		Proof:     theorems.TripleNegation[A](),
		Exercise: unreachable(func() {
			notNotNot := logic.Reject[logic.Not[logic.Not[T]]]("triple refutation of the trivial proposition")
			theorems.TripleNegation[T]()(notNotNot)(logic.Trivial)
		}),
	})
}

func registerExamples() {
	register(Entry{
		Name:      "always-true",
		Group:     GroupExample,
		Statement: "True -> True",
		Summary:   "The trivial proposition holds under the trivial hypothesis.",
		Proof:     logic.Identity[logic.True](),
		Exercise:  trivial(func() T { return id(logic.Trivial) }),
	})

	register(Entry{
		Name:      "not-false",
		Group:     GroupExample,
		Statement: "~False",
		Summary:   "Absurdity is refuted by the identity on False.",
		Proof:     logic.Identity[logic.False](),
		Exercise: unreachable(func() {
			var forged logic.False
			logic.Syllogism(logic.Identity[logic.False](), logic.Explosion[T]())(forged)
		}),
	})
}
