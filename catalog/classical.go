package catalog

import (
	"prover/classical"
	"prover/formula"
	"prover/logic"
)

func registerClassical() {
	lem := formula.MustParse(string(SchemaLEM))
	dne := formula.MustParse(string(SchemaDNE))
	peirce := formula.MustParse(string(SchemaPeirce))

	excludedMiddle := logic.OrIntroLeft[T, logic.Not[T]]()(logic.Trivial)
	hypothesis := func(f logic.Implies[T, T]) T { return f(logic.Trivial) }

	register(Entry{
		Name:      "dne-from-lem",
		Group:     GroupClassical,
		Statement: transformer(lem, dne),
		Summary:   "Excluded middle at A gives double negation elimination at A.",
		Proof:     classical.DNEFromLEM[A],
		Exercise: trivial(func() T {
			notNot := logic.DoubleNegationIntro[T]()(logic.Trivial)
			return classical.DNEFromLEM[T](excludedMiddle)(notNot)
		}),
	})

	register(Entry{
		Name:      "peirce-from-dne",
		Group:     GroupClassical,
		Statement: transformer(dne, peirce),
		Summary:   "Double negation elimination at A gives Peirce's law at A and any B.",
		Proof:     classical.PeirceFromDNE[A, B],
		Exercise: trivial(func() T {
			return classical.PeirceFromDNE[T, T](classical.DNEFromLEM[T](excludedMiddle))(hypothesis)
		}),
	})

	register(Entry{
		Name:      "dne-from-peirce",
		Group:     GroupClassical,
		Statement: transformer(SchemaPeirce.Instantiate(map[string]string{"B": "False"}), dne),
		Summary:   "Peirce's law at A and False gives double negation elimination at A.",
		Proof:     classical.DNEFromPeirce[A],
		Exercise: trivial(func() T {
			peirceAtFalse := classical.PeirceFromLEM[T, logic.False](excludedMiddle)
			notNot := logic.DoubleNegationIntro[T]()(logic.Trivial)
			return classical.DNEFromPeirce[T](peirceAtFalse)(notNot)
		}),
	})

	register(Entry{
		Name:      "peirce-from-lem",
		Group:     GroupClassical,
		Statement: transformer(lem, peirce),
		Summary:   "Excluded middle at A gives Peirce's law at A through double negation elimination.",
		Proof:     classical.PeirceFromLEM[A, B],
		Exercise: trivial(func() T {
			return classical.PeirceFromLEM[T, T](excludedMiddle)(hypothesis)
		}),
	})

	register(Entry{
		Name:      "lem-irrefutable",
		Group:     GroupClassical,
		Statement: "~~(A | ~A)",
		Summary:   "Excluded middle cannot be refuted, even without classical axioms.",
		Proof:     classical.LEMIrrefutable[A](),
		Exercise: unreachable(func() {
			classical.LEMIrrefutable[T]()(logic.Reject[classical.LEM[T]]("refutation of excluded middle"))
		}),
	})

	register(Entry{
		Name:      "lem-from-dne",
		Group:     GroupClassical,
		Statement: transformer(SchemaDNE.Instantiate(map[string]string{"A": string(SchemaLEM)}), lem),
		Summary:   "Double negation elimination at A | ~A gives excluded middle at A.",
		Proof:     classical.LEMFromDNE[A],
		Exercise: trivial(func() T {
			nested := logic.OrIntroLeft[classical.LEM[T], logic.Not[classical.LEM[T]]]()(excludedMiddle)
			decided := classical.LEMFromDNE[T](classical.DNEFromLEM[classical.LEM[T]](nested))
			return logic.Match(decided, id, abandon[logic.Not[T]]("refutation branch of a proved excluded middle"))
		}),
	})
}
