package catalog

import (
	"fmt"

	"prover/logic"

	"github.com/pkg/errors"
)

type T = logic.True

var id = logic.Identity[T]()

func trivial(proof func() T) func() error {
	return func() error {
		if got := proof(); got != logic.Trivial {
			return fmt.Errorf("expected the trivial proof, got %v", got)
		}

		return nil
	}
}

func unreachable(proof func()) func() error {
	return func() error {
		if err := logic.Catch(proof); err == nil {
			return errors.New("expected the proof to signal an unreachable state")
		}

		return nil
	}
}

// abandon handles a case that is never taken.
func abandon[A any](rule string) logic.Implies[A, T] {
	return logic.Syllogism(logic.Reject[A](rule), logic.Explosion[T]())
}

func registerRules() {
	register(Entry{
		Name:      "identity",
		Group:     GroupRule,
		Statement: "A -> A",
		Summary:   "Every proposition implies itself.",
		Proof:     logic.Identity[A](),
		Exercise:  trivial(func() T { return id(logic.Trivial) }),
	})

	register(Entry{
		Name:      "modus-ponens",
		Group:     GroupRule,
		Statement: "A & (A -> B) -> B",
		Summary:   "From A and A -> B, conclude B by applying the implication.",
		Proof:     logic.ModusPonens[A, B],
		Exercise:  trivial(func() T { return logic.ModusPonens(logic.Trivial, id) }),
	})

	register(Entry{
		Name:      "and-intro",
		Group:     GroupRule,
		Statement: "A -> B -> A & B",
		Summary:   "Pair a proof of A with a proof of B.",
		Proof:     logic.AndIntro[A, B](),
		Exercise: trivial(func() T {
			return logic.AndIntro[T, T]()(logic.Trivial)(logic.Trivial).Right
		}),
	})

	register(Entry{
		Name:      "and-elim-left",
		Group:     GroupRule,
		Statement: "A & B -> A",
		Summary:   "Project the left proof out of a conjunction.",
		Proof:     logic.AndElimLeft[A, B](),
		Exercise: trivial(func() T {
			return logic.AndElimLeft[T, T]()(logic.And[T, T]{Left: logic.Trivial, Right: logic.Trivial})
		}),
	})

	register(Entry{
		Name:      "and-elim-right",
		Group:     GroupRule,
		Statement: "A & B -> B",
		Summary:   "Project the right proof out of a conjunction.",
		Proof:     logic.AndElimRight[A, B](),
		Exercise: trivial(func() T {
			return logic.AndElimRight[T, T]()(logic.And[T, T]{Left: logic.Trivial, Right: logic.Trivial})
		}),
	})

	register(Entry{
		Name:      "or-intro-left",
		Group:     GroupRule,
		Statement: "A -> A | B",
		Summary:   "Inject a proof of A as the left side of a disjunction.",
		Proof:     logic.OrIntroLeft[A, B](),
		Exercise: trivial(func() T {
			return logic.Match(logic.OrIntroLeft[T, T]()(logic.Trivial), id, abandon[T]("right side of a left injection"))
		}),
	})

	register(Entry{
		Name:      "or-intro-right",
		Group:     GroupRule,
		Statement: "B -> A | B",
		Summary:   "Inject a proof of B as the right side of a disjunction.",
		Proof:     logic.OrIntroRight[A, B](),
		Exercise: trivial(func() T {
			return logic.Match(logic.OrIntroRight[T, T]()(logic.Trivial), abandon[T]("left side of a right injection"), id)
		}),
	})

	register(Entry{
		Name:      "or-elim",
		Group:     GroupRule,
		Statement: "A | B -> (A -> C) -> (B -> C) -> C",
		Summary:   "Case analysis: handle each side of a disjunction with a proof of the same conclusion.",
		Proof:     logic.OrElim[A, B, C](),
		Exercise: trivial(func() T {
			elim := logic.OrElim[T, T, T]()
			left := elim(logic.OrIntroLeft[T, T]()(logic.Trivial))(id)(id)
			return elim(logic.OrIntroRight[T, T]()(left))(id)(id)
		}),
	})

	register(Entry{
		Name:      "double-negation-intro",
		Group:     GroupRule,
		Statement: "A -> ~~A",
		Summary:   "A proof of A refutes every refutation of A.",
		Proof:     logic.DoubleNegationIntro[A](),
		Exercise: unreachable(func() {
			logic.DoubleNegationIntro[T]()(logic.Trivial)(logic.Reject[T]("refutation of the trivial proposition"))
		}),
	})

	register(Entry{
		Name:      "explosion",
		Group:     GroupRule,
		Statement: "False -> A",
		Summary:   "From absurdity anything follows. No honest proof of False exists, so invoking it signals an unreachable state.",
		Proof:     logic.Explosion[A](),
		Exercise: unreachable(func() {
			var forged logic.False
			logic.Explosion[T]()(forged)
		}),
	})

	register(Entry{
		Name:      "contraposition",
		Group:     GroupRule,
		Statement: "(A -> B) -> ~B -> ~A",
		Summary:   "An implication turns refutations of its conclusion into refutations of its premise.",
		Proof:     logic.Contraposition[A, B](),
		Exercise: unreachable(func() {
			logic.Contraposition[T, T]()(id)(logic.Reject[T]("refutation of the trivial proposition"))(logic.Trivial)
		}),
	})

	register(Entry{
		Name:      "permute",
		Group:     GroupRule,
		Statement: "(A -> B -> C) -> B -> A -> C",
		Summary:   "Swap the order of two curried hypotheses.",
		Proof:     logic.Permute[A, B, C],
		Exercise: trivial(func() T {
			f := func(T) logic.Implies[T, T] { return id }
			return logic.Permute[T, T, T](f)(logic.Trivial)(logic.Trivial)
		}),
	})

	register(Entry{
		Name:      "exportation",
		Group:     GroupRule,
		Statement: "(A & B -> C) -> A -> B -> C",
		Summary:   "Curry a hypothesis on a conjunction.",
		Proof:     logic.Exportation[A, B, C],
		Exercise: trivial(func() T {
			f := logic.AndElimLeft[T, T]()
			return logic.Exportation(f)(logic.Trivial)(logic.Trivial)
		}),
	})

	register(Entry{
		Name:      "importation",
		Group:     GroupRule,
		Statement: "(A -> B -> C) -> A & B -> C",
		Summary:   "Uncurry two hypotheses into one conjunction.",
		Proof:     logic.Importation[A, B, C],
		Exercise: trivial(func() T {
			g := func(T) logic.Implies[T, T] { return id }
			return logic.Importation[T, T, T](g)(logic.And[T, T]{Left: logic.Trivial, Right: logic.Trivial})
		}),
	})

	register(Entry{
		Name:      "curry-iso",
		Group:     GroupRule,
		Statement: "((A & B -> C) -> A -> B -> C) & ((A -> B -> C) -> A & B -> C)",
		Summary:   "Exportation and importation are inverse to each other.",
		Proof:     logic.CurryIso[A, B, C](),
		Exercise: trivial(func() T {
			iso := logic.CurryIso[T, T, T]()
			back := iso.Right(iso.Left(logic.AndElimRight[T, T]()))
			return back(logic.And[T, T]{Left: logic.Trivial, Right: logic.Trivial})
		}),
	})

	register(Entry{
		Name:      "syllogism",
		Group:     GroupRule,
		Statement: "(A -> B) & (B -> C) -> A -> C",
		Summary:   "Chain two implications.",
		Proof:     logic.Syllogism[A, B, C],
		Exercise:  trivial(func() T { return logic.Syllogism(id, id)(logic.Trivial) }),
	})

	register(Entry{
		Name:      "syllogism-curried",
		Group:     GroupRule,
		Statement: "(A -> B) -> (B -> C) -> A -> C",
		Summary:   "Chain two implications, one premise at a time.",
		Proof:     logic.SyllogismCurried[A, B, C](),
		Exercise: trivial(func() T {
			return logic.SyllogismCurried[T, T, T]()(id)(id)(logic.Trivial)
		}),
	})

	register(Entry{
		Name:      "syllogism-theorem",
		Group:     GroupRule,
		Statement: "(A -> B) & (B -> C) -> A -> C",
		Summary:   "The syllogism as a single proof of its conjoined premises.",
		Proof:     logic.SyllogismTheorem[A, B, C](),
		Exercise: trivial(func() T {
			premises := logic.And[logic.Implies[T, T], logic.Implies[T, T]]{Left: id, Right: id}
			return logic.SyllogismTheorem[T, T, T]()(premises)(logic.Trivial)
		}),
	})
}
