package logic_test

import (
	"testing"
	"testing/quick"

	"prover/logic"

	"github.com/stretchr/testify/require"
)

type P struct{ Label string }
type Q struct{ Label string }
type R struct{ Label string }

func TestTrivialInstantiation(t *testing.T) {
	id := logic.Identity[logic.True]()

	tests := []struct {
		name  string
		proof func() logic.True
	}{
		{"identity", func() logic.True { return id(logic.Trivial) }},
		{"modus ponens", func() logic.True { return logic.ModusPonens(logic.Trivial, id) }},
		{"and intro", func() logic.True {
			return logic.AndIntro[logic.True, logic.True]()(logic.Trivial)(logic.Trivial).Left
		}},
		{"and elim left", func() logic.True {
			return logic.AndElimLeft[logic.True, logic.True]()(logic.And[logic.True, logic.True]{})
		}},
		{"and elim right", func() logic.True {
			return logic.AndElimRight[logic.True, logic.True]()(logic.And[logic.True, logic.True]{})
		}},
		{"or elim", func() logic.True {
			or := logic.OrIntroLeft[logic.True, logic.True]()(logic.Trivial)
			return logic.OrElim[logic.True, logic.True, logic.True]()(or)(id)(id)
		}},
		{"permute", func() logic.True {
			f := func(logic.True) logic.Implies[logic.True, logic.True] { return id }
			return logic.Permute[logic.True, logic.True, logic.True](f)(logic.Trivial)(logic.Trivial)
		}},
		{"exportation", func() logic.True {
			f := func(logic.And[logic.True, logic.True]) logic.True { return logic.Trivial }
			return logic.Exportation[logic.True, logic.True, logic.True](f)(logic.Trivial)(logic.Trivial)
		}},
		{"importation", func() logic.True {
			g := func(logic.True) logic.Implies[logic.True, logic.True] { return id }
			return logic.Importation[logic.True, logic.True, logic.True](g)(logic.And[logic.True, logic.True]{})
		}},
		{"syllogism", func() logic.True { return logic.Syllogism(id, id)(logic.Trivial) }},
		{"syllogism curried", func() logic.True {
			return logic.SyllogismCurried[logic.True, logic.True, logic.True]()(id)(id)(logic.Trivial)
		}},
		{"syllogism theorem", func() logic.True {
			premises := logic.And[logic.Implies[logic.True, logic.True], logic.Implies[logic.True, logic.True]]{Left: id, Right: id}
			return logic.SyllogismTheorem[logic.True, logic.True, logic.True]()(premises)(logic.Trivial)
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, logic.Trivial, test.proof())
		})
	}
}

func TestModusPonens(t *testing.T) {
	ab := func(p P) Q { return Q{Label: p.Label + "->q"} }
	require.Equal(t, Q{Label: "p->q"}, logic.ModusPonens[P, Q](P{Label: "p"}, ab))
}

func TestPairProjection(t *testing.T) {
	law := func(a int, b string) bool {
		pair := logic.AndIntro[int, string]()(a)(b)
		return logic.AndElimLeft[int, string]()(pair) == a && logic.AndElimRight[int, string]()(pair) == b
	}

	require.NoError(t, quick.Check(law, nil))
}

func TestOrElimDispatch(t *testing.T) {
	f := func(p P) R { return R{Label: "f(" + p.Label + ")"} }
	g := func(q Q) R { return R{Label: "g(" + q.Label + ")"} }
	elim := logic.OrElim[P, Q, R]()

	left := logic.OrIntroLeft[P, Q]()(P{Label: "a"})
	require.True(t, left.IsLeft())
	require.Equal(t, f(P{Label: "a"}), elim(left)(f)(g))

	right := logic.OrIntroRight[P, Q]()(Q{Label: "b"})
	require.True(t, right.IsRight())
	require.Equal(t, g(Q{Label: "b"}), elim(right)(f)(g))
}

func TestOrElimDispatchLaw(t *testing.T) {
	f := func(a int) string { return "left" }
	g := func(b string) string { return "right:" + b }

	law := func(a int, b string, useLeft bool) bool {
		if useLeft {
			return logic.Match[int, string, string](logic.OrIntroLeft[int, string]()(a), f, g) == f(a)
		}

		return logic.Match[int, string, string](logic.OrIntroRight[int, string]()(b), f, g) == g(b)
	}

	require.NoError(t, quick.Check(law, nil))
}

func TestMatchZeroDisjunction(t *testing.T) {
	var or logic.Or[P, Q]
	require.Equal(t, "Or(none)", or.String())

	err := logic.Catch(func() {
		logic.Match[P, Q, P](or, logic.Identity[P](), func(Q) P { return P{} })
	})
	require.ErrorIs(t, err, logic.ErrUnreachable)
}

func TestDoubleNegationIntro(t *testing.T) {
	var seen P
	refute := func(p P) logic.False {
		seen = p
		return logic.False{}
	}

	nn := logic.DoubleNegationIntro[P]()(P{Label: "held"})
	nn(refute)

	require.Equal(t, P{Label: "held"}, seen)
}

func TestExplosion(t *testing.T) {
	// A forged witness: no proof in this module can produce one.
	var forged logic.False

	err := logic.Catch(func() {
		logic.Explosion[P]()(forged)
	})
	require.ErrorIs(t, err, logic.ErrUnreachable)
	require.Contains(t, err.Error(), "explosion")
}

func TestReject(t *testing.T) {
	err := logic.Catch(func() {
		logic.Reject[P]("never called")(P{})
	})
	require.ErrorIs(t, err, logic.ErrUnreachable)
	require.Contains(t, err.Error(), "never called")
}

func TestCatchRepanics(t *testing.T) {
	require.PanicsWithValue(t, "boom", func() {
		_ = logic.Catch(func() { panic("boom") })
	})

	require.NoError(t, logic.Catch(func() {}))
}

func TestContraposition(t *testing.T) {
	ab := func(p P) Q { return Q{Label: p.Label} }

	var refuted Q
	notB := func(q Q) logic.False {
		refuted = q
		return logic.False{}
	}

	notA := logic.Contraposition[P, Q]()(ab)(notB)
	notA(P{Label: "x"})

	require.Equal(t, Q{Label: "x"}, refuted)
}

func TestPermute(t *testing.T) {
	f := func(p P) logic.Implies[Q, R] {
		return func(q Q) R { return R{Label: p.Label + q.Label} }
	}

	swapped := logic.Permute[P, Q, R](f)
	require.Equal(t, f(P{Label: "a"})(Q{Label: "b"}), swapped(Q{Label: "b"})(P{Label: "a"}))
}
