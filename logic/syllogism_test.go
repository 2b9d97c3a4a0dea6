package logic_test

import (
	"testing"
	"testing/quick"

	"prover/logic"

	"github.com/stretchr/testify/require"
)

func TestSyllogismComposes(t *testing.T) {
	ab := logic.Implies[int, string](func(n int) string { return string(rune('a' + n%26)) })
	bc := logic.Implies[string, bool](func(s string) bool { return s < "m" })

	law := func(a int) bool {
		if a < 0 {
			a = -a
		}

		return logic.Syllogism(ab, bc)(a) == bc(ab(a))
	}

	require.NoError(t, quick.Check(law, nil))
}

func TestSyllogismVariantsAgree(t *testing.T) {
	ab := logic.Implies[P, Q](func(p P) Q { return Q{Label: p.Label + "q"} })
	bc := logic.Implies[Q, R](func(q Q) R { return R{Label: q.Label + "r"} })
	premises := logic.And[logic.Implies[P, Q], logic.Implies[Q, R]]{Left: ab, Right: bc}

	for _, label := range []string{"", "x", "long label"} {
		p := P{Label: label}
		want := bc(ab(p))

		require.Equal(t, want, logic.Syllogism(ab, bc)(p))
		require.Equal(t, want, logic.SyllogismCurried[P, Q, R]()(ab)(bc)(p))
		require.Equal(t, want, logic.SyllogismTheorem[P, Q, R]()(premises)(p))
	}
}

func TestExportationImportationInverse(t *testing.T) {
	f := logic.Implies[logic.And[int, string], string](func(pair logic.And[int, string]) string {
		return pair.Right + string(rune('0'+pair.Left%10))
	})
	g := logic.Implies[int, logic.Implies[string, string]](func(n int) logic.Implies[string, string] {
		return func(s string) string { return s + "/" + string(rune('0'+n%10)) }
	})

	roundTripF := logic.Importation(logic.Exportation(f))
	roundTripG := logic.Exportation(logic.Importation(g))

	law := func(a int, b string) bool {
		if a < 0 {
			a = -a
		}

		pair := logic.And[int, string]{Left: a, Right: b}
		return roundTripF(pair) == f(pair) && roundTripG(a)(b) == g(a)(b)
	}

	require.NoError(t, quick.Check(law, nil))
}

func TestCurryIso(t *testing.T) {
	iso := logic.CurryIso[P, Q, R]()
	f := logic.Implies[logic.And[P, Q], R](func(pair logic.And[P, Q]) R {
		return R{Label: pair.Left.Label + pair.Right.Label}
	})

	back := iso.Right(iso.Left(f))
	pair := logic.And[P, Q]{Left: P{Label: "a"}, Right: Q{Label: "b"}}

	require.Equal(t, R{Label: "ab"}, back(pair))
	require.Equal(t, f(pair), iso.Left(f)(pair.Left)(pair.Right))
}
