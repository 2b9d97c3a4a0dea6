package feedback

import (
	"prover/catalog"
	"prover/formula"
	"prover/queries"
)

func registerShape() {
	register(Feedback[error]{
		Id:    "shape",
		Rank:  RankShape,
		Query: queries.UnreadableProof,
		Render: func(render *Render, entry catalog.Entry, err error) {
			render.WriteString("The proof of ")
			render.WriteEntry(entry)
			render.WriteString(" doesn't have the type of a proof: ")
			render.WriteString(err.Error())
			render.WriteString(".")
		},
	})

	type mismatchedShapeData struct {
		Stated formula.Formula
		Proved formula.Formula
	}

	register(Feedback[mismatchedShapeData]{
		Id:   "shape",
		Rank: RankShape,
		Query: func(facts *queries.Facts, f func(data mismatchedShapeData)) {
			queries.MismatchedShape(facts, func(stated formula.Formula, proved formula.Formula) {
				f(mismatchedShapeData{Stated: stated, Proved: proved})
			})
		},
		Render: func(render *Render, entry catalog.Entry, data mismatchedShapeData) {
			render.WriteEntry(entry)
			render.WriteString(" states ")
			render.WriteFormula(data.Stated)
			render.WriteString(", but its proof proves ")
			render.WriteFormula(data.Proved)
			render.WriteString(".")

			atoms := formula.Atoms(data.Proved)
			if len(atoms) > 0 {
				render.WriteBreak()
				render.WriteString("The proof mentions ")
				render.WriteNumber(len(atoms), "proposition", "propositions")
				render.WriteString(".")
			}
		},
	})
}
