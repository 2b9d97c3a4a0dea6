package feedback

import (
	"prover/catalog"
	"prover/queries"
)

func registerExercise() {
	register(Feedback[error]{
		Id:    "exercise",
		Rank:  RankExercise,
		Query: queries.FailedExercise,
		Render: func(render *Render, entry catalog.Entry, err error) {
			render.WriteString("Running ")
			render.WriteEntry(entry)
			render.WriteString(" at the trivial instantiation failed: ")
			render.WriteString(err.Error())
			render.WriteString(".")
		},
	})

	register(Feedback[error]{
		Id:    "unreachable",
		Rank:  RankUnreachable,
		Query: queries.UnreachableState,
		Render: func(render *Render, entry catalog.Entry, err error) {
			render.WriteString("Running ")
			render.WriteEntry(entry)
			render.WriteString(" reached a state no proof can reach: ")
			render.WriteString(err.Error())
			render.WriteString(".")
			render.WriteBreak()
			render.WriteString("A proof of ")
			render.WriteCode("False")
			render.WriteString(" was consumed. Only forged witnesses can get here.")
		},
	})
}
