package feedback

import (
	"prover/catalog"
	"prover/formula"
	"prover/queries"
)

func registerSyntax() {
	register(Feedback[formula.Error]{
		Id:    "syntax",
		Rank:  RankSyntax,
		Query: queries.SyntaxError,
		Render: func(render *Render, entry catalog.Entry, err formula.Error) {
			render.WriteString("The statement of ")
			render.WriteEntry(entry)
			render.WriteString(" isn't a formula: ")
			render.WriteString(err.Message)
			render.WriteString(" at ")
			render.WriteString(err.Span.String())
			if err.Reason != "" {
				render.WriteString(" (")
				render.WriteString(err.Reason)
				render.WriteString(")")
			}
			render.WriteString(".")

			render.WriteBreak()
			render.WriteString("Formulas are built from names, ")
			render.WriteCode("~")
			render.WriteString(", ")
			render.WriteCode("&")
			render.WriteString(", ")
			render.WriteCode("|")
			render.WriteString(" and ")
			render.WriteCode("->")
			render.WriteString(".")
		},
	})
}
