package feedback

import (
	"prover/catalog"
	"prover/queries"
)

type FeedbackItem struct {
	Id     string
	Rank   Rank
	On     catalog.Entry
	String func() string
}

type Feedback[T any] struct {
	Id     string
	Rank   Rank
	Query  func(facts *queries.Facts, f func(data T))
	Render func(render *Render, entry catalog.Entry, data T)
}

var registered = []func(facts *queries.Facts, f func(item FeedbackItem)){}

func register[T any](entry Feedback[T]) {
	registered = append(registered, func(facts *queries.Facts, f func(item FeedbackItem)) {
		entry.Query(facts, func(data T) {
			f(FeedbackItem{
				Id:   entry.Id,
				Rank: entry.Rank,
				On:   facts.Entry,
				String: func() string {
					render := NewRender()
					entry.Render(render, facts.Entry, data)
					return render.Finish()
				},
			})
		})
	})
}

func init() {
	registerSyntax()
	registerShape()
	registerExercise()
}

// Collect runs every registered query against facts, most fundamental
// feedback first.
func Collect(facts *queries.Facts, itemFilter func(item FeedbackItem) bool) []FeedbackItem {
	var items []FeedbackItem
	for _, run := range registered {
		run(facts, func(item FeedbackItem) {
			if itemFilter == nil || itemFilter(item) {
				items = append(items, item)
			}
		})
	}

	return sort(items)
}
