package feedback

import (
	"slices"
)

type Rank int

const (
	RankSyntax Rank = iota
	RankShape
	RankExercise
	RankUnreachable
)

func sort(items []FeedbackItem) []FeedbackItem {
	slices.SortStableFunc(items, func(left FeedbackItem, right FeedbackItem) int {
		return int(left.Rank) - int(right.Rank)
	})

	return items
}
