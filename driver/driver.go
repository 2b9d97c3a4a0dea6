package driver

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"prover/catalog"
	"prover/colors"
	"prover/feedback"
	"prover/formula"
	"prover/queries"

	"github.com/charmbracelet/x/ansi"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("prover.driver")

type Result struct {
	Facts    *queries.Facts
	Feedback []feedback.FeedbackItem
}

func (result Result) Entry() catalog.Entry {
	return result.Facts.Entry
}

func (result Result) Accepted() bool {
	return len(result.Feedback) == 0 && result.Facts.Accepted()
}

// Check checks every entry whose name is in filter, or every entry if filter
// is empty. Results are in the same order as entries.
func Check(entries []catalog.Entry, filter []string) []Result {
	var results []Result
	rejected := 0
	for _, entry := range entries {
		if len(filter) > 0 && !slices.Contains(filter, entry.Name) {
			continue
		}

		facts := queries.Gather(entry)
		result := Result{
			Facts:    facts,
			Feedback: feedback.Collect(facts, nil),
		}

		if !result.Accepted() {
			rejected++
		}

		log.Debugf("checked %s (%d feedback items)", entry.Name, len(result.Feedback))

		results = append(results, result)
	}

	log.Infof("checked %d entries, %d rejected", len(results), rejected)

	return results
}

// WriteFeedback writes the feedback of every rejected result and returns how
// many items were written. Only items with an id in filterFeedback are
// written, unless it is empty.
func WriteFeedback(results []Result, filterFeedback []string, w io.Writer) int {
	feedbackCount := 0
	for _, result := range results {
		seenFeedback := []string{}

		for _, item := range result.Feedback {
			if len(filterFeedback) > 0 && !slices.Contains(filterFeedback, item.Id) {
				continue
			}

			if slices.Contains(seenFeedback, item.Id) {
				continue
			}

			seenFeedback = append(seenFeedback, item.Id)

			indent := "  "

			rendered := ansi.Wordwrap(item.String(), 100-len(indent), " ")
			for i, line := range strings.Split(rendered, "\n") {
				if i > 0 {
					rendered += "\n" + indent
				} else {
					rendered = indent
				}

				rendered += line
			}

			if feedbackCount == 0 {
				_, err := fmt.Fprintf(w, "\n%s\n\n", colors.Title("Feedback:"))
				if err != nil {
					panic(err)
				}
			}

			_, err := fmt.Fprintf(w, "%s (%s):\n\n%s\n\n", colors.Code(item.On.Name), item.Id, rendered)
			if err != nil {
				panic(err)
			}

			feedbackCount++
		}
	}

	return feedbackCount
}

// WriteCatalog lists entries under a heading for each group.
func WriteCatalog(entries []catalog.Entry, w io.Writer) {
	first := true
	for _, group := range catalog.Groups {
		var inGroup []catalog.Entry
		for _, entry := range entries {
			if entry.Group == group {
				inGroup = append(inGroup, entry)
			}
		}

		if len(inGroup) == 0 {
			continue
		}

		if !first {
			fmt.Fprintln(w)
		}
		first = false

		fmt.Fprintf(w, "%s\n", colors.Title(titleOf(group)))

		width := 0
		for _, entry := range inGroup {
			width = max(width, len(entry.Name))
		}

		for _, entry := range inGroup {
			fmt.Fprintf(w, "  %s%s  %s\n", entry.Name, strings.Repeat(" ", width-len(entry.Name)), renderStatement(entry.Statement))
		}
	}
}

// WriteEntry describes a single entry in detail.
func WriteEntry(entry catalog.Entry, w io.Writer) {
	fmt.Fprintf(w, "%s %s\n\n", colors.Title(entry.Name), colors.Extra(string(entry.Group)))
	fmt.Fprintf(w, "  %s\n\n", renderStatement(entry.Statement))

	summary := ansi.Wordwrap(entry.Summary, 98, " ")
	for _, line := range strings.Split(summary, "\n") {
		fmt.Fprintf(w, "  %s\n", line)
	}

	if proved, err := formula.DescribeValue(entry.Proof); err == nil && len(formula.Atoms(proved)) > 0 {
		fmt.Fprintf(w, "\n  Propositions: %s\n", strings.Join(formula.Atoms(proved), ", "))
	}
}

func renderStatement(statement string) string {
	f, err := formula.Parse(statement)
	if err != nil {
		return statement
	}

	return formula.Render(f)
}

func titleOf(group catalog.Group) string {
	switch group {
	case catalog.GroupRule:
		return "Rules:"
	case catalog.GroupTheorem:
		return "Theorems:"
	case catalog.GroupClassical:
		return "Classical equivalences:"
	case catalog.GroupExample:
		return "Examples:"
	default:
		return string(group) + ":"
	}
}
