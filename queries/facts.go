package queries

import (
	"prover/catalog"
	"prover/formula"
	"prover/logic"

	"github.com/pkg/errors"
)

// Facts records what checking a single catalog entry found.
type Facts struct {
	Entry catalog.Entry

	Statement   formula.Formula
	SyntaxError *formula.Error

	Proved      formula.Formula
	DescribeErr error

	// Exercised is false when the exercise was skipped because the proof
	// doesn't have the stated shape.
	Exercised   bool
	ExerciseErr error
	Unreachable error
}

// Gather parses the statement, reads the proof's shape and, when the two
// agree, runs the exercise.
func Gather(entry catalog.Entry) *Facts {
	facts := &Facts{Entry: entry}

	facts.Statement, facts.SyntaxError = formula.Parse(entry.Statement)
	facts.Proved, facts.DescribeErr = formula.DescribeValue(entry.Proof)

	if facts.SyntaxError != nil || facts.DescribeErr != nil || !formula.Equal(facts.Statement, facts.Proved) {
		return facts
	}

	if entry.Exercise == nil {
		facts.ExerciseErr = errors.New("no exercise")
		return facts
	}

	facts.Exercised = true
	facts.Unreachable = logic.Catch(func() {
		facts.ExerciseErr = entry.Exercise()
	})

	return facts
}

func (facts *Facts) Accepted() bool {
	return facts.SyntaxError == nil &&
		facts.DescribeErr == nil &&
		formula.Equal(facts.Statement, facts.Proved) &&
		facts.Exercised &&
		facts.ExerciseErr == nil &&
		facts.Unreachable == nil
}
