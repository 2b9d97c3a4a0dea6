package queries

import (
	"prover/formula"
)

func SyntaxError(facts *Facts, f func(err formula.Error)) {
	if facts.SyntaxError != nil {
		f(*facts.SyntaxError)
	}
}

func UnreadableProof(facts *Facts, f func(err error)) {
	if facts.DescribeErr != nil {
		f(facts.DescribeErr)
	}
}

func MismatchedShape(facts *Facts, f func(stated formula.Formula, proved formula.Formula)) {
	if facts.Statement == nil || facts.Proved == nil {
		return
	}

	if !formula.Equal(facts.Statement, facts.Proved) {
		f(facts.Statement, facts.Proved)
	}
}

func FailedExercise(facts *Facts, f func(err error)) {
	if facts.ExerciseErr != nil {
		f(facts.ExerciseErr)
	}
}

// UnreachableState reports an exercise that reached a state no honest proof
// can reach, such as consuming a proof of False.
func UnreachableState(facts *Facts, f func(err error)) {
	if facts.Unreachable != nil {
		f(facts.Unreachable)
	}
}
