package formula

import (
	"fmt"
	"reflect"
	"strings"

	"prover/logic"
)

var (
	falseType = reflect.TypeFor[logic.False]()
	trueType  = reflect.TypeFor[logic.True]()
	logicPath = trueType.PkgPath()
)

// Describe reads the proposition a proof of type t proves. A function with
// several inputs proves the conjunction of its inputs implying its output.
func Describe(t reflect.Type) (Formula, error) {
	switch {
	case t == falseType:
		return Falsum, nil
	case t == trueType:
		return Verum, nil
	}

	switch t.Kind() {
	case reflect.Func:
		return describeFunc(t)
	case reflect.Struct:
		if t.PkgPath() == logicPath {
			switch {
			case strings.HasPrefix(t.Name(), "And["):
				return describeFields(t, "Left", "Right", func(left, right Formula) Formula {
					return Conjunction{Left: left, Right: right}
				})
			case strings.HasPrefix(t.Name(), "Or["):
				return describeFields(t, "left", "right", func(left, right Formula) Formula {
					return Disjunction{Left: left, Right: right}
				})
			}
		}
	}

	if t.Name() == "" {
		return nil, fmt.Errorf("%v does not encode a proposition", t)
	}

	return Atom{Name: t.Name()}, nil
}

// DescribeValue is Describe applied to the dynamic type of proof.
func DescribeValue(proof any) (Formula, error) {
	if proof == nil {
		return nil, fmt.Errorf("missing proof")
	}

	return Describe(reflect.TypeOf(proof))
}

func describeFunc(t reflect.Type) (Formula, error) {
	if t.NumIn() == 0 || t.NumOut() != 1 || t.IsVariadic() {
		return nil, fmt.Errorf("%v is not an implication: proofs take at least one hypothesis and return one conclusion", t)
	}

	var premise Formula
	for i := range t.NumIn() {
		input, err := Describe(t.In(i))
		if err != nil {
			return nil, err
		}

		if premise == nil {
			premise = input
		} else {
			premise = Conjunction{Left: premise, Right: input}
		}
	}

	conclusion, err := Describe(t.Out(0))
	if err != nil {
		return nil, err
	}

	return Implication{Premise: premise, Conclusion: conclusion}, nil
}

func describeFields(t reflect.Type, left string, right string, join func(left, right Formula) Formula) (Formula, error) {
	leftField, ok := t.FieldByName(left)
	if !ok {
		return nil, fmt.Errorf("%v has no field %s", t, left)
	}

	rightField, ok := t.FieldByName(right)
	if !ok {
		return nil, fmt.Errorf("%v has no field %s", t, right)
	}

	leftFormula, err := Describe(leftField.Type)
	if err != nil {
		return nil, err
	}

	rightFormula, err := Describe(rightField.Type)
	if err != nil {
		return nil, err
	}

	return join(leftFormula, rightFormula), nil
}
