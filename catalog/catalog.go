// Package catalog registers every rule, theorem and meta-proof together with
// the statement it proves, so the driver can check each proof's shape and run
// it at the trivial instantiation.
package catalog

import (
	"slices"

	"prover/formula"
)

// A, B and C are the atoms proofs are instantiated at for shape checking.
type A struct{}
type B struct{}
type C struct{}

type Group string

const (
	GroupRule      Group = "rule"
	GroupTheorem   Group = "theorem"
	GroupClassical Group = "classical"
	GroupExample   Group = "example"
)

var Groups = []Group{GroupRule, GroupTheorem, GroupClassical, GroupExample}

type Entry struct {
	Name      string
	Group     Group
	Statement string
	Summary   string

	// Proof is instantiated at A, B and C; its Go type must read back as
	// Statement.
	Proof any

	// Exercise runs the proof at the trivial instantiation.
	Exercise func() error
}

var registered []Entry

func register(entry Entry) {
	if slices.ContainsFunc(registered, func(existing Entry) bool {
		return existing.Name == entry.Name
	}) {
		panic("duplicate catalog entry: " + entry.Name)
	}

	registered = append(registered, entry)
}

func init() {
	registerRules()
	registerTheorems()
	registerClassical()
	registerExamples()
}

// All returns every entry in registration order.
func All() []Entry {
	return slices.Clone(registered)
}

func Lookup(name string) (Entry, bool) {
	i := slices.IndexFunc(registered, func(entry Entry) bool {
		return entry.Name == name
	})
	if i < 0 {
		return Entry{}, false
	}

	return registered[i], true
}

func InGroup(group Group) []Entry {
	var entries []Entry
	for _, entry := range registered {
		if entry.Group == group {
			entries = append(entries, entry)
		}
	}

	return entries
}

// Schema is a named axiom schema over the atoms A and B.
type Schema string

const (
	SchemaLEM    Schema = "A | ~A"
	SchemaDNE    Schema = "~~A -> A"
	SchemaPeirce Schema = "((A -> B) -> A) -> A"
)

// Instantiate substitutes bindings into the schema.
func (schema Schema) Instantiate(bindings map[string]string) formula.Formula {
	substitutions := make(map[string]formula.Formula, len(bindings))
	for name, source := range bindings {
		substitutions[name] = formula.MustParse(source)
	}

	return formula.Substitute(formula.MustParse(string(schema)), substitutions)
}

// transformer states "premise schema implies conclusion schema".
func transformer(premise formula.Formula, conclusion formula.Formula) string {
	return formula.Display(formula.Implication{Premise: premise, Conclusion: conclusion})
}
