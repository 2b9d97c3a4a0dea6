package catalog_test

import (
	"testing"

	"prover/catalog"
	"prover/formula"
	"prover/logic"

	"github.com/stretchr/testify/require"
)

func TestEntriesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, entry := range catalog.All() {
		require.False(t, seen[entry.Name], "duplicate entry %s", entry.Name)
		seen[entry.Name] = true
	}

	require.NotEmpty(t, seen)
}

func TestLookup(t *testing.T) {
	entry, ok := catalog.Lookup("modus-ponens")
	require.True(t, ok)
	require.Equal(t, catalog.GroupRule, entry.Group)

	_, ok = catalog.Lookup("proof-search")
	require.False(t, ok)
}

func TestGroupsCoverEveryEntry(t *testing.T) {
	total := 0
	for _, group := range catalog.Groups {
		entries := catalog.InGroup(group)
		require.NotEmpty(t, entries, "group %s", group)

		for _, entry := range entries {
			require.Equal(t, group, entry.Group)
		}

		total += len(entries)
	}

	require.Equal(t, len(catalog.All()), total)
}

func TestStatementsMatchProofs(t *testing.T) {
	for _, entry := range catalog.All() {
		t.Run(entry.Name, func(t *testing.T) {
			statement, err := formula.Parse(entry.Statement)
			require.Nil(t, err)

			described, describeErr := formula.DescribeValue(entry.Proof)
			require.NoError(t, describeErr)

			require.True(t, formula.Equal(statement, described), "%s proves %s", entry.Statement, formula.Display(described))
		})
	}
}

func TestExercises(t *testing.T) {
	for _, entry := range catalog.All() {
		t.Run(entry.Name, func(t *testing.T) {
			var exerciseErr error
			require.NoError(t, logic.Catch(func() {
				exerciseErr = entry.Exercise()
			}))
			require.NoError(t, exerciseErr)
		})
	}
}

func TestClassicalStatements(t *testing.T) {
	tests := map[string]string{
		"dne-from-lem":    "A | ~A -> ~~A -> A",
		"peirce-from-dne": "(~~A -> A) -> ((A -> B) -> A) -> A",
		"dne-from-peirce": "((~A -> A) -> A) -> ~~A -> A",
		"peirce-from-lem": "A | ~A -> ((A -> B) -> A) -> A",
		"lem-from-dne":    "(~~(A | ~A) -> A | ~A) -> A | ~A",
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			entry, ok := catalog.Lookup(name)
			require.True(t, ok)
			require.Equal(t, want, entry.Statement)
		})
	}
}

func TestSchemaInstantiate(t *testing.T) {
	peirce := catalog.SchemaPeirce.Instantiate(map[string]string{"B": "False"})
	require.Equal(t, "(~A -> A) -> A", formula.Display(peirce))

	dne := catalog.SchemaDNE.Instantiate(map[string]string{"A": "A | ~A"})
	require.Equal(t, "~~(A | ~A) -> A | ~A", formula.Display(dne))
}
