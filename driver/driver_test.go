package driver_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"prover/catalog"
	"prover/colors"
	"prover/driver"
	"prover/logic"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func feedbackIds(result driver.Result) []string {
	var ids []string
	for _, item := range result.Feedback {
		ids = append(ids, item.Id)
	}

	return ids
}

func TestCatalogIsAccepted(t *testing.T) {
	results := driver.Check(catalog.All(), nil)
	require.Len(t, results, len(catalog.All()))

	for _, result := range results {
		require.True(t, result.Accepted(), "%s: %v", result.Entry().Name, feedbackIds(result))
	}

	var out bytes.Buffer
	require.Zero(t, driver.WriteFeedback(results, nil, &out))
	require.Empty(t, out.String())
}

func TestCheckFilter(t *testing.T) {
	results := driver.Check(catalog.All(), []string{"explosion", "de-morgan-1"})
	require.Len(t, results, 2)
	require.Equal(t, "de-morgan-1", results[1].Entry().Name)
}

func TestCheckFeedback(t *testing.T) {
	tests := []struct {
		name  string
		entry catalog.Entry
		want  []string
	}{
		{
			name: "syntax",
			entry: catalog.Entry{
				Name:      "broken",
				Statement: "A -> ",
				Proof:     logic.Identity[catalog.A](),
				Exercise:  func() error { return nil },
			},
			want: []string{"syntax"},
		},
		{
			name: "mismatched shape",
			entry: catalog.Entry{
				Name:      "swapped",
				Statement: "A & B -> B",
				Proof:     logic.AndElimLeft[catalog.A, catalog.B](),
				Exercise:  func() error { return nil },
			},
			want: []string{"shape"},
		},
		{
			name: "unreadable proof",
			entry: catalog.Entry{
				Name:      "constant",
				Statement: "A",
				Proof:     []catalog.A{},
				Exercise:  func() error { return nil },
			},
			want: []string{"shape"},
		},
		{
			name: "failed exercise",
			entry: catalog.Entry{
				Name:      "failing",
				Statement: "A -> A",
				Proof:     logic.Identity[catalog.A](),
				Exercise:  func() error { return errors.New("wrong witness") },
			},
			want: []string{"exercise"},
		},
		{
			name: "missing exercise",
			entry: catalog.Entry{
				Name:      "lazy",
				Statement: "A -> A",
				Proof:     logic.Identity[catalog.A](),
			},
			want: []string{"exercise"},
		},
		{
			name: "unreachable",
			entry: catalog.Entry{
				Name:      "forged",
				Statement: "False -> A",
				Proof:     logic.Explosion[catalog.A](),
				Exercise: func() error {
					var forged logic.False
					logic.Explosion[logic.True]()(forged)
					return nil
				},
			},
			want: []string{"unreachable"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			results := driver.Check([]catalog.Entry{test.entry}, nil)
			require.Len(t, results, 1)
			require.False(t, results[0].Accepted())
			require.Equal(t, test.want, feedbackIds(results[0]))
		})
	}
}

func TestWriteFeedback(t *testing.T) {
	entry := catalog.Entry{
		Name:      "swapped",
		Statement: "A & B -> B",
		Proof:     logic.AndElimLeft[catalog.A, catalog.B](),
		Exercise:  func() error { return nil },
	}

	colors.WithoutColor(func() {
		results := driver.Check([]catalog.Entry{entry}, nil)

		var out bytes.Buffer
		require.Equal(t, 1, driver.WriteFeedback(results, nil, &out))
		require.Contains(t, out.String(), "`swapped` states `A & B -> B`, but its proof proves `A & B -> A`.")

		out.Reset()
		require.Zero(t, driver.WriteFeedback(results, []string{"syntax"}, &out))
	})
}

func TestWriteCatalog(t *testing.T) {
	colors.WithoutColor(func() {
		var out bytes.Buffer
		driver.WriteCatalog(catalog.All(), &out)
		snaps.MatchSnapshot(t, out.String())

		require.True(t, strings.HasPrefix(out.String(), "Rules:\n"))
	})
}

func TestWriteEntry(t *testing.T) {
	entry, ok := catalog.Lookup("contraposition")
	require.True(t, ok)

	colors.WithoutColor(func() {
		var out bytes.Buffer
		driver.WriteEntry(entry, &out)
		snaps.MatchSnapshot(t, out.String())
	})
}

func TestWriteCatalogYAML(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, driver.WriteCatalogYAML(catalog.InGroup(catalog.GroupExample), &out))

	var exported []driver.ExportedEntry
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &exported))

	want := []driver.ExportedEntry{
		{
			Name:         "always-true",
			Group:        "example",
			Statement:    "True -> True",
			Summary:      "The trivial proposition holds under the trivial hypothesis.",
			Propositions: []string{"True"},
		},
		{
			Name:         "not-false",
			Group:        "example",
			Statement:    "~False",
			Summary:      "Absurdity is refuted by the identity on False.",
			Propositions: []string{"False"},
		},
	}

	if diff := cmp.Diff(want, exported); diff != "" {
		t.Errorf("exported catalog mismatch (-want +got):\n%s", diff)
	}
}
