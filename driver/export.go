package driver

import (
	"fmt"
	"io"

	"prover/catalog"
	"prover/formula"

	"gopkg.in/yaml.v3"
)

type ExportedEntry struct {
	Name         string   `yaml:"name"`
	Group        string   `yaml:"group"`
	Statement    string   `yaml:"statement"`
	Summary      string   `yaml:"summary"`
	Propositions []string `yaml:"propositions,omitempty"`
}

// WriteCatalogYAML writes entries as a YAML list, without their proofs.
func WriteCatalogYAML(entries []catalog.Entry, w io.Writer) error {
	exported := make([]ExportedEntry, 0, len(entries))
	for _, entry := range entries {
		item := ExportedEntry{
			Name:      entry.Name,
			Group:     string(entry.Group),
			Statement: entry.Statement,
			Summary:   entry.Summary,
		}

		if statement, err := formula.Parse(entry.Statement); err == nil {
			item.Propositions = formula.Atoms(statement)
		}

		exported = append(exported, item)
	}

	data, err := yaml.Marshal(exported)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}

	return nil
}
