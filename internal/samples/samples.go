// Package samples embeds reference FNOL documents used by the demo command
// and by tests.
package samples

import (
	"embed"
	"fmt"
)

//go:embed docs/*.txt
var docsFS embed.FS

// Sample is a reference FNOL document with the queue it is expected to land in.
type Sample struct {
	Name          string // File stem, e.g. "low_value_damage"
	Label         string // Human-readable scenario
	ExpectedRoute string
	Text          string
}

var registry = []Sample{
	{Name: "low_value_damage", Label: "Low-Value Damage", ExpectedRoute: "Fast-Track"},
	{Name: "personal_injury", Label: "Personal Injury", ExpectedRoute: "Specialist Queue"},
	{Name: "potential_fraud", Label: "Potential Fraud", ExpectedRoute: "Investigation Queue"},
}

// All returns every sample in demo order.
func All() ([]Sample, error) {
	out := make([]Sample, len(registry))
	for i, s := range registry {
		text, err := load(s.Name)
		if err != nil {
			return nil, err
		}
		s.Text = text
		out[i] = s
	}
	return out, nil
}

// Get returns a single sample by name.
func Get(name string) (*Sample, error) {
	for _, s := range registry {
		if s.Name == name {
			text, err := load(s.Name)
			if err != nil {
				return nil, err
			}
			s.Text = text
			return &s, nil
		}
	}
	return nil, fmt.Errorf("sample not found: %s", name)
}

func load(name string) (string, error) {
	content, err := docsFS.ReadFile(fmt.Sprintf("docs/%s.txt", name))
	if err != nil {
		return "", fmt.Errorf("failed to read sample %s: %w", name, err)
	}
	return string(content), nil
}
