package schema

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// Names of the embedded schemas.
const (
	NameResult = "result"
	NameConfig = "config"
)

// Schema is an embedded JSON Schema document.
type Schema struct {
	Name   string // Lookup name (e.g., "result")
	Source string // JSON Schema text
	Order  int    // Listing order (lower = first)
}

var registry = []Schema{
	{Name: NameResult, Order: 1},
	{Name: NameConfig, Order: 2},
}

// All returns all schemas in listing order.
func All() ([]Schema, error) {
	schemas := make([]Schema, len(registry))
	copy(schemas, registry)

	for i := range schemas {
		content, err := schemaFS.ReadFile(filename(schemas[i].Name))
		if err != nil {
			return nil, fmt.Errorf("failed to read schema %s: %w", schemas[i].Name, err)
		}
		schemas[i].Source = string(content)
	}

	sort.Slice(schemas, func(i, j int) bool {
		return schemas[i].Order < schemas[j].Order
	})

	return schemas, nil
}

// Get returns a single schema by name.
func Get(name string) (*Schema, error) {
	for _, s := range registry {
		if s.Name == name {
			content, err := schemaFS.ReadFile(filename(s.Name))
			if err != nil {
				return nil, fmt.Errorf("failed to read schema %s: %w", s.Name, err)
			}
			return &Schema{
				Name:   s.Name,
				Source: string(content),
				Order:  s.Order,
			}, nil
		}
	}
	return nil, fmt.Errorf("schema not found: %s", name)
}

// Result returns the JSON Schema of a processing result.
func Result() string {
	s, err := Get(NameResult)
	if err != nil {
		// Embedded at build time.
		panic(err)
	}
	return s.Source
}

func filename(name string) string {
	return fmt.Sprintf("schemas/%s.schema.json", strings.ToLower(name))
}
