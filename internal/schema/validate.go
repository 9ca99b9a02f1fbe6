// Package schema holds the embedded JSON Schemas that describe fnol's
// result and configuration documents, and validates values against them.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	compiledMu sync.Mutex
	compiled   = make(map[string]*jsonschema.Schema)
)

// compile returns the compiled schema for name, compiling it on first use.
func compile(name string) (*jsonschema.Schema, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()

	if s, ok := compiled[name]; ok {
		return s, nil
	}

	src, err := Get(name)
	if err != nil {
		return nil, err
	}

	url := name + ".schema.json"
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(url, strings.NewReader(src.Source)); err != nil {
		return nil, fmt.Errorf("failed to load schema %s: %w", name, err)
	}
	s, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
	}

	compiled[name] = s
	return s, nil
}

// Validate checks v against the named schema. v may be any value that
// marshals to JSON.
func Validate(name string, v any) error {
	s, err := compile(name)
	if err != nil {
		return err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s for validation: %w", name, err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to decode %s for validation: %w", name, err)
	}

	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("%s does not match schema: %w", name, err)
	}
	return nil
}

// ValidateResult checks a processing result against the result schema.
func ValidateResult(v any) error {
	return Validate(NameResult, v)
}
