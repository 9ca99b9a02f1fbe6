// Package output renders command results as YAML, JSON or a terminal table.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format defines the output format for CLI commands.
type Format string

const (
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// DefaultFormat is the default output format.
var DefaultFormat Format = FormatYAML

// globalFormat is set by the root command's --output flag.
var globalFormat Format = FormatYAML

// ParseFormat validates a format name.
func ParseFormat(format string) (Format, error) {
	switch Format(format) {
	case FormatYAML, FormatJSON, FormatTable:
		return Format(format), nil
	case "":
		return DefaultFormat, nil
	default:
		return "", fmt.Errorf("unknown output format: %s (want yaml, json or table)", format)
	}
}

// SetFormat sets the global output format.
func SetFormat(format Format) {
	globalFormat = format
}

// GetFormat returns the current global output format.
func GetFormat() Format {
	return globalFormat
}

// Tabler is implemented by values with a table rendering.
type Tabler interface {
	Table() string
}

// WriteTo writes data to the given writer in the specified format. Values
// without a table rendering fall back to YAML in table mode.
func WriteTo(w io.Writer, format Format, data any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(data)
	case FormatTable:
		t, ok := data.(Tabler)
		if !ok {
			return WriteTo(w, FormatYAML, data)
		}
		_, err := io.WriteString(w, t.Table())
		return err
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
