package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jackzampolin/fnol/internal/claims"
	"github.com/jackzampolin/fnol/internal/samples"
)

func sampleResult(t *testing.T) *claims.Result {
	t.Helper()
	s, err := samples.Get("low_value_damage")
	if err != nil {
		t.Fatalf("samples.Get() error = %v", err)
	}
	return claims.NewProcessor(claims.DefaultRules(), nil).Process(s.Text)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"yaml", FormatYAML, false},
		{"json", FormatJSON, false},
		{"table", FormatTable, false},
		{"", DefaultFormat, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteTo_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTo(&buf, FormatJSON, sampleResult(t)); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if decoded["recommendedRoute"] != "Fast-Track" {
		t.Errorf("recommendedRoute = %v, want Fast-Track", decoded["recommendedRoute"])
	}
}

func TestWriteTo_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTo(&buf, FormatYAML, sampleResult(t)); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"extractedFields:", "estimated_damage: 1200", "missingFields: []", "recommendedRoute: Fast-Track"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTo_Table(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTo(&buf, FormatTable, ResultTable{Title: "low.txt", Result: sampleResult(t)}); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"low.txt", "Policy Number", "AUTO-2024-78901", "$1,200.00", "Fast-Track", "none"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTo_TableFallsBackToYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTo(&buf, FormatTable, map[string]string{"key": "value"}); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if strings.TrimSpace(buf.String()) != "key: value" {
		t.Errorf("unexpected fallback output: %q", buf.String())
	}
}

func TestWriteTo_UnknownFormat(t *testing.T) {
	if err := WriteTo(&bytes.Buffer{}, Format("xml"), 1); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestReports_Table(t *testing.T) {
	reports := Reports{
		{Document: "low.txt", Result: sampleResult(t)},
		{Document: "scan.pdf", Error: "unsupported document format: .pdf"},
	}

	out := reports.Table()
	for _, want := range []string{"low.txt", "scan.pdf", "unsupported document format"} {
		if !strings.Contains(out, want) {
			t.Errorf("reports table missing %q:\n%s", want, out)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		field claims.Field
		want  string
	}{
		{claims.FieldPolicyNumber, "Policy Number"},
		{claims.FieldPolicyholderName, "Policyholder Name"},
		{claims.FieldEstimatedDamage, "Estimated Damage"},
	}

	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			if got := Label(tt.field); got != tt.want {
				t.Errorf("Label(%q) = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}
