package output

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jackzampolin/fnol/internal/claims"
)

// Report is the outcome for one named document.
type Report struct {
	Document string         `json:"document" yaml:"document"`
	Result   *claims.Result `json:"result,omitempty" yaml:"result,omitempty"`
	Error    string         `json:"error,omitempty" yaml:"error,omitempty"`
}

// Reports is a list of document reports.
type Reports []Report

// ResultTable renders a single result.
type ResultTable struct {
	Title  string
	Result *claims.Result
}

// Label converts a field key to a display label, e.g. "policy_number" to
// "Policy Number".
func Label(f claims.Field) string {
	// A Caser is stateful, so one is made per call.
	return cases.Title(language.English).String(strings.ReplaceAll(string(f), "_", " "))
}

// FieldValue formats an extracted value for display.
func FieldValue(f claims.Field, fields claims.FieldMap) string {
	if v, ok := fields.Amount(f); ok {
		return claims.FormatCurrency(v)
	}
	if s, ok := fields.String(f); ok {
		return s
	}
	return "-"
}

// Table implements Tabler.
func (r ResultTable) Table() string {
	return renderResult(r.Title, r.Result, "")
}

// Table implements Tabler.
func (r Report) Table() string {
	return renderResult(r.Document, r.Result, r.Error)
}

// Table implements Tabler.
func (rs Reports) Table() string {
	var b strings.Builder
	for i, r := range rs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.Table())
	}
	return b.String()
}

func renderResult(title string, result *claims.Result, errMsg string) string {
	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, WidthMax: 72},
	})
	if title != "" {
		w.SetTitle("%s", title)
	}

	if result == nil {
		w.AppendRow(table.Row{"Error", errMsg})
		return w.Render() + "\n"
	}

	for _, f := range claims.ExtractableFields() {
		w.AppendRow(table.Row{Label(f), FieldValue(f, result.ExtractedFields)})
	}
	w.AppendSeparator()

	missing := "none"
	if len(result.MissingFields) > 0 {
		names := make([]string, len(result.MissingFields))
		for i, f := range result.MissingFields {
			names[i] = Label(f)
		}
		missing = strings.Join(names, ", ")
	}
	w.AppendRow(table.Row{"Missing", missing})
	w.AppendRow(table.Row{"Route", string(result.RecommendedRoute)})
	w.AppendRow(table.Row{"Reasoning", result.Reasoning})

	return w.Render() + "\n"
}
