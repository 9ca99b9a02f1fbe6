package claims

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// fieldPattern describes how one field is found in document text.
// Patterns are tried in order; the first capture that converts wins.
type fieldPattern struct {
	field    Field
	patterns []*regexp.Regexp
	convert  func(raw string) (any, bool)
}

var fieldPatterns = []fieldPattern{
	{
		field:    FieldPolicyNumber,
		patterns: compile(`policy\s*(?:number|#|no\.?)[\s:]*([A-Z0-9\-]+)`),
		convert:  asText,
	},
	{
		field:    FieldPolicyholderName,
		patterns: compile(`policyholder\s*(?:name)?[\s:]*([A-Za-z\s]+?)(?:\n|Date|Policy)`),
		convert:  asText,
	},
	{
		field:    FieldIncidentDate,
		patterns: compile(`(?:incident|accident|loss)\s*date[\s:]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
		convert:  asText,
	},
	{
		field:    FieldIncidentLocation,
		patterns: compile(`(?:incident\s*)?location[\s:]*([^\n]+)`),
		convert:  asText,
	},
	{
		// Single line only. Continuation lines are not joined.
		field:    FieldIncidentDescription,
		patterns: compile(`(?:incident\s*)?description[\s:]*([^\n]+)`),
		convert:  asText,
	},
	{
		field: FieldEstimatedDamage,
		patterns: compile(
			`estimated\s*damage[\s:]*\$?([\d,]+(?:\.\d{2})?)`,
			`damage\s*estimate[\s:]*\$?([\d,]+(?:\.\d{2})?)`,
		),
		convert: asAmount,
	},
	{
		field:    FieldClaimType,
		patterns: compile(`claim\s*type[\s:]*([^\n]+)`),
		convert:  asText,
	},
}

// compile builds case-insensitive matchers for the given expressions.
func compile(exprs ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		res[i] = regexp.MustCompile(`(?i)` + e)
	}
	return res
}

func asText(raw string) (any, bool) {
	return raw, raw != ""
}

// asAmount parses a captured money value such as "$1,200.00".
// Captures that do not parse to a finite number are rejected.
func asAmount(raw string) (any, bool) {
	cleaned := strings.NewReplacer(",", "", "$", "", " ", "").Replace(raw)
	if cleaned == "" {
		return nil, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return nil, false
	}
	return v, true
}

// Extract scans text for every known field. Each field is looked up
// independently; fields that do not match are left out of the map.
func Extract(text string) FieldMap {
	fields := make(FieldMap, len(fieldPatterns))
	for _, fp := range fieldPatterns {
		for _, re := range fp.patterns {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			v, ok := fp.convert(strings.TrimSpace(m[1]))
			if !ok {
				continue
			}
			fields[fp.field] = v
			break
		}
	}
	return fields
}

// MissingFields returns the mandatory fields absent from fields, in
// MandatoryFields order. The result is never nil.
func MissingFields(fields FieldMap) []Field {
	missing := make([]Field, 0, len(MandatoryFields))
	for _, f := range MandatoryFields {
		if !fields.Has(f) {
			missing = append(missing, f)
		}
	}
	return missing
}

// ExtractableFields returns every field Extract may produce, in lookup order.
func ExtractableFields() []Field {
	out := make([]Field, len(fieldPatterns))
	for i, fp := range fieldPatterns {
		out[i] = fp.field
	}
	return out
}
