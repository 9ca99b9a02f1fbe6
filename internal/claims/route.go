package claims

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultFastTrackThreshold is the damage amount below which a clean claim
// is fast-tracked.
const DefaultFastTrackThreshold = 25000

// Rules configures the routing decision chain.
type Rules struct {
	FastTrackThreshold float64
	FraudKeywords      []string
	InjuryClaimTypes   []string
}

// DefaultRules returns the standard routing configuration.
func DefaultRules() Rules {
	return Rules{
		FastTrackThreshold: DefaultFastTrackThreshold,
		FraudKeywords:      []string{"fraud", "inconsistent", "staged"},
		InjuryClaimTypes:   []string{"injury", "personal injury"},
	}
}

// Validate reports whether the rules can drive a router.
func (r Rules) Validate() error {
	if math.IsNaN(r.FastTrackThreshold) || math.IsInf(r.FastTrackThreshold, 0) || r.FastTrackThreshold <= 0 {
		return fmt.Errorf("fast-track threshold must be a positive number, got %v", r.FastTrackThreshold)
	}
	for _, k := range r.FraudKeywords {
		if strings.TrimSpace(k) == "" {
			return errors.New("fraud keywords must not be blank")
		}
	}
	for _, k := range r.InjuryClaimTypes {
		if strings.TrimSpace(k) == "" {
			return errors.New("injury claim types must not be blank")
		}
	}
	return nil
}

// rule is one step of the decision chain. match returns the reason when the
// rule applies.
type rule struct {
	queue Queue
	match func(fields FieldMap, missing []Field) (string, bool)
}

// Router applies an ordered decision chain; the first matching rule wins.
type Router struct {
	threshold float64
	fraud     []string
	injury    []string
	chain     []rule
}

// NewRouter builds a router from rules. Keywords are matched
// case-insensitively.
func NewRouter(rules Rules) *Router {
	r := &Router{
		threshold: rules.FastTrackThreshold,
		fraud:     lowerAll(rules.FraudKeywords),
		injury:    lowerAll(rules.InjuryClaimTypes),
	}
	r.chain = []rule{
		{queue: QueueManualReview, match: r.missingFields},
		{queue: QueueInvestigation, match: r.fraudIndicators},
		{queue: QueueSpecialist, match: r.injuryClaim},
		{queue: QueueFastTrack, match: r.belowThreshold},
		{queue: QueueStandard, match: func(FieldMap, []Field) (string, bool) { return "Normal processing", true }},
	}
	return r
}

// Route selects exactly one queue for a claim.
func (r *Router) Route(fields FieldMap, missing []Field) Decision {
	for _, rl := range r.chain {
		if reason, ok := rl.match(fields, missing); ok {
			return Decision{Queue: rl.queue, Reason: reason}
		}
	}
	// The last rule always matches.
	panic("claims: routing chain exhausted")
}

func (r *Router) missingFields(_ FieldMap, missing []Field) (string, bool) {
	if len(missing) == 0 {
		return "", false
	}
	names := make([]string, len(missing))
	for i, f := range missing {
		names[i] = string(f)
	}
	return "Missing mandatory fields: " + strings.Join(names, ", "), true
}

func (r *Router) fraudIndicators(fields FieldMap, _ []Field) (string, bool) {
	desc, _ := fields.String(FieldIncidentDescription)
	if containsAny(strings.ToLower(desc), r.fraud) {
		return "Fraud indicators detected", true
	}
	return "", false
}

func (r *Router) injuryClaim(fields FieldMap, _ []Field) (string, bool) {
	claimType, _ := fields.String(FieldClaimType)
	if containsAny(strings.ToLower(claimType), r.injury) {
		return "Personal injury claim", true
	}
	return "", false
}

// belowThreshold treats an unknown amount as infinite so missing data never
// fast-tracks.
func (r *Router) belowThreshold(fields FieldMap, _ []Field) (string, bool) {
	damage, ok := fields.Amount(FieldEstimatedDamage)
	if !ok {
		damage = math.Inf(1)
	}
	if damage < r.threshold {
		return fmt.Sprintf("Damage (%s) below %s threshold", FormatCurrency(damage), formatThreshold(r.threshold)), true
	}
	return "", false
}

// FormatCurrency renders an amount as dollars with two decimals and
// thousands separators, e.g. $1,200.00.
func FormatCurrency(v float64) string {
	return formatDollars(v, 2)
}

// formatThreshold drops the cents for whole-dollar thresholds ($25,000).
func formatThreshold(v float64) string {
	if v == math.Trunc(v) {
		return formatDollars(v, 0)
	}
	return FormatCurrency(v)
}

func formatDollars(v float64, decimals int) string {
	format := "%.2f"
	if decimals == 0 {
		format = "%.0f"
	}
	sign := ""
	if v < 0 {
		sign, v = "-", -v
	}
	// A Printer is not shared across goroutines.
	return sign + "$" + message.NewPrinter(language.English).Sprintf(format, v)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
