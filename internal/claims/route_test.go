package claims

import (
	"math"
	"testing"
)

// completeFields returns a claim with every mandatory field present and no
// routing signals, with overrides applied. A nil override deletes the key.
func completeFields(overrides FieldMap) FieldMap {
	fields := FieldMap{
		FieldPolicyNumber:        "AUTO-1",
		FieldPolicyholderName:    "Pat Doe",
		FieldIncidentDate:        "01/02/2026",
		FieldIncidentLocation:    "Main St",
		FieldIncidentDescription: "Scraped bumper",
		FieldEstimatedDamage:     30000.0,
		FieldClaimType:           "Property Damage",
	}
	for k, v := range overrides {
		if v == nil {
			delete(fields, k)
			continue
		}
		fields[k] = v
	}
	return fields
}

func TestRouter_Route(t *testing.T) {
	router := NewRouter(DefaultRules())

	tests := []struct {
		name       string
		fields     FieldMap
		wantQueue  Queue
		wantReason string
	}{
		{
			name:       "missing fields force manual review",
			fields:     completeFields(FieldMap{FieldPolicyNumber: nil, FieldEstimatedDamage: nil}),
			wantQueue:  QueueManualReview,
			wantReason: "Missing mandatory fields: policy_number, estimated_damage",
		},
		{
			name: "missing fields win over fraud",
			fields: completeFields(FieldMap{
				FieldClaimType:           nil,
				FieldIncidentDescription: "staged accident",
			}),
			wantQueue:  QueueManualReview,
			wantReason: "Missing mandatory fields: claim_type",
		},
		{
			name: "fraud wins over injury and low damage",
			fields: completeFields(FieldMap{
				FieldIncidentDescription: "Suspected fraud by claimant",
				FieldClaimType:           "Personal Injury",
				FieldEstimatedDamage:     100.0,
			}),
			wantQueue:  QueueInvestigation,
			wantReason: "Fraud indicators detected",
		},
		{
			name:       "fraud keyword is case-insensitive",
			fields:     completeFields(FieldMap{FieldIncidentDescription: "Damage pattern suggests STAGED incident"}),
			wantQueue:  QueueInvestigation,
			wantReason: "Fraud indicators detected",
		},
		{
			name: "injury wins over fast-track",
			fields: completeFields(FieldMap{
				FieldClaimType:       "Personal Injury",
				FieldEstimatedDamage: 1000.0,
			}),
			wantQueue:  QueueSpecialist,
			wantReason: "Personal injury claim",
		},
		{
			name:       "injury matched as substring",
			fields:     completeFields(FieldMap{FieldClaimType: "Bodily Injury"}),
			wantQueue:  QueueSpecialist,
			wantReason: "Personal injury claim",
		},
		{
			name:       "below threshold fast-tracks",
			fields:     completeFields(FieldMap{FieldEstimatedDamage: 24999.99}),
			wantQueue:  QueueFastTrack,
			wantReason: "Damage ($24,999.99) below $25,000 threshold",
		},
		{
			name:       "threshold itself is not fast-tracked",
			fields:     completeFields(FieldMap{FieldEstimatedDamage: 25000.0}),
			wantQueue:  QueueStandard,
			wantReason: "Normal processing",
		},
		{
			name:       "high damage is standard",
			fields:     completeFields(nil),
			wantQueue:  QueueStandard,
			wantReason: "Normal processing",
		},
		{
			name:       "no description is not fraud",
			fields:     completeFields(FieldMap{FieldIncidentDescription: nil, FieldEstimatedDamage: 10.0}),
			wantQueue:  QueueFastTrack,
			wantReason: "Damage ($10.00) below $25,000 threshold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := router.Route(tt.fields, MissingFields(tt.fields))
			if got.Queue != tt.wantQueue {
				t.Errorf("queue = %q, want %q", got.Queue, tt.wantQueue)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", got.Reason, tt.wantReason)
			}
		})
	}
}

func TestRouter_UnknownDamageNeverFastTracks(t *testing.T) {
	router := NewRouter(DefaultRules())
	fields := completeFields(FieldMap{FieldEstimatedDamage: nil})

	// Route directly with an empty missing list to reach the damage rule.
	got := router.Route(fields, []Field{})
	if got.Queue != QueueStandard {
		t.Errorf("queue = %q, want %q", got.Queue, QueueStandard)
	}
}

func TestRouter_CustomRules(t *testing.T) {
	router := NewRouter(Rules{
		FastTrackThreshold: 5000.5,
		FraudKeywords:      []string{"  Suspicious "},
		InjuryClaimTypes:   []string{"medical"},
	})

	tests := []struct {
		name      string
		fields    FieldMap
		wantQueue Queue
	}{
		{"configured fraud keyword", completeFields(FieldMap{FieldIncidentDescription: "suspicious timing"}), QueueInvestigation},
		{"default fraud keyword no longer applies", completeFields(FieldMap{FieldIncidentDescription: "staged"}), QueueStandard},
		{"configured injury type", completeFields(FieldMap{FieldClaimType: "Medical Payments"}), QueueSpecialist},
		{"custom threshold", completeFields(FieldMap{FieldEstimatedDamage: 5000.0}), QueueFastTrack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := router.Route(tt.fields, MissingFields(tt.fields))
			if got.Queue != tt.wantQueue {
				t.Errorf("queue = %q, want %q", got.Queue, tt.wantQueue)
			}
		})
	}

	got := router.Route(completeFields(FieldMap{FieldEstimatedDamage: 10.0}), nil)
	if want := "Damage ($10.00) below $5,000.50 threshold"; got.Reason != want {
		t.Errorf("reason = %q, want %q", got.Reason, want)
	}
}

func TestRouter_LargeAmountsInReason(t *testing.T) {
	router := NewRouter(Rules{FastTrackThreshold: 1e20})

	got := router.Route(completeFields(FieldMap{FieldEstimatedDamage: 1e19}), nil)
	if got.Queue != QueueFastTrack {
		t.Fatalf("queue = %q, want %q", got.Queue, QueueFastTrack)
	}
	want := "Damage ($10,000,000,000,000,000,000.00) below $100,000,000,000,000,000,000 threshold"
	if got.Reason != want {
		t.Errorf("reason = %q, want %q", got.Reason, want)
	}
}

func TestRules_Validate(t *testing.T) {
	tests := []struct {
		name    string
		rules   Rules
		wantErr bool
	}{
		{"defaults", DefaultRules(), false},
		{"zero threshold", Rules{FastTrackThreshold: 0}, true},
		{"negative threshold", Rules{FastTrackThreshold: -1}, true},
		{"infinite threshold", Rules{FastTrackThreshold: math.Inf(1)}, true},
		{"blank fraud keyword", Rules{FastTrackThreshold: 1, FraudKeywords: []string{" "}}, true},
		{"blank injury type", Rules{FastTrackThreshold: 1, InjuryClaimTypes: []string{""}}, true},
		{"no keywords", Rules{FastTrackThreshold: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rules.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{1200, "$1,200.00"},
		{18500, "$18,500.00"},
		{1234567.891, "$1,234,567.89"},
		{999.5, "$999.50"},
		{-42.5, "-$42.50"},
		{1e19, "$10,000,000,000,000,000,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatCurrency(tt.in); got != tt.want {
				t.Errorf("FormatCurrency(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
