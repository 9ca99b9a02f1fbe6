// Package claims extracts labeled fields from First Notice of Loss (FNOL)
// documents and routes each claim to a processing queue.
//
// The package is pure: a Processor holds only immutable routing rules, so a
// single instance may be shared across goroutines and repeated calls on the
// same text always yield the same Result.
package claims

// Field is the canonical key of an extracted data point.
type Field string

const (
	FieldPolicyNumber        Field = "policy_number"
	FieldPolicyholderName    Field = "policyholder_name"
	FieldIncidentDate        Field = "incident_date"
	FieldIncidentLocation    Field = "incident_location"
	FieldIncidentDescription Field = "incident_description"
	FieldEstimatedDamage     Field = "estimated_damage"
	FieldClaimType           Field = "claim_type"
)

// MandatoryFields lists the fields every claim must supply for automatic
// processing, in reporting order.
var MandatoryFields = []Field{
	FieldPolicyNumber,
	FieldPolicyholderName,
	FieldIncidentDate,
	FieldIncidentLocation,
	FieldClaimType,
	FieldEstimatedDamage,
}

// FieldMap maps an extracted field to its value. Values are strings except
// FieldEstimatedDamage, which is a float64. A missing key means the field was
// not found; keys are never stored with empty values.
type FieldMap map[Field]any

// String returns a text field, or "" and false when absent.
func (m FieldMap) String(f Field) (string, bool) {
	s, ok := m[f].(string)
	return s, ok
}

// Amount returns a numeric field, or 0 and false when absent.
func (m FieldMap) Amount(f Field) (float64, bool) {
	v, ok := m[f].(float64)
	return v, ok
}

// Has reports whether f was extracted.
func (m FieldMap) Has(f Field) bool {
	_, ok := m[f]
	return ok
}

// Queue is a claim routing destination.
type Queue string

const (
	QueueManualReview  Queue = "Manual Review"
	QueueInvestigation Queue = "Investigation Queue"
	QueueSpecialist    Queue = "Specialist Queue"
	QueueFastTrack     Queue = "Fast-Track"
	QueueStandard      Queue = "Standard Processing"
)

// Queues returns every routing destination in decision-chain order.
func Queues() []Queue {
	return []Queue{
		QueueManualReview,
		QueueInvestigation,
		QueueSpecialist,
		QueueFastTrack,
		QueueStandard,
	}
}

// Decision is the outcome of routing a single claim.
type Decision struct {
	Queue  Queue
	Reason string
}

// Result is the processing output for one document.
type Result struct {
	ExtractedFields  FieldMap `json:"extractedFields" yaml:"extractedFields"`
	MissingFields    []Field  `json:"missingFields" yaml:"missingFields"`
	RecommendedRoute Queue    `json:"recommendedRoute" yaml:"recommendedRoute"`
	Reasoning        string   `json:"reasoning" yaml:"reasoning"`
}
