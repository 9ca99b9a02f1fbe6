package config

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrNoDefault is returned when no default value exists for a config key.
var ErrNoDefault = errors.New("no default exists")

// ErrInvalidKey is returned when a config key contains invalid characters.
var ErrInvalidKey = errors.New("invalid config key")

// Entry describes a single configuration key.
type Entry struct {
	Key         string `json:"key" yaml:"key"`
	Value       any    `json:"value" yaml:"value"`
	Description string `json:"description" yaml:"description"`
}

// DefaultEntries returns the default configuration entries.
// These seed viper defaults and document every supported key.
func DefaultEntries() []Entry {
	cfg := DefaultConfig()
	return []Entry{
		// ===================
		// Routing
		// ===================
		{
			Key:         "routing.fast_track_threshold",
			Value:       cfg.Routing.FastTrackThreshold,
			Description: "Claims with estimated damage strictly below this amount are fast-tracked",
		},
		{
			Key:         "routing.fraud_keywords",
			Value:       cfg.Routing.FraudKeywords,
			Description: "Description substrings that send a claim to the investigation queue",
		},
		{
			Key:         "routing.injury_claim_types",
			Value:       cfg.Routing.InjuryClaimTypes,
			Description: "Claim type substrings that send a claim to the specialist queue",
		},

		// ===================
		// Ingest
		// ===================
		{
			Key:         "ingest.max_bytes",
			Value:       cfg.Ingest.MaxBytes,
			Description: "Largest document accepted, in bytes",
		},
		{
			Key:         "ingest.workers",
			Value:       cfg.Ingest.Workers,
			Description: "Number of documents processed concurrently",
		},
		{
			Key:         "ingest.validate",
			Value:       cfg.Ingest.Validate,
			Description: "Validate every result against the embedded result schema",
		},

		// ===================
		// Logging
		// ===================
		{
			Key:         "log.level",
			Value:       cfg.Log.Level,
			Description: "Log level: debug, info, warn or error",
		},
		{
			Key:         "log.format",
			Value:       cfg.Log.Format,
			Description: "Log format: text or json",
		},
	}
}

// GetDefault returns the default entry for a config key.
// Returns ErrNoDefault if no default exists for the key.
func GetDefault(key string) (*Entry, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	for _, entry := range DefaultEntries() {
		if entry.Key == key {
			return &entry, nil
		}
	}
	return nil, fmt.Errorf("%w for key %q", ErrNoDefault, key)
}

// ValidateKey checks if a config key contains only allowed characters.
// Valid keys contain: letters, digits, dots, underscores, and hyphens.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: key cannot be empty", ErrInvalidKey)
	}
	for i, r := range key {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.' && r != '_' && r != '-' {
			return fmt.Errorf("%w: invalid character %q at position %d", ErrInvalidKey, r, i)
		}
	}
	// Don't allow keys starting or ending with dots
	if key[0] == '.' || key[len(key)-1] == '.' {
		return fmt.Errorf("%w: key cannot start or end with a dot", ErrInvalidKey)
	}
	return nil
}
