package config

import (
	"fmt"

	"github.com/jackzampolin/fnol/internal/claims"
	"github.com/jackzampolin/fnol/internal/schema"
)

// Config holds fnol configuration.
// Stored at: {home}/config.yaml
type Config struct {
	Routing RoutingCfg `mapstructure:"routing" yaml:"routing" json:"routing"`
	Ingest  IngestCfg  `mapstructure:"ingest" yaml:"ingest" json:"ingest"`
	Log     LogCfg     `mapstructure:"log" yaml:"log" json:"log"`
}

// RoutingCfg configures the claim routing decision chain.
type RoutingCfg struct {
	FastTrackThreshold float64  `mapstructure:"fast_track_threshold" yaml:"fast_track_threshold" json:"fast_track_threshold"`
	FraudKeywords      []string `mapstructure:"fraud_keywords" yaml:"fraud_keywords" json:"fraud_keywords"`             // Substrings of the incident description
	InjuryClaimTypes   []string `mapstructure:"injury_claim_types" yaml:"injury_claim_types" json:"injury_claim_types"` // Substrings of the claim type
}

// IngestCfg configures document loading.
type IngestCfg struct {
	MaxBytes int64 `mapstructure:"max_bytes" yaml:"max_bytes" json:"max_bytes"` // Largest accepted document
	Workers  int   `mapstructure:"workers" yaml:"workers" json:"workers"`       // Documents processed concurrently
	Validate bool  `mapstructure:"validate" yaml:"validate" json:"validate"`    // Check each result against the result schema
}

// LogCfg configures the process logger.
type LogCfg struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`    // debug, info, warn, error
	Format string `mapstructure:"format" yaml:"format" json:"format"` // text or json
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	rules := claims.DefaultRules()
	return &Config{
		Routing: RoutingCfg{
			FastTrackThreshold: rules.FastTrackThreshold,
			FraudKeywords:      rules.FraudKeywords,
			InjuryClaimTypes:   rules.InjuryClaimTypes,
		},
		Ingest: IngestCfg{
			MaxBytes: 1 << 20,
			Workers:  4,
			Validate: true,
		},
		Log: LogCfg{
			Level:  "info",
			Format: "text",
		},
	}
}

// Rules converts the routing section into claims routing rules.
func (c *Config) Rules() claims.Rules {
	return claims.Rules{
		FastTrackThreshold: c.Routing.FastTrackThreshold,
		FraudKeywords:      c.Routing.FraudKeywords,
		InjuryClaimTypes:   c.Routing.InjuryClaimTypes,
	}
}

// Validate checks the configuration against the config schema and the
// routing rule constraints.
func (c *Config) Validate() error {
	if err := schema.Validate(schema.NameConfig, c); err != nil {
		return err
	}
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("invalid routing config: %w", err)
	}
	return nil
}
