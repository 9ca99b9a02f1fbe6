package claims

import (
	"log/slog"
)

// Processor runs extraction and routing over single documents.
// It is safe for concurrent use.
type Processor struct {
	router *Router
	logger *slog.Logger
}

// NewProcessor creates a Processor with the given routing rules.
// If logger is nil, slog.Default() is used.
func NewProcessor(rules Rules, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		router: NewRouter(rules),
		logger: logger,
	}
}

// Process extracts fields from text, lists the missing mandatory fields and
// routes the claim.
func (p *Processor) Process(text string) *Result {
	fields := Extract(text)
	missing := MissingFields(fields)
	decision := p.router.Route(fields, missing)

	p.logger.Debug("claim routed",
		"fields", len(fields),
		"missing", len(missing),
		"route", decision.Queue,
	)

	return &Result{
		ExtractedFields:  fields,
		MissingFields:    missing,
		RecommendedRoute: decision.Queue,
		Reasoning:        decision.Reason,
	}
}
