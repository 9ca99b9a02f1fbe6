// Package ingest loads FNOL text documents and runs them through a claims
// processor. Each document is an independent invocation: nothing is shared
// or combined across documents.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/jackzampolin/fnol/internal/claims"
	"github.com/jackzampolin/fnol/internal/schema"
)

// Request contains the parameters for processing documents.
type Request struct {
	Paths    []string     // Document paths, "-" for stdin
	Workers  int          // Max documents in flight (default 1)
	MaxBytes int64        // Per-document size limit (default DefaultMaxBytes)
	Validate bool         // Check each result against the result schema
	Logger   *slog.Logger // Optional logger for progress updates
}

// Outcome is the result of processing one document.
type Outcome struct {
	Path   string
	Name   string
	Result *claims.Result
	Err    error
}

// Ingest processes every path and returns outcomes in input order.
// Per-document failures are reported in Outcome.Err; the returned error is
// non-nil only for an invalid request or a cancelled context.
func Ingest(ctx context.Context, proc *claims.Processor, req Request) ([]Outcome, error) {
	log := req.Logger
	if log == nil {
		log = slog.Default()
	}

	if len(req.Paths) == 0 {
		return nil, fmt.Errorf("no document paths provided")
	}
	stdin := 0
	for _, p := range req.Paths {
		if p == StdinPath {
			stdin++
		}
	}
	if stdin > 1 {
		return nil, fmt.Errorf("stdin can only be read once")
	}

	workers := req.Workers
	if workers < 1 {
		workers = 1
	}

	log.Debug("starting ingest", "documents", len(req.Paths), "workers", workers)

	outcomes := make([]Outcome, len(req.Paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range req.Paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = processOne(proc, path, req.MaxBytes, req.Validate, log)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info("ingest complete", "documents", len(outcomes), "failed", Failed(outcomes))

	return outcomes, nil
}

// processOne loads and processes a single document.
func processOne(proc *claims.Processor, path string, maxBytes int64, validate bool, log *slog.Logger) Outcome {
	out := Outcome{Path: path, Name: documentName(path)}

	doc, err := Read(path, maxBytes)
	if err != nil {
		log.Warn("failed to load document", "path", path, "error", err)
		out.Err = err
		return out
	}
	out.Name = doc.Name

	result := proc.Process(doc.Text)
	if validate {
		if err := schema.ValidateResult(result); err != nil {
			out.Err = fmt.Errorf("result for %s failed validation: %w", doc.Name, err)
			return out
		}
	}
	out.Result = result

	log.Debug("document processed", "document", doc.Name, "route", result.RecommendedRoute)
	return out
}

// documentName is the display name of path, matching Document.Name.
func documentName(path string) string {
	if path == StdinPath {
		return stdinName
	}
	return filepath.Base(path)
}

// Failed returns the number of outcomes that carry an error.
func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}

// IsInputError reports whether err describes a problem with the document
// itself rather than the environment.
func IsInputError(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrEmptyDocument) ||
		errors.Is(err, ErrDocumentTooLarge) ||
		errors.Is(err, ErrInvalidEncoding)
}
