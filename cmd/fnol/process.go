package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/fnol/internal/claims"
	"github.com/jackzampolin/fnol/internal/ingest"
	"github.com/jackzampolin/fnol/internal/output"
	"github.com/jackzampolin/fnol/internal/svcctx"
)

var (
	processWorkers  int
	processValidate bool
)

var processCmd = &cobra.Command{
	Use:   "process <file|->...",
	Short: "Extract fields from FNOL documents and recommend a route",
	Long: `Process one or more FNOL documents. Each document is handled on its own:
fields are extracted, mandatory fields checked, and a route recommended.

Plain text (.txt, .text or no extension) is supported. Use "-" to read
a document from stdin.

A single document prints its result directly; several documents print a
list of reports. The command exits non-zero if any document failed.

Examples:
  fnol process claim.txt
  fnol process -o json claim.txt
  cat claim.txt | fnol process -
  fnol process -o table --workers 8 inbox/*.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := svcctx.ServicesFrom(cmd.Context())
		cfg := svc.Config.Get()

		workers := cfg.Ingest.Workers
		if cmd.Flags().Changed("workers") {
			workers = processWorkers
		}
		validate := cfg.Ingest.Validate
		if cmd.Flags().Changed("validate") {
			validate = processValidate
		}

		proc := claims.NewProcessor(cfg.Rules(), svc.Logger)
		outcomes, err := ingest.Ingest(cmd.Context(), proc, ingest.Request{
			Paths:    args,
			Workers:  workers,
			MaxBytes: cfg.Ingest.MaxBytes,
			Validate: validate,
			Logger:   svc.Logger,
		})
		if err != nil {
			return err
		}

		if len(outcomes) == 1 {
			o := outcomes[0]
			if o.Err != nil {
				return fmt.Errorf("%s: %w", o.Name, o.Err)
			}
			return render(cmd, resultView(o.Name, o.Result))
		}

		reports := make(output.Reports, len(outcomes))
		for i, o := range outcomes {
			reports[i] = report(o)
		}
		if err := render(cmd, reports); err != nil {
			return err
		}

		if failed := ingest.Failed(outcomes); failed > 0 {
			return fmt.Errorf("%d of %d documents failed", failed, len(outcomes))
		}
		return nil
	},
}

func init() {
	processCmd.Flags().IntVar(&processWorkers, "workers", 0, "documents processed concurrently (default: ingest.workers)")
	processCmd.Flags().BoolVar(&processValidate, "validate", true, "validate results against the result schema (default: ingest.validate)")

	rootCmd.AddCommand(processCmd)
}

// resultView returns the value to render for a single result. Structured
// formats get the bare result; table output gets a titled table.
func resultView(name string, r *claims.Result) any {
	if output.GetFormat() == output.FormatTable {
		return output.ResultTable{Title: name, Result: r}
	}
	return r
}

func report(o ingest.Outcome) output.Report {
	r := output.Report{Document: o.Name, Result: o.Result}
	if o.Err != nil {
		r.Error = o.Err.Error()
	}
	return r
}
