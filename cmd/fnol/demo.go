package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/fnol/internal/claims"
	"github.com/jackzampolin/fnol/internal/output"
	"github.com/jackzampolin/fnol/internal/samples"
	"github.com/jackzampolin/fnol/internal/svcctx"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Route the built-in sample claims",
	Long: `Process the embedded sample FNOL documents (low-value damage, personal
injury, potential fraud) with the active routing rules, print each routing
decision, then print the JSON result of the first sample.

Output defaults to tables; pass -o yaml or -o json for structured reports.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := samples.All()
		if err != nil {
			return err
		}

		format := output.GetFormat()
		if !cmd.Flags().Changed("output") {
			format = output.FormatTable
		}

		svc := svcctx.ServicesFrom(cmd.Context())
		logger := svc.Logger
		out := cmd.OutOrStdout()
		proc := claims.NewProcessor(svc.Config.Get().Rules(), logger)

		var first *claims.Result
		reports := make(output.Reports, 0, len(all))
		for _, s := range all {
			result := proc.Process(s.Text)
			if first == nil {
				first = result
			}
			if string(result.RecommendedRoute) != s.ExpectedRoute {
				logger.Warn("sample routed unexpectedly",
					"sample", s.Name, "route", result.RecommendedRoute, "expected", s.ExpectedRoute)
			}
			reports = append(reports, output.Report{Document: s.Label, Result: result})
		}

		if err := output.WriteTo(out, format, reports); err != nil {
			return err
		}
		if first == nil {
			return nil
		}

		fmt.Fprintf(out, "\nJSON output (%s):\n", all[0].Label)
		return output.WriteTo(out, output.FormatJSON, first)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
