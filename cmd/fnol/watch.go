package main

import (
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/fnol/internal/claims"
	"github.com/jackzampolin/fnol/internal/config"
	"github.com/jackzampolin/fnol/internal/ingest"
	"github.com/jackzampolin/fnol/internal/svcctx"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Process FNOL documents as they arrive in a directory",
	Long: `Watch an inbox directory and process each supported document written
to it. Every document is handled on its own and its report is printed as
soon as it is routed.

When a config file is in use, changes to it are picked up without a
restart; invalid edits are logged and ignored.

The default directory is the inbox under the fnol home (~/.fnol/inbox).

Examples:
  fnol watch
  fnol watch ./claims -o json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := svcctx.ServicesFrom(cmd.Context())
		cfgManager, logger := svc.Config, svc.Logger

		var dir string
		if len(args) == 1 {
			dir = args[0]
		} else {
			if err := svc.Home.EnsureExists(); err != nil {
				return err
			}
			dir = svc.Home.InboxPath()
		}

		cfg := cfgManager.Get()
		var current atomic.Pointer[claims.Processor]
		current.Store(claims.NewProcessor(cfg.Rules(), logger))

		cfgManager.OnChange(func(c *config.Config) {
			current.Store(claims.NewProcessor(c.Rules(), logger))
			logger.Info("routing rules reloaded",
				"fast_track_threshold", c.Routing.FastTrackThreshold,
				"fraud_keywords", c.Routing.FraudKeywords,
				"injury_claim_types", c.Routing.InjuryClaimTypes)
		})
		if cfgManager.ConfigFile() != "" {
			cfgManager.WatchConfig()
		}

		w, err := ingest.NewWatcher(ingest.WatchConfig{
			Dir:       dir,
			Processor: current.Load,
			Handle: func(o ingest.Outcome) {
				if err := render(cmd, report(o)); err != nil {
					logger.Error("failed to write report", "document", o.Name, "error", err)
				}
			},
			MaxBytes: cfg.Ingest.MaxBytes,
			Validate: cfg.Ingest.Validate,
			Logger:   logger,
		})
		if err != nil {
			return err
		}

		return w.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
