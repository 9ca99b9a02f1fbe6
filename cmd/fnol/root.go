package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jackzampolin/fnol/internal/config"
	"github.com/jackzampolin/fnol/internal/home"
	"github.com/jackzampolin/fnol/internal/logging"
	"github.com/jackzampolin/fnol/internal/output"
	"github.com/jackzampolin/fnol/internal/svcctx"
	"github.com/jackzampolin/fnol/version"
)

// skipConfig marks commands that run without loading configuration.
const skipConfig = "skip-config"

var (
	cfgFile      string
	homeDir      string
	outputFormat string
	logLevel     string
	logFormat    string
)

var rootCmd = &cobra.Command{
	Use:   "fnol",
	Short: "Extract and route First Notice of Loss claim documents",
	Long: `fnol reads First Notice of Loss (FNOL) claim documents, extracts the
labeled claim fields, and recommends a processing queue.

Routing rules, in order:
  - Any mandatory field missing   -> Manual Review
  - Fraud keywords in description -> Investigation Queue
  - Injury claim type             -> Specialist Queue
  - Damage below the threshold    -> Fast-Track
  - Otherwise                     -> Standard Processing`,
	Version:      version.GitRelease,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.ParseFormat(outputFormat)
		if err != nil {
			return err
		}
		output.SetFormat(format)

		if cmd.Annotations[skipConfig] == "true" {
			return nil
		}
		return setup(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.fnol/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "fnol home directory (default: ~/.fnol)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml, json or table",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "", "log level: debug, info, warn or error (overrides log.level)",
	)
	rootCmd.PersistentFlags().StringVar(
		&logFormat, "log-format", "", "log format: text or json (overrides log.format)",
	)

	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration, initializes logging, and attaches both to the
// command context.
func setup(cmd *cobra.Command) error {
	h, err := homeDirectory()
	if err != nil {
		return err
	}

	path := cfgFile
	if path == "" && homeDir != "" && h.ConfigExists() {
		path = h.ConfigPath()
	}

	mgr, err := config.NewManager(path)
	if err != nil {
		return err
	}
	cfg := mgr.Get()
	levelName := cfg.Log.Level
	if cmd.Flags().Changed("log-level") {
		levelName = logLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}
	format := cfg.Log.Format
	if cmd.Flags().Changed("log-format") {
		if logFormat != "text" && logFormat != "json" {
			return fmt.Errorf("unknown log format: %s (want text or json)", logFormat)
		}
		format = logFormat
	}

	runID := uuid.NewString()
	logger := logging.Init(level, format, os.Stderr).With("run_id", runID)
	if f := mgr.ConfigFile(); f != "" {
		logger.Debug("loaded config", "file", f)
	}

	cmd.SetContext(svcctx.WithServices(cmd.Context(), &svcctx.Services{
		Config: mgr,
		Logger: logger,
		Home:   h,
		RunID:  runID,
	}))
	return nil
}

// homeDirectory resolves the --home flag.
func homeDirectory() (*home.Dir, error) {
	return home.New(homeDir)
}

// render writes data to the command's stdout in the selected output format.
func render(cmd *cobra.Command, data any) error {
	return output.WriteTo(cmd.OutOrStdout(), output.GetFormat(), data)
}
