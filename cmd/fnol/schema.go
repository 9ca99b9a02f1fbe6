package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/fnol/internal/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema [name]",
	Short: "Print an embedded JSON Schema",
	Long: `Print an embedded JSON Schema. With no name, prints the schema every
processing result conforms to.

Available schemas:
  result   the four-key processing result
  config   the configuration file`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{skipConfig: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			_, err := fmt.Fprint(cmd.OutOrStdout(), schema.Result())
			return err
		}
		s, err := schema.Get(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), s.Source)
		return err
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
