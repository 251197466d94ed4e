package commands

import (
	"fmt"

	"github.com/sehnryr/cargo-component/application/schema"
	"github.com/sehnryr/cargo-component/domain/entities"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:       "schema [section|bindings]",
	Short:     "Print the JSON Schema of the component section",
	Long:      "Print the JSON Schema of the whole component section (default) or of its bindings table.",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"section", "bindings"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			data []byte
			err  error
		)
		if len(args) == 1 && args[0] == "bindings" {
			data, err = schema.GenerateSchema(&entities.Bindings{})
		} else {
			data, err = schema.SectionSchemaJSON()
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}
