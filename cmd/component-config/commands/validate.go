package commands

import (
	"errors"
	"fmt"

	"github.com/sehnryr/cargo-component/application/validation"
	"github.com/sehnryr/cargo-component/domain/entities"
	"github.com/sehnryr/cargo-component/infrastructure/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Lint the component section against its schema",
	Long: `Lint the [package.metadata.component] table against the component
section schema, reporting every violation, then resolve it.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path, err := absManifestPath()
	if err != nil {
		return err
	}

	pkg, err := manifest.NewFileReader().Read(path)
	if err != nil {
		return err
	}

	validator, err := validation.NewSectionValidator()
	if err != nil {
		return err
	}
	result, err := validator.Validate(pkg.Metadata[entities.ComponentMetadataKey])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !result.Valid {
		for _, e := range result.Errors {
			field := e.Field
			if field == "" {
				field = "/"
			}
			fmt.Fprintf(out, "%s: %s\n", field, e.Message)
		}
		return errors.New("component section is invalid")
	}

	if _, err := newResolver().Resolve(pkg); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: ok\n", path)
	return nil
}
