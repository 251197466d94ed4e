package commands

import (
	"fmt"
	"io"

	"github.com/sehnryr/cargo-component/application/metadata"
	"github.com/spf13/cobra"
)

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Show the target of the component",
	Long: `Show the target package, the local target path and the target world of
the component. The default wit directory is only reported when it exists.`,
	Args: cobra.NoArgs,
	RunE: runTarget,
}

func runTarget(cmd *cobra.Command, args []string) error {
	resolved, err := resolve(cmd, nil)
	if err != nil {
		return err
	}
	printTarget(cmd.OutOrStdout(), resolved[0])
	return nil
}

// printTarget writes the target of md, one `key: value` line per field.
func printTarget(out io.Writer, md *metadata.ComponentMetadata) {
	if name, ok := md.TargetPackage(); ok {
		fmt.Fprintf(out, "package: %s\n", name)
	}
	if path, ok := md.TargetPath(); ok {
		fmt.Fprintf(out, "path: %s\n", path)
	} else if _, isPackage := md.TargetPackage(); !isPackage {
		fmt.Fprintln(out, "path: (none)")
	}
	if world, ok := md.TargetWorld(); ok {
		fmt.Fprintf(out, "world: %s\n", world)
	}
	for _, name := range sortedNames(md.Section.Target.Dependencies()) {
		fmt.Fprintf(out, "dependency: %s\n", name)
	}
}
