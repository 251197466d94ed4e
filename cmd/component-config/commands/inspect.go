package commands

import (
	"errors"

	"github.com/sehnryr/cargo-component/application/metadata"
	"github.com/sehnryr/cargo-component/infrastructure/wazero"
	"github.com/spf13/cobra"
)

var (
	inspectFormat        string
	inspectVerifyAdapter bool
	inspectWorkspace     bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [manifest...]",
	Short: "Print the resolved component metadata",
	Long: `Print the resolved component metadata of one or more manifests.

Without arguments the manifest named by --manifest-path is inspected. With
several manifests, e.g. the members of a workspace, they are resolved
concurrently and the first failure aborts the command. With --workspace the
members of the workspace rooted at --manifest-path are inspected.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if inspectWorkspace && len(args) > 0 {
			return errors.New("--workspace does not take manifest arguments")
		}
		return nil
	},
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", "yaml", "Output format (yaml|json)")
	inspectCmd.Flags().BoolVar(&inspectWorkspace, "workspace", false, "Inspect every member of the workspace rooted at --manifest-path")
	inspectCmd.Flags().BoolVar(&inspectVerifyAdapter, "verify-adapter", false, "Compile the configured adapter and list its imports and exports")
}

func runInspect(cmd *cobra.Command, args []string) error {
	var (
		resolved []*metadata.ComponentMetadata
		err      error
	)
	if inspectWorkspace {
		resolved, err = resolveWorkspace(cmd)
	} else {
		resolved, err = resolve(cmd, args)
	}
	if err != nil {
		return err
	}

	verifier := wazero.NewAdapterVerifier()
	views := make([]metadataView, 0, len(resolved))
	for _, md := range resolved {
		view := newMetadataView(md)
		if inspectVerifyAdapter && md.Section.Adapter != "" {
			info, err := verifier.Verify(cmd.Context(), md.Section.Adapter)
			if err != nil {
				return err
			}
			view.AdapterInfo = info
		}
		views = append(views, view)
	}

	if len(views) == 1 && !inspectWorkspace {
		return writeOutput(cmd.OutOrStdout(), inspectFormat, views[0])
	}
	return writeOutput(cmd.OutOrStdout(), inspectFormat, views)
}
