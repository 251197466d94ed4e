// Package commands provides the CLI commands for component-config.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sehnryr/cargo-component/application/metadata"
	domainerrors "github.com/sehnryr/cargo-component/domain/errors"
	"github.com/sehnryr/cargo-component/infrastructure/manifest"
	"github.com/sehnryr/cargo-component/log"
	"github.com/spf13/cobra"
)

var (
	// Version information set at build time
	Version   = "0.1.0"
	BuildTime = "dev"
)

// Global flags
var (
	logLevel     string
	logFormat    string
	manifestPath string
)

var rootCmd = &cobra.Command{
	Use:   "component-config",
	Short: "Inspect the component configuration of a Cargo package",
	Long: `component-config reads the [package.metadata.component] table of a
Cargo manifest, validates it, and prints the resolved configuration with
every path anchored at the manifest directory.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		format, err := log.ParseFormat(logFormat)
		if err != nil {
			return err
		}
		slog.SetDefault(log.New(cmd.ErrOrStderr(), log.WithLevel(level), log.WithFormat(format)))
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "WARN", "Log level (DEBUG|INFO|WARN|ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text|json)")
	rootCmd.PersistentFlags().StringVar(&manifestPath, "manifest-path", "Cargo.toml", "Path to the package manifest")

	rootCmd.SetVersionTemplate(fmt.Sprintf("component-config %s (%s)\n", Version, BuildTime))

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(targetCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(watchCmd)
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		detail := domainerrors.ToErrorDetail(err)
		slog.Debug("command failed", "type", detail.Type, "code", detail.Code, "not_found", detail.IsNotFound)
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	return err
}

// absManifestPath returns the --manifest-path flag as an absolute path so
// resolved paths are absolute too.
func absManifestPath() (string, error) {
	return filepath.Abs(manifestPath)
}

// newResolver returns a resolver reading manifests from the OS filesystem.
func newResolver() *metadata.Resolver {
	return metadata.NewResolver(
		metadata.WithLogger(slog.Default()),
		metadata.WithManifestReader(manifest.NewFileReader()),
	)
}

// resolve reads and resolves every manifest named on the command line, or
// the --manifest-path manifest when none is.
func resolve(cmd *cobra.Command, args []string) ([]*metadata.ComponentMetadata, error) {
	if len(args) == 0 {
		path, err := absManifestPath()
		if err != nil {
			return nil, err
		}
		md, err := newResolver().ResolveManifest(path)
		if err != nil {
			return nil, err
		}
		return []*metadata.ComponentMetadata{md}, nil
	}

	paths := make([]string, len(args))
	for i, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, err
		}
		paths[i] = abs
	}
	return newResolver().ResolveAll(cmd.Context(), paths)
}

// resolveWorkspace resolves every member of the workspace rooted at the
// --manifest-path manifest.
func resolveWorkspace(cmd *cobra.Command) ([]*metadata.ComponentMetadata, error) {
	path, err := absManifestPath()
	if err != nil {
		return nil, err
	}
	return newResolver().ResolveWorkspace(cmd.Context(), path)
}
