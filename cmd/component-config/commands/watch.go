package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/sehnryr/cargo-component/infrastructure/watcher"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the target again whenever the manifest changes",
	Long: `Resolve the manifest named by --manifest-path, print its target, and
resolve it again each time the manifest is written. Resolution errors are
printed and watching continues. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 100*time.Millisecond, "Quiet period before a change is reported")
}

func runWatch(cmd *cobra.Command, args []string) error {
	path, err := absManifestPath()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	w, err := watcher.New([]string{path}, watcher.WithDebounce(watchDebounce), watcher.WithLogger(slog.Default()))
	if err != nil {
		return err
	}
	defer w.Close()

	out := cmd.OutOrStdout()
	report := func() {
		md, err := newResolver().ResolveManifest(path)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
			return
		}
		printTarget(out, md)
	}

	report()
	err = w.Run(ctx, func([]string) {
		fmt.Fprintf(out, "--- %s changed\n", path)
		report()
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
