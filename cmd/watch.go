package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/partitions/internal/config"
	"github.com/papapumpkin/partitions/internal/ui"
	"github.com/papapumpkin/partitions/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <script.toml>",
	Short: "Re-run a partition script every time it changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchScript(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], cfg)
}

// watchScript runs the script once and again after every change until ctx is
// cancelled. Failures are reported and do not stop the watch.
func watchScript(ctx context.Context, out, errOut io.Writer, path string, cfg config.Config) error {
	printer := ui.NewWriter(errOut, cfg.Color)

	w, err := watch.NewWatcher(path, watch.WithDebounce(cfg.Watch.Debounce))
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	defer w.Stop()

	rerun := func() {
		// Errors are already printed; the next save gets another try.
		_ = executeScript(out, errOut, path, cfg)
	}

	rerun()
	printer.Info("watching " + path + " (ctrl-c to stop)")
	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-w.Changes:
			if !ok {
				return nil
			}
			if change.Kind == watch.ChangeRemoved {
				printer.Info(path + " removed; waiting for it to come back")
				continue
			}
			printer.Info(path + " changed")
			rerun()
		}
	}
}
