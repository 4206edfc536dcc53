package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/partitions/internal/config"
	"github.com/papapumpkin/partitions/internal/script"
	"github.com/papapumpkin/partitions/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate <script.toml>",
	Short: "Check a partition script without running it",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	printer := ui.NewWriter(cmd.ErrOrStderr(), cfg.Color)

	s, err := script.Load(args[0])
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	errs := script.Validate(s)
	printer.ValidateResult(s.Partition.Name, len(s.Ops), errs)
	if len(errs) > 0 {
		return fmt.Errorf("validation failed with %d error(s)", len(errs))
	}
	return nil
}
