package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/partitions/internal/config"
	"github.com/papapumpkin/partitions/internal/script"
	"github.com/papapumpkin/partitions/internal/telemetry"
	"github.com/papapumpkin/partitions/internal/ui"
)

var runCmd = &cobra.Command{
	Use:   "run <script.toml>",
	Short: "Run a partition script and print the resulting sets",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().String("telemetry", "", "append JSONL telemetry events to this file")
	_ = viper.BindPFlag("telemetry_path", runCmd.Flags().Lookup("telemetry"))

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return executeScript(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], cfg)
}

// executeScript loads and runs the script at path, writing the result to out
// in the configured format. Progress and errors go to errOut.
func executeScript(out, errOut io.Writer, path string, cfg config.Config) error {
	printer := ui.NewWriter(errOut, cfg.Color)

	s, err := script.Load(path)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	if errs := script.Validate(s); len(errs) > 0 {
		printer.ValidateResult(s.Partition.Name, len(s.Ops), errs)
		return fmt.Errorf("validation failed with %d error(s)", len(errs))
	}

	emitter, err := openEmitter(cfg.TelemetryPath)
	if err != nil {
		return err
	}
	defer emitter.Close()

	opts := []script.Option{script.WithEmitter(emitter)}
	if cfg.Verbose {
		opts = append(opts, script.WithObserver(printer.Step))
	}

	res, runErr := script.Run(s, opts...)
	if res == nil {
		printer.Error(runErr.Error())
		return runErr
	}

	if cfg.Format == config.FormatJSON {
		if err := writeResultJSON(out, res, runErr); err != nil {
			return err
		}
	} else {
		ui.NewWriter(out, cfg.Color).Result(res)
	}

	if runErr != nil {
		if !cfg.Verbose {
			printer.Error(runErr.Error())
		}
		return runErr
	}
	return nil
}

func openEmitter(path string) (*telemetry.Emitter, error) {
	if path == "" {
		return nil, nil
	}
	return telemetry.NewEmitter(path)
}

// resultJSON is the structured representation of a run for --format json.
type resultJSON struct {
	Name   string           `json:"name"`
	OK     bool             `json:"ok"`
	Error  string           `json:"error,omitempty"`
	Len    int              `json:"len"`
	Sets   [][]int          `json:"sets"`
	Groups [][]string       `json:"groups"`
	Steps  []resultStepJSON `json:"steps"`
}

type resultStepJSON struct {
	script.Step
	Error string `json:"error,omitempty"`
}

// writeResultJSON encodes the run result as JSON to the given writer.
func writeResultJSON(w io.Writer, res *script.Result, runErr error) error {
	out := resultJSON{
		Name:   res.Name,
		OK:     runErr == nil,
		Len:    res.Vec.Len(),
		Sets:   res.Sets(),
		Groups: res.Groups(),
		Steps:  make([]resultStepJSON, len(res.Steps)),
	}
	if runErr != nil {
		out.Error = runErr.Error()
	}
	if out.Sets == nil {
		out.Sets = [][]int{}
		out.Groups = [][]string{}
	}
	for i, s := range res.Steps {
		out.Steps[i] = resultStepJSON{Step: s}
		if s.Err != nil {
			out.Steps[i].Error = s.Err.Error()
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}
