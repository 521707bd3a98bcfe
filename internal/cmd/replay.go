package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/datagrid/internal/config"
	"github.com/Iron-Ham/datagrid/internal/dataset"
	"github.com/Iron-Ham/datagrid/internal/script"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Replay an interaction script headlessly",
	Long: `Replay an interaction script against the grid controllers without a
terminal UI. Every notification the controllers emit is written as one JSON
line, and expect steps fail the run when the state differs.

The script's own rows and columns are used unless --data names a dataset.

Examples:
  datagrid replay drag.yaml
  datagrid replay --data people.csv --no-time selection.yaml > events.jsonl
  datagrid replay --check drag.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

var (
	replayData   string
	replayOut    string
	replayNoTime bool
	replayCheck  bool
)

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().StringVarP(&replayData, "data", "d", "", "Dataset file supplying rows and columns")
	replayCmd.Flags().StringVarP(&replayOut, "out", "o", "", "Write events to this file instead of stdout")
	replayCmd.Flags().BoolVar(&replayNoTime, "no-time", false, "Omit timestamps from event lines")
	replayCmd.Flags().BoolVar(&replayCheck, "check", false, "Validate the script without running it")
}

func runReplay(cmd *cobra.Command, args []string) error {
	s, err := script.Load(args[0])
	if err != nil {
		return err
	}
	if replayCheck {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d steps ok\n", args[0], len(s.Steps))
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer func() { _ = logger.Close() }()

	var out io.Writer = cmd.OutOrStdout()
	if replayOut != "" {
		f, err := os.Create(replayOut)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", replayOut, err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}
	rec := script.NewRecorder(out, replayNoTime)

	opts := []script.Option{
		script.WithEventHandler(rec.Handle),
		script.WithLogger(logger),
	}
	if replayData != "" {
		ds, err := dataset.Load(replayData, datasetOptions(cfg))
		if err != nil {
			return err
		}
		opts = append(opts, script.WithData(ds.Rows, ds.Columns))
	}

	runner, err := script.NewRunner(s, opts...)
	if err != nil {
		return err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := runner.Run(ctx)
	if err != nil {
		return err
	}
	if err := rec.Err(); err != nil {
		return fmt.Errorf("failed to write events: %w", err)
	}

	printReplaySummary(cmd.ErrOrStderr(), res)
	return nil
}

func printReplaySummary(w io.Writer, res *script.Result) {
	fmt.Fprintf(w, "replayed %d steps, %d events\n", res.Steps, res.Events)

	rows := make([]string, len(res.SelectedRows))
	for i, id := range res.SelectedRows {
		rows[i] = id.String()
	}
	fmt.Fprintf(w, "selected rows: [%s]\n", strings.Join(rows, ", "))

	if len(res.SelectedCells) > 0 {
		cells := make([]string, len(res.SelectedCells))
		for i, c := range res.SelectedCells {
			cells[i] = c.String()
		}
		fmt.Fprintf(w, "selected cells: [%s]\n", strings.Join(cells, ", "))
	}

	widths := make([]string, len(res.Columns))
	for i, c := range res.Columns {
		widths[i] = fmt.Sprintf("%s=%d", c.Field, c.Width)
	}
	fmt.Fprintf(w, "widths: %s\n", strings.Join(widths, " "))
}
