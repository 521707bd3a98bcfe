package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/datagrid/internal/config"
	"github.com/Iron-Ham/datagrid/internal/logging"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View debug logs",
	Long: `View and filter the datagrid debug log, including rotated backups.

Examples:
  # Show the last 50 entries
  datagrid logs

  # Only warnings and errors from the file watcher
  datagrid logs --level warn --component dataset

  # Everything from the last hour as CSV
  datagrid logs -n 0 --since 1h --format csv

  # Write matching entries to a file
  datagrid logs --level error --export errors.json --format json`,
	RunE: runLogs,
}

var (
	logsDir       string
	logsTail      int
	logsLevel     string
	logsSince     string
	logsComponent string
	logsGrep      string
	logsFormat    string
	logsExport    string
)

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().StringVar(&logsDir, "dir", "", "Log directory (default: logging.dir)")
	logsCmd.Flags().IntVarP(&logsTail, "tail", "n", 50, "Number of entries to show (0 for all)")
	logsCmd.Flags().StringVar(&logsLevel, "level", "", "Filter by minimum level (debug/info/warn/error)")
	logsCmd.Flags().StringVar(&logsSince, "since", "", "Show entries since duration ago (e.g., 1h, 30m)")
	logsCmd.Flags().StringVar(&logsComponent, "component", "", "Only entries from this component (e.g., resize, dataset)")
	logsCmd.Flags().StringVar(&logsGrep, "grep", "", "Only entries whose message contains this text")
	logsCmd.Flags().StringVarP(&logsFormat, "format", "f", "text", "Output format (text/json/csv)")
	logsCmd.Flags().StringVar(&logsExport, "export", "", "Write entries to this file instead of stdout")
}

func runLogs(cmd *cobra.Command, args []string) error {
	dir := logsDir
	if dir == "" {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		dir = cfg.Logging.ResolveDir()
	}

	filter := logging.Filter{
		Level:     logsLevel,
		Component: logsComponent,
		Contains:  logsGrep,
	}
	if logsSince != "" {
		d, err := time.ParseDuration(logsSince)
		if err != nil {
			return fmt.Errorf("invalid duration format: %w", err)
		}
		filter.Since = time.Now().Add(-d)
	}

	entries, err := logging.ReadEntries(dir)
	if err != nil {
		return err
	}
	entries = logging.FilterEntries(entries, filter)

	if logsTail > 0 && len(entries) > logsTail {
		entries = entries[len(entries)-logsTail:]
	}

	if logsExport != "" {
		return exportLogs(cmd.OutOrStdout(), logsExport, entries)
	}

	if len(entries) == 0 && logsFormat == "text" {
		fmt.Fprintln(cmd.OutOrStdout(), "No matching log entries found.")
		return nil
	}
	return logging.ExportEntries(cmd.OutOrStdout(), entries, logsFormat)
}

func exportLogs(out io.Writer, path string, entries []logging.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := logging.ExportEntries(f, entries, logsFormat); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	fmt.Fprintf(out, "Exported %d entries to %s\n", len(entries), path)
	return nil
}
