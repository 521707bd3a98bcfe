package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/datagrid/internal/config"
	"github.com/Iron-Ham/datagrid/internal/dataset"
	"github.com/Iron-Ham/datagrid/internal/grid"
	"github.com/Iron-Ham/datagrid/internal/util"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Summarize a dataset without opening the grid",
	Long: `Load a dataset the same way 'view' does and print its columns, widths,
and the first few rows. Useful for checking column filters and id handling
in scripts or when no terminal is available.

Examples:
  datagrid inspect people.csv
  datagrid inspect --rows 0 --format json people.yaml
  datagrid inspect --columns '*_name' --id-column key people.tsv`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

var (
	inspectFormat   string
	inspectRows     int
	inspectColumns  string
	inspectIDColumn string
	inspectSheet    string
)

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", "table", "Output format (table/json/yaml)")
	inspectCmd.Flags().IntVarP(&inspectRows, "rows", "n", 5, "Number of rows to preview")
	inspectCmd.Flags().StringVar(&inspectColumns, "columns", "", "Comma-separated glob patterns selecting columns")
	inspectCmd.Flags().StringVar(&inspectIDColumn, "id-column", "", "Field holding row ids")
	inspectCmd.Flags().StringVar(&inspectSheet, "sheet", "", "XLSX worksheet to read")
}

// inspectReport is the machine-readable form of an inspection.
type inspectReport struct {
	Path         string        `json:"path" yaml:"path"`
	Format       string        `json:"format" yaml:"format"`
	Rows         int           `json:"rows" yaml:"rows"`
	GeneratedIDs int           `json:"generatedIds" yaml:"generated_ids"`
	Columns      []grid.Column `json:"columns" yaml:"columns"`
	Preview      []grid.Row    `json:"preview,omitempty" yaml:"-"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	opts := datasetOptions(cfg)
	if cmd.Flags().Changed("columns") {
		opts.Columns = dataset.SplitPatterns(inspectColumns)
	}
	if inspectIDColumn != "" {
		opts.IDColumn = inspectIDColumn
	}
	if inspectSheet != "" {
		opts.Sheet = inspectSheet
	}

	ds, err := dataset.Load(args[0], opts)
	if err != nil {
		return err
	}

	report := inspectReport{
		Path:         ds.Path,
		Format:       string(ds.Format),
		Rows:         len(ds.Rows),
		GeneratedIDs: ds.GeneratedIDs,
		Columns:      ds.Columns,
		Preview:      ds.Rows[:min(max(0, inspectRows), len(ds.Rows))],
	}

	out := cmd.OutOrStdout()
	switch inspectFormat {
	case "table":
		printInspectTable(out, report, cfg.Grid.PixelsPerCell)
		return nil
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format: %s (supported: table, json, yaml)", inspectFormat)
	}
}

func printInspectTable(w io.Writer, r inspectReport, pxPerCell int) {
	fmt.Fprintf(w, "%s (%s): %d rows", r.Path, r.Format, r.Rows)
	if r.GeneratedIDs > 0 {
		fmt.Fprintf(w, ", %d generated ids", r.GeneratedIDs)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	columns := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("FIELD", "HEADER", "WIDTH", "CELLS")
	for _, c := range r.Columns {
		columns.Row(c.Field, c.Header, strconv.Itoa(c.Width), strconv.Itoa(max(1, c.Width/pxPerCell)))
	}
	fmt.Fprintln(w, columns.Render())

	if len(r.Preview) == 0 {
		return
	}

	headers := []string{"ID"}
	for _, c := range r.Columns {
		headers = append(headers, c.Title())
	}
	preview := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
	for _, row := range r.Preview {
		cells := []string{row.ID.String()}
		for _, c := range r.Columns {
			cells = append(cells, util.Truncate(util.SingleLine(row.Value(c.Field)), max(1, c.Width/pxPerCell)))
		}
		preview.Row(cells...)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, preview.Render())
}
