package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/Iron-Ham/datagrid/internal/config"
	"github.com/Iron-Ham/datagrid/internal/dataset"
	"github.com/Iron-Ham/datagrid/internal/errors"
	"github.com/Iron-Ham/datagrid/internal/grid"
	"github.com/Iron-Ham/datagrid/internal/tui"
	"github.com/Iron-Ham/datagrid/internal/tui/styles"
)

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Browse a dataset in the interactive grid",
	Long: `Open a CSV, TSV, JSON, YAML, or XLSX file in the interactive grid.

Mouse:
  click a checkbox or row id   toggle the row
  click the header checkbox    select or clear every row
  click a cell                 select the cell (ctrl/alt-click adds to it)
  drag a header border         resize the column

Examples:
  datagrid view people.csv
  datagrid view --mode multiple --columns 'name,*_at' people.json
  datagrid view --watch --sheet Q3 report.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

var (
	viewColumns   string
	viewThemeFile string
)

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().String("mode", "", "Row selection mode (single/multiple)")
	viewCmd.Flags().String("id-column", "", "Field holding row ids")
	viewCmd.Flags().String("sheet", "", "XLSX worksheet to show")
	viewCmd.Flags().Bool("watch", false, "Reload the file when it changes")
	viewCmd.Flags().String("theme", "", "Built-in color theme")
	viewCmd.Flags().StringVar(&viewColumns, "columns", "", "Comma-separated glob patterns selecting columns")
	viewCmd.Flags().StringVar(&viewThemeFile, "theme-file", "", "Custom theme YAML file (overrides --theme)")

	_ = viper.BindPFlag("grid.selection_mode", viewCmd.Flags().Lookup("mode"))
	_ = viper.BindPFlag("data.id_column", viewCmd.Flags().Lookup("id-column"))
	_ = viper.BindPFlag("data.sheet", viewCmd.Flags().Lookup("sheet"))
	_ = viper.BindPFlag("data.watch", viewCmd.Flags().Lookup("watch"))
	_ = viper.BindPFlag("tui.theme", viewCmd.Flags().Lookup("theme"))
}

func runView(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cmd.Flags().Changed("columns") {
		cfg.Data.Columns = dataset.SplitPatterns(viewColumns)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("view needs an interactive terminal; use 'datagrid inspect' for plain output")
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer func() { _ = logger.Close() }()

	opts := datasetOptions(cfg)
	ds, err := dataset.Load(path, opts)
	if err != nil {
		return err
	}

	st, err := resolveStyles(cfg.TUI.Theme, viewThemeFile)
	if err != nil {
		return err
	}

	mode, err := grid.ParseSelectionMode(cfg.Grid.SelectionMode)
	if err != nil {
		return err
	}

	var watcher *dataset.Watcher
	if cfg.Data.Watch {
		watcher, err = dataset.NewWatcher(path, opts, logger)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
	}

	logger.Info("opening grid",
		"path", path,
		"rows", len(ds.Rows),
		"columns", len(ds.Columns),
		"mode", string(mode),
		"watch", cfg.Data.Watch,
	)

	app := tui.New(tui.Options{
		Title:         filepath.Base(path),
		Dataset:       ds,
		Mode:          mode,
		CellSelection: cfg.Grid.CellSelection,
		PixelsPerCell: cfg.Grid.PixelsPerCell,
		ShowRowIDs:    cfg.TUI.ShowRowIDs,
		StatusBar:     cfg.TUI.StatusBar,
		Styles:        st,
		Logger:        logger,
	}, watcher)
	return app.Run()
}

// resolveStyles prefers a custom theme file over the named built-in theme.
func resolveStyles(theme, themeFile string) (*styles.Styles, error) {
	if themeFile != "" {
		tf, err := styles.LoadThemeFile(themeFile)
		if err != nil {
			return nil, err
		}
		return styles.New(tf.ToPalette()), nil
	}
	p, err := styles.GetPalette(theme)
	if err != nil {
		return nil, err
	}
	return styles.New(p), nil
}
