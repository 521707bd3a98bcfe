package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/datagrid/internal/config"
	"github.com/Iron-Ham/datagrid/internal/dataset"
	"github.com/Iron-Ham/datagrid/internal/tui/styles"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify datagrid configuration",
	Long: `View or modify datagrid configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  datagrid config set grid.selection_mode multiple
  datagrid config set data.columns 'name,*_at'
  datagrid config set tui.theme nord

Valid keys:
  grid.selection_mode        - Row selection mode (single, multiple)
  grid.cell_selection        - Allow selecting cells (true/false)
  grid.default_column_width  - Width in px for columns without one (min 50)
  grid.pixels_per_cell       - Pixels per terminal cell
  tui.theme                  - Color theme (default, monokai, dracula, nord)
  tui.show_row_ids           - Show the row id gutter (true/false)
  tui.status_bar             - Show the status bar (true/false)
  data.id_column             - Field holding row ids
  data.columns               - Comma-separated column glob patterns
  data.watch                 - Reload files on change (true/false)
  data.sheet                 - XLSX worksheet name
  logging.enabled            - Write a debug log (true/false)
  logging.level              - Log level (debug, info, warn, error)
  logging.dir                - Log directory
  logging.max_size_mb        - Rotate the log at this size
  logging.max_backups        - Rotated logs to keep
  logging.compress           - Gzip rotated logs (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/datagrid/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var configThemeCmd = &cobra.Command{
	Use:   "theme",
	Short: "List or export color themes",
}

var configThemeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in themes",
	RunE:  runThemeList,
}

var configThemeExportCmd = &cobra.Command{
	Use:   "export <theme-name> [output-file]",
	Short: "Export a theme to YAML",
	Long: `Export a built-in theme as a theme file, a starting point for a custom
theme loaded with 'datagrid view --theme-file'.

Examples:
  datagrid config theme export default
  datagrid config theme export nord my-theme.yaml`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runThemeExport,
}

// configKeys maps settable keys to their value kind.
var configKeys = map[string]string{
	"grid.selection_mode":       "string",
	"grid.cell_selection":       "bool",
	"grid.default_column_width": "int",
	"grid.pixels_per_cell":      "int",
	"tui.theme":                 "string",
	"tui.show_row_ids":          "bool",
	"tui.status_bar":            "bool",
	"data.id_column":            "string",
	"data.columns":              "list",
	"data.watch":                "bool",
	"data.sheet":                "string",
	"logging.enabled":           "bool",
	"logging.level":             "string",
	"logging.dir":               "string",
	"logging.max_size_mb":       "int",
	"logging.max_backups":       "int",
	"logging.compress":          "bool",
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configThemeCmd)
	configThemeCmd.AddCommand(configThemeListCmd)
	configThemeCmd.AddCommand(configThemeExportCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	out := cmd.OutOrStdout()

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "grid:")
	fmt.Fprintf(out, "  selection_mode: %s\n", cfg.Grid.SelectionMode)
	fmt.Fprintf(out, "  cell_selection: %v\n", cfg.Grid.CellSelection)
	fmt.Fprintf(out, "  default_column_width: %d\n", cfg.Grid.DefaultColumnWidth)
	fmt.Fprintf(out, "  pixels_per_cell: %d\n", cfg.Grid.PixelsPerCell)

	fmt.Fprintln(out, "tui:")
	fmt.Fprintf(out, "  theme: %s\n", cfg.TUI.Theme)
	fmt.Fprintf(out, "  show_row_ids: %v\n", cfg.TUI.ShowRowIDs)
	fmt.Fprintf(out, "  status_bar: %v\n", cfg.TUI.StatusBar)

	fmt.Fprintln(out, "data:")
	fmt.Fprintf(out, "  id_column: %s\n", cfg.Data.IDColumn)
	fmt.Fprintf(out, "  columns: [%s]\n", strings.Join(cfg.Data.Columns, ", "))
	fmt.Fprintf(out, "  watch: %v\n", cfg.Data.Watch)
	fmt.Fprintf(out, "  sheet: %s\n", cfg.Data.Sheet)

	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  dir: %s\n", cfg.Logging.ResolveDir())
	fmt.Fprintf(out, "  max_size_mb: %d\n", cfg.Logging.MaxSizeMB)
	fmt.Fprintf(out, "  max_backups: %d\n", cfg.Logging.MaxBackups)
	fmt.Fprintf(out, "  compress: %v\n", cfg.Logging.Compress)

	return nil
}

// parseConfigValue converts value to the kind registered for key.
func parseConfigValue(key, value string) (any, error) {
	kind, ok := configKeys[key]
	if !ok {
		return nil, fmt.Errorf("unknown configuration key: %s\nRun 'datagrid config set --help' to see valid keys", key)
	}

	switch kind {
	case "bool":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return b, nil
	case "int":
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		return n, nil
	case "list":
		return dataset.SplitPatterns(value), nil
	default:
		return value, nil
	}
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	typedValue, err := parseConfigValue(key, args[1])
	if err != nil {
		return err
	}

	// Validate the whole config with the new value before touching disk
	viper.Set(key, typedValue)
	if _, err := config.Load(); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	configDir := config.ConfigDir()
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = config.ConfigFile()
	}
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(out, "Config saved to %s\n", configFile)

	return nil
}

const defaultConfigContent = `# datagrid configuration

# Interaction controllers
grid:
  # Row selection mode: single or multiple
  selection_mode: single
  # Allow clicking individual cells
  cell_selection: true
  # Width in px for columns that do not declare one (minimum 50)
  default_column_width: 120
  # Pixels represented by one terminal cell
  pixels_per_cell: 8

# TUI (terminal user interface) settings
tui:
  # Color theme: default, monokai, dracula, nord
  theme: default
  show_row_ids: true
  status_bar: true

# Dataset loading
data:
  # Field holding row ids; rows without one get a generated id
  id_column: id
  # Glob patterns selecting visible columns (empty means all)
  columns: []
  # Reload the file when it changes
  watch: false
  # XLSX worksheet (empty means the first sheet)
  sheet: ""

# Debug logging
logging:
  enabled: true
  level: info
  # Empty means <config dir>/logs
  dir: ""
  max_size_mb: 10
  max_backups: 3
  compress: false
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'datagrid config set' to modify values", configFile)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigContent), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", config.ConfigFile())
	}

	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "  2. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: DATAGRID_* (e.g., DATAGRID_GRID_SELECTION_MODE)")

	return nil
}

func runThemeList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Built-in themes:")
	for _, name := range styles.BuiltinThemes() {
		fmt.Fprintf(out, "  - %s\n", name)
	}
	return nil
}

func runThemeExport(cmd *cobra.Command, args []string) error {
	data, err := styles.ExportTheme(args[0])
	if err != nil {
		return fmt.Errorf("exporting theme: %w", err)
	}

	if len(args) > 1 {
		if err := os.WriteFile(args[1], data, 0o644); err != nil {
			return fmt.Errorf("writing to %s: %w", args[1], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme exported to: %s\n", args[1])
		return nil
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
