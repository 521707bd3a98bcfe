package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete datagrid configuration
type Config struct {
	Grid    GridConfig    `mapstructure:"grid"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Data    DataConfig    `mapstructure:"data"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// GridConfig controls the interaction controllers
type GridConfig struct {
	// SelectionMode is the row selection mode (default: "single")
	// Options: "single", "multiple"
	SelectionMode string `mapstructure:"selection_mode"`
	// CellSelection enables clicking individual cells (default: true)
	CellSelection bool `mapstructure:"cell_selection"`
	// DefaultColumnWidth is the width in px given to columns that do not
	// declare one (default: 120, min: 50)
	DefaultColumnWidth int `mapstructure:"default_column_width"`
	// PixelsPerCell maps px widths to terminal cells (default: 8)
	PixelsPerCell int `mapstructure:"pixels_per_cell"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	// Options: "default", "monokai", "dracula", "nord"
	Theme string `mapstructure:"theme"`
	// ShowRowIDs shows the row id gutter next to the selection checkbox (default: true)
	ShowRowIDs bool `mapstructure:"show_row_ids"`
	// StatusBar shows selection counts and the active drag below the grid (default: true)
	StatusBar bool `mapstructure:"status_bar"`
}

// DataConfig controls how datasets are loaded
type DataConfig struct {
	// IDColumn is the field used as the row identifier (default: "id").
	// Rows without it get a generated id.
	IDColumn string `mapstructure:"id_column"`
	// Columns lists glob patterns selecting which fields become columns.
	// Empty means every field.
	Columns []string `mapstructure:"columns"`
	// Watch reloads the dataset when the file changes (default: false)
	Watch bool `mapstructure:"watch"`
	// Sheet is the worksheet read from XLSX files (default: first sheet)
	Sheet string `mapstructure:"sheet"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum log level (default: "info")
	// Options: "debug", "info", "warn", "error"
	Level string `mapstructure:"level"`
	// Dir is where datagrid.log is written (default: <config dir>/logs)
	Dir string `mapstructure:"dir"`
	// MaxSizeMB is the maximum log file size before rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of rotated files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups"`
	// Compress gzips rotated files (default: false)
	Compress bool `mapstructure:"compress"`
}

// ResolveDir returns the directory logs are written to. An empty Dir means
// <config dir>/logs; a leading ~ expands to the user's home directory.
func (l *LoggingConfig) ResolveDir() string {
	if l.Dir == "" {
		return filepath.Join(ConfigDir(), "logs")
	}

	path := l.Dir
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}
	return path
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			SelectionMode:      "single",
			CellSelection:      true,
			DefaultColumnWidth: 120,
			PixelsPerCell:      8,
		},
		TUI: TUIConfig{
			Theme:      "default",
			ShowRowIDs: true,
			StatusBar:  true,
		},
		Data: DataConfig{
			IDColumn: "id",
			Columns:  []string{},
			Watch:    false,
			Sheet:    "",
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			Dir:        "",
			MaxSizeMB:  10,
			MaxBackups: 3,
			Compress:   false,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Grid defaults
	viper.SetDefault("grid.selection_mode", defaults.Grid.SelectionMode)
	viper.SetDefault("grid.cell_selection", defaults.Grid.CellSelection)
	viper.SetDefault("grid.default_column_width", defaults.Grid.DefaultColumnWidth)
	viper.SetDefault("grid.pixels_per_cell", defaults.Grid.PixelsPerCell)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.show_row_ids", defaults.TUI.ShowRowIDs)
	viper.SetDefault("tui.status_bar", defaults.TUI.StatusBar)

	// Data defaults
	viper.SetDefault("data.id_column", defaults.Data.IDColumn)
	viper.SetDefault("data.columns", defaults.Data.Columns)
	viper.SetDefault("data.watch", defaults.Data.Watch)
	viper.SetDefault("data.sheet", defaults.Data.Sheet)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "datagrid")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".datagrid"
	}
	return filepath.Join(home, ".config", "datagrid")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
