package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/datagrid/internal/config"
	"github.com/Iron-Ham/datagrid/internal/dataset"
	"github.com/Iron-Ham/datagrid/internal/errors"
	"github.com/Iron-Ham/datagrid/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "datagrid",
	Short: "Interactive data grid for tabular files",
	Long: `Datagrid shows CSV, TSV, JSON, YAML, and XLSX files in an interactive
terminal grid with row and cell selection and draggable column borders.

Interactions can also be replayed headlessly from a YAML script, which
prints every selection and resize notification as a JSON line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// FormatError renders a failed command for stderr. Errors written for users
// are shown under their severity; anything else gets a pointer to the logs.
func FormatError(err error) string {
	if errors.IsUserFacing(err) {
		label := errors.GetSeverity(err).String()
		return fmt.Sprintf("%s%s: %v", strings.ToUpper(label[:1]), label[1:], err)
	}
	return fmt.Sprintf("Error: %v\n(enable logging.enabled and run 'datagrid logs' for details)", err)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/datagrid/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("DATAGRID")
	// e.g., DATAGRID_GRID_SELECTION_MODE for grid.selection_mode
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// newLogger builds the file logger described by cfg. Disabled logging yields
// a logger that discards everything.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	return logging.NewRotatingLogger(cfg.Logging.ResolveDir(), cfg.Logging.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		Compress:   cfg.Logging.Compress,
	})
}

// datasetOptions maps the data and grid settings onto loader options.
func datasetOptions(cfg *config.Config) dataset.Options {
	return dataset.Options{
		IDColumn:     cfg.Data.IDColumn,
		Columns:      cfg.Data.Columns,
		DefaultWidth: cfg.Grid.DefaultColumnWidth,
		Sheet:        cfg.Data.Sheet,
	}
}
