// Root command: global flags, configuration, and logging setup.
package main

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idavidov/clipm/internal/paths"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var flagDataDir string

var rootCmd = &cobra.Command{
	Use:     "clipm",
	Short:   "clipm is a local clipboard history manager",
	Version: Version,
	Long: `clipm captures the current clipboard value, persists it to a local
history database, and retrieves entries by id, recency, label, or
full-text search.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pflags := rootCmd.PersistentFlags()
	pflags.StringVar(&flagDataDir, "data-dir", "", "data directory (default: platform data dir)")
	pflags.CountP("verbose", "v", "increase log verbosity")
	pflags.BoolP("quiet", "q", false, "suppress all diagnostic logs")

	viper.SetEnvPrefix("clipm")
	viper.AutomaticEnv()

	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(labelCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(infoCmd)
}

// setup binds flags, loads the optional config file, and installs the
// slog default logger before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	viper.SetConfigName("clipm")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(filepath.Join(xdg.ConfigHome, paths.AppDirName))
	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is a real fault.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	level := log.ErrorLevel - log.Level(viper.GetInt("verbose")*4)
	if viper.GetBool("quiet") {
		level = log.Level(math.MaxInt32)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		TimeFormat: time.RFC822,
		Level:      level,
	})
	slog.SetDefault(slog.New(logger))

	return nil
}

// resolveDataDir applies the precedence chain:
// --data-dir flag > config file data_dir > CLIPM_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, viper.GetString("data_dir"))
}
