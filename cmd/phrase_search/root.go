package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gcbaptista/pdf-phrase-search/config"
)

var (
	configPath string
	dbPath     string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "phrase_search",
	Short: "Phrase search over extracted PDF pages",
	Long:  `Counts and samples case-insensitive phrase occurrences across a corpus of PDF pages stored in SQLite.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the SQLite page database (default "+config.DefaultDBPath+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(serveCmd, ingestCmd, searchCmd)
}

// Execute runs the root command. Exit code 1 indicates error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSettings resolves file, environment and flag settings, then configures
// the global logger from them.
func loadSettings() (config.Settings, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return config.Settings{}, err
	}
	if dbPath != "" {
		settings.DBPath = dbPath
	}
	if logLevel != "" {
		settings.Log.Level = logLevel
	}
	if err := settings.Err(); err != nil {
		return config.Settings{}, err
	}
	if err := setupLogging(settings.Log); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

func setupLogging(s config.LogSettings) error {
	level, err := zerolog.ParseLevel(strings.ToLower(s.Level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", s.Level, err)
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339
	if s.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	return nil
}
