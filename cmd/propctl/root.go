package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joshuapare/propkit/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	configPath string

	// Loaded in PersistentPreRunE.
	cfg    = config.Default()
	logger = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "propctl",
	Short: "Decode MAPI binary property values",
	Long: `propctl interprets opaque binary property values (entry IDs, SIDs,
folder user fields, global object IDs and more) and prints them as
offset-annotated trees. Truncated or malformed input is decoded as far as
possible and the point where decoding stopped is reported.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all logging except errors")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file (default $HOME/"+config.FileName+")")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads the config file and initializes logging.
func setup() error {
	loaded, path, err := config.Resolve(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger = initLogger(level)
	if path != "" {
		logger.Debug().Str("path", path).Msg("config loaded")
	}
	return nil
}

// initLogger writes human-readable logs to stderr so stdout stays clean for
// rendered trees.
func initLogger(level zerolog.Level) zerolog.Logger {
	switch {
	case quiet:
		level = zerolog.ErrorLevel
	case verbose:
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	l := zerolog.New(output).Level(level).With().Timestamp().Str("app", "propctl").Logger()
	log.Logger = l
	return l
}
