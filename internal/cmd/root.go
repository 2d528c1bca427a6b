package cmd

import (
	"fmt"

	"github.com/pthm/speechstyle/internal/config"
	"github.com/pthm/speechstyle/internal/logging"
	"github.com/pthm/speechstyle/internal/tokenizer"
	"github.com/pthm/speechstyle/internal/ui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	format     string
	labelSet   string
	configFile string

	// Resolved before any subcommand runs
	settings *config.Settings
	globalUI *ui.UI
	logger   *logrus.Logger
)

// newTokenizer builds the morphological analyzer. Loading the dictionary is
// slow, so commands call it once per process.
var newTokenizer = func() (tokenizer.Tokenizer, error) {
	return tokenizer.NewKagome()
}

// RootCmd is the speechstyle command
var RootCmd = &cobra.Command{
	Use:   "speechstyle",
	Short: "Diagnose the speaking style of a Japanese transcript",
	Long: `speechstyle reads a Japanese speech transcript and an assumed
recording length, and reports how the talk comes across: speaking
speed, information density, vocabulary difficulty and filler words.

Each metric is classified, plotted on a four-axis radar chart and
followed by short advice.`,
	PersistentPreRunE: setup,
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, config.KeyVerbose, "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, config.KeyFormat, "f", config.DefaultFormat, "Output format (terminal, json)")
	RootCmd.PersistentFlags().StringVar(&labelSet, config.KeyLabels, config.DefaultLabels, "Label set used for display text")
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default $XDG_CONFIG_HOME/speechstyle/config.yaml)")
}

// setup resolves configuration and builds the UI and logger
func setup(cmd *cobra.Command, args []string) error {
	s, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	settings = s

	globalUI = ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), s.Format)
	logger = logging.New(cmd.ErrOrStderr(), s.Verbose)

	if s.ConfigFile != "" {
		logger.WithField("file", s.ConfigFile).Debug("loaded config")
	}
	return nil
}

// GetUI returns the UI configured for this invocation
func GetUI() *ui.UI {
	return globalUI
}

// GetLogger returns the logger configured for this invocation
func GetLogger() *logrus.Logger {
	if logger == nil {
		return logging.Discard()
	}
	return logger
}
