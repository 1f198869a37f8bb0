package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/kodewerk/smartchat"
	"github.com/kodewerk/smartchat/clipboard"
	"github.com/kodewerk/smartchat/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app holds what the commands share once the root command has loaded the
// settings.
type app struct {
	cfg  config.Config
	log  *logrus.Logger
	clip smartchat.Clipboard
	now  func() time.Time

	logFile io.Closer
}

func newApp() *app {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &app{
		cfg:  config.Default(),
		log:  log,
		clip: clipboard.Clipboard{},
		now:  time.Now,
	}
}

func (a *app) close() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// locale returns the locale flag value of cmd, falling back to the settings.
func (a *app) locale(cmd *cobra.Command) smartchat.Locale {
	if f := cmd.Flags().Lookup("locale"); f != nil && f.Changed {
		return smartchat.ParseLocale(f.Value.String())
	}
	return a.cfg.LocaleValue()
}

func newRootCmd(a *app) *cobra.Command {
	var (
		configPath string
		logFile    string
		logLevel   string
	)
	root := &cobra.Command{
		Use:           "smartchat",
		Short:         "Streaming chat and cover-letter demos for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.Path(configPath))
			if err != nil {
				return err
			}
			if logFile != "" {
				cfg.LogFile = logFile
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			a.cfg = cfg
			return a.setupLogging()
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "settings file (default $"+config.EnvPath+" or the user config directory)")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "append logs to this file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newChatCmd(a),
		newLetterCmd(a),
		newSessionsCmd(a),
		newExportCmd(a),
		newConfigCmd(a),
	)
	return root
}

// setupLogging points the logger at the configured file. The TUI owns the
// terminal, so without a file logs are discarded.
func (a *app) setupLogging() error {
	level, err := logrus.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level %q: %w", a.cfg.LogLevel, smartchat.ErrValidation)
	}
	a.log.SetLevel(level)
	a.log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	if a.cfg.LogFile == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(a.cfg.LogFile), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	a.logFile = f
	a.log.SetOutput(f)
	return nil
}
