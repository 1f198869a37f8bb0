// Package config loads the smartchat settings file.
//
// The file is YAML. Every field is optional; missing fields keep the
// defaults returned by Default.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/kodewerk/smartchat"
	"github.com/kodewerk/smartchat/stream"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that points at the settings file.
const EnvPath = "SMARTCHAT_CONFIG"

// Config holds the settings of the chat and letter commands.
type Config struct {
	Locale      string `yaml:"locale"`
	Model       string `yaml:"model"`
	SessionsDir string `yaml:"sessions_dir"`
	LogLevel    string `yaml:"log_level"`
	LogFile     string `yaml:"log_file,omitempty"`

	Chat   Chat   `yaml:"chat"`
	Letter Letter `yaml:"letter"`
}

// Chat holds chat settings.
type Chat struct {
	Pacing Pacing `yaml:"pacing"`
}

// Letter holds cover-letter settings.
type Letter struct {
	Name   string `yaml:"name"`
	City   string `yaml:"city,omitempty"`
	Pacing Pacing `yaml:"pacing"`
}

// Pacing is the file form of stream.Pacing. Delays are duration strings
// such as "14ms".
type Pacing struct {
	MinStep  int           `yaml:"min_step"`
	MaxStep  int           `yaml:"max_step"`
	MinDelay time.Duration `yaml:"min_delay"`
	MaxDelay time.Duration `yaml:"max_delay"`
}

// Stream converts p to a stream.Pacing.
func (p Pacing) Stream() stream.Pacing {
	return stream.Pacing{MinStep: p.MinStep, MaxStep: p.MaxStep, MinDelay: p.MinDelay, MaxDelay: p.MaxDelay}
}

func pacingFrom(p stream.Pacing) Pacing {
	return Pacing{MinStep: p.MinStep, MaxStep: p.MaxStep, MinDelay: p.MinDelay, MaxDelay: p.MaxDelay}
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Locale:      string(smartchat.LocaleDE),
		Model:       string(smartchat.ModelGPT4o),
		SessionsDir: defaultSessionsDir(),
		LogLevel:    logrus.InfoLevel.String(),
		Chat:        Chat{Pacing: pacingFrom(stream.ChatPacing())},
		Letter:      Letter{Name: "Oleksandr", Pacing: pacingFrom(stream.LetterPacing())},
	}
}

// Path returns the settings file to use: flag when set, then $SMARTCHAT_CONFIG,
// then config.yaml in the user config directory.
func Path(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "smartchat.yaml"
	}
	return filepath.Join(dir, "smartchat", "config.yaml")
}

// Load reads the settings at path over the defaults. A missing file yields
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Marshal encodes cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// Validate checks every field that has a closed set of values.
func (c Config) Validate() error {
	if c.Locale != string(smartchat.LocaleDE) && c.Locale != string(smartchat.LocaleEN) {
		return fmt.Errorf("locale %q: %w", c.Locale, smartchat.ErrValidation)
	}
	if !slices.Contains(smartchat.ModelIDs, smartchat.ModelID(c.Model)) {
		return fmt.Errorf("model %q: %w", c.Model, smartchat.ErrUnknownModel)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, smartchat.ErrValidation)
	}
	if err := c.Chat.Pacing.Stream().Validate(); err != nil {
		return fmt.Errorf("chat pacing: %w", err)
	}
	if err := c.Letter.Pacing.Stream().Validate(); err != nil {
		return fmt.Errorf("letter pacing: %w", err)
	}
	return nil
}

// LocaleValue returns the configured locale.
func (c Config) LocaleValue() smartchat.Locale {
	return smartchat.ParseLocale(c.Locale)
}

// ModelValue returns the configured model.
func (c Config) ModelValue() smartchat.ModelID {
	return smartchat.ModelID(c.Model)
}

func defaultSessionsDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "sessions"
	}
	return filepath.Join(dir, "smartchat", "sessions")
}
