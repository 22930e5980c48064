// Package config loads placefinder settings from defaults, an optional config
// file, PLACEFINDER_* environment variables and command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/runes"

	trie "github.com/sarthakjha889/go-placefinder-trie"
	"github.com/sarthakjha889/go-placefinder-trie/internal/dictionary"
	"github.com/sarthakjha889/go-placefinder-trie/internal/report"
)

const envPrefix = "PLACEFINDER"

// Config holds all configuration for a run.
type Config struct {
	Input       string           `mapstructure:"input"`
	Dictionary  DictionaryConfig `mapstructure:"dictionary"`
	Punctuation string           `mapstructure:"punctuation"`
	Format      string           `mapstructure:"format"`
	Stats       bool             `mapstructure:"stats"`
	Color       bool             `mapstructure:"color"`
	Log         LogConfig        `mapstructure:"log"`
}

// DictionaryConfig selects where accepted phrases come from. File wins over
// Builtin when both are set.
type DictionaryConfig struct {
	File    string `mapstructure:"file"`
	Builtin string `mapstructure:"builtin"`
}

// LogConfig holds logging related configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load builds a Config. configPath may be empty; flags may be nil.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input", "input.txt")
	v.SetDefault("dictionary.file", "")
	v.SetDefault("dictionary.builtin", dictionary.ASEAN)
	v.SetDefault("punctuation", "ascii")
	v.SetDefault("format", report.FormatText)
	v.SetDefault("stats", false)
	v.SetDefault("color", false)
	v.SetDefault("log.level", "warn")
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"input":       "input",
	"dictionary":  "dictionary.file",
	"builtin":     "dictionary.builtin",
	"punctuation": "punctuation",
	"format":      "format",
	"stats":       "stats",
	"color":       "color",
	"log-level":   "log.level",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input path is empty")
	}
	if _, err := c.SkipSet(); err != nil {
		return err
	}
	switch c.Format {
	case report.FormatText, report.FormatCSV, report.FormatHTML:
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", c.Format, report.FormatText, report.FormatCSV, report.FormatHTML)
	}
	return nil
}

// SkipSet returns the rune set a trie skips while matching.
func (c *Config) SkipSet() (runes.Set, error) {
	switch strings.ToLower(c.Punctuation) {
	case "", "ascii":
		return trie.ASCIIPunctuation, nil
	case "unicode":
		return trie.UnicodePunctuation, nil
	case "none":
		return trie.NoSkip, nil
	}
	return nil, fmt.Errorf("unknown punctuation set %q (want ascii, unicode or none)", c.Punctuation)
}

// Phrases resolves the configured dictionary.
func (c *Config) Phrases() ([]string, error) {
	if c.Dictionary.File != "" {
		return dictionary.Load(c.Dictionary.File)
	}
	return dictionary.Builtin(c.Dictionary.Builtin)
}
