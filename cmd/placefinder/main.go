package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sarthakjha889/go-placefinder-trie/internal/config"
	"github.com/sarthakjha889/go-placefinder-trie/internal/dictionary"
	"github.com/sarthakjha889/go-placefinder-trie/internal/finder"
	"github.com/sarthakjha889/go-placefinder-trie/internal/report"
	"github.com/sarthakjha889/go-placefinder-trie/internal/tokenize"
)

const (
	exitOK               = 0
	exitInputUnavailable = 1
	exitUsage            = 2
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the CLI and returns the process exit code. Every failure is
// reported on stderr, independent of the configured log level.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return exitOK
	}
	fmt.Fprintln(stderr, "Error:", err)
	if errors.Is(err, tokenize.ErrInputUnavailable) {
		return exitInputUnavailable
	}
	return exitUsage
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "placefinder [input | --input path]",
		Short: "Report which words of a text are known place names",
		Long: `placefinder splits every line of the input on spaces and prints each
token followed by Accepted or Rejected, depending on whether the token matches
an entry of the place-name dictionary once punctuation is ignored.

The input file is given either as the single argument or with --input, not
both.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if cmd.Flags().Changed("input") {
					return fmt.Errorf("input given both as argument %q and with --input", args[0])
				}
				if err := cmd.Flags().Set("input", args[0]); err != nil {
					return err
				}
			}
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			logger := newLogger(stderr, cfg.Log.Level)
			if err := run(cfg, stdout, logger); err != nil {
				logger.Debug().Err(err).Str("input", cfg.Input).Msg("Placefinder failed")
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "config file (YAML)")
	flags.StringP("input", "i", "input.txt", "text file to scan")
	flags.StringP("dictionary", "d", "", "YAML dictionary file with a phrases list")
	flags.String("builtin", dictionary.ASEAN, "compiled-in dictionary: asean or world")
	flags.String("punctuation", "ascii", "runes ignored while matching: ascii, unicode or none")
	flags.StringP("format", "f", report.FormatText, "output format: text, csv or html")
	flags.Bool("stats", false, "print a summary after the verdicts")
	flags.Bool("color", false, "colour verdicts")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	return cmd
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().Timestamp().
		Logger()
}

func run(cfg *config.Config, stdout io.Writer, logger zerolog.Logger) error {
	phrases, err := cfg.Phrases()
	if err != nil {
		return err
	}
	skip, err := cfg.SkipSet()
	if err != nil {
		return err
	}
	matcher := dictionary.Build(phrases).WithSkip(skip)
	logger.Debug().
		Int("phrases", matcher.Len()).
		Int("nodes", matcher.Size()).
		Str("punctuation", cfg.Punctuation).
		Msg("Built trie")

	in, err := tokenize.Open(cfg.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	w, err := report.New(stdout, cfg.Format, cfg.Color)
	if err != nil {
		return err
	}
	summary, err := finder.Run(in, matcher, w, logger)
	if err != nil {
		return err
	}
	if cfg.Stats {
		if _, err := fmt.Fprintln(stdout, summary); err != nil {
			return err
		}
	}
	return nil
}
