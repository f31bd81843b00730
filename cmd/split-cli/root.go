package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	split "github.com/dshepsis/go-split"
	"github.com/dshepsis/go-split/internal/encode"
)

type options struct {
	delim     string
	skipEmpty bool
	ints      bool
	format    string
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "split-cli [flags] [TEXT...]",
		Short: "Split text on a delimiter",
		Long: `Split each TEXT argument on a delimiter and print the tokens.
With no arguments, every line read from stdin is split.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.delim, "delim", "d", ",", "Delimiter to split on")
	flags.BoolVar(&opts.skipEmpty, "skip-empty", false, "Drop empty tokens")
	flags.BoolVar(&opts.ints, "ints", false, "Parse every token as an integer")
	flags.StringVarP(&opts.format, "format", "f", string(encode.Text), "Output format: text, json or proto")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)

	format, err := encode.ParseFormat(opts.format)
	if err != nil {
		logger.Debug("invalid flag", "flag", "format", "error", err)
		return err
	}

	sp, err := split.New(opts.delim, split.WithSkipEmpty(opts.skipEmpty))
	if err != nil {
		logger.Debug("invalid flag", "flag", "delim", "error", err)
		return err
	}

	out := encode.NewWriter(cmd.OutOrStdout(), format)
	record := func(n int, text string) error {
		if opts.ints {
			nums, err := split.MapErr(sp, text, parseInt)
			if err != nil {
				logger.Debug("parsing tokens", "record", n, "error", err)
				return err
			}
			logger.Debug("split record", "record", n, "tokens", len(nums))
			return out.Ints(nums)
		}
		tokens := sp.Split(text)
		logger.Debug("split record", "record", n, "tokens", len(tokens))
		return out.Strings(tokens)
	}

	if len(args) > 0 {
		for i, text := range args {
			if err := record(i+1, text); err != nil {
				return err
			}
		}
		return nil
	}

	logger.Debug("reading stdin", "delim", sp.Delim(), "skip_empty", sp.SkipEmpty())
	n, err := eachLine(cmd.InOrStdin(), record)
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.New("no text provided")
	}
	return nil
}

// eachLine calls fn for every line of r with the line ending removed.
// Lines have no length limit; a final line without a newline still counts.
func eachLine(r io.Reader, fn func(n int, line string) error) (int, error) {
	br := bufio.NewReader(r)
	n := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return n, fmt.Errorf("reading stdin: %w", err)
		}
		if line == "" && err != nil {
			return n, nil
		}
		n++
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if ferr := fn(n, line); ferr != nil {
			return n, ferr
		}
		if err != nil {
			return n, nil
		}
	}
}
