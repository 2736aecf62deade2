package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands.
type app struct {
	out    io.Writer
	errOut io.Writer
	log    *slog.Logger

	logLevel  string
	logFormat string
}

// newRootCmd wires the command tree writing results to out and logs to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, log: slog.Default()}

	rootCmd := &cobra.Command{
		Use:   "ibpsetup",
		Short: "Set up multi-loop integral reduction problems",
		Long: `ibpsetup enumerates the integral index tuples a reduction run targets
and assembles topology files into problem summaries.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(a.errOut, a.logLevel, a.logFormat)
			if err != nil {
				return err
			}
			a.log = log
			slog.SetDefault(log)
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "log format (text|json)")

	rootCmd.AddCommand(
		newEnumerateCmd(a),
		newPartitionsCmd(a),
		newProblemCmd(a),
	)

	return rootCmd
}

// newLogger builds a slog logger on w for the given level and format.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q: want text or json", format)
	}
}
