// Package main contains the ivtree CLI: load BED files into a genome
// index per an ingestion manifest, and run point/range queries against it.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// RFC3339Milli is the RFC3339 format with milliseconds precision.
const RFC3339Milli = "2006-01-02T15:04:05.000Z07:00"

// Log levels accepted by the --log-level flag.
const (
	LogLevelTrace = "trace"
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

var logLevel string

func parseLogLevel(level string) (zerolog.Level, error) {
	switch level {
	case LogLevelTrace:
		return zerolog.TraceLevel, nil
	case LogLevelDebug:
		return zerolog.DebugLevel, nil
	case LogLevelInfo:
		return zerolog.InfoLevel, nil
	case LogLevelWarn:
		return zerolog.WarnLevel, nil
	case LogLevelError:
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("invalid log level %q", level)
	}
}

func configureLogger(level string) {
	zerolog.TimeFieldFormat = RFC3339Milli
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	parsed, err := parseLogLevel(level)
	if err != nil {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Warn().Str("level", level).Msg("invalid log level, defaulting to info")
		return
	}
	zerolog.SetGlobalLevel(parsed)
}

func rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ivtree",
		Short: "Load and query genomic interval data backed by a centered interval tree",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logLevel)
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", LogLevelInfo, "log level: trace, debug, info, warn, error")

	cmd.AddCommand(loadCommand())
	cmd.AddCommand(queryCommand())
	return cmd
}

func main() {
	if err := rootCommand().Execute(); err != nil {
		log.Fatal().Err(err).Msg("ivtree failed")
	}
}
