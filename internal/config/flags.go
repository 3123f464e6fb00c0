package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/passkeeper/internal/flagx"
)

var (
	valueFlags = []string{
		"-s", "-b", "-audit", "-l", "-log-level", "-log-format",
		"-c", "-config", "--config",
	}
	knownFlags = valueFlags[:6]
)

// parseFlags populates Config fields from command-line flags and returns the
// positional arguments left after removing every flag this package knows.
//
// Supported flags:
//
//	-s string           credential store path
//	-b string           storage backend
//	-audit string       audit log path
//	-l int              default generated password length
//	-log-level string   log level
//	-log-format string  log format
//
// Note: args are filtered with flagx.FilterArgs first, so flags meant for
// other consumers and the command words do not reach the flag set.
func parseFlags(cfg *Config, args []string) ([]string, error) {
	filtered := flagx.FilterArgs(args, withDoubleDash(knownFlags))

	fs := flag.NewFlagSet("passkeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "credential store path")
	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "storage backend (json|sqlite)")
	fs.StringVar(&cfg.AuditLogPath, "audit", cfg.AuditLogPath, "audit log path (empty disables)")
	fs.IntVar(&cfg.DefaultLength, "l", cfg.DefaultLength, "default generated password length")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text|json)")

	if err := fs.Parse(filtered); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	return flagx.Positional(args, withDoubleDash(valueFlags), nil), nil
}

// withDoubleDash adds the "--name" spelling of every "-name" flag.
func withDoubleDash(flags []string) []string {
	out := make([]string, 0, len(flags)*2)
	for _, f := range flags {
		out = append(out, f)
		if len(f) > 1 && f[1] != '-' {
			out = append(out, "-"+f)
		}
	}
	return out
}
