package config

import (
	"fmt"
	"os"

	"github.com/dmitrijs2005/passkeeper/internal/common"
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds runtime settings for the passkeeper CLI.
//
// Fields:
//   - StorePath: file holding the credentials (JSON document or SQLite DB).
//   - Backend: "json" or "sqlite".
//   - AuditLogPath: JSONL audit log; empty disables auditing.
//   - DefaultLength: length used by "generate" when none is given.
//   - LogLevel / LogFormat: slog level name and "text" or "json".
type Config struct {
	StorePath     string
	Backend       string
	AuditLogPath  string
	DefaultLength int
	LogLevel      string
	LogFormat     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorePath = "passwords.json"
	c.Backend = BackendJSON
	c.AuditLogPath = ""
	c.DefaultLength = 12
	c.LogLevel = "warn"
	c.LogFormat = "text"
}

// Validate reports settings the application cannot run with.
func (c *Config) Validate() error {
	if c.StorePath == "" {
		return fmt.Errorf("%w: store path is empty", common.ErrInvalidArgument)
	}
	if c.Backend != BackendJSON && c.Backend != BackendSQLite {
		return fmt.Errorf("%w: unknown backend %q", common.ErrInvalidArgument, c.Backend)
	}
	if c.DefaultLength <= 0 {
		return fmt.Errorf("%w: default length must be positive, got %d", common.ErrInvalidArgument, c.DefaultLength)
	}
	return nil
}

// Load constructs a Config from args (without the program name): defaults,
// then the optional config file, then flags. Later sources take precedence.
// The remaining positional arguments are returned for command dispatch.
func Load(args []string) (*Config, []string, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, nil, err
	}

	rest, err := parseFlags(cfg, args)
	if err != nil {
		return nil, nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return cfg, rest, nil
}

// LoadConfig is Load over os.Args.
func LoadConfig() (*Config, []string, error) {
	return Load(os.Args[1:])
}
