package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/passkeeper/internal/flagx"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for decoding config files. Pointer
// fields tell "absent" apart from zero values so only keys present in the
// file override the defaults.
type FileConfig struct {
	StorePath     *string `json:"store_path" yaml:"store_path"`
	Backend       *string `json:"backend" yaml:"backend"`
	AuditLogPath  *string `json:"audit_log_path" yaml:"audit_log_path"`
	DefaultLength *int    `json:"default_length" yaml:"default_length"`
	LogLevel      *string `json:"log_level" yaml:"log_level"`
	LogFormat     *string `json:"log_format" yaml:"log_format"`
}

// parseFile overlays cfg with values from the file named by -c/-config in
// args. Without such a flag nothing happens.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlags(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc *FileConfig) apply(cfg *Config) {
	if fc.StorePath != nil {
		cfg.StorePath = *fc.StorePath
	}
	if fc.Backend != nil {
		cfg.Backend = *fc.Backend
	}
	if fc.AuditLogPath != nil {
		cfg.AuditLogPath = *fc.AuditLogPath
	}
	if fc.DefaultLength != nil {
		cfg.DefaultLength = *fc.DefaultLength
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		cfg.LogFormat = *fc.LogFormat
	}
}
