// Package config loads runtime configuration for the passkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c or -config. Files ending in .yaml
//     or .yml are read as YAML, anything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string           credential store path
//	-b string           storage backend: json | sqlite
//	-audit string       audit log path (empty disables)
//	-l int              default generated password length
//	-log-level string   debug | info | warn | error
//	-log-format string  text | json
//
// # File schema
//
//	{
//	  "store_path": "passwords.json",
//	  "backend": "json",
//	  "audit_log_path": "audit.log",
//	  "default_length": 16,
//	  "log_level": "info",
//	  "log_format": "text"
//	}
//
// Keys absent from the file keep their default values.
//
// Note: This package does not read environment variables.
package config
