package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_parseFile_JSON(t *testing.T) {
	path := writeTempFile(t, "cfg.json", `{
  "store_path": "/var/lib/pk/passwords.json",
  "backend": "sqlite",
  "default_length": 24
}`)

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, parseFile(cfg, []string{"-config", path}))

	assert.Equal(t, "/var/lib/pk/passwords.json", cfg.StorePath)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, 24, cfg.DefaultLength)
	assert.Equal(t, "warn", cfg.LogLevel, "absent keys keep defaults")
}

func Test_parseFile_YAML(t *testing.T) {
	path := writeTempFile(t, "cfg.yaml", `
store_path: vault.db
backend: sqlite
audit_log_path: audit.log
log_level: debug
log_format: json
`)

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, parseFile(cfg, []string{"-c", path}))

	assert.Equal(t, "vault.db", cfg.StorePath)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "audit.log", cfg.AuditLogPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 12, cfg.DefaultLength)
}

func Test_parseFile_NoFlagNoChanges(t *testing.T) {
	cfg := &Config{StorePath: "keep.json", DefaultLength: 42}
	require.NoError(t, parseFile(cfg, []string{"generate"}))

	assert.Equal(t, "keep.json", cfg.StorePath)
	assert.Equal(t, 42, cfg.DefaultLength)
}

func Test_parseFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg := &Config{}
		require.Error(t, parseFile(cfg, []string{"-c", filepath.Join(t.TempDir(), "nope.json")}))
	})

	t.Run("invalid JSON", func(t *testing.T) {
		path := writeTempFile(t, "bad.json", `{ this is not valid json`)
		require.Error(t, parseFile(&Config{}, []string{"-c", path}))
	})

	t.Run("invalid YAML", func(t *testing.T) {
		path := writeTempFile(t, "bad.yml", "default_length: [1, 2")
		require.Error(t, parseFile(&Config{}, []string{"-c", path}))
	})
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	path := writeTempFile(t, "cfg.json", `{"store_path": "from-file.json", "default_length": 20}`)

	cfg, rest, err := Load([]string{"-c", path, "-s", "from-flag.json", "generate"})
	require.NoError(t, err)

	assert.Equal(t, "from-flag.json", cfg.StorePath)
	assert.Equal(t, 20, cfg.DefaultLength)
	assert.Equal(t, []string{"generate"}, rest)
}
