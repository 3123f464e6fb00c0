package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/cryptox"
	"github.com/dmitrijs2005/passkeeper/internal/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(filepath.Join(t.TempDir(), "passwords.json"))
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	r := newRepo(t)

	creds, err := r.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.Empty(t, creds)

	_, err = os.Stat(r.Path())
	assert.True(t, os.IsNotExist(err), "load must not create the file")
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	in := vault.Credentials{
		"site.com":  {Username: "alice", PasswordHash: cryptox.Digest("secret123")},
		"Site.com":  {Username: "bob", PasswordHash: cryptox.Digest("pw")},
		"other.org": {Username: "carol", PasswordHash: cryptox.Digest("x"), Sealed: &cryptox.Sealed{Salt: []byte{1}, Nonce: []byte{2}, Ciphertext: []byte{3}}},
	}
	require.NoError(t, r.Save(ctx, in))

	out, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSave_FileFormat(t *testing.T) {
	r := newRepo(t)
	require.NoError(t, r.Save(context.Background(), vault.Credentials{
		"site.com": {Username: "alice", PasswordHash: cryptox.Digest("secret123")},
	}))

	data, err := os.ReadFile(r.Path())
	require.NoError(t, err)

	var raw map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, map[string]map[string]any{
		"site.com": {
			"username": "alice",
			"password": "fcf730b6d95236ecd3c9fc2d92d7b6b2bb061514961aec041d6c7a7192f592e4",
		},
	}, raw)
	assert.Contains(t, string(data), "\n    \"site.com\": {")
}

func TestLoad_ReadsFileWrittenByOtherTools(t *testing.T) {
	r := newRepo(t)
	doc := `{
    "site.com": {
        "username": "alice",
        "password": "fcf730b6d95236ecd3c9fc2d92d7b6b2bb061514961aec041d6c7a7192f592e4"
    }
}`
	require.NoError(t, os.WriteFile(r.Path(), []byte(doc), 0o644))

	creds, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, vault.Record{Username: "alice", PasswordHash: cryptox.Digest("secret123")}, creds["site.com"])
}

func TestLoad_Unparseable(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"garbage", "{ this is not json"},
		{"array root", `[1, 2, 3]`},
		{"record is a string", `{"site.com": "alice"}`},
		{"empty file", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRepo(t)
			require.NoError(t, os.WriteFile(r.Path(), []byte(tt.doc), 0o600))

			_, err := r.Load(context.Background())
			require.ErrorIs(t, err, common.ErrStorage)
		})
	}
}

func TestLoad_NullRoot(t *testing.T) {
	r := newRepo(t)
	require.NoError(t, os.WriteFile(r.Path(), []byte("null"), 0o600))

	creds, err := r.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, creds)
	assert.Empty(t, creds)
}

func TestLoad_PathIsDirectory(t *testing.T) {
	r := NewRepository(t.TempDir())

	_, err := r.Load(context.Background())
	require.ErrorIs(t, err, common.ErrStorage)
}

func TestSave_CreatesParentDirAndOwnerOnlyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "passwords.json")
	r := NewRepository(path)

	require.NoError(t, r.Save(context.Background(), vault.Credentials{}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
}

func TestSave_OverwritesWholeFile(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, vault.Credentials{"a": {Username: "1"}, "b": {Username: "2"}}))
	require.NoError(t, r.Save(ctx, vault.Credentials{"c": {Username: "3"}}))

	creds, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, vault.Credentials{"c": {Username: "3"}}, creds)
}

func TestSave_NilMapWritesEmptyObject(t *testing.T) {
	r := newRepo(t)
	require.NoError(t, r.Save(context.Background(), nil))

	data, err := os.ReadFile(r.Path())
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

func TestSave_WriteFailure(t *testing.T) {
	old := writeFile
	writeFile = func(string, io.Reader) error { return errors.New("disk full") }
	t.Cleanup(func() { writeFile = old })

	r := newRepo(t)
	err := r.Save(context.Background(), vault.Credentials{"a": {}})
	require.ErrorIs(t, err, common.ErrStorage)
	assert.Contains(t, err.Error(), "disk full")
}

func TestSave_ParentIsFile(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "vault")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	r := NewRepository(filepath.Join(blocker, "passwords.json"))
	err := r.Save(context.Background(), vault.Credentials{})
	require.ErrorIs(t, err, common.ErrStorage)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newRepo(t)
	_, err := r.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, r.Save(ctx, vault.Credentials{}), context.Canceled)
}

var _ vault.Repository = (*Repository)(nil)
