// Package jsonfile stores the credential mapping in a single JSON file.
//
// The file's root is an object keyed by site:
//
//	{
//	    "site.com": {
//	        "username": "alice",
//	        "password": "<sha256 hex>"
//	    }
//	}
//
// A missing file is an empty store. Writes replace the whole file through a
// temporary file and rename, so a crash never leaves half a document behind.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/filex"
	"github.com/dmitrijs2005/passkeeper/internal/vault"
	"github.com/natefinch/atomic"
)

const fileMode os.FileMode = 0o600

// writeFile is a test seam for atomic.WriteFile.
var writeFile = atomic.WriteFile

// Repository implements vault.Repository over a JSON file at path.
type Repository struct {
	path string
}

// NewRepository returns a Repository for path. The file is not touched until
// the first Load or Save.
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Path returns the backing file path.
func (r *Repository) Path() string {
	return r.path
}

// Load reads and parses the file. A missing file yields an empty mapping.
func (r *Repository) Load(ctx context.Context) (vault.Credentials, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return vault.Credentials{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", common.ErrStorage, r.path, err)
	}

	creds := vault.Credentials{}
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", common.ErrStorage, r.path, err)
	}
	// a literal null decodes into a nil map
	if creds == nil {
		creds = vault.Credentials{}
	}

	return creds, nil
}

// Save writes creds as indented JSON, replacing the previous file atomically.
func (r *Repository) Save(ctx context.Context, creds vault.Credentials) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if creds == nil {
		creds = vault.Credentials{}
	}

	data, err := json.MarshalIndent(creds, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encode: %v", common.ErrStorage, err)
	}
	data = append(data, '\n')

	if err := filex.EnsureParentDir(r.path); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	if err := writeFile(r.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: write %s: %v", common.ErrStorage, r.path, err)
	}

	// owner-only, also for files created by older versions with 0644
	if err := os.Chmod(r.path, fileMode); err != nil {
		return fmt.Errorf("%w: chmod %s: %v", common.ErrStorage, r.path, err)
	}

	return nil
}
