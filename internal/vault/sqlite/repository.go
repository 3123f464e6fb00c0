// Package sqlite stores the credential mapping in a local SQLite database.
//
// It is an alternative to the JSON file backend. The schema is created by the
// goose migrations in internal/migrations; sealed copies are kept as a JSON
// blob in their own column.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/cryptox"
	"github.com/dmitrijs2005/passkeeper/internal/dbx"
	"github.com/dmitrijs2005/passkeeper/internal/filex"
	"github.com/dmitrijs2005/passkeeper/internal/migrations"
	"github.com/dmitrijs2005/passkeeper/internal/vault"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return gooseUpContext(ctx, db, ".")
}

// Repository implements vault.Repository on top of a *sql.DB.
type Repository struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and migrates it.
func Open(ctx context.Context, path string) (*Repository, error) {
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", common.ErrStorage, path, err)
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: migrate %s: %v", common.ErrStorage, path, err)
	}

	return &Repository{db: db}, nil
}

// NewRepository wraps an already migrated database.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Close releases the database.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Load returns every stored credential.
func (r *Repository) Load(ctx context.Context) (vault.Credentials, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT site, username, password, sealed FROM credentials`)
	if err != nil {
		return nil, fmt.Errorf("%w: select credentials: %v", common.ErrStorage, err)
	}
	defer rows.Close()

	creds := vault.Credentials{}
	for rows.Next() {
		var (
			site   string
			rec    vault.Record
			sealed []byte
		)
		if err := rows.Scan(&site, &rec.Username, &rec.PasswordHash, &sealed); err != nil {
			return nil, fmt.Errorf("%w: scan credential: %v", common.ErrStorage, err)
		}
		if len(sealed) > 0 {
			rec.Sealed = &cryptox.Sealed{}
			if err := json.Unmarshal(sealed, rec.Sealed); err != nil {
				return nil, fmt.Errorf("%w: sealed copy of %q: %v", common.ErrStorage, site, err)
			}
		}
		creds[site] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate credentials: %v", common.ErrStorage, err)
	}

	return creds, nil
}

// Save replaces the table contents with creds in a single transaction.
func (r *Repository) Save(ctx context.Context, creds vault.Credentials) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM credentials`); err != nil {
			return fmt.Errorf("clear credentials: %w", err)
		}

		for site, rec := range creds {
			var sealed []byte
			if rec.Sealed != nil {
				b, err := json.Marshal(rec.Sealed)
				if err != nil {
					return fmt.Errorf("encode sealed copy of %q: %w", site, err)
				}
				sealed = b
			}

			_, err := tx.ExecContext(ctx,
				`INSERT INTO credentials (site, username, password, sealed) VALUES (?, ?, ?, ?)`,
				site, rec.Username, rec.PasswordHash, sealed)
			if err != nil {
				return fmt.Errorf("insert %q: %w", site, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorage, err)
	}
	return nil
}
