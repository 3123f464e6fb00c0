package vault

import "context"

// Repository persists the complete credential mapping.
//
// Load must return an empty, non-nil mapping when nothing has been saved yet
// and an error wrapping common.ErrStorage when stored data cannot be read.
// Save replaces everything previously stored.
type Repository interface {
	Load(ctx context.Context) (Credentials, error)
	Save(ctx context.Context, creds Credentials) error
}
