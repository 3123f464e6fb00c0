package vault

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/dmitrijs2005/passkeeper/internal/audit"
	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/cryptox"
	"github.com/dmitrijs2005/passkeeper/internal/logging"
)

// Service implements the credential store operations on top of a Repository.
type Service struct {
	repo   Repository
	logger logging.Logger
	audit  audit.Recorder
}

// NewService wires a Service. A nil recorder disables auditing.
func NewService(repo Repository, logger logging.Logger, recorder audit.Recorder) *Service {
	if recorder == nil {
		recorder = audit.Nop{}
	}
	return &Service{repo: repo, logger: logger.With("component", "vault"), audit: recorder}
}

// Store saves username and the digest of password under site, replacing any
// earlier record for that site, and returns a confirmation message.
func (s *Service) Store(ctx context.Context, site, username, password string) (string, error) {
	return s.store(ctx, site, Record{Username: username, PasswordHash: cryptox.Digest(password)})
}

// StoreSealed behaves like Store and additionally keeps a copy of password
// sealed under master, so that Reveal can return it later.
func (s *Service) StoreSealed(ctx context.Context, site, username, password string, master []byte) (string, error) {
	if len(master) == 0 {
		return "", fmt.Errorf("%w: empty master password", common.ErrInvalidArgument)
	}

	sealed, err := cryptox.Seal(password, master)
	if err != nil {
		return "", fmt.Errorf("sealing password: %w", err)
	}

	return s.store(ctx, site, Record{
		Username:     username,
		PasswordHash: cryptox.Digest(password),
		Sealed:       sealed,
	})
}

func (s *Service) store(ctx context.Context, site string, rec Record) (string, error) {
	entry := audit.Entry{Action: audit.ActionStore, Site: site, Sealed: rec.Sealed != nil}

	// JSON cannot carry invalid UTF-8 keys unchanged
	if !utf8.ValidString(site) || !utf8.ValidString(rec.Username) {
		err := fmt.Errorf("%w: site and username must be valid UTF-8", common.ErrInvalidArgument)
		s.record(ctx, entry, err)
		return "", err
	}

	creds, err := s.repo.Load(ctx)
	if err != nil {
		s.record(ctx, entry, err)
		return "", fmt.Errorf("loading credentials: %w", err)
	}

	_, existed := creds[site]
	creds[site] = rec

	if err := s.repo.Save(ctx, creds); err != nil {
		s.record(ctx, entry, err)
		return "", fmt.Errorf("saving credentials: %w", err)
	}

	s.record(ctx, entry, nil)
	s.logger.Info(ctx, "credential stored", "site", site, "overwritten", existed, "sealed", rec.Sealed != nil)

	return fmt.Sprintf("Password for %s saved successfully!", site), nil
}

// Retrieve returns the record stored for site. The boolean is false when no
// record exists; that is a normal result, not an error.
func (s *Service) Retrieve(ctx context.Context, site string) (Record, bool, error) {
	entry := audit.Entry{Action: audit.ActionRetrieve, Site: site}

	creds, err := s.repo.Load(ctx)
	if err != nil {
		s.record(ctx, entry, err)
		return Record{}, false, fmt.Errorf("loading credentials: %w", err)
	}

	rec, ok := creds[site]
	if !ok {
		s.record(ctx, entry, common.ErrorNotFound)
		s.logger.Debug(ctx, "credential not found", "site", site)
		return Record{}, false, nil
	}

	entry.Sealed = rec.Sealed != nil
	s.record(ctx, entry, nil)
	s.logger.Debug(ctx, "credential retrieved", "site", site)

	return rec, true, nil
}

// Reveal opens the sealed copy stored for site with master. It fails with
// common.ErrorNotFound for unknown sites, common.ErrNotSealed when the record
// has only a digest, and common.ErrDecrypt for a wrong master password.
func (s *Service) Reveal(ctx context.Context, site string, master []byte) (string, error) {
	entry := audit.Entry{Action: audit.ActionReveal, Site: site}

	creds, err := s.repo.Load(ctx)
	if err != nil {
		s.record(ctx, entry, err)
		return "", fmt.Errorf("loading credentials: %w", err)
	}

	rec, ok := creds[site]
	if !ok {
		s.record(ctx, entry, common.ErrorNotFound)
		return "", fmt.Errorf("site %q: %w", site, common.ErrorNotFound)
	}
	if rec.Sealed == nil {
		s.record(ctx, entry, common.ErrNotSealed)
		return "", fmt.Errorf("site %q: %w", site, common.ErrNotSealed)
	}

	entry.Sealed = true
	password, err := cryptox.Open(rec.Sealed, master)
	if err != nil {
		s.record(ctx, entry, err)
		s.logger.Warn(ctx, "reveal failed", "site", site, "error", err)
		return "", fmt.Errorf("site %q: %w", site, err)
	}

	s.record(ctx, entry, nil)
	s.logger.Info(ctx, "credential revealed", "site", site)

	return password, nil
}

// record writes an audit entry. Audit failures are logged, never returned.
func (s *Service) record(ctx context.Context, entry audit.Entry, opErr error) {
	switch {
	case opErr == nil:
		entry.Outcome = audit.OutcomeOK
	case errors.Is(opErr, common.ErrorNotFound):
		entry.Outcome = audit.OutcomeNotFound
	default:
		entry.Outcome = audit.OutcomeFailed
		entry.Error = opErr.Error()
	}

	if err := s.audit.Log(entry); err != nil {
		s.logger.Warn(ctx, "audit log write failed", "error", err)
	}
}
