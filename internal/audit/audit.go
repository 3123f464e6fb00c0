// Package audit records credential access to an append-only log.
//
// Each store, retrieve and reveal is written as one line of JSON. Secrets
// and digests are never part of an entry; only the site key and outcome are.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/filex"
	"github.com/google/uuid"
)

// Action describes what happened.
type Action string

const (
	ActionStore    Action = "credential_store"
	ActionRetrieve Action = "credential_retrieve"
	ActionReveal   Action = "credential_reveal"
)

// Outcome of the audited operation.
type Outcome string

const (
	OutcomeOK       Outcome = "ok"
	OutcomeNotFound Outcome = "not_found"
	OutcomeFailed   Outcome = "failed"
)

// Entry is a single audit log record.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"ts"`
	Action    Action    `json:"action"`
	Site      string    `json:"site"`
	Outcome   Outcome   `json:"outcome"`
	Sealed    bool      `json:"sealed,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// Recorder is what the vault needs from an audit sink.
type Recorder interface {
	Log(entry Entry) error
}

// Logger writes audit entries to an append-only file.
type Logger struct {
	mu   sync.Mutex
	file *os.File
	path string
}

// NewLogger creates or opens an audit log file for appending.
func NewLogger(path string) (*Logger, error) {
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	return &Logger{file: f, path: path}, nil
}

// Path returns the file the logger appends to.
func (l *Logger) Path() string {
	return l.path
}

// Log writes an audit entry, filling in ID and Timestamp when unset.
func (l *Logger) Log(entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling audit entry: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing audit entry: %w", err)
	}
	return nil
}

// Close closes the audit log file.
func (l *Logger) Close() error {
	return l.file.Close()
}

// Nop discards entries.
type Nop struct{}

func (Nop) Log(Entry) error { return nil }
