// Package vault is the credential store: a mapping from site key to a
// username and password digest, persisted through a Repository.
//
// # Overview
//
// Every operation loads the whole mapping from the repository, works on it and
// (for writes) saves the whole mapping back. Nothing is cached between calls,
// so the persisted file or database is the only source of truth and changes
// made by another process are visible on the next call.
//
// # Concurrency
//
// There is no locking. Two processes storing at the same time race and the
// last writer wins. The tool is meant for a single local user.
//
// # Sealed copies
//
// The stored digest cannot give the original password back. StoreSealed
// additionally keeps an AES-GCM copy under a master password, which Reveal
// can open. Plain Store and Retrieve never touch sealed data except to drop a
// stale copy when a record is overwritten.
//
// Key Types
//
//   - type Record      : one stored credential
//   - type Credentials : the full site -> Record mapping
//   - type Repository  : Load/Save of the full mapping
//   - type Service     : Store, StoreSealed, Retrieve, Reveal
package vault
