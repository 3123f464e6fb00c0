package vault

import "github.com/dmitrijs2005/passkeeper/internal/cryptox"

// Record is the credential stored for one site. PasswordHash keeps the JSON
// name "password" for compatibility with existing files even though it holds
// a hex digest.
type Record struct {
	Username     string          `json:"username"`
	PasswordHash string          `json:"password"`
	Sealed       *cryptox.Sealed `json:"sealed,omitempty"`
}

// Credentials maps site keys (case-sensitive) to records.
type Credentials map[string]Record
