// Package cryptox holds the hashing and sealing primitives used by the vault.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	// SaltSize is the length of the per-record argon2 salt.
	SaltSize = 16
	// KeySize selects AES-256.
	KeySize = 32
)

// randReader is a test seam for crypto/rand.
var randReader io.Reader = rand.Reader

// Digest returns the lowercase hex SHA-256 of password. It is unsalted and
// deterministic so that stored digests stay comparable across versions.
func Digest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// DeriveKey stretches a master password into an AES-256 key with argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, KeySize)
}

// Sealed is an AES-GCM ciphertext together with everything needed to open it
// except the master password. Byte fields marshal to base64 in JSON.
type Sealed struct {
	Salt       []byte `json:"salt"`
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
}

// Seal encrypts plaintext using AES-GCM under a key derived from master and a
// fresh random salt. A new random nonce is generated for each call.
func Seal(plaintext string, master []byte) (*Sealed, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(randReader, salt); err != nil {
		return nil, fmt.Errorf("salt: %w", err)
	}

	aesgcm, err := newGCM(DeriveKey(master, salt))
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := io.ReadFull(randReader, nonce); err != nil {
		return nil, fmt.Errorf("nonce: %w", err)
	}

	ciphertext := aesgcm.Seal(nil, nonce, []byte(plaintext), nil)

	return &Sealed{Salt: salt, Nonce: nonce, Ciphertext: ciphertext}, nil
}

// Open reverses Seal. A wrong master password or tampered data yields an
// error wrapping common.ErrDecrypt.
func Open(s *Sealed, master []byte) (string, error) {
	if s == nil {
		return "", common.ErrNotSealed
	}

	aesgcm, err := newGCM(DeriveKey(master, s.Salt))
	if err != nil {
		return "", err
	}

	if len(s.Nonce) != aesgcm.NonceSize() {
		return "", fmt.Errorf("%w: bad nonce length %d", common.ErrDecrypt, len(s.Nonce))
	}

	plaintext, err := aesgcm.Open(nil, s.Nonce, s.Ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDecrypt, err)
	}

	return string(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Wipe overwrites b with zeros. Use it on master passwords once done.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
