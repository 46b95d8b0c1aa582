// Package secrets performs authenticated encryption and decryption of
// files stored under the repository's Secrets category.
//
// One Session lives per command invocation. Its symmetric key is the
// SHA-256 hash of a passphrase; the raw passphrase bytes are overwritten
// as soon as the key is derived, and the derived key is zeroed when the
// session is closed. Files are stored as a random 24-byte nonce followed
// by the XChaCha20-Poly1305 ciphertext and tag; a fresh nonce is drawn
// for every file.
package secrets

import (
	"bytes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"os"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/tuck-sh/tuck/pkg/config"
	"github.com/tuck-sh/tuck/pkg/errors"
	"github.com/tuck-sh/tuck/pkg/logging"
	"github.com/tuck-sh/tuck/pkg/repo"
)

var log = logging.GetLogger("secrets")

// NonceSize is the length of the nonce prefix on every encrypted file.
const NonceSize = chacha20poly1305.NonceSizeX

// Session holds the state for one secrets command invocation: the derived
// symmetric key and the resolved repository root. It is not safe for
// concurrent use and must be closed on every exit path.
type Session struct {
	settings config.Settings
	root     string
	key      []byte
	aead     cipher.AEAD
}

// NewSession derives the session key from the passphrase and resolves the
// repository root for the profile. The passphrase slice is overwritten
// before NewSession returns, on success and on failure. Fails with
// REPOSITORY_NOT_FOUND when no repository can be located.
func NewSession(s config.Settings, profile string, passphrase []byte) (*Session, error) {
	sum := sha256.Sum256(bytes.TrimSpace(passphrase))
	Zero(passphrase)

	root, err := repo.Locate(s, profile)
	if err != nil {
		Zero(sum[:])
		return nil, err
	}

	aead, err := chacha20poly1305.NewX(sum[:])
	if err != nil {
		Zero(sum[:])
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to initialize cipher")
	}

	return &Session{
		settings: s,
		root:     root,
		key:      sum[:],
		aead:     aead,
	}, nil
}

// Close zeroes the derived key. Safe to call more than once.
func (s *Session) Close() {
	Zero(s.key)
}

// Root returns the repository root the session operates on.
func (s *Session) Root() string {
	return s.root
}

// Seal encrypts plaintext under the session key with a fresh random
// nonce and returns the nonce followed by ciphertext and tag.
func (s *Session) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, NonceSize, NonceSize+len(plaintext)+s.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, errors.Wrap(err, errors.ErrEncryptionFailed, "failed to generate nonce")
	}
	return s.aead.Seal(nonce, nonce[:NonceSize], plaintext, nil), nil
}

// EncryptFile reads and encrypts one file. Fails with FILE_NOT_FOUND when
// the file cannot be read.
func (s *Session) EncryptFile(path string) ([]byte, error) {
	plaintext, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileNotFound, "no such file or directory: %s", path)
	}
	return s.Seal(plaintext)
}

// Decrypt splits a stored buffer into its nonce prefix and ciphertext and
// decrypts it. Fails with DECRYPTION_FAILED on tag mismatch, which means
// a wrong passphrase or corrupted data.
func (s *Session) Decrypt(data []byte) ([]byte, error) {
	if len(data) < NonceSize+s.aead.Overhead() {
		return nil, errors.New(errors.ErrDecryptionFailed, "encrypted data is truncated")
	}

	nonce, ciphertext := data[:NonceSize], data[NonceSize:]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDecryptionFailed,
			"couldn't decrypt: wrong passphrase or corrupted data")
	}
	return plaintext, nil
}

// DecryptFile reads and decrypts one stored file. Fails with
// ENCRYPTED_READ_FAILED when the file cannot be read.
func (s *Session) DecryptFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEncryptedReadFailed, "couldn't read %s", path)
	}
	return s.Decrypt(data)
}

// Zero overwrites a sensitive byte slice in place.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
