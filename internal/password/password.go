// Package password — password hashing behind a small interface.
//
// TWO SCHEMES:
// The billboard's storage format for passwords is a deterministic 32-char MD5
// hex digest: the create-user response echoes the stored digest back, and
// existing rows were written in that format. MD5Hasher preserves that
// contract and is the default.
//
// MD5 IS A WEAK SCHEME FOR PASSWORDS. It is fast, unsalted, and
// non-adaptive — two users with the same password get the same digest, and a
// GPU can grind through billions of candidates per second. It survives here
// only for compatibility with the stored format. Deployments that do not need
// digest compatibility should run with BcryptHasher instead
// (PASSWORD_SCHEME=bcrypt), which salts automatically and is deliberately
// slow.
//
// Both schemes produce output that fits the 60-character password column:
// 32 hex chars for MD5, 60 chars for bcrypt.
package password

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned by Verify when the plaintext does not match the
// stored hash.
var ErrMismatch = errors.New("password: mismatch")

// Hasher is the hashing scheme used by the user service.
// The service depends on this interface, so the scheme is chosen once at
// startup and injected — no package-level state.
type Hasher interface {
	// Hash transforms a plaintext password into its stored representation.
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches a stored hash.
	// Returns nil on match, ErrMismatch otherwise.
	Verify(hash, plaintext string) error
}

// MD5Hasher implements the legacy deterministic digest scheme.
// Stateless, so a zero value is ready to use.
type MD5Hasher struct{}

var _ Hasher = MD5Hasher{}

// Hash returns the lowercase hex MD5 digest of the plaintext.
// Deterministic: the same input always produces the same 32-char output.
func (MD5Hasher) Hash(plaintext string) (string, error) {
	sum := md5.Sum([]byte(plaintext))
	return hex.EncodeToString(sum[:]), nil
}

// Verify recomputes the digest and compares. MD5 digests are not secret
// per-user salted values, so a plain comparison is all there is.
func (h MD5Hasher) Verify(hash, plaintext string) error {
	computed, _ := h.Hash(plaintext)
	if computed != hash {
		return ErrMismatch
	}
	return nil
}

// defaultBcryptCost is the bcrypt work factor.
//
// COST TUNING RULE OF THUMB:
// Set cost so that hashing takes ~200–300ms on your production hardware.
// Too low → easy to crack. Too high → registration is sluggish and the server
// spends all its time on bcrypt during traffic spikes. Cost 12 is the current
// recommended minimum for new applications.
const defaultBcryptCost = 12

// BcryptHasher implements the salted adaptive scheme.
//
// It's a struct (not free functions) so the cost can be injected in tests —
// using the minimum cost (4) makes tests run much faster without changing the
// logic being tested.
type BcryptHasher struct {
	cost int
}

var _ Hasher = (*BcryptHasher)(nil)

// NewBcryptHasher creates a BcryptHasher with the default cost (12).
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: defaultBcryptCost}
}

// NewBcryptHasherWithCost creates a BcryptHasher with a custom cost.
// Intended for tests (bcrypt.MinCost = 4). Do NOT use low costs in
// production.
func NewBcryptHasherWithCost(cost int) *BcryptHasher {
	return &BcryptHasher{cost: cost}
}

// Hash hashes the plaintext with bcrypt. The output is self-contained — it
// embeds the salt and cost, so no separate salt column is needed.
//
// Returns an error for plaintexts over 72 bytes: bcrypt silently truncates
// beyond that, and we'd rather reject than surprise.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > 72 {
		return "", fmt.Errorf("password: must be 72 bytes or fewer")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("password: hashing: %w", err)
	}
	return string(hashed), nil
}

// Verify checks a plaintext against a stored bcrypt hash.
// bcrypt.CompareHashAndPassword compares in constant time, so this is safe
// against timing attacks.
func (h *BcryptHasher) Verify(hash, plaintext string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return fmt.Errorf("password: comparing hash: %w", err)
	}
	return nil
}
