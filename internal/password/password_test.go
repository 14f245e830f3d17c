package password

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestMD5Hasher_KnownVectors(t *testing.T) {
	// Fixed digests — the stored format is deterministic, so these must
	// never change.
	tests := []struct {
		plaintext string
		want      string
	}{
		{"secret1", "e52d98c459819a11775936d8dfbb7929"},
		{"password123", "482c811da5d5b4bc6d497ffa98491e38"},
		{"hunter2", "2ab96390c7dbe3439de74d0c9b0b1767"},
	}

	h := MD5Hasher{}
	for _, tt := range tests {
		got, err := h.Hash(tt.plaintext)
		if err != nil {
			t.Fatalf("Hash(%q) error = %v", tt.plaintext, err)
		}
		if got != tt.want {
			t.Errorf("Hash(%q) = %q, want %q", tt.plaintext, got, tt.want)
		}
		if len(got) != 32 {
			t.Errorf("Hash(%q) length = %d, want 32", tt.plaintext, len(got))
		}
	}
}

func TestMD5Hasher_Deterministic(t *testing.T) {
	h := MD5Hasher{}
	first, _ := h.Hash("same-input")
	second, _ := h.Hash("same-input")
	if first != second {
		t.Errorf("same input produced different digests: %q vs %q", first, second)
	}
}

func TestMD5Hasher_Verify(t *testing.T) {
	h := MD5Hasher{}
	hash, _ := h.Hash("secret1")

	if err := h.Verify(hash, "secret1"); err != nil {
		t.Errorf("Verify() with correct password error = %v", err)
	}
	if err := h.Verify(hash, "wrong"); !errors.Is(err, ErrMismatch) {
		t.Errorf("Verify() with wrong password error = %v, want ErrMismatch", err)
	}
}

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	// MinCost keeps the test fast; the logic is cost-independent.
	h := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("hash %q is not in bcrypt format", hash)
	}
	if len(hash) != 60 {
		t.Errorf("hash length = %d, want 60 (must fit the password column)", len(hash))
	}

	if err := h.Verify(hash, "secret1"); err != nil {
		t.Errorf("Verify() with correct password error = %v", err)
	}
	if err := h.Verify(hash, "wrong"); !errors.Is(err, ErrMismatch) {
		t.Errorf("Verify() with wrong password error = %v, want ErrMismatch", err)
	}
}

// bcrypt salts, so equal inputs must produce different hashes — the property
// the legacy scheme lacks.
func TestBcryptHasher_Salted(t *testing.T) {
	h := NewBcryptHasherWithCost(bcrypt.MinCost)
	first, _ := h.Hash("same-input")
	second, _ := h.Hash("same-input")
	if first == second {
		t.Error("two bcrypt hashes of the same input are identical; salt missing?")
	}
}

func TestBcryptHasher_RejectsOverlongPassword(t *testing.T) {
	h := NewBcryptHasherWithCost(bcrypt.MinCost)
	_, err := h.Hash(strings.Repeat("x", 73))
	if err == nil {
		t.Error("Hash() accepted a 73-byte password; bcrypt would truncate it")
	}
}
