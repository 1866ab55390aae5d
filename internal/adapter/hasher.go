package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/zeebo/blake3"
)

// Hash algorithm names accepted by NewHasher.
const (
	HashSHA256 = "sha256"
	HashBLAKE3 = "blake3"
)

// ErrUnknownHasher is returned by NewHasher for unsupported algorithm names.
var ErrUnknownHasher = errors.New("unknown hash algorithm")

// Hasher turns an identity string into a fixed length, filename safe digest.
type Hasher interface {
	Name() string
	Sum(data []byte) string
}

// SHA256Hasher renders SHA-256 digests as lowercase hex.
type SHA256Hasher struct{}

// Name implements Hasher.
func (SHA256Hasher) Name() string { return HashSHA256 }

// Sum implements Hasher.
func (SHA256Hasher) Sum(data []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(data))
}

// BLAKE3Hasher renders 256-bit BLAKE3 digests as lowercase hex.
type BLAKE3Hasher struct{}

// Name implements Hasher.
func (BLAKE3Hasher) Name() string { return HashBLAKE3 }

// Sum implements Hasher.
func (BLAKE3Hasher) Sum(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// NewHasher returns the hasher registered under name. An empty name selects SHA-256.
func NewHasher(name string) (Hasher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", HashSHA256:
		return SHA256Hasher{}, nil
	case HashBLAKE3:
		return BLAKE3Hasher{}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownHasher, name)
}
