// Package secret generates and hashes the 32-byte preimages that back
// every HTLC hashlock in the swap core, mirroring the teacher's narrowly
// scoped crypto/secp256k1 and crypto/monero packages: one small package
// per cryptographic concern, no shared mutable state.
package secret

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
)

// Size is the fixed length, in bytes, of every swap secret.
const Size = 32

// Secret is a 32-byte HTLC preimage drawn from an OS-level CSPRNG.
type Secret [Size]byte

// Hashlock is the SHA-256 digest of a Secret, embedded in an HTLC on-chain.
type Hashlock [sha256.Size]byte

// Generate draws a new Secret from crypto/rand. Each call is independent;
// the Privacy Hub coordinator relies on that independence to produce two
// secrets with no cryptographic relationship to each other.
func Generate() (Secret, error) {
	var s Secret
	if _, err := rand.Read(s[:]); err != nil {
		return Secret{}, fmt.Errorf("generate secret: %w", err)
	}
	return s, nil
}

// Hash returns the SHA-256 hashlock for s. It is deterministic: the same
// secret always yields the same hashlock.
func Hash(s Secret) Hashlock {
	return sha256.Sum256(s[:])
}

// Bytes returns a copy of the secret's bytes.
func (s Secret) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, s[:])
	return b
}

// Bytes returns a copy of the hashlock's bytes.
func (h Hashlock) Bytes() []byte {
	b := make([]byte, len(h))
	copy(b, h[:])
	return b
}

func (h Hashlock) String() string {
	return fmt.Sprintf("%x", h[:])
}

// Equal reports whether two hashlocks are byte-identical.
func (h Hashlock) Equal(other Hashlock) bool {
	return h == other
}
