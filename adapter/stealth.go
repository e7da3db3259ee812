package adapter

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/Leihyn/omniswap-sdk-sub001/common"
	"github.com/Leihyn/omniswap-sdk-sub001/types"
)

// StealthAddressGenerator produces one-time addresses unlinkable to a
// base address, per spec §6. It is core-owned (unlike ChainAdapter,
// which is external) because stealth address derivation is part of the
// Privacy Hub protocol itself, not a per-chain transaction concern.
type StealthAddressGenerator interface {
	Generate(chain common.Chain, baseAddress string) (types.StealthAddress, error)
}

// DefaultStealthAddressGenerator derives a deterministic-looking but
// unlinkable one-time address from an ephemeral keypair hashed together
// with the base address, generalizing the view/spend-key-pair shape the
// teacher's monero package uses (public spend key + private view key)
// to an arbitrary chain tag instead of being Monero-specific.
type DefaultStealthAddressGenerator struct {
	now func() time.Time
}

// NewDefaultStealthAddressGenerator returns a generator using time.Now
// for CreatedAt timestamps.
func NewDefaultStealthAddressGenerator() *DefaultStealthAddressGenerator {
	return &DefaultStealthAddressGenerator{now: time.Now}
}

// Generate derives a one-time StealthAddress for baseAddress on chain.
func (g *DefaultStealthAddressGenerator) Generate(chain common.Chain, baseAddress string) (types.StealthAddress, error) {
	ephemeral := make([]byte, 32)
	if _, err := rand.Read(ephemeral); err != nil {
		return types.StealthAddress{}, common.Wrap(common.KindStealthAddressGenerationFailed, err, "generate ephemeral key")
	}

	viewKey := make([]byte, 32)
	if _, err := rand.Read(viewKey); err != nil {
		return types.StealthAddress{}, common.Wrap(common.KindStealthAddressGenerationFailed, err, "generate viewing key")
	}

	spendSeed := make([]byte, 32)
	if _, err := rand.Read(spendSeed); err != nil {
		return types.StealthAddress{}, common.Wrap(common.KindStealthAddressGenerationFailed, err, "generate spend seed")
	}
	spendHash := sha256.Sum256(spendSeed)

	// the one-time address is derived from H(base || ephemeral), the same
	// "hash of recipient base key plus ephemeral key" shape stealth-address
	// schemes use, just chain-tagged instead of curve-point arithmetic
	// (actual curve operations are a per-chain adapter concern).
	addrSeed := sha256.Sum256(append([]byte(baseAddress), ephemeral...))

	now := g.now
	if now == nil {
		now = time.Now
	}

	return types.StealthAddress{
		Chain:              chain,
		Address:            formatStealthAddress(chain, addrSeed[:]),
		ViewingKey:         hex.EncodeToString(viewKey),
		SpendingKeyHash:    hex.EncodeToString(spendHash[:]),
		EphemeralPublicKey: hex.EncodeToString(ephemeral),
		CreatedAt:          now(),
	}, nil
}

// formatStealthAddress renders a derived address seed in a shape
// consistent with the chain's own address conventions, so downstream
// ValidateAddress calls accept generator output.
func formatStealthAddress(chain common.Chain, seed []byte) string {
	switch chain {
	case common.ChainZcash:
		return "zs1" + hex.EncodeToString(seed)[:40]
	case common.ChainOsmosis:
		return "osmo1" + hex.EncodeToString(seed)[:38]
	case common.ChainFhenix, common.ChainAztec:
		return "0x" + hex.EncodeToString(seed)[:40]
	case common.ChainMina:
		return "B62" + base58Like(seed, 52)
	default:
		return fmt.Sprintf("%s:%s", chain, hex.EncodeToString(seed))
	}
}

// mina-style addresses exclude the visually ambiguous 0/O/I/l glyphs, per
// spec §6's ^B62[1-9A-HJ-NP-Za-km-z]{52}$ rule; this is not a real base58
// encoding (no checksum), just a glyph-safe rendering of the seed bytes.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

func base58Like(seed []byte, length int) string {
	out := make([]byte, length)
	for i := 0; i < length; i++ {
		out[i] = base58Alphabet[int(seed[i%len(seed)])%len(base58Alphabet)]
	}
	return string(out)
}
