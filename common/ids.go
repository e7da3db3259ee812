package common

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateSwapID returns a new swap identifier of the form
// "swap_<unix-ms>_<16 hex chars>", per spec §6.
func GenerateSwapID(nowUnixMilli int64) (string, error) {
	suffix, err := randomHex(8)
	if err != nil {
		return "", fmt.Errorf("generate swap id: %w", err)
	}
	return fmt.Sprintf("swap_%d_%s", nowUnixMilli, suffix), nil
}

// GenerateIntentID returns a new intent identifier of the form
// "intent_<swap-id>_<unix-ms>", per spec §6. It is called "swap-id" in the
// spec loosely to mean "a swap-id-shaped unique token"; intents are not
// required to already have an associated swap.
func GenerateIntentID(swapLikeID string, nowUnixMilli int64) string {
	return fmt.Sprintf("intent_%s_%d", swapLikeID, nowUnixMilli)
}

// GenerateRouteID returns a new route identifier of the form
// "route_<unix-ms>_<random suffix>", per spec §6.
func GenerateRouteID(nowUnixMilli int64) (string, error) {
	suffix, err := randomHex(4)
	if err != nil {
		return "", fmt.Errorf("generate route id: %w", err)
	}
	return fmt.Sprintf("route_%d_%s", nowUnixMilli, suffix), nil
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
