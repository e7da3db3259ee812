package common

import (
	"fmt"
	"math/big"
	"strings"
)

// Amount is an integer quantity of an asset's smallest unit (like
// piconero for Monero or wei for Ether in the teacher's common.MoneroAmount
// and common.EtherAmount), paired with the decimal precision needed to
// render it in human units. It is the one bigint-backed type every
// component (intents, routes, HTLC status, refund entries) uses, so
// amounts never round-trip through float64.
type Amount struct {
	units    *big.Int
	decimals uint8
}

// NewAmount builds an Amount from its smallest-unit integer value.
func NewAmount(units *big.Int, decimals uint8) Amount {
	if units == nil {
		units = big.NewInt(0)
	}
	return Amount{units: new(big.Int).Set(units), decimals: decimals}
}

// ZeroAmount returns a zero-valued Amount with the given decimals.
func ZeroAmount(decimals uint8) Amount {
	return NewAmount(big.NewInt(0), decimals)
}

// Units returns the smallest-unit integer value. The returned *big.Int is
// a copy and safe to mutate.
func (a Amount) Units() *big.Int {
	if a.units == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(a.units)
}

// Decimals returns the asset's decimal precision.
func (a Amount) Decimals() uint8 {
	return a.decimals
}

// Sign returns -1, 0, or 1 matching big.Int.Sign semantics.
func (a Amount) Sign() int {
	if a.units == nil {
		return 0
	}
	return a.units.Sign()
}

// IsPositive reports whether a > 0.
func (a Amount) IsPositive() bool {
	return a.Sign() > 0
}

// Add returns a+b. Both amounts must share the same decimal precision.
func (a Amount) Add(b Amount) Amount {
	return NewAmount(new(big.Int).Add(a.Units(), b.Units()), a.decimals)
}

// Sub returns a-b. Both amounts must share the same decimal precision.
func (a Amount) Sub(b Amount) Amount {
	return NewAmount(new(big.Int).Sub(a.Units(), b.Units()), a.decimals)
}

// Cmp compares a and b, -1/0/1 as per big.Int.Cmp.
func (a Amount) Cmp(b Amount) int {
	return a.Units().Cmp(b.Units())
}

// MulRate multiplies a by a rate expressed as a fraction num/den (used for
// fee-rate application: fee = floor(amount * feeRate)). It floors toward
// zero, matching the spec's `fee = floor(amount * feeRate)`.
func (a Amount) MulRate(num, den int64) Amount {
	n := new(big.Int).Mul(a.Units(), big.NewInt(num))
	n.Div(n, big.NewInt(den))
	return NewAmount(n, a.decimals)
}

// String renders the amount in human units, e.g. "1.50000000".
func (a Amount) String() string {
	return FormatAmount(a.Units(), a.decimals)
}

// FormatAmount renders units (an integer count of the smallest unit) as a
// decimal string with the given precision. Used directly by the refund
// manager's persisted state, which stores amounts as decimal strings for
// portability across processes.
func FormatAmount(units *big.Int, decimals uint8) string {
	if units == nil {
		units = big.NewInt(0)
	}

	neg := units.Sign() < 0
	abs := new(big.Int).Abs(units)
	s := abs.String()

	if decimals == 0 {
		if neg {
			return "-" + s
		}
		return s
	}

	for len(s) <= int(decimals) {
		s = "0" + s
	}

	intPart := s[:len(s)-int(decimals)]
	fracPart := s[len(s)-int(decimals):]

	out := intPart + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// ParseAmount parses a decimal string (as produced by FormatAmount) back
// into an integer count of the smallest unit at the given precision.
// ParseAmount(FormatAmount(x, d), d) == x for every x >= 0, d >= 0.
func ParseAmount(s string, decimals uint8) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty amount string")
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart = s[:idx]
		fracPart = s[idx+1:]
	}

	if intPart == "" {
		intPart = "0"
	}

	if len(fracPart) > int(decimals) {
		return nil, fmt.Errorf("amount %q has more than %d fractional digits", s, decimals)
	}
	for len(fracPart) < int(decimals) {
		fracPart += "0"
	}

	combined := intPart + fracPart
	units, ok := new(big.Int).SetString(combined, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount string %q", s)
	}

	if neg {
		units.Neg(units)
	}

	return units, nil
}
