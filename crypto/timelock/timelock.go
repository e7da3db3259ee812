// Package timelock draws bounded, randomized HTLC expiries from a
// log-normal distribution, per spec §4.1. Random but bounded timelocks
// defeat timing analysis across swaps while preserving the invariant that
// the source leg always expires after the destination leg.
package timelock

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

// Params describes one leg's sampling distribution: a clamping range and
// the log-normal shape parameters.
type Params struct {
	Min    time.Duration
	Median time.Duration
	Max    time.Duration
	Sigma  float64
}

// SourceLeg is the spec §4.1 parameter set for a standard atomic swap's
// source-chain HTLC: 30min/90min/4h, sigma 0.45.
var SourceLeg = Params{
	Min:    30 * time.Minute,
	Median: 90 * time.Minute,
	Max:    4 * time.Hour,
	Sigma:  0.45,
}

// DestinationLeg is the spec §4.1 parameter set for a Privacy Hub swap's
// destination-chain HTLC: 15min/45min/90min, sigma 0.35. The standard
// coordinator (package htlc) does not use it; it derives its destination
// timelock from the sampled source timelock instead.
var DestinationLeg = Params{
	Min:    15 * time.Minute,
	Median: 45 * time.Minute,
	Max:    90 * time.Minute,
	Sigma:  0.35,
}

// Sample draws a future unix-second timestamp for the given leg
// parameters: a uniform u in [0,1) is converted to a standard normal z via
// Box-Muller, then value = clamp(median * exp(sigma*z), min, max), and the
// result is now + value.
func Sample(now time.Time, p Params) (time.Time, error) {
	z, err := standardNormal()
	if err != nil {
		return time.Time{}, fmt.Errorf("sample timelock: %w", err)
	}

	medianSeconds := p.Median.Seconds()
	value := medianSeconds * math.Exp(p.Sigma*z)

	minSeconds := p.Min.Seconds()
	maxSeconds := p.Max.Seconds()
	if value < minSeconds {
		value = minSeconds
	}
	if value > maxSeconds {
		value = maxSeconds
	}

	offset := time.Duration(value * float64(time.Second))
	return now.Add(offset), nil
}

// standardNormal draws a CSPRNG standard normal variate via the
// Box-Muller transform over two independent CSPRNG uniforms in [0,1).
func standardNormal() (float64, error) {
	u1, err := uniform()
	if err != nil {
		return 0, err
	}
	u2, err := uniform()
	if err != nil {
		return 0, err
	}

	// avoid log(0)
	if u1 <= 0 {
		u1 = math.SmallestNonzeroFloat64
	}

	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2), nil
}

// uniform draws a CSPRNG float64 in [0, 1) with 53 bits of randomness,
// the standard "random/crypto/rand to float64" construction.
func uniform() (float64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	const mantissaBits = 53
	v := binary.BigEndian.Uint64(buf[:]) >> (64 - mantissaBits)
	return float64(v) / float64(uint64(1)<<mantissaBits), nil
}

// SampleDuration draws a CSPRNG uniform duration in [min, max), used for
// the Privacy Hub's randomDelay.
func SampleDuration(min, max time.Duration) (time.Duration, error) {
	if max <= min {
		return min, nil
	}

	u, err := uniform()
	if err != nil {
		return 0, fmt.Errorf("sample duration: %w", err)
	}

	span := float64(max - min)
	return min + time.Duration(u*span), nil
}
