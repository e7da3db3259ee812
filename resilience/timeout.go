package resilience

import (
	"context"
	"time"

	"github.com/Leihyn/omniswap-sdk-sub001/common"
)

// WithTimeout races fn against limit, returning a KindTimeout *common.SwapError
// carrying the limit if fn does not return in time. This is the only place
// besides Retry's AttemptTimeout where the core imposes a deadline on an
// adapter call, per spec §5 ("suspension points: ... any withTimeout race").
func WithTimeout(ctx context.Context, limit time.Duration, fn func(ctx context.Context) error) error {
	callCtx, cancel := context.WithTimeout(ctx, limit)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- fn(callCtx)
	}()

	select {
	case err := <-done:
		return err
	case <-callCtx.Done():
		return common.NewError(common.KindTimeout, "operation exceeded timeout of %s", limit).
			WithContext("limitMs", limit.String())
	}
}
