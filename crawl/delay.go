package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/rndocs"
)

// DefaultInterval is the pause between consecutive page requests.
const DefaultInterval = 500 * time.Millisecond

var _ rndocs.Pacer = Delay{}

// Delay pauses for a fixed interval every time Wait is called.
// A zero interval does not pause.
type Delay struct {
	Interval time.Duration
}

// Wait blocks for the interval or until the context is canceled.
func (d Delay) Wait(ctx context.Context) error {
	if d.Interval <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d.Interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
