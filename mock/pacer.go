package mock

import (
	"context"

	"github.com/fwojciec/rndocs"
)

var _ rndocs.Pacer = (*Pacer)(nil)

// Pacer is a mock implementation of rndocs.Pacer.
type Pacer struct {
	WaitFn func(ctx context.Context) error
}

func (p *Pacer) Wait(ctx context.Context) error {
	return p.WaitFn(ctx)
}
