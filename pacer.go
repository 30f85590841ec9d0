package rndocs

import "context"

// Pacer spaces out consecutive requests.
type Pacer interface {
	// Wait blocks for the pause that follows a page.
	// Returns an error if the context is canceled first.
	Wait(ctx context.Context) error
}
