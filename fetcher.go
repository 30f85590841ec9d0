package rndocs

import "context"

// Fetcher retrieves raw page content from URLs.
type Fetcher interface {
	// Fetch requests the URL and returns the whole response body.
	// Only transport failures are errors; the status code is not inspected.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
