package crawl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/rndocs"
)

// Pipeline fetches, converts and writes every page of a set, strictly one
// page at a time and in registry order.
//
// A failed fetch is logged and skipped; the run continues with the next
// page. A failed write ends the run.
type Pipeline struct {
	Fetcher   rndocs.Fetcher
	Converter rndocs.Converter
	Writer    rndocs.DocumentWriter
	Pacer     rndocs.Pacer

	// Logger receives progress and per-page errors. Defaults to discarding.
	Logger *slog.Logger
}

// Run processes the page set and reports what was written.
// The pacer is consulted after every page, whether or not it succeeded.
func (p *Pipeline) Run(ctx context.Context, set *rndocs.PageSet) (*rndocs.RunResult, error) {
	if err := p.Writer.Prepare(ctx, set); err != nil {
		return nil, fmt.Errorf("prepare %s: %w", set.Name, err)
	}

	logger := p.logger().With("set", set.Name)
	logger.Info("downloading", "pages", len(set.Pages))

	result := &rndocs.RunResult{Set: set.Name}
	for _, page := range set.Pages {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		url := set.URL(page)
		markup, err := p.Fetcher.Fetch(ctx, url)
		if err != nil {
			logger.Error("fetch failed", "page", page.ID, "url", url, "err", err)
			result.Failed = append(result.Failed, page.ID)
		} else {
			doc := &rndocs.Document{
				Set:       set,
				Page:      page,
				SourceURL: url,
				Content:   p.Converter.Convert(markup),
			}
			if err := p.Writer.WriteDocument(ctx, doc); err != nil {
				return result, fmt.Errorf("write %s: %w", page.ID, err)
			}
			result.Written++
		}

		if err := p.Pacer.Wait(ctx); err != nil {
			return result, err
		}
	}

	logger.Info("done", "written", result.Written, "failed", len(result.Failed))
	return result, nil
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}
