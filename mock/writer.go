package mock

import (
	"context"

	"github.com/fwojciec/rndocs"
)

var _ rndocs.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of rndocs.DocumentWriter.
type DocumentWriter struct {
	PrepareFn       func(ctx context.Context, set *rndocs.PageSet) error
	WriteDocumentFn func(ctx context.Context, doc *rndocs.Document) error
}

func (w *DocumentWriter) Prepare(ctx context.Context, set *rndocs.PageSet) error {
	return w.PrepareFn(ctx, set)
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *rndocs.Document) error {
	return w.WriteDocumentFn(ctx, doc)
}

var _ rndocs.IndexWriter = (*IndexWriter)(nil)

// IndexWriter is a mock implementation of rndocs.IndexWriter.
type IndexWriter struct {
	WriteIndexesFn func(ctx context.Context) error
}

func (w *IndexWriter) WriteIndexes(ctx context.Context) error {
	return w.WriteIndexesFn(ctx)
}
