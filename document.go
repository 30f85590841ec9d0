package rndocs

import "context"

// Document is a converted page ready to be persisted.
type Document struct {
	Set       *PageSet
	Page      Page
	SourceURL string
	Content   string // Markdown
}

// Title returns the header title of the document.
func (d *Document) Title() string {
	return d.Set.Title(d.Page)
}

// DocumentWriter persists documents, one file per page.
type DocumentWriter interface {
	// Prepare makes the set's output location ready for writing.
	Prepare(ctx context.Context, set *PageSet) error

	// WriteDocument persists the document, replacing any previous version.
	WriteDocument(ctx context.Context, doc *Document) error
}

// IndexWriter regenerates the index documents from what is on disk.
type IndexWriter interface {
	WriteIndexes(ctx context.Context) error
}

// RunResult summarizes the processing of one page set.
type RunResult struct {
	Set     string
	Written int

	// Failed lists the IDs of pages whose fetch failed, in order.
	Failed []string
}
