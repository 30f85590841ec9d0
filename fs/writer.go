// Package fs provides file-based storage for downloaded documentation.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/rndocs"
)

// FormatDocument formats a document with its header: title, optional
// category line, and source URL.
func FormatDocument(doc *rndocs.Document) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(doc.Title())
	b.WriteString("\n\n")
	if doc.Set.ShowCategory {
		b.WriteString("Category: ")
		b.WriteString(doc.Page.Category)
		b.WriteString("\n")
	}
	b.WriteString("Source: ")
	b.WriteString(doc.SourceURL)
	b.WriteString("\n\n")
	b.WriteString(doc.Content)
	return b.String()
}

// Ensure Writer implements rndocs.DocumentWriter at compile time.
var _ rndocs.DocumentWriter = (*Writer)(nil)

// Writer writes documents as markdown files under a base directory, one
// subdirectory per page set.
//
// Pages that map to the same file name overwrite each other; the last one
// written wins.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// Prepare creates the set's output directory.
func (w *Writer) Prepare(ctx context.Context, set *rndocs.PageSet) error {
	return os.MkdirAll(filepath.Join(w.baseDir, set.Dir), 0755)
}

// Path returns the file the document is written to.
func (w *Writer) Path(doc *rndocs.Document) string {
	return filepath.Join(w.baseDir, doc.Set.Dir, doc.Set.FileName(doc.Page))
}

// WriteDocument writes a document to disk, replacing any existing file.
func (w *Writer) WriteDocument(ctx context.Context, doc *rndocs.Document) error {
	return os.WriteFile(w.Path(doc), []byte(FormatDocument(doc)), 0644)
}
