package main

import (
	"context"
	"io"

	"github.com/fwojciec/rndocs"
	"github.com/fwojciec/rndocs/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Registry *rndocs.Registry
	Pipeline *crawl.Pipeline
	Indexer  rndocs.IndexWriter
}

// DownloadCmd downloads the selected page sets and regenerates the indexes.
type DownloadCmd struct {
	Output   string
	ExpoOnly bool
	RNOnly   bool
}
