package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/fwojciec/rndocs"
	"github.com/fwojciec/rndocs/crawl"
	"github.com/fwojciec/rndocs/fs"
	rnhttp "github.com/fwojciec/rndocs/http"
	"github.com/fwojciec/rndocs/regex"
	rnslog "github.com/fwojciec/rndocs/slog"
	"github.com/fwojciec/rndocs/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Interval is the pause between page requests.
	Interval time.Duration
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Interval: crawl.DefaultInterval}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("rndocs"),
		kong.Description("Download Expo and React Native documentation as Markdown"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if slices.Contains(args, "--help") || slices.Contains(args, "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.ExpoOnly && cli.RNOnly {
		return rndocs.Errorf(rndocs.ECONFLICT, "--expo-only and --rn-only cannot be used together")
	}

	registry, err := yaml.Load()
	if err != nil {
		return fmt.Errorf("failed to load page registry: %w", err)
	}

	indexer, err := fs.NewRegistryIndexer(cli.Output, registry)
	if err != nil {
		return err
	}

	logger := slog.New(log.NewWithOptions(stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           log.InfoLevel,
	}))

	fetcher := rnslog.NewLoggingFetcher(rnhttp.NewFetcher(), logger)
	defer fetcher.Close()

	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Registry: registry,
		Pipeline: &crawl.Pipeline{
			Fetcher:   fetcher,
			Converter: regex.NewConverter(),
			Writer:    fs.NewWriter(cli.Output),
			Pacer:     crawl.Delay{Interval: m.Interval},
			Logger:    logger,
		},
		Indexer: indexer,
	}

	cmd := &DownloadCmd{
		Output:   cli.Output,
		ExpoOnly: cli.ExpoOnly,
		RNOnly:   cli.RNOnly,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Output   string `short:"o" default:"./docs" help:"Output directory"`
	ExpoOnly bool   `name:"expo-only" help:"Only download Expo documentation"`
	RNOnly   bool   `name:"rn-only" help:"Only download React Native documentation"`
}
