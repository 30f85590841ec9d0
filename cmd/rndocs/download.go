package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/rndocs"
)

// Run executes the download command.
func (c *DownloadCmd) Run(deps *Dependencies) error {
	if err := os.MkdirAll(c.Output, 0755); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Output directory: %s\n", c.Output)

	for _, name := range c.setNames() {
		set, err := deps.Registry.Set(name)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", rndocs.ErrorMessage(err))
			return err
		}

		fmt.Fprintf(deps.Stdout, "Downloading %s documentation...\n", set.Name)
		result, err := deps.Pipeline.Run(deps.Ctx, set)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "  %d saved, %d failed\n", result.Written, len(result.Failed))
	}

	if err := deps.Indexer.WriteIndexes(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing indexes: %v\n", err)
		return err
	}

	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, "Documentation download complete!")
	fmt.Fprintf(deps.Stdout, "Files saved to: %s\n", c.Output)
	return nil
}

// setNames returns the page sets to download, in run order.
func (c *DownloadCmd) setNames() []string {
	var names []string
	if !c.RNOnly {
		names = append(names, rndocs.SetExpoSDK, rndocs.SetExpoGuides)
	}
	if !c.ExpoOnly {
		names = append(names, rndocs.SetReactNative)
	}
	return names
}
