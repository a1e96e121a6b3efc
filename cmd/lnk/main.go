package main

import (
	"errors"
	"os"

	"github.com/arthur-debert/lnk/pkg/commands"
	"github.com/arthur-debert/lnk/pkg/core"
	"github.com/arthur-debert/lnk/pkg/output"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Per-pair failures were already reported as they happened;
		// everything else gets one line here, styled like the rest.
		if !errors.Is(err, core.ErrPartialFailure) {
			output.NewRenderer(os.Stdout, os.Stderr, false).Error(err)
		}
		os.Exit(1)
	}
}
