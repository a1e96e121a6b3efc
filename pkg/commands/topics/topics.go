// Package topics serves the built-in help guides. Guides are markdown
// files embedded at build time and rendered with glamour when stdout is
// a terminal, raw otherwise.
package topics

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

//go:embed docs/*.md
var docsFS embed.FS

const docsDir = "docs"

// NewCommand creates the topics command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "topics [topic]",
		Short: "Show help guides",
		Long:  `Without arguments, list the available help guides. With a topic name, show that guide.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return list(cmd)
			}
			return show(cmd, args[0])
		},
	}
}

func list(cmd *cobra.Command) error {
	names, err := Names()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Available topics:")
	for _, name := range names {
		fmt.Fprintf(out, "  %s\n", name)
	}
	fmt.Fprintln(out, "\nUse 'lnk topics <topic>' to read one.")
	return nil
}

func show(cmd *cobra.Command, name string) error {
	content, err := docsFS.ReadFile(docsDir + "/" + name + ".md")
	if err != nil {
		return fmt.Errorf("unknown help topic '%s'", name)
	}

	out := cmd.OutOrStdout()
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		renderer, rerr := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if rerr == nil {
			if rendered, rerr := renderer.Render(string(content)); rerr == nil {
				fmt.Fprint(out, rendered)
				return nil
			}
		}
		// Fall through to raw markdown if rendering fails.
	}
	fmt.Fprintln(out, strings.TrimRight(string(content), "\n"))
	return nil
}

// Names returns the sorted list of available topics.
func Names() ([]string, error) {
	entries, err := docsFS.ReadDir(docsDir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(names)
	return names, nil
}
