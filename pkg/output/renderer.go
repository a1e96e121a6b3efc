package output

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/lnk/pkg/errors"
	"github.com/arthur-debert/lnk/pkg/types"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// Format selects how results are presented.
type Format string

const (
	// FormatText prints verbose traces and errors as the run progresses.
	FormatText Format = "text"
	// FormatYAML prints the full result list as YAML once the run ends.
	FormatYAML Format = "yaml"
)

// ParseFormat validates an --output value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatYAML:
		return Format(s), nil
	default:
		return FormatText, errors.Newf(errors.ErrInvalidOutputFormat,
			"invalid argument '%s' for 'output format'", s)
	}
}

// Renderer writes per-pair outcomes. Created links go to out, failures
// to errOut, matching the stream split of the classic tool.
type Renderer struct {
	out     io.Writer
	errOut  io.Writer
	verbose bool
	noColor bool
}

// NewRenderer builds a Renderer. Color is used only when errOut is a
// terminal and the environment does not opt out (NO_COLOR, TERM=dumb).
func NewRenderer(out, errOut io.Writer, verbose bool) *Renderer {
	return &Renderer{
		out:     out,
		errOut:  errOut,
		verbose: verbose,
		noColor: detectNoColor(out),
	}
}

// Result reports one pair as soon as its outcome is known.
func (r *Renderer) Result(res types.LinkResult) {
	switch res.Status {
	case types.StatusCreated:
		if !r.verbose {
			return
		}
		line := fmt.Sprintf("'%s' -> '%s'", res.Destination, res.Source)
		if res.BackupPath != "" {
			line += fmt.Sprintf(" (backup: '%s')", res.BackupPath)
		}
		fmt.Fprintln(r.out, r.style(pathStyle, line))
	case types.StatusPlanned:
		fmt.Fprintln(r.out, r.style(mutedStyle,
			fmt.Sprintf("'%s' -> '%s' (dry-run)", res.Destination, res.Source)))
	case types.StatusFailed:
		fmt.Fprintln(r.errOut, r.style(errorStyle, "lnk: "+res.Error))
	case types.StatusSkipped:
		// Skips are silent successes.
	}
}

// Error reports a run-level failure (usage, resolution).
func (r *Renderer) Error(err error) {
	fmt.Fprintln(r.errOut, r.style(errorStyle, fmt.Sprintf("lnk: %v", err)))
}

// YAML writes the whole result list to out as a YAML document.
func (r *Renderer) YAML(results []types.LinkResult) error {
	enc := yaml.NewEncoder(r.out)
	defer enc.Close()
	return enc.Encode(results)
}

// detectNoColor disables styling unless w is a real terminal that wants
// color.
func detectNoColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return true
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return true
	}
	if termenv.EnvNoColor() {
		return true
	}
	return termenv.EnvColorProfile() == termenv.Ascii
}
