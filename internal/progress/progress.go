// Package progress wraps schollz/progressbar for the build phases cmd/scan
// walks through: similarity kernel, neighbor-order index, core-order index.
// Disabled automatically for non-interactive output (json, or no terminal).
package progress

import (
	"os"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// Reporter advances a single progress bar across the named build phases.
type Reporter interface {
	Phase(name string)
	Done()
}

type barReporter struct {
	bar *progressbar.ProgressBar
}

// New returns an interactive Reporter when enabled is true and stderr is a
// terminal, and a no-op Reporter otherwise.
func New(enabled bool, phases int) Reporter {
	if !enabled || !term.IsTerminal(int(os.Stderr.Fd())) {
		return noopReporter{}
	}
	bar := progressbar.NewOptions(phases,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(18),
		progressbar.OptionSetDescription("building index"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
	)
	return &barReporter{bar: bar}
}

func (r *barReporter) Phase(name string) {
	r.bar.Describe(name)
	_ = r.bar.Add(1)
}

func (r *barReporter) Done() {
	_ = r.bar.Finish()
}

type noopReporter struct{}

func (noopReporter) Phase(string) {}
func (noopReporter) Done()        {}
