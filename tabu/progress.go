package tabu

import (
	"os"

	"golang.org/x/term"
)

// ProgressSink receives iteration-level progress from Run. It is an
// extension point: the default is NoopProgressSink, and TUIProgressSink is
// an optional live renderer a caller opts into (e.g. cmd/d2dtabu's solve
// command when stdout is a terminal).
type ProgressSink interface {
	Start(iterations int)
	Update(iteration int, currentCost, bestCost float64)
	Finish(report Report)
}

// NoopProgressSink discards every event. It is the zero-cost default and
// never fails to construct.
type NoopProgressSink struct{}

func (NoopProgressSink) Start(int)                    {}
func (NoopProgressSink) Update(int, float64, float64) {}
func (NoopProgressSink) Finish(Report)                {}

// TerminalWidthProbe reports the current terminal's column width. Callers
// that want a TUIProgressSink but are willing to fall back to
// NoopProgressSink when stdout is not a real terminal (piped output, CI)
// should call this first and treat a non-nil error as "no TUI" rather than
// a fatal condition - the only consumer of EnvironmentError in this module.
func TerminalWidthProbe() (int, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, &EnvironmentError{Op: "probe terminal width", Err: errNotATerminal}
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0, &EnvironmentError{Op: "probe terminal width", Err: err}
	}
	return width, nil
}
