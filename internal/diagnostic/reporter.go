package diagnostic

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ColorMode controls whether the reporter colorizes severity labels.
type ColorMode string

const (
	ColorAuto ColorMode = "auto"
	ColorOn   ColorMode = "on"
	ColorOff  ColorMode = "off"
)

// Reporter writes diagnostics to an output stream, one per line, with
// the severity label colorized according to the configured mode.
type Reporter struct {
	out  io.Writer
	mode ColorMode
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer, mode ColorMode) *Reporter {
	return &Reporter{out: out, mode: mode}
}

// severityColor returns a fresh color for the given severity.
// A fresh value per call keeps explicit Enable/Disable from leaking
// between reports.
func severityColor(s Severity) *color.Color {
	switch s {
	case SeverityError:
		return color.New(color.FgRed, color.Bold)
	case SeverityWarning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgCyan)
	}
}

// Report writes a single diagnostic.
func (r *Reporter) Report(d Diagnostic) {
	c := severityColor(d.Severity)

	switch r.mode {
	case ColorOn:
		c.EnableColor()
	case ColorOff:
		c.DisableColor()
	default:
		// ColorAuto: fatih/color handles NO_COLOR and non-TTY detection.
	}

	fmt.Fprintf(r.out, "%s: %s\n", c.Sprint(d.Severity.String()), d.String())
}

// ReportAll writes every diagnostic in severity order and returns the
// number of errors reported.
func (r *Reporter) ReportAll(ds *Diagnostics) int {
	for _, d := range ds.All() {
		r.Report(d)
	}

	return len(ds.Errors)
}
