// Package report formats the user-facing outcome messages of an init run:
// a victory banner on success, or an action-required notice when the run
// completed but the user has something to fix.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/wordwrap"
)

// Kind distinguishes the two report categories.
type Kind int

const (
	// ActionRequest reports a recoverable problem with remediation text.
	ActionRequest Kind = iota
	// Victory reports overall success.
	Victory
)

// Report is a single output event. It carries no state beyond its text.
type Report struct {
	Kind     Kind
	Headline string
	Body     string
}

// Printer renders reports to a writer, wrapping the body to the terminal
// width and styling the headline when the writer is a terminal.
type Printer struct {
	out   io.Writer
	width int
	color bool
}

const defaultWidth = 80

// NewPrinter builds a printer for stdout, detecting width and color support.
func NewPrinter() *Printer {
	return &Printer{
		out:   os.Stdout,
		width: defaultWidth,
		color: isatty.IsTerminal(os.Stdout.Fd()),
	}
}

// NewPrinterTo builds a printer for an arbitrary writer, without styling.
func NewPrinterTo(out io.Writer, width int) *Printer {
	if width <= 0 {
		width = defaultWidth
	}
	return &Printer{out: out, width: width}
}

var (
	victoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	actionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
)

// Print writes the report. The headline is prefixed by the report category;
// the body wraps to the printer width.
func (p *Printer) Print(r Report) {
	prefix := "victory"
	style := victoryStyle
	if r.Kind == ActionRequest {
		prefix = "action required"
		style = actionStyle
	}

	headline := prefix + ": " + r.Headline
	if p.color {
		headline = style.Render(headline)
	}

	fmt.Fprintln(p.out, headline)
	body := strings.TrimSpace(r.Body)
	if body != "" {
		fmt.Fprintln(p.out, wordwrap.String(body, p.width))
	}
}

// ActionRequired builds an ActionRequest report.
func ActionRequired(headline, body string) Report {
	return Report{Kind: ActionRequest, Headline: headline, Body: body}
}

// Win builds a Victory report.
func Win(headline, body string) Report {
	return Report{Kind: Victory, Headline: headline, Body: body}
}
