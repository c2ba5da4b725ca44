// internal/report/report.go
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dangerclosesec/logsim/circuit/parser"
	"github.com/dangerclosesec/logsim/internal/model"
	"github.com/dangerclosesec/logsim/internal/service"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorOK      = lipgloss.Color("#10B981")
	colorWarn    = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

type styles struct {
	title    lipgloss.Style
	location lipgloss.Style
	caret    lipgloss.Style
	message  lipgloss.Style
	ok       lipgloss.Style
	failed   lipgloss.Style
	warning  lipgloss.Style
	muted    lipgloss.Style
	header   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		location: r.NewStyle().
			Foreground(colorMuted),
		caret: r.NewStyle().
			Foreground(colorError).
			Bold(true),
		message: r.NewStyle().
			Foreground(colorError),
		ok: r.NewStyle().
			Foreground(colorOK).
			Bold(true),
		failed: r.NewStyle().
			Foreground(colorError).
			Bold(true),
		warning: r.NewStyle().
			Foreground(colorWarn),
		muted: r.NewStyle().
			Foreground(colorMuted).
			Italic(true),
		header: r.NewStyle().
			Bold(true).
			Underline(true),
	}
}

// Printer writes check results and stored runs to a terminal. Colors are
// dropped automatically when out is not a terminal.
type Printer struct {
	out      io.Writer
	renderer *lipgloss.Renderer
	styles   styles
}

func New(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:      out,
		renderer: r,
		styles:   newStyles(r),
	}
}

// Result prints every diagnostic of result followed by a summary line
func (p *Printer) Result(result *service.CheckResult) {
	fmt.Fprintln(p.out, p.styles.title.Render(result.Name))

	for _, d := range result.Diagnostics {
		p.diagnostic(d)
	}

	for _, input := range result.Unconnected {
		fmt.Fprintln(p.out, p.styles.warning.Render("Warning: input "+input+" is not connected"))
	}

	fmt.Fprintln(p.out, p.Summary(result))
}

func (p *Printer) diagnostic(d parser.Diagnostic) {
	fmt.Fprintln(p.out, p.styles.location.Render(fmt.Sprintf("Error location: line %d, column %d", d.Line, d.Column)))
	fmt.Fprintln(p.out, d.SourceLine)

	// the caret's indentation has to survive untouched to line up
	indent := strings.TrimSuffix(d.Caret, "^")
	fmt.Fprintln(p.out, indent+p.styles.caret.Render("^"))

	fmt.Fprintln(p.out, p.styles.message.Render(d.Message))
	fmt.Fprintln(p.out)
}

// Summary returns the closing line for result
func (p *Printer) Summary(result *service.CheckResult) string {
	if n := len(result.Diagnostics); n > 0 {
		return p.styles.failed.Render(fmt.Sprintf("%d errors found, please resolve them and try again", n))
	}

	return p.styles.ok.Render("No errors found") + " " +
		p.styles.muted.Render(fmt.Sprintf("(%d devices, %d connections, %d monitors)",
			result.Devices, result.Connections, result.Monitors))
}

// Runs prints stored runs as a table, newest first as returned by the store
func (p *Printer) Runs(runs []model.ParseRun, total int64) {
	cell := func(width int) lipgloss.Style {
		return p.renderer.NewStyle().Width(width)
	}

	fmt.Fprintln(p.out, p.styles.header.Render(
		cell(38).Render("ID")+cell(22).Render("CREATED")+cell(8).Render("STATUS")+cell(8).Render("ERRORS")+"SOURCE"))

	for _, run := range runs {
		status := p.styles.ok.Render("ok")
		if !run.Success {
			status = p.styles.failed.Render("failed")
		}

		fmt.Fprintln(p.out,
			cell(38).Render(run.ID.String())+
				cell(22).Render(run.CreatedAt.UTC().Format(time.RFC3339))+
				cell(8).Render(status)+
				cell(8).Render(fmt.Sprint(run.ErrorCount))+
				run.Source)
	}

	fmt.Fprintln(p.out, p.styles.muted.Render(fmt.Sprintf("%d of %d runs", len(runs), total)))
}

// Run prints one stored run with its diagnostics
func (p *Printer) Run(run *model.ParseRun) {
	fmt.Fprintln(p.out, p.styles.title.Render(run.Source)+" "+p.styles.muted.Render(run.ID.String()))
	fmt.Fprintln(p.out, p.styles.muted.Render("checked "+run.CreatedAt.UTC().Format(time.RFC3339)))

	for _, d := range run.Diagnostics {
		p.diagnostic(parser.Diagnostic{
			Code:       d.Code,
			Line:       d.Line,
			Column:     d.Column,
			SourceLine: d.SourceLine,
			Caret:      d.Caret,
			Message:    d.Message,
		})
	}

	if run.ErrorCount > 0 {
		fmt.Fprintln(p.out, p.styles.failed.Render(fmt.Sprintf("%d errors found, please resolve them and try again", run.ErrorCount)))
		return
	}
	fmt.Fprintln(p.out, p.styles.ok.Render("No errors found"))
}
