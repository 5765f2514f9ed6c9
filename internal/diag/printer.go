package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"blang/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	gutterColor  = color.New(color.FgBlue)
)

// Printer writes human-readable diagnostic reports: a severity header, the
// resolved file:line:col location, and an excerpt of the offending line with a
// caret underline.
type Printer struct {
	w       io.Writer
	files   *source.FileSet
	colored bool
}

// NewPrinter creates a Printer. files may be nil; locations and excerpts are
// then omitted.
func NewPrinter(w io.Writer, files *source.FileSet, colored bool) *Printer {
	return &Printer{w: w, files: files, colored: colored}
}

// PrintIssue renders and prints one issue.
func (p *Printer) PrintIssue(issue Issue) {
	p.Print(Render(issue))
}

// PrintBag prints every diagnostic of a bag in its current order.
func (p *Printer) PrintBag(bag *Bag) {
	if bag == nil {
		return
	}
	for _, d := range bag.Items() {
		p.Print(d)
	}
}

// Print writes one diagnostic.
func (p *Printer) Print(d Diagnostic) {
	label := p.severityLabel(d.Severity)
	fmt.Fprintf(p.w, "%s[%s]: %s\n", label, d.Code.ID(), d.Message)
	p.printSpan(d.Primary)
	for _, n := range d.Notes {
		fmt.Fprintf(p.w, "%s: %s\n", p.paint(infoColor, "note"), n.Msg)
		p.printSpan(n.Span)
	}
}

func (p *Printer) severityLabel(sev Severity) string {
	switch sev {
	case SevError:
		return p.paint(errorColor, "error")
	case SevWarning:
		return p.paint(warningColor, "warning")
	default:
		return p.paint(infoColor, "info")
	}
}

// printSpan writes the location line and the source excerpt, when the span
// resolves against the file set.
func (p *Printer) printSpan(span source.Span) {
	if p.files == nil || span == (source.Span{}) {
		return
	}
	f := p.files.Get(span.File)
	start, end, ok := p.files.Resolve(span)
	if f == nil || !ok {
		return
	}
	fmt.Fprintf(p.w, " %s %s:%d:%d\n", p.paint(gutterColor, "-->"), f.Path, start.Line, start.Col)

	line := f.Line(start.Line)
	if line == "" {
		return
	}
	lineNum := fmt.Sprintf("%d", start.Line)
	gutter := strings.Repeat(" ", len(lineNum))
	// Tabs are expanded before printing so the caret count matches what the
	// terminal shows; widths are measured in display cells for wide runes.
	expand := func(s string) string { return strings.ReplaceAll(s, "\t", "    ") }
	fmt.Fprintf(p.w, " %s\n", p.paint(gutterColor, gutter+" |"))
	fmt.Fprintf(p.w, " %s %s\n", p.paint(gutterColor, lineNum+" |"), expand(line))

	prefix := line
	if int(start.Col)-1 <= len(line) {
		prefix = line[:start.Col-1]
	}
	pad := runewidth.StringWidth(expand(prefix))
	width := 1
	if end.Line == start.Line && end.Col > start.Col && int(end.Col)-1 <= len(line) {
		if w := runewidth.StringWidth(expand(line[start.Col-1 : end.Col-1])); w > width {
			width = w
		}
	}
	underline := strings.Repeat(" ", pad) + strings.Repeat("^", width)
	fmt.Fprintf(p.w, " %s %s\n", p.paint(gutterColor, gutter+" |"), p.paint(errorColor, underline))
}

func (p *Printer) paint(c *color.Color, s string) string {
	if !p.colored {
		return s
	}
	return c.Sprint(s)
}
