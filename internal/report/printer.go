package report

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"

	"wordalign/internal/align"
	"wordalign/internal/diagnostic"
	"wordalign/internal/export"
)

// Table headers. Their lengths are the minimum column widths.
const (
	headerReference  = "Reference Word"
	headerMatched    = "Matched Word"
	headerSimilarity = "Similarity"
)

// strongMatch is the similarity from which a match is shown in green.
const strongMatch = 0.9

// Options configures a Printer.
type Options struct {
	NoColor bool
	Verbose bool
	// Missing replaces the matched word of unmatched records.
	// Empty means export.DefaultMissing.
	Missing string
}

// Printer renders alignment results for the console.
type Printer struct {
	out     io.Writer
	options Options
	colors  map[string]*color.Color
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer, options Options) *Printer {
	if options.Missing == "" {
		options.Missing = export.DefaultMissing
	}

	colors := map[string]*color.Color{
		"green":  color.New(color.FgGreen),
		"yellow": color.New(color.FgYellow),
		"red":    color.New(color.FgRed),
		"cyan":   color.New(color.FgCyan),
		"white":  color.New(color.FgWhite, color.Bold),
	}

	if options.NoColor {
		for _, c := range colors {
			c.DisableColor()
		}
	}

	return &Printer{
		out:     out,
		options: options,
		colors:  colors,
	}
}

// Print writes the table, the summary and the diagnostics. Outside verbose
// mode only error diagnostics are shown.
func (p *Printer) Print(result *align.Result) {
	p.Table(result.Records)
	p.Summary(result.Summary)

	switch {
	case p.options.Verbose:
		p.Diagnostics(result.Diagnostics)
	case result.Diagnostics.HasErrors():
		p.Diagnostics(diagnostic.Diagnostics{Errors: result.Diagnostics.Errors})
	}
}

// Table writes one line per record.
func (p *Printer) Table(records []align.Record) {
	refWidth, matchWidth := len(headerReference), len(headerMatched)
	for _, rec := range records {
		refWidth = max(refWidth, utf8.RuneCountInString(rec.Reference))
		matchWidth = max(matchWidth, utf8.RuneCountInString(p.matched(rec)))
	}

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.colors["white"].Sprint("Alignment Results:"))
	fmt.Fprintf(p.out, "%-*s | %-*s | %s\n", refWidth, headerReference, matchWidth, headerMatched, headerSimilarity)
	fmt.Fprintln(p.out, strings.Repeat("-", refWidth+matchWidth+len(headerSimilarity)+6))

	for _, rec := range records {
		matched := fmt.Sprintf("%-*s", matchWidth, p.matched(rec))
		score := fmt.Sprintf("%.2f", rec.Similarity)

		switch {
		case rec.Match == nil:
			matched = p.colors["red"].Sprint(matched)
		case rec.Similarity >= strongMatch:
			score = p.colors["green"].Sprint(score)
		default:
			score = p.colors["yellow"].Sprint(score)
		}

		fmt.Fprintf(p.out, "%-*s | %s | %s\n", refWidth, rec.Reference, matched, score)
	}
}

func (p *Printer) matched(rec align.Record) string {
	if word, ok := rec.MatchedWord(); ok {
		return word
	}

	return p.options.Missing
}

// Summary writes the aggregate counts of a run.
func (p *Printer) Summary(s align.Summary) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.colors["white"].Sprint("Summary:"))
	fmt.Fprintf(p.out, "  References:        %d\n", s.References)
	fmt.Fprintf(p.out, "  Candidates:        %d\n", s.Candidates)
	fmt.Fprintf(p.out, "  Matched:           %s\n", p.colors["green"].Sprint(s.Matched))

	unmatched := fmt.Sprint(s.Unmatched)
	if s.Unmatched > 0 {
		unmatched = p.colors["red"].Sprint(unmatched)
	}

	fmt.Fprintf(p.out, "  Unmatched:         %s\n", unmatched)
	fmt.Fprintf(p.out, "  Unused candidates: %d\n", s.UnusedCandidates)
	fmt.Fprintf(p.out, "  Coverage:          %.1f%%\n", s.Coverage*100)
	fmt.Fprintf(p.out, "  Mean similarity:   %.2f\n", s.MeanSimilarity)
}

// Diagnostics writes every diagnostic, errors first.
func (p *Printer) Diagnostics(d diagnostic.Diagnostics) {
	if d.Len() == 0 {
		return
	}

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.colors["white"].Sprint("Diagnostics:"))

	for _, diag := range d.All() {
		label := strings.ToUpper(diag.Severity.String())

		switch diag.Severity {
		case diagnostic.SeverityError:
			label = p.colors["red"].Sprint(label)
		case diagnostic.SeverityWarning:
			label = p.colors["yellow"].Sprint(label)
		default:
			label = p.colors["cyan"].Sprint(label)
		}

		fmt.Fprintf(p.out, "  %s %s\n", label, diag.String())
	}
}

// Elapsed writes the total time of the run.
func (p *Printer) Elapsed(d time.Duration) {
	fmt.Fprintf(p.out, "\nTotal time taken for alignment process: %.2f seconds\n", d.Seconds())
}

// Saved reports where the export was written.
func (p *Printer) Saved(path string) {
	fmt.Fprintf(p.out, "\nResults saved to %s\n", p.colors["cyan"].Sprint(path))
}
