// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-match/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchSummary outputs the overall score, tier and detected industry.
func (p *Printer) PrintMatchSummary(report *types.MatchReport) {
	if report == nil || report.Result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:   %.2f%%\n", report.Result.Overall))
	sb.WriteString(fmt.Sprintf("Rating:    %s\n", report.Interpretation.Level))
	sb.WriteString(fmt.Sprintf("Industry:  %s\n", report.Industry))
	sb.WriteString("\n")
	sb.WriteString(report.Interpretation.Message)

	p.printBox("MATCH SUMMARY", sb.String())
}

// PrintBreakdown outputs the per-signal scores and their raw counts.
func (p *Printer) PrintBreakdown(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills:     %6.2f%%  (%d of %d matched)\n",
		result.Breakdown.Skills, result.Details.MatchedSkillsCount, result.Details.JDSkillsCount))
	sb.WriteString(fmt.Sprintf("Keywords:   %6.2f%%  (%d of %d matched)\n",
		result.Breakdown.Keywords, result.Details.MatchedKeywordsCount, result.Details.JDKeywordsCount))
	sb.WriteString(fmt.Sprintf("Experience: %6.2f%%  (%d years vs %d required)\n",
		result.Breakdown.Experience, result.Details.ResumeYears, result.Details.JDYears))
	sb.WriteString(fmt.Sprintf("Similarity: %6.2f%%", result.Breakdown.TFIDF))

	p.printBox("SCORE BREAKDOWN", sb.String())
}

// PrintMissing outputs the missing skills and keywords, truncated to the
// first few of each.
func (p *Printer) PrintMissing(report *types.MatchReport) {
	if report == nil {
		return
	}
	if len(report.MissingSkills) == 0 && len(report.MissingKeywords) == 0 {
		return
	}

	var sb strings.Builder

	if len(report.MissingSkills) > 0 {
		sb.WriteString("Missing skills:\n")
		count := min(len(report.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.MissingSkills[i]))
		}
		if len(report.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.MissingSkills)-maxItemsToShow))
		}
	}

	if len(report.MissingKeywords) > 0 {
		sb.WriteString("Missing keywords:\n")
		count := min(len(report.MissingKeywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.MissingKeywords[i]))
		}
		if len(report.MissingKeywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.MissingKeywords)-maxItemsToShow))
		}
	}

	p.printBox("GAPS", strings.TrimSuffix(sb.String(), "\n"))
}
