// Package report renders a match report as a plain-text document.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/resume-match/internal/types"
)

const (
	ruleWidth    = 70
	sectionWidth = 40
	barSegments  = 20
)

// Options carries the metadata printed in the report header.
type Options struct {
	ResumeName string
	JDName     string
	Now        time.Time // zero value means time.Now()
}

// Render produces the full plain-text analysis report for a match. The
// output is deterministic given fixed Options.Now.
func Render(r *types.MatchReport, opts Options) string {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	var sb strings.Builder
	rule := strings.Repeat("=", ruleWidth)
	divider := strings.Repeat("-", sectionWidth)

	sb.WriteString(rule + "\n")
	sb.WriteString("RESUME - JOB DESCRIPTION MATCH ANALYSIS REPORT\n")
	sb.WriteString(rule + "\n\n")

	fmt.Fprintf(&sb, "Generated: %s\n", now.Format("2006-01-02 15:04:05"))
	if opts.ResumeName != "" {
		fmt.Fprintf(&sb, "Resume: %s\n", opts.ResumeName)
	}
	if opts.JDName != "" {
		fmt.Fprintf(&sb, "Job Description: %s\n", opts.JDName)
	}
	sb.WriteString(strings.Repeat("-", ruleWidth) + "\n\n")

	sb.WriteString("OVERALL ASSESSMENT\n")
	sb.WriteString(divider + "\n")
	fmt.Fprintf(&sb, "Match Score: %.2f%%\n", r.Result.Overall)
	fmt.Fprintf(&sb, "Rating: %s\n", r.Interpretation.Level)
	fmt.Fprintf(&sb, "Interpretation: %s\n", r.Interpretation.Message)
	fmt.Fprintf(&sb, "Recommended Action: %s\n", r.Interpretation.Action)
	fmt.Fprintf(&sb, "Detected Industry: %s\n\n", r.Industry)

	sb.WriteString("SCORE BREAKDOWN\n")
	sb.WriteString(divider + "\n")
	writeBar(&sb, "Skills", r.Result.Breakdown.Skills)
	writeBar(&sb, "Keywords", r.Result.Breakdown.Keywords)
	writeBar(&sb, "Experience", r.Result.Breakdown.Experience)
	writeBar(&sb, "Tfidf", r.Result.Breakdown.TFIDF)
	sb.WriteString("\n")

	sb.WriteString("SKILLS ANALYSIS\n")
	sb.WriteString(divider + "\n")
	fmt.Fprintf(&sb, "Skills Match: %.1f%%\n", r.Result.Breakdown.Skills)
	if len(r.MissingSkills) > 0 {
		fmt.Fprintf(&sb, "\nMissing Skills (%d):\n", len(r.MissingSkills))
		for i, skill := range r.MissingSkills {
			fmt.Fprintf(&sb, "  %d. %s\n", i+1, skill)
		}
	} else {
		sb.WriteString("\nAll required skills are covered!\n")
	}

	sb.WriteString("\nKEYWORDS ANALYSIS\n")
	sb.WriteString(divider + "\n")
	fmt.Fprintf(&sb, "Keywords Match: %.1f%%\n", r.Result.Breakdown.Keywords)
	if len(r.MissingKeywords) > 0 {
		fmt.Fprintf(&sb, "\nMissing Keywords (%d):\n", len(r.MissingKeywords))
		for i := 0; i < len(r.MissingKeywords); i += 5 {
			chunk := r.MissingKeywords[i:min(i+5, len(r.MissingKeywords))]
			sb.WriteString("  - " + strings.Join(chunk, ", ") + "\n")
		}
	} else {
		sb.WriteString("\nExcellent keyword coverage!\n")
	}

	sb.WriteString("\n" + rule + "\n")
	sb.WriteString("ACTIONABLE IMPROVEMENTS\n")
	sb.WriteString(rule + "\n\n")
	if len(r.MissingSkills) > 0 {
		sb.WriteString("1. ADD THESE SKILLS TO YOUR RESUME:\n")
		for _, skill := range r.MissingSkills[:min(3, len(r.MissingSkills))] {
			fmt.Fprintf(&sb, "   - Add '%s' to your Skills section\n", skill)
		}
		sb.WriteString("\n")
	}
	if len(r.MissingKeywords) > 0 {
		sb.WriteString("2. INCORPORATE THESE KEYWORDS:\n")
		for _, keyword := range r.MissingKeywords[:min(5, len(r.MissingKeywords))] {
			fmt.Fprintf(&sb, "   - Use '%s' in your experience bullets\n", keyword)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("3. QUANTIFY ACHIEVEMENTS:\n")
	sb.WriteString("   - Add measurable outcomes to your strongest bullets\n")

	return sb.String()
}

// writeBar prints one breakdown row with a 20-segment progress bar.
func writeBar(sb *strings.Builder, label string, score float64) {
	filled := int(score / 100 * barSegments)
	if filled > barSegments {
		filled = barSegments
	}
	bar := strings.Repeat("#", filled) + strings.Repeat(".", barSegments-filled)
	fmt.Fprintf(sb, "%-15s %6.1f%% |%s|\n", label, score, bar)
}
