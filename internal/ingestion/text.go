// Package ingestion acquires plain text for the matching engine from files
// and URLs. The engine consumes plain text only; everything here is glue
// around that contract.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jonathan/resume-match/internal/fetch"
)

var (
	innerSpace = regexp.MustCompile(`\s+`)
	blankRuns  = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes raw document text while preserving its line
// structure: line endings are unified, trailing whitespace is trimmed,
// bullet and heading lines keep their markers, and runs of blank lines are
// reduced to at most one empty line.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRuns.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	// Keep heading and bullet markers; normalize their leading whitespace.
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") {
		indent := len(line) - len(trimmed)
		return strings.Repeat(" ", indent) + trimmed
	}

	indent := len(line) - len(trimmed)
	content := innerSpace.ReplaceAllString(strings.TrimSpace(line), " ")
	return strings.Repeat(" ", indent) + content
}

// FromFile reads a document from disk and returns its cleaned text. Plain
// text files are cleaned directly; .html/.htm files go through the HTML
// text extractor first.
func FromFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err := fetch.ExtractMainText(string(content), fetch.JobPostingSelectors())
		if err != nil {
			return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
		}
		return CleanText(text), nil
	default:
		return CleanText(string(content)), nil
	}
}
