// Package experience extracts asserted years of experience from free text.
package experience

import (
	"regexp"
	"strconv"
	"strings"
)

// yearPatterns capture explicit years-of-experience phrasing. Range patterns
// ("2-5 years") capture both ends; the maximum across all captures wins.
var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*in\s*\w+`),
	regexp.MustCompile(`(\d+)\s*-\s*(\d+)\s*years`),
	regexp.MustCompile(`(\d+)\s*years?\s*experience`),
	regexp.MustCompile(`(\d+)\s*years?\s*in`),
	regexp.MustCompile(`(\d+)\+?\s*years`),
}

// dateRangePattern matches four-digit year ranges like "2020 - 2023", used
// as a work-history proxy when no explicit phrasing exists. Each range
// counts as one year; the estimate is deliberately conservative.
var dateRangePattern = regexp.MustCompile(`(?:19|20)\d{2}\s*[-–]\s*(?:19|20)\d{2}`)

// plusPatterns are the additional fallback phrasings checked alongside the
// date-range proxy.
var plusPatterns = []*regexp.Regexp{
	regexp.MustCompile(`over\s+(\d+)\s*years`),
	regexp.MustCompile(`(\d+)\+\s*years`),
	regexp.MustCompile(`more\s+than\s+(\d+)\s*years`),
}

// Years returns the maximum asserted years of experience found in the text,
// or 0 when nothing matches. Matching is case-insensitive and never fails.
func Years(text string) int {
	lowered := strings.ToLower(text)
	maxYears := 0

	for _, pattern := range yearPatterns {
		for _, match := range pattern.FindAllStringSubmatch(lowered, -1) {
			for _, capture := range match[1:] {
				if n, err := strconv.Atoi(capture); err == nil && n > maxYears {
					maxYears = n
				}
			}
		}
	}

	if maxYears == 0 {
		// Estimate from work-history date ranges; note the raw text is used
		// here so ranges separated by an en dash still count.
		maxYears = len(dateRangePattern.FindAllString(text, -1))

		for _, pattern := range plusPatterns {
			for _, match := range pattern.FindAllStringSubmatch(lowered, -1) {
				if n, err := strconv.Atoi(match[1]); err == nil && n > maxYears {
					maxYears = n
				}
			}
		}
	}

	return maxYears
}
