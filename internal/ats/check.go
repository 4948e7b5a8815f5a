// Package ats checks a resume's plain text for common applicant-tracking-
// system parsing problems.
package ats

import (
	"fmt"
	"strings"
)

// Word-count bounds for ATS readability.
const (
	maxWords = 800
	minWords = 200
)

// requiredSections are the section headers an ATS expects to find.
var requiredSections = []string{"experience", "education", "skills"}

// actionVerbs signal achievement-oriented language.
var actionVerbs = []string{"achieved", "improved", "increased", "reduced"}

// boxDrawingRunes break many ATS text parsers.
var boxDrawingRunes = []string{"┌", "└", "│"}

// Report holds the findings of a compatibility check.
type Report struct {
	Issues          []string
	Recommendations []string
	Strengths       []string
}

// Compatible reports whether no issues were found.
func (r *Report) Compatible() bool {
	return len(r.Issues) == 0
}

// Check analyzes the resume text and returns issues, recommendations and
// strengths. It never fails; empty input simply produces issues.
func Check(resumeText string) *Report {
	report := &Report{}
	lowered := strings.ToLower(resumeText)

	for _, section := range requiredSections {
		if !strings.Contains(lowered, section) {
			report.Issues = append(report.Issues,
				fmt.Sprintf("Missing '%s' section header", titleCase(section)))
		}
	}

	for _, r := range boxDrawingRunes {
		if strings.Contains(resumeText, r) {
			report.Issues = append(report.Issues,
				"Avoid using box-drawing characters (use simple formatting)")
			break
		}
	}

	wordCount := len(strings.Fields(resumeText))
	if wordCount > maxWords {
		report.Issues = append(report.Issues,
			fmt.Sprintf("Resume might be too long (%d words)", wordCount))
		report.Recommendations = append(report.Recommendations,
			fmt.Sprintf("Try to keep under %d words for ATS readability", maxWords))
	} else if wordCount < minWords {
		report.Issues = append(report.Issues,
			fmt.Sprintf("Resume might be too short (%d words)", wordCount))
		report.Recommendations = append(report.Recommendations,
			"Add more detail to your experience section")
	}

	if !strings.Contains(resumeText, "@") && !strings.Contains(lowered, "phone") {
		report.Issues = append(report.Issues, "Ensure contact information is included")
	}

	if strings.Contains(resumeText, "•") || strings.Contains(resumeText, "-") {
		report.Strengths = append(report.Strengths, "Uses bullet points (good for readability)")
	}
	for _, verb := range actionVerbs {
		if strings.Contains(lowered, verb) {
			report.Strengths = append(report.Strengths, "Uses action-oriented language")
			break
		}
	}

	return report
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
