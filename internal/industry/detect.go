// Package industry classifies a job description into a broad industry bucket
// using a fixed keyword table.
package industry

import "strings"

// General is returned when no industry keywords match.
const General = "general"

// industryKeywords maps each industry to its trigger substrings. Checked in
// a fixed order so detection stays deterministic when several industries
// match.
var industryOrder = []string{"tech", "finance", "healthcare", "education", "retail", "marketing"}

var industryKeywords = map[string][]string{
	"tech":       {"software", "technology", "it", "developer", "engineer", "programming"},
	"finance":    {"finance", "banking", "investment", "accounting", "financial"},
	"healthcare": {"healthcare", "medical", "pharmaceutical", "hospital", "clinical"},
	"education":  {"education", "teaching", "academic", "university", "school"},
	"retail":     {"retail", "ecommerce", "merchandising", "customer service"},
	"marketing":  {"marketing", "advertising", "brand", "digital marketing", "pr"},
}

// Detect returns the first industry whose keywords occur in the job
// description, or General when none match.
func Detect(jdText string) string {
	lowered := strings.ToLower(jdText)

	for _, name := range industryOrder {
		for _, keyword := range industryKeywords[name] {
			if strings.Contains(lowered, keyword) {
				return name
			}
		}
	}

	return General
}
