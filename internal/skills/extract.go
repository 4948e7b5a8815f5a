package skills

import (
	"regexp"
	"strings"
)

// indicatorPatterns capture a single token following a skill-indicator
// phrase. Captured tokens are added to the result set without checking the
// vocabulary; this broadens recall at the cost of occasional noise (for
// example "experience with enterprise" captures "enterprise"). Downstream
// scoring treats these tokens the same as vocabulary matches.
var indicatorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`skilled in (\w+)`),
	regexp.MustCompile(`expertise in (\w+)`),
	regexp.MustCompile(`proficient in (\w+)`),
	regexp.MustCompile(`experience with (\w+)`),
	regexp.MustCompile(`knowledge of (\w+)`),
	regexp.MustCompile(`familiar with (\w+)`),
	regexp.MustCompile(`working knowledge of (\w+)`),
	regexp.MustCompile(`hands-on experience with (\w+)`),
}

// minIndicatorTokenLen filters out captures too short to be meaningful skill
// names ("it", "ms").
const minIndicatorTokenLen = 3

// Extract returns the set of skills found in the text using the process-wide
// default vocabulary. See (*Vocabulary).Extract.
func Extract(text string) map[string]struct{} {
	return defaultVocabulary.Extract(text)
}

// Extract returns the set of canonical skills whose whole-word or
// whole-phrase form occurs in the text, plus any tokens captured by the
// indicator patterns. Matching is case-insensitive; returned skills are
// lowercase. The empty string yields an empty set.
func (v *Vocabulary) Extract(text string) map[string]struct{} {
	lowered := strings.ToLower(text)
	found := make(map[string]struct{})

	for canonical, pattern := range v.patterns {
		if pattern.MatchString(lowered) {
			found[canonical] = struct{}{}
		}
	}

	for _, pattern := range indicatorPatterns {
		for _, match := range pattern.FindAllStringSubmatch(lowered, -1) {
			token := match[1]
			if len(token) >= minIndicatorTokenLen {
				found[token] = struct{}{}
			}
		}
	}

	return found
}
