// Package suggestions generates templated resume-improvement prose from the
// missing skill and keyword lists of a match report.
//
// Template selection is the only random behavior in the repository. The
// random source is injected so callers (and tests) can seed it; the scoring
// engine itself never consumes randomness.
package suggestions

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// bulletTemplates are generic enough to apply to any role; {keyword} is
// replaced with the missing term.
var bulletTemplates = []string{
	"Implemented %s strategies that improved efficiency and productivity.",
	"Utilized %s methodologies to streamline processes and workflows.",
	"Developed comprehensive %s frameworks to achieve business objectives.",
	"Applied %s techniques to analyze information and generate insights.",
	"Managed %s initiatives from planning through successful execution.",
	"Created detailed %s documentation to ensure consistency and compliance.",
	"Collaborated with teams on %s projects achieving key goals.",
	"Designed and deployed %s solutions addressing business needs.",
	"Led %s efforts resulting in measurable improvements.",
	"Optimized %s processes through innovation and best practices.",
	"Established %s protocols that enhanced quality and reliability.",
	"Coordinated %s activities across multiple departments.",
	"Spearheaded %s programs that drove growth and success.",
	"Enhanced %s capabilities through technology and training.",
	"Monitored and evaluated %s performance against metrics.",
}

// maxBullets limits how many keywords get a suggested bullet.
const maxBullets = 4

// minKeywordLen filters out keywords too short to build a sensible bullet.
const minKeywordLen = 4

// Generator produces suggestion prose using the provided random source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator seeded by the given source. Pass a fixed
// seed for reproducible output; nil falls back to a time-based seed.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// ResumeBullets returns up to four suggested resume bullet lines, one per
// missing keyword. An empty keyword list yields a confirmation message
// instead of bullets.
func (g *Generator) ResumeBullets(missingKeywords []string) string {
	if len(missingKeywords) == 0 {
		return "Your resume already covers the key keywords well!"
	}

	cleaned := make([]string, 0, len(missingKeywords))
	for _, keyword := range missingKeywords {
		k := strings.Join(strings.Fields(keyword), " ")
		if len(k) < minKeywordLen {
			continue
		}
		switch strings.ToLower(k) {
		case "none", "na", "null":
			continue
		}
		cleaned = append(cleaned, k)
	}
	if len(cleaned) == 0 {
		return "No valid keywords to suggest improvements for."
	}

	if len(cleaned) > maxBullets {
		cleaned = cleaned[:maxBullets]
	}

	used := make(map[string]struct{}, len(cleaned))
	lines := make([]string, 0, len(cleaned))
	for _, keyword := range cleaned {
		if _, dup := used[keyword]; dup {
			continue
		}
		used[keyword] = struct{}{}

		template := bulletTemplates[g.rng.Intn(len(bulletTemplates))]
		lines = append(lines, "- "+fmt.Sprintf(template, titleCase(keyword)))
	}

	return strings.Join(lines, "\n")
}

// SkillResources returns learning-resource pointers for up to three missing
// skills.
func (g *Generator) SkillResources(missingSkills []string) string {
	if len(missingSkills) == 0 {
		return "All required skills are covered!"
	}

	limit := min(3, len(missingSkills))
	var sb strings.Builder
	for _, skill := range missingSkills[:limit] {
		fmt.Fprintf(&sb, "%s:\n", titleCase(skill))
		fmt.Fprintf(&sb, "  - Search for '%s' courses on Coursera, edX, or Udemy\n", skill)
		fmt.Fprintf(&sb, "  - Check YouTube for '%s tutorials for beginners'\n", skill)
		fmt.Fprintf(&sb, "  - Practice by applying %s to real projects\n", skill)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// titleCase uppercases the first letter of single-word terms; multi-word
// terms are kept as-is.
func titleCase(term string) string {
	if strings.Contains(term, " ") {
		return term
	}
	return strings.ToUpper(term[:1]) + term[1:]
}
