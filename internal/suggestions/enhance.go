package suggestions

import (
	"fmt"
	"strings"
)

// Enhancements returns general resume-improvement guidance: where to add
// missing skills, how to quantify achievements and which action verbs to
// prefer. Purely templated, no randomness.
func Enhancements(missingSkills []string) string {
	var sb strings.Builder

	if len(missingSkills) > 0 {
		sb.WriteString("ADD THESE SKILLS TO YOUR RESUME:\n")
		for _, skill := range missingSkills {
			fmt.Fprintf(&sb, "  - Add '%s' to your Skills section\n", skill)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("QUANTIFY YOUR ACHIEVEMENTS:\n")
	sb.WriteString("  - Add percentages: 'Improved efficiency by 20%'\n")
	sb.WriteString("  - Add numbers: 'Managed projects with $500K budget'\n")
	sb.WriteString("  - Add metrics: 'Reduced processing time by 30%'\n")
	sb.WriteString("\n")

	sb.WriteString("USE STRONGER ACTION VERBS:\n")
	sb.WriteString("  - Instead of 'Did data analysis' use 'Spearheaded data analysis initiatives'\n")
	sb.WriteString("  - Instead of 'Worked on projects' use 'Led end-to-end project implementation'\n")
	sb.WriteString("  - Instead of 'Made reports' use 'Developed comprehensive analytical reports'")

	return sb.String()
}
