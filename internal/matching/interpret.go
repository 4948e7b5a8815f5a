package matching

import "github.com/jonathan/resume-match/internal/types"

// Tier thresholds for score interpretation.
const (
	excellentThreshold = 85
	strongThreshold    = 70
	goodThreshold      = 55
	moderateThreshold  = 40
)

// Interpret maps a final score to its qualitative tier. Pure lookup; the
// messages and actions are fixed strings.
func Interpret(score float64) types.Interpretation {
	switch {
	case score >= excellentThreshold:
		return types.Interpretation{
			Level:   types.LevelExcellent,
			Message: "Your resume is exceptionally well-aligned with this position.",
			Action:  "You should definitely apply!",
		}
	case score >= strongThreshold:
		return types.Interpretation{
			Level:   types.LevelStrong,
			Message: "Your resume has strong alignment with the job requirements.",
			Action:  "Apply after making minor improvements.",
		}
	case score >= goodThreshold:
		return types.Interpretation{
			Level:   types.LevelGood,
			Message: "Your resume shows good potential for this role.",
			Action:  "Make moderate improvements before applying.",
		}
	case score >= moderateThreshold:
		return types.Interpretation{
			Level:   types.LevelModerate,
			Message: "Your resume needs significant improvements for this role.",
			Action:  "Focus on adding missing skills and keywords.",
		}
	default:
		return types.Interpretation{
			Level:   types.LevelWeak,
			Message: "This may not be the best fit with your current resume.",
			Action:  "Consider roles that better match your current skills.",
		}
	}
}
