// Package matching combines the skill, keyword, experience and similarity
// signals into a weighted overall match score with a per-category breakdown.
package matching

import (
	"math"
	"sort"

	"github.com/jonathan/resume-match/internal/experience"
	"github.com/jonathan/resume-match/internal/industry"
	"github.com/jonathan/resume-match/internal/keywords"
	"github.com/jonathan/resume-match/internal/similarity"
	"github.com/jonathan/resume-match/internal/skills"
	"github.com/jonathan/resume-match/internal/textnorm"
	"github.com/jonathan/resume-match/internal/types"
)

// Signal weights. Fixed constants summing to 1.0; not configurable per call.
const (
	tfidfWeight      = 0.20
	keywordWeight    = 0.30
	skillWeight      = 0.30
	experienceWeight = 0.20
)

// Bonus rules. Each bonus is independently additive on top of the weighted
// sum, so the overall score can reach 100 without any single perfect
// category.
const (
	bonusValue            = 0.10
	skillBonusThreshold   = 0.30
	keywordBonusThreshold = 0.30
	experienceBonusRatio  = 0.5
)

// partialExperienceCredit is added to the years ratio when the resume falls
// short of the stated requirement, so any relevant experience earns credit.
const partialExperienceCredit = 0.2

// keywordTopN is the keyword set size used for overlap scoring.
const keywordTopN = 30

// Score computes the match between a resume and a job description.
// It is deterministic and never fails: degenerate inputs flow through the
// documented per-signal fallbacks and produce a defined, bounded result.
func Score(resumeText, jdText string) *types.MatchResult {
	resumeClean := textnorm.Clean(resumeText)
	jdClean := textnorm.Clean(jdText)

	tfidfScore := similarity.Score(resumeText, jdText)

	resumeKeywords := keywords.Extract(resumeClean, keywordTopN)
	jdKeywords := keywords.Extract(jdClean, keywordTopN)
	matchedKeywords := intersect(resumeKeywords, jdKeywords)
	keywordOverlap := 0.0
	if len(jdKeywords) > 0 {
		keywordOverlap = float64(len(matchedKeywords)) / float64(len(jdKeywords))
	}

	resumeSkills := skills.Extract(resumeClean)
	jdSkills := skills.Extract(jdClean)
	matchedSkills := intersect(resumeSkills, jdSkills)
	skillMatch := 0.0
	if len(jdSkills) > 0 {
		skillMatch = float64(len(matchedSkills)) / float64(len(jdSkills))
	}

	resumeYears := experience.Years(resumeText)
	jdYears := experience.Years(jdText)
	expScore := 1.0
	if jdYears > 0 && resumeYears < jdYears {
		expScore = math.Min(1.0, float64(resumeYears)/float64(jdYears)+partialExperienceCredit)
	}

	weighted := tfidfScore*tfidfWeight +
		keywordOverlap*keywordWeight +
		skillMatch*skillWeight +
		expScore*experienceWeight

	bonus := 0.0
	if skillMatch > skillBonusThreshold {
		bonus += bonusValue
	}
	if keywordOverlap > keywordBonusThreshold {
		bonus += bonusValue
	}
	if jdYears > 0 && float64(resumeYears) >= float64(jdYears)*experienceBonusRatio {
		bonus += bonusValue
	}

	overall := math.Min(100, (weighted+bonus)*100)

	return &types.MatchResult{
		Overall: round2(overall),
		Breakdown: types.Breakdown{
			Skills:     round2(skillMatch * 100),
			Keywords:   round2(keywordOverlap * 100),
			Experience: round2(expScore * 100),
			TFIDF:      round2(tfidfScore * 100),
		},
		Details: types.Details{
			ResumeYears:          resumeYears,
			JDYears:              jdYears,
			ResumeSkillsCount:    len(resumeSkills),
			JDSkillsCount:        len(jdSkills),
			MatchedSkillsCount:   len(matchedSkills),
			ResumeKeywordsCount:  len(resumeKeywords),
			JDKeywordsCount:      len(jdKeywords),
			MatchedKeywordsCount: len(matchedKeywords),
		},
	}
}

// Report scores the pair and derives everything the collaborators consume:
// the interpretation, the detected industry and the matched/missing skill
// and keyword lists (sorted for stable output).
func Report(resumeText, jdText string) *types.MatchReport {
	resumeClean := textnorm.Clean(resumeText)
	jdClean := textnorm.Clean(jdText)

	resumeSkills := skills.Extract(resumeClean)
	jdSkills := skills.Extract(jdClean)
	resumeKeywords := keywords.Extract(resumeClean, keywordTopN)
	jdKeywords := keywords.Extract(jdClean, keywordTopN)

	result := Score(resumeText, jdText)

	return &types.MatchReport{
		Result:          result,
		Interpretation:  Interpret(result.Overall),
		Industry:        industry.Detect(jdText),
		MatchedSkills:   sorted(intersect(resumeSkills, jdSkills)),
		MissingSkills:   sorted(subtract(jdSkills, resumeSkills)),
		MatchedKeywords: sorted(intersect(resumeKeywords, jdKeywords)),
		MissingKeywords: sorted(subtract(jdKeywords, resumeKeywords)),
	}
}

func intersect(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for item := range a {
		if _, ok := b[item]; ok {
			out[item] = struct{}{}
		}
	}
	return out
}

func subtract(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for item := range a {
		if _, ok := b[item]; !ok {
			out[item] = struct{}{}
		}
	}
	return out
}

func sorted(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for item := range set {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
