// Package types defines the shared data structures exchanged between the
// matching engine and its collaborators (CLI, server, persistence, reports).
package types

// Breakdown holds the per-signal percentage scores reported alongside the
// overall match score. Each value is in [0, 100] and is reported before
// bonuses are applied; bonuses affect only MatchResult.Overall.
type Breakdown struct {
	Skills     float64 `json:"skills"`
	Keywords   float64 `json:"keywords"`
	Experience float64 `json:"experience"`
	TFIDF      float64 `json:"tfidf"`
}

// Details holds the raw counts behind the breakdown, useful for explaining
// how each ratio was computed.
type Details struct {
	ResumeYears          int `json:"resume_years"`
	JDYears              int `json:"jd_years"`
	ResumeSkillsCount    int `json:"resume_skills_count"`
	JDSkillsCount        int `json:"jd_skills_count"`
	MatchedSkillsCount   int `json:"matched_skills_count"`
	ResumeKeywordsCount  int `json:"resume_keywords_count"`
	JDKeywordsCount      int `json:"jd_keywords_count"`
	MatchedKeywordsCount int `json:"matched_keywords_count"`
}

// MatchResult is the engine's scoring output for one (resume, job
// description) pair. Overall is in [0, 100], rounded to 2 decimal places.
type MatchResult struct {
	Overall   float64   `json:"overall"`
	Breakdown Breakdown `json:"breakdown"`
	Details   Details   `json:"details"`
}

// Interpretation maps a final score to a qualitative tier with a fixed
// message and recommended action.
type Interpretation struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Action  string `json:"action"`
}

// Interpretation levels, ordered from best to worst.
const (
	LevelExcellent = "EXCELLENT"
	LevelStrong    = "STRONG"
	LevelGood      = "GOOD"
	LevelModerate  = "MODERATE"
	LevelWeak      = "WEAK"
)

// MatchReport bundles the scoring result with the derived matched/missing
// sets and the interpretation. It is the record consumed by report rendering
// and history persistence; the engine itself only produces it, never reads it.
type MatchReport struct {
	Result          *MatchResult   `json:"result"`
	Interpretation  Interpretation `json:"interpretation"`
	Industry        string         `json:"industry"`
	MatchedSkills   []string       `json:"matched_skills"`
	MissingSkills   []string       `json:"missing_skills"`
	MatchedKeywords []string       `json:"matched_keywords"`
	MissingKeywords []string       `json:"missing_keywords"`
}
