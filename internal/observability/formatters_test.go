package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/resume-match/internal/types"
	"github.com/stretchr/testify/assert"
)

func sampleReport() *types.MatchReport {
	return &types.MatchReport{
		Result: &types.MatchResult{
			Overall: 80.0,
			Breakdown: types.Breakdown{
				Skills:     60.0,
				Keywords:   33.33,
				Experience: 100.0,
				TFIDF:      10.0,
			},
			Details: types.Details{
				ResumeYears:          3,
				JDYears:              2,
				JDSkillsCount:        5,
				MatchedSkillsCount:   3,
				JDKeywordsCount:      21,
				MatchedKeywordsCount: 7,
			},
		},
		Interpretation: types.Interpretation{
			Level:   types.LevelStrong,
			Message: "Your resume has strong alignment with the job requirements.",
		},
		Industry:      "tech",
		MissingSkills: []string{"git", "javascript"},
		MissingKeywords: []string{
			"developer", "git", "javascript", "seeking", "software", "years",
		},
	}
}

func TestPrintMatchSummary(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatchSummary(sampleReport())

	out := buf.String()
	assert.Contains(t, out, "MATCH SUMMARY")
	assert.Contains(t, out, "80.00%")
	assert.Contains(t, out, "STRONG")
	assert.Contains(t, out, "tech")
}

func TestPrintMatchSummary_NilSafe(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchSummary(nil)
	p.PrintMatchSummary(&types.MatchReport{})
	assert.Empty(t, buf.String())
}

func TestPrintBreakdown(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintBreakdown(sampleReport().Result)

	out := buf.String()
	assert.Contains(t, out, "SCORE BREAKDOWN")
	assert.Contains(t, out, "3 of 5 matched")
	assert.Contains(t, out, "3 years vs 2 required")
}

func TestPrintMissing_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMissing(sampleReport())

	out := buf.String()
	assert.Contains(t, out, "GAPS")
	assert.Contains(t, out, "... and 1 more")
}

func TestPrintMissing_SkipsWhenNothingMissing(t *testing.T) {
	var buf bytes.Buffer
	r := sampleReport()
	r.MissingSkills = nil
	r.MissingKeywords = nil

	NewPrinter(&buf).PrintMissing(r)
	assert.Empty(t, buf.String())
}
