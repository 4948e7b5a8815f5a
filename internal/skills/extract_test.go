package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_SingleWordSkills(t *testing.T) {
	found := Extract("Experienced developer using Python, SQL and React daily.")

	assert.Contains(t, found, "python")
	assert.Contains(t, found, "sql")
	assert.Contains(t, found, "react")
}

func TestExtract_MultiWordSkills(t *testing.T) {
	found := Extract("Led machine learning and project management initiatives.")

	assert.Contains(t, found, "machine learning")
	assert.Contains(t, found, "project management")
}

func TestExtract_WholeWordBoundaries(t *testing.T) {
	// "javan" and "gossip" should not match "java" or "go".
	found := Extract("Javan gossip columns")

	assert.NotContains(t, found, "java")
	assert.NotContains(t, found, "go")
}

func TestExtract_SymbolSkills(t *testing.T) {
	found := Extract("Wrote services in C++ and C# for trading systems.")

	assert.Contains(t, found, "c++")
	assert.Contains(t, found, "c#")
}

func TestExtract_IndicatorPatterns(t *testing.T) {
	found := Extract("Skilled in negotiation and experience with salesforce tooling.")

	assert.Contains(t, found, "negotiation")
	// "salesforce" is not in the vocabulary but the indicator capture keeps it.
	assert.Contains(t, found, "salesforce")
}

func TestExtract_IndicatorSkipsShortTokens(t *testing.T) {
	found := Extract("knowledge of it systems")

	assert.NotContains(t, found, "it")
}

func TestExtract_EmptyText(t *testing.T) {
	assert.Empty(t, Extract(""))
}

func TestExtract_CaseInsensitive(t *testing.T) {
	found := Extract("PYTHON and Docker")

	assert.Contains(t, found, "python")
	assert.Contains(t, found, "docker")
}

func TestLoadVocabulary_RejectsInvalidShape(t *testing.T) {
	_, err := LoadVocabulary([]byte(`{"programming": "python"}`))
	require.Error(t, err)

	_, err = LoadVocabulary([]byte(`{"programming": []}`))
	require.Error(t, err)
}

func TestLoadVocabulary_ValidDocument(t *testing.T) {
	v, err := LoadVocabulary([]byte(`{"custom": ["cobol", "fortran 77"]}`))
	require.NoError(t, err)

	found := v.Extract("Maintained COBOL and Fortran 77 programs.")
	assert.Contains(t, found, "cobol")
	assert.Contains(t, found, "fortran 77")
}

func TestDefaultVocabulary_Shape(t *testing.T) {
	v := Default()

	assert.Len(t, v.Categories(), 10)
	assert.GreaterOrEqual(t, v.Size(), 100)
	assert.Contains(t, v.Skills("programming"), "python")
}
