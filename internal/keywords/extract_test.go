package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_ReturnsAtMostTopN(t *testing.T) {
	text := strings.Repeat("backend engineering distributed systems kafka postgres kubernetes observability ", 3)

	for _, n := range []int{1, 5, 15, 100} {
		found := Extract(text, n)
		assert.LessOrEqual(t, len(found), n)
	}
}

func TestExtract_EmptyText(t *testing.T) {
	assert.Empty(t, Extract("", 15))
}

func TestExtract_RanksFrequentTermsFirst(t *testing.T) {
	text := "kubernetes kubernetes kubernetes helm helm terraform"

	found := Extract(text, 2)
	assert.Contains(t, found, "kubernetes")
}

func TestExtract_IncludesBigrams(t *testing.T) {
	text := strings.Repeat("machine learning pipelines on machine learning infrastructure ", 2)

	found := Extract(text, 10)
	assert.Contains(t, found, "machine learning")
}

func TestExtract_DropsStopWords(t *testing.T) {
	// Short input triggers the pad step, which refills from words outside
	// the small common-word filter. Only that filter is guaranteed dropped;
	// other stop words such as "were" may come back through padding.
	found := Extract("the report and the dashboard were ready for the meeting", 15)

	assert.NotContains(t, found, "the")
	assert.NotContains(t, found, "and")
	assert.Contains(t, found, "dashboard")
}

func TestExtract_PadRefillsFromFilteredWords(t *testing.T) {
	// Seven weighted terms exist, so requesting more pads the result with
	// frequent filtered words, stop words included.
	found := Extract("the report and the dashboard were ready for the meeting", 15)

	assert.Contains(t, found, "were")
}

func TestExtract_FallbackWhenEverythingFiltered(t *testing.T) {
	// Every token is either a common word or too short, so the raw frequency
	// fallback applies and may include stop words.
	found := Extract("the and for the the", 15)

	assert.NotEmpty(t, found)
	assert.Contains(t, found, "the")
}

func TestExtract_Deterministic(t *testing.T) {
	text := "golang services grpc postgres redis golang services deployment"

	first := Extract(text, 5)
	second := Extract(text, 5)
	assert.Equal(t, first, second)
}

func TestExtract_NonPositiveTopNUsesDefault(t *testing.T) {
	text := strings.Repeat("alpha beta gamma delta epsilon zeta theta iota kappa lambda omicron sigma upsilon omega phi chi psi tau rho xi ", 1)

	found := Extract(text, 0)
	assert.LessOrEqual(t, len(found), DefaultTopN)
	assert.NotEmpty(t, found)
}
