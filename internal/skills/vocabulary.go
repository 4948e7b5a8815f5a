// Package skills extracts canonical skills from free text by matching it
// against a fixed, categorized vocabulary plus a small set of indicator
// phrase patterns.
package skills

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed vocabulary.json
var vocabularyJSON string

//go:embed vocabulary_schema.json
var vocabularySchemaJSON string

// Vocabulary is a read-only mapping from category name to canonical skill
// strings. It is built once at process start and shared across all
// extractions; it must never be mutated after load.
type Vocabulary struct {
	categories map[string][]string
	patterns   map[string]*regexp.Regexp // canonical skill -> whole-word matcher
}

// defaultVocabulary is the process-wide vocabulary built from the embedded
// JSON. The embedded data is validated at load, so a failure here is a
// build defect, not a runtime condition.
var defaultVocabulary = mustLoadVocabulary()

func mustLoadVocabulary() *Vocabulary {
	v, err := LoadVocabulary([]byte(vocabularyJSON))
	if err != nil {
		panic(fmt.Sprintf("embedded skill vocabulary is invalid: %v", err))
	}
	return v
}

// Default returns the process-wide vocabulary loaded from the embedded JSON.
func Default() *Vocabulary {
	return defaultVocabulary
}

// LoadVocabulary parses and validates a vocabulary JSON document and
// precompiles a whole-word matcher per skill. The document must satisfy the
// embedded JSON Schema: an object mapping category names to non-empty arrays
// of skill strings.
func LoadVocabulary(data []byte) (*Vocabulary, error) {
	schemaLoader := gojsonschema.NewStringLoader(vocabularySchemaJSON)
	documentLoader := gojsonschema.NewStringLoader(string(data))

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("failed to validate vocabulary: %w", err)
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			details = append(details, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
		}
		return nil, fmt.Errorf("vocabulary does not match schema: %s", strings.Join(details, "; "))
	}

	var categories map[string][]string
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary JSON: %w", err)
	}

	v := &Vocabulary{
		categories: categories,
		patterns:   make(map[string]*regexp.Regexp),
	}
	for _, entries := range categories {
		for _, skill := range entries {
			canonical := strings.ToLower(skill)
			if _, exists := v.patterns[canonical]; exists {
				continue
			}
			pattern, err := compileSkillPattern(canonical)
			if err != nil {
				return nil, fmt.Errorf("failed to compile pattern for skill %q: %w", canonical, err)
			}
			v.patterns[canonical] = pattern
		}
	}

	return v, nil
}

// compileSkillPattern builds a whole-word/whole-phrase matcher for a single
// canonical skill. Word boundaries only exist next to word characters, so
// skills that start or end with symbols (c++, c#) anchor on non-word
// characters or the string edges instead.
func compileSkillPattern(skill string) (*regexp.Regexp, error) {
	quoted := regexp.QuoteMeta(skill)

	prefix := `\b`
	if !isWordByte(skill[0]) {
		prefix = `(?:^|\W)`
	}
	suffix := `\b`
	if !isWordByte(skill[len(skill)-1]) {
		suffix = `(?:\W|$)`
	}

	return regexp.Compile(prefix + quoted + suffix)
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// Categories returns the category names in sorted order.
func (v *Vocabulary) Categories() []string {
	names := make([]string, 0, len(v.categories))
	for name := range v.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Skills returns the canonical skills of one category, or nil for an unknown
// category.
func (v *Vocabulary) Skills(category string) []string {
	return v.categories[category]
}

// Size returns the total number of distinct canonical skills in the
// vocabulary.
func (v *Vocabulary) Size() int {
	return len(v.patterns)
}
