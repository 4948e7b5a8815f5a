// Package textnorm normalizes free text for the matching pipeline.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	urlPattern        = regexp.MustCompile(`https?://\S+|www\.\S+`)
	emailPattern      = regexp.MustCompile(`\S+@\S+`)
	phonePattern      = regexp.MustCompile(`[+(]?[1-9][0-9 .\-()]{8,}[0-9]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	specialPattern    = regexp.MustCompile(`[^\w\s.,!?-]`)
	singleLetter      = regexp.MustCompile(`\b[a-z]\b`)
	nonWordPattern    = regexp.MustCompile(`[^\w\s]`)
)

// Clean lowercases the text and strips URLs, email addresses, phone-number
// digit runs, special characters and standalone single letters, collapsing
// all whitespace runs to single spaces. It always returns a string, possibly
// empty; no input is rejected.
func Clean(text string) string {
	text = strings.ToLower(text)
	text = urlPattern.ReplaceAllString(text, "")
	text = emailPattern.ReplaceAllString(text, "")
	text = phonePattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	text = specialPattern.ReplaceAllString(text, " ")
	text = singleLetter.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// KeywordClean is the lighter cleaning used by keyword extraction: lowercase,
// collapse whitespace and replace punctuation with spaces. Unlike Clean it
// keeps single-letter tokens, URLs and contact details.
func KeywordClean(text string) string {
	text = strings.ToLower(text)
	text = whitespacePattern.ReplaceAllString(text, " ")
	text = nonWordPattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
