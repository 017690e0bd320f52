// Package textscan pulls structured signals out of free-text business
// descriptions: a candidate business name plus industry/style/feature keyword
// hints. Pure heuristics, no external calls; absence of matches yields empty
// results, never an error.
package textscan

import (
	"strings"
	"unicode"
)

// Signals is the result of one extraction pass.
type Signals struct {
	CandidateName string
	IndustryHints []string
	StyleHints    []string
	FeatureHints  []string
}

// maxNameTokens caps a capitalized run; longer runs keep their first three tokens.
const maxNameTokens = 3

// nameStoplist are capitalized tokens that start sentences, not names.
var nameStoplist = map[string]bool{
	"A": true, "The": true, "My": true, "Our": true, "Your": true,
	"We": true, "I": true,
}

// Extract scans text for a candidate name and all hint categories.
func Extract(text string) Signals {
	return Signals{
		CandidateName: scanName(text),
		IndustryHints: scanHints(text, industryKeywords),
		StyleHints:    scanHints(text, styleKeywords),
		FeatureHints:  scanHints(text, featureKeywords),
	}
}

// ExtractName returns the candidate name found in text, or the default name
// for the given industry when no capitalized run exists.
func ExtractName(text, industry string) string {
	if name := scanName(text); name != "" {
		return name
	}
	return DefaultName(industry)
}

// DefaultName returns the fallback business name for an industry.
func DefaultName(industry string) string {
	if name, ok := defaultNames[strings.ToLower(industry)]; ok {
		return name
	}
	return genericDefaultName
}

// scanName finds the longest run of consecutive capitalized tokens (capped at
// maxNameTokens, stoplist excluded). First run wins among equal lengths.
func scanName(text string) string {
	tokens := strings.Fields(text)

	var best []string
	var run []string
	flush := func() {
		if len(run) > maxNameTokens {
			run = run[:maxNameTokens]
		}
		if len(run) > len(best) {
			best = append([]string(nil), run...)
		}
		run = nil
	}

	for _, tok := range tokens {
		word := strings.Trim(tok, ".,!?;:\"'()[]")
		if isNameToken(word) {
			run = append(run, word)
			continue
		}
		flush()
	}
	flush()

	return strings.Join(best, " ")
}

func isNameToken(word string) bool {
	if word == "" || nameStoplist[word] {
		return false
	}
	r := []rune(word)
	return unicode.IsUpper(r[0]) && unicode.IsLetter(r[0])
}

// scanHints intersects a keyword list with the lower-cased text. Result order
// follows the keyword list; each keyword appears at most once.
func scanHints(text string, keywords []string) []string {
	lower := strings.ToLower(text)
	var found []string
	seen := map[string]bool{}
	for _, kw := range keywords {
		if seen[kw] {
			continue
		}
		if strings.Contains(lower, kw) {
			found = append(found, kw)
			seen[kw] = true
		}
	}
	return found
}
