package catalog

import "strings"

// Scoring weights. Carried over from the original heuristic; tunable policy,
// not invariants.
const (
	weightExactKeyword    = 10.0
	weightSubstringMatch  = 5.0
	weightIndustryOverlap = 3.0
	weightNameLength      = 0.1
)

// Resolve picks the best variant for a section type. Nil means the catalog
// has no variant for the type and the caller should skip the section.
//
// A preferred variant name that matches a catalog entry (case-insensitive)
// wins outright. Otherwise every candidate is scored against the description
// and industry; the highest score wins, with ties broken by catalog order.
// When no candidate earns any keyword score, the first catalog entry for the
// type is returned as the graceful default.
func (c *Catalog) Resolve(sectionType, description, industry, preferredVariant string) *ComponentVariant {
	candidates := c.byType[sectionType]
	if len(candidates) == 0 {
		return nil
	}

	if preferredVariant != "" {
		for i := range candidates {
			if strings.EqualFold(candidates[i].Name, preferredVariant) {
				return &candidates[i]
			}
		}
	}

	desc := strings.ToLower(description)
	tokens := map[string]bool{}
	for _, tok := range strings.Fields(desc) {
		tokens[strings.Trim(tok, ".,!?;:\"'()")] = true
	}
	ind := strings.ToLower(industry)

	bestIdx := 0
	bestScore := -1.0
	anyKeywordScore := false

	for i, cand := range candidates {
		keywordScore := 0.0
		for _, kw := range cand.Keywords {
			kw = strings.ToLower(kw)
			switch {
			case tokens[kw]:
				keywordScore += weightExactKeyword
			case strings.Contains(desc, kw):
				keywordScore += weightSubstringMatch
			}
			if ind != "" && (strings.Contains(kw, ind) || strings.Contains(ind, kw)) {
				keywordScore += weightIndustryOverlap
			}
		}
		if keywordScore > 0 {
			anyKeywordScore = true
		}

		score := keywordScore + weightNameLength*float64(len(cand.Name))
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if !anyKeywordScore {
		return &candidates[0]
	}
	return &candidates[bestIdx]
}
