package recommend

import "strings"

const (
	// maxInferredKeywords caps how many inferred food types feed the search.
	maxInferredKeywords = 3
	// DefaultMaxKeywords caps the combined keyword list per request.
	DefaultMaxKeywords = 5
)

// DeriveKeywords combines user-selected cuisines with inferred food types
// into the fan-out keyword list. Cuisines go first so the cap never truncates
// them; at most 3 inferred food types follow. Exact duplicates are dropped
// keeping the first occurrence, and the combined list is capped at maxTotal
// (DefaultMaxKeywords when maxTotal is not positive).
func DeriveKeywords(foodTypes, cuisines []string, maxTotal int) []string {
	if maxTotal <= 0 {
		maxTotal = DefaultMaxKeywords
	}

	inferred := foodTypes
	if len(inferred) > maxInferredKeywords {
		inferred = inferred[:maxInferredKeywords]
	}

	combined := make([]string, 0, len(cuisines)+len(inferred))
	combined = append(combined, cuisines...)
	combined = append(combined, inferred...)

	seen := make(map[string]struct{}, len(combined))
	keywords := make([]string, 0, len(combined))
	for _, kw := range combined {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		keywords = append(keywords, kw)
		if len(keywords) == maxTotal {
			break
		}
	}

	return keywords
}
