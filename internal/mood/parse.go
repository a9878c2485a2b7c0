package mood

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var errEmptyMessage = errors.New("mood: model returned empty message")

// parseAnalysis decodes the raw model output, tolerating a markdown code
// fence around the JSON body. Food types are trimmed and capped at 3.
func parseAnalysis(raw string) (*Analysis, error) {
	jsonStr := stripFences(raw)
	if jsonStr == "" {
		return nil, errEmptyMessage
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(jsonStr), &analysis); err != nil {
		return nil, fmt.Errorf("mood: unmarshal analysis: %w", err)
	}

	clean := make([]string, 0, len(analysis.FoodTypes))
	for _, ft := range analysis.FoodTypes {
		if trimmed := strings.TrimSpace(ft); trimmed != "" {
			clean = append(clean, trimmed)
		}
		if len(clean) == maxFoodTypes {
			break
		}
	}
	analysis.FoodTypes = clean

	return &analysis, nil
}

// stripFences removes a surrounding markdown code fence (``` or ```json)
// when present and trims whitespace.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// drop the language tag line, e.g. ```json
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
