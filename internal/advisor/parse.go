package advisor

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Field names accepted in the generator's JSON. The second spelling of each
// is what older prompts asked for.
var (
	analysisKeys        = []string{"general_analysis", "analise_geral"}
	positiveKeys        = []string{"positive_points", "pontos_positivos"}
	attentionKeys       = []string{"attention_points", "pontos_atencao"}
	recommendationsKeys = []string{"recommendations", "recomendacoes"}
)

// ParseResponse interprets generator output as a narrative record.
//
// Optional markdown code fences are removed before decoding. If the text is
// not a JSON object carrying at least one known field, the whole text becomes
// the analysis, the result is flagged StatusMalformedOutput and
// ErrMalformedOutput is returned alongside it.
func ParseResponse(text string) (NarrativeResult, error) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal([]byte(stripFences(text)), &fields); err != nil {
		return fallback(text), fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	result := NarrativeResult{Status: StatusOK, Recommendations: []string{}}
	found := false

	for _, target := range []struct {
		keys []string
		dest *string
	}{
		{analysisKeys, &result.Analysis},
		{positiveKeys, &result.PositivePoints},
		{attentionKeys, &result.AttentionPoints},
	} {
		raw, ok := lookup(fields, target.keys)
		if !ok {
			continue
		}
		lines, err := decodeText(raw)
		if err != nil {
			return fallback(text), fmt.Errorf("%w: field %q: %v", ErrMalformedOutput, target.keys[0], err)
		}
		*target.dest = strings.Join(lines, "\n")
		found = true
	}

	if raw, ok := lookup(fields, recommendationsKeys); ok {
		lines, err := decodeText(raw)
		if err != nil {
			return fallback(text), fmt.Errorf("%w: field %q: %v", ErrMalformedOutput, recommendationsKeys[0], err)
		}
		result.Recommendations = lines
		found = true
	}

	if !found {
		return fallback(text), fmt.Errorf("%w: no recognised fields", ErrMalformedOutput)
	}
	return result, nil
}

func fallback(text string) NarrativeResult {
	return NarrativeResult{
		Status:          StatusMalformedOutput,
		Analysis:        strings.TrimSpace(text),
		Recommendations: []string{},
	}
}

// stripFences removes a leading ``` or ```json line and a trailing ```.
func stripFences(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		if newline := strings.IndexByte(cleaned, '\n'); newline >= 0 {
			cleaned = cleaned[newline+1:]
		} else {
			cleaned = strings.TrimPrefix(cleaned, "json")
		}
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	return strings.TrimSpace(cleaned)
}

func lookup(fields map[string]json.RawMessage, keys []string) (json.RawMessage, bool) {
	for _, key := range keys {
		if raw, ok := fields[key]; ok {
			return raw, true
		}
	}
	return nil, false
}

// decodeText accepts either a string or an array of strings.
func decodeText(raw json.RawMessage) ([]string, error) {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		if single == "" {
			return []string{}, nil
		}
		return []string{single}, nil
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err != nil {
		return nil, err
	}
	if many == nil {
		many = []string{}
	}
	return many, nil
}
