package service

import (
	"encoding/json"

	"soothe/internal/model"
)

// defaultSuggestionType is applied when the model omits the type tag
const defaultSuggestionType = "immediate"

// rawSuggestion accepts both field names the model uses for suggestion text
type rawSuggestion struct {
	Message string `json:"message"`
	Text    string `json:"text"`
	Type    string `json:"type"`
}

func (r rawSuggestion) normalized() model.GeneratedSuggestion {
	text := r.Message
	if text == "" {
		text = r.Text
	}
	typ := r.Type
	if typ == "" {
		typ = defaultSuggestionType
	}
	return model.GeneratedSuggestion{Text: text, Type: typ}
}

// normalizeSuggestions collapses the completion content into a canonical
// suggestion list. The upstream output schema is not contractually guaranteed,
// so three known shapes are tried in fixed priority order: a bare array, an
// object wrapping a "suggestions" array, and an object with a singular
// "message". Anything else that is still valid JSON degrades to an empty list;
// only non-JSON content is an error.
func normalizeSuggestions(content []byte) ([]model.GeneratedSuggestion, error) {
	var probe any
	if err := json.Unmarshal(content, &probe); err != nil {
		return nil, err
	}

	var arr []rawSuggestion
	if err := json.Unmarshal(content, &arr); err == nil {
		return normalizeAll(arr), nil
	}

	var wrapped struct {
		Suggestions []rawSuggestion `json:"suggestions"`
	}
	if err := json.Unmarshal(content, &wrapped); err == nil && wrapped.Suggestions != nil {
		return normalizeAll(wrapped.Suggestions), nil
	}

	var single struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	}
	if err := json.Unmarshal(content, &single); err == nil && single.Message != "" {
		return normalizeAll([]rawSuggestion{{Message: single.Message, Type: single.Type}}), nil
	}

	// Valid JSON in an unrecognized shape: an empty list is a legitimate,
	// if degenerate, outcome.
	return []model.GeneratedSuggestion{}, nil
}

func normalizeAll(raw []rawSuggestion) []model.GeneratedSuggestion {
	out := make([]model.GeneratedSuggestion, len(raw))
	for i, r := range raw {
		out[i] = r.normalized()
	}
	return out
}
