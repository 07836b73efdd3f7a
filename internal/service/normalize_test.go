package service

import (
	"reflect"
	"testing"

	"soothe/internal/model"
)

func TestNormalizeSuggestions_Shapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		content string
		want    []model.GeneratedSuggestion
	}{
		{
			name:    "bare array with message field",
			content: `[{"message":"a","type":"t"}]`,
			want:    []model.GeneratedSuggestion{{Text: "a", Type: "t"}},
		},
		{
			name:    "bare array prefers message over text",
			content: `[{"message":"a","text":"b","type":"t"}]`,
			want:    []model.GeneratedSuggestion{{Text: "a", Type: "t"}},
		},
		{
			name:    "suggestions wrapper with default type",
			content: `{"suggestions":[{"text":"b"}]}`,
			want:    []model.GeneratedSuggestion{{Text: "b", Type: "immediate"}},
		},
		{
			name:    "singular message object",
			content: `{"message":"c","type":"x"}`,
			want:    []model.GeneratedSuggestion{{Text: "c", Type: "x"}},
		},
		{
			name:    "singular message without type",
			content: `{"message":"c"}`,
			want:    []model.GeneratedSuggestion{{Text: "c", Type: "immediate"}},
		},
		{
			name:    "unrecognized object degrades to empty",
			content: `{"unrelated":true}`,
			want:    []model.GeneratedSuggestion{},
		},
		{
			name:    "empty array",
			content: `[]`,
			want:    []model.GeneratedSuggestion{},
		},
		{
			name:    "array element missing both text fields",
			content: `[{"type":"t"}]`,
			want:    []model.GeneratedSuggestion{{Text: "", Type: "t"}},
		},
		{
			name:    "multiple elements keep order",
			content: `[{"message":"one"},{"message":"two","type":"mindset"}]`,
			want: []model.GeneratedSuggestion{
				{Text: "one", Type: "immediate"},
				{Text: "two", Type: "mindset"},
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := normalizeSuggestions([]byte(tc.content))
			if err != nil {
				t.Fatalf("normalizeSuggestions(%s) error = %v", tc.content, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("normalizeSuggestions(%s) = %+v, want %+v", tc.content, got, tc.want)
			}
		})
	}
}

func TestNormalizeSuggestions_InvalidJSON(t *testing.T) {
	t.Parallel()

	for _, content := range []string{"not json", "", "{truncated"} {
		if _, err := normalizeSuggestions([]byte(content)); err == nil {
			t.Errorf("normalizeSuggestions(%q) expected error, got nil", content)
		}
	}
}
