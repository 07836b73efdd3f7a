package prompt

import (
	"testing"

	"soothe/internal/model"
)

func TestTemplate_DistinctPerPersonality(t *testing.T) {
	t.Parallel()

	seen := map[string]model.Personality{}
	for _, p := range []model.Personality{model.PersonalityGreen, model.PersonalityYellow, model.PersonalityRed} {
		tpl := Template(p)
		if tpl == "" {
			t.Fatalf("Template(%s) returned empty string", p)
		}
		if prev, ok := seen[tpl]; ok {
			t.Errorf("Template(%s) identical to Template(%s)", p, prev)
		}
		seen[tpl] = p
	}
}

func TestTemplate_UnknownFallsBackToGreen(t *testing.T) {
	t.Parallel()

	if got := Template(model.Personality("purple")); got != Template(model.PersonalityGreen) {
		t.Error("unknown personality should get the green template")
	}
	if got := Template(model.Personality("")); got != Template(model.PersonalityGreen) {
		t.Error("empty personality should get the green template")
	}
}

func TestChatTemplate_DistinctAndFallback(t *testing.T) {
	t.Parallel()

	green := ChatTemplate(model.PersonalityGreen)
	yellow := ChatTemplate(model.PersonalityYellow)
	red := ChatTemplate(model.PersonalityRed)

	if green == "" || yellow == "" || red == "" {
		t.Fatal("chat templates must be non-empty")
	}
	if green == yellow || yellow == red || green == red {
		t.Error("chat templates must be distinct per personality")
	}
	if ChatTemplate(model.Personality("blue")) != green {
		t.Error("unknown personality should get the green chat template")
	}
}

func TestParsePersonality(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want model.Personality
	}{
		{"green", model.PersonalityGreen},
		{"yellow", model.PersonalityYellow},
		{"red", model.PersonalityRed},
		{"", model.PersonalityGreen},
		{"RED", model.PersonalityGreen},
		{"orange", model.PersonalityGreen},
	}
	for _, tc := range cases {
		if got := model.ParsePersonality(tc.in); got != tc.want {
			t.Errorf("ParsePersonality(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
