package model

// Personality selects the tone of AI-generated content
type Personality string

const (
	PersonalityGreen  Personality = "green"  // gentle, reassuring
	PersonalityYellow Personality = "yellow" // balanced, practical
	PersonalityRed    Personality = "red"    // direct, no-nonsense
)

// ParsePersonality maps a raw string to a Personality. Unrecognized values
// fall back to green rather than failing; suggestion generation is not a
// critical path and should degrade gracefully.
func ParsePersonality(s string) Personality {
	switch Personality(s) {
	case PersonalityGreen, PersonalityYellow, PersonalityRed:
		return Personality(s)
	default:
		return PersonalityGreen
	}
}
