package sanitize

import "fmt"

// Level controls how aggressively Sanitize transforms input text.
// Levels are ordered: every transformation applied at a lower level is also
// applied at the levels above it.
type Level int

const (
	// LevelBasic trims surrounding whitespace and nothing else.
	LevelBasic Level = iota

	// LevelStandard applies the full attack-pattern removal pipeline.
	LevelStandard

	// LevelStrict applies Standard and additionally deletes any character
	// in the forbidden set and re-collapses whitespace.
	LevelStrict
)

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelBasic:
		return "basic"
	case LevelStandard:
		return "standard"
	case LevelStrict:
		return "strict"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// ParseLevel parses a level name ("basic", "standard", "strict").
// An empty string parses to LevelStandard.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "basic":
		return LevelBasic, nil
	case "standard", "":
		return LevelStandard, nil
	case "strict":
		return LevelStrict, nil
	default:
		return LevelStandard, fmt.Errorf("unknown sanitization level: %q", s)
	}
}
