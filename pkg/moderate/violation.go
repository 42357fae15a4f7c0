package moderate

import "fmt"

// Violation identifies a content policy violation. The set is closed:
// a text input carries zero or more of these.
type Violation int

const (
	// ViolationProfanity is a match against the profanity word set.
	ViolationProfanity Violation = iota

	// ViolationSpam is a spam pattern match or emoji flood.
	ViolationSpam

	// ViolationPersonalInfo is a phone number, email address or street
	// address in the text.
	ViolationPersonalInfo

	// ViolationExcessiveCaps is mostly-uppercase text (shouting).
	ViolationExcessiveCaps

	// ViolationExcessiveRepetition is a single character repeated five or
	// more times consecutively.
	ViolationExcessiveRepetition
)

// scoreDeductions maps each violation to its fixed content-score deduction.
// Deductions are additive across violations and the final score floors at 0.
var scoreDeductions = map[Violation]int{
	ViolationProfanity:           40,
	ViolationSpam:                30,
	ViolationPersonalInfo:        20,
	ViolationExcessiveCaps:       10,
	ViolationExcessiveRepetition: 10,
}

// String returns the violation's stable identifier.
func (v Violation) String() string {
	switch v {
	case ViolationProfanity:
		return "profanity"
	case ViolationSpam:
		return "spam"
	case ViolationPersonalInfo:
		return "personal_info"
	case ViolationExcessiveCaps:
		return "excessive_caps"
	case ViolationExcessiveRepetition:
		return "excessive_repetition"
	default:
		return fmt.Sprintf("Violation(%d)", int(v))
	}
}

// Description returns a human-readable explanation suitable for surfacing
// to a UI layer.
func (v Violation) Description() string {
	switch v {
	case ViolationProfanity:
		return "contains inappropriate language"
	case ViolationSpam:
		return "looks like spam or promotional content"
	case ViolationPersonalInfo:
		return "contains personal contact information"
	case ViolationExcessiveCaps:
		return "excessive use of capital letters"
	case ViolationExcessiveRepetition:
		return "excessive repeated characters"
	default:
		return "content policy violation"
	}
}

// Deduction returns the fixed content-score deduction for the violation.
func (v Violation) Deduction() int {
	return scoreDeductions[v]
}

// NameValidation is the outcome of validating a display name. Reason is
// empty when the name is valid; otherwise it holds the first failing
// check's message.
type NameValidation struct {
	Valid  bool
	Reason string
}
