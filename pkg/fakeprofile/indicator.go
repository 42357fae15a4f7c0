package fakeprofile

import "fmt"

// Recommendation is the discrete action suggested for a profile.
type Recommendation int

const (
	// RecommendationAllow lets the profile through.
	RecommendationAllow Recommendation = iota

	// RecommendationFlagForReview queues the profile for human review.
	RecommendationFlagForReview

	// RecommendationAutoBlock blocks the profile without review. Declared
	// for forward compatibility: no current rule produces it.
	RecommendationAutoBlock
)

// String returns the recommendation's stable identifier.
func (r Recommendation) String() string {
	switch r {
	case RecommendationAllow:
		return "allow"
	case RecommendationFlagForReview:
		return "flag_for_review"
	case RecommendationAutoBlock:
		return "auto_block"
	default:
		return fmt.Sprintf("Recommendation(%d)", int(r))
	}
}

// Indicator is one tagged suspicion signal. The set of implementations in
// this package is closed; the unexported marker method keeps it that way so
// switches over indicators stay exhaustive.
type Indicator interface {
	// Description is the human-readable form shown to moderators.
	Description() string

	indicator()
}

// Photo indicators.

// NoPhotos means the profile has no photos at all.
type NoPhotos struct{}

func (NoPhotos) Description() string { return "profile has no photos" }

// SinglePhoto means the profile has exactly one photo.
type SinglePhoto struct{}

func (SinglePhoto) Description() string { return "profile has only one photo" }

// StockPhoto means the photo at Index was flagged by the stock-photo check.
type StockPhoto struct{ Index int }

func (s StockPhoto) Description() string {
	return fmt.Sprintf("photo %d appears to be a stock photo", s.Index+1)
}

// ProfessionalPhoto means the photo at Index looks professionally produced.
type ProfessionalPhoto struct{ Index int }

func (p ProfessionalPhoto) Description() string {
	return fmt.Sprintf("photo %d appears professionally produced", p.Index+1)
}

// InconsistentFaces means the face-consistency check scored the photo set
// below the consistency threshold.
type InconsistentFaces struct{ Consistency float64 }

func (i InconsistentFaces) Description() string {
	return fmt.Sprintf("faces are inconsistent across photos (consistency %.2f)", i.Consistency)
}

// HighQualityPhotos means the average image quality is implausibly high.
type HighQualityPhotos struct{ Average float64 }

func (h HighQualityPhotos) Description() string {
	return fmt.Sprintf("photos are implausibly high quality (average %.2f)", h.Average)
}

// Bio indicators.

// EmptyBio means the bio is empty.
type EmptyBio struct{}

func (EmptyBio) Description() string { return "bio is empty" }

// ShortBio means the bio is present but under the minimum length.
type ShortBio struct{ Length int }

func (s ShortBio) Description() string {
	return fmt.Sprintf("bio is very short (%d characters)", s.Length)
}

// GenericBio means the bio is assembled from canned phrases.
type GenericBio struct{ PhraseCount int }

func (g GenericBio) Description() string {
	return fmt.Sprintf("bio uses %d generic phrases", g.PhraseCount)
}

// ExternalLinkBio means the bio carries a social handle or URL pattern.
type ExternalLinkBio struct{ Pattern string }

func (e ExternalLinkBio) Description() string {
	return fmt.Sprintf("bio points off-platform (%q)", e.Pattern)
}

// PaymentBio means the bio carries a payment keyword.
type PaymentBio struct{ Keyword string }

func (p PaymentBio) Description() string {
	return fmt.Sprintf("bio mentions payments (%q)", p.Keyword)
}

// EmojiFloodBio means emoji outnumber half the bio's characters.
type EmojiFloodBio struct{}

func (EmojiFloodBio) Description() string { return "bio is mostly emoji" }

// BotLikeBio means the bio's special-character density exceeds the bot
// threshold.
type BotLikeBio struct{ Density float64 }

func (b BotLikeBio) Description() string {
	return fmt.Sprintf("bio text looks bot-generated (density %.2f)", b.Density)
}

// Name indicators.

// SingleWordName means the display name has no space.
type SingleWordName struct{}

func (SingleWordName) Description() string { return "name is a single word" }

// ShortName means the display name is under two characters.
type ShortName struct{}

func (ShortName) Description() string { return "name is too short" }

// UniformCaseName means the name is entirely upper or entirely lower case.
type UniformCaseName struct{}

func (UniformCaseName) Description() string { return "name has uniform casing" }

// NumericName means the name contains a digit.
type NumericName struct{}

func (NumericName) Description() string { return "name contains digits" }

// SuspiciousNameKeyword means the name contains a known throwaway keyword.
type SuspiciousNameKeyword struct{ Keyword string }

func (s SuspiciousNameKeyword) Description() string {
	return fmt.Sprintf("name contains suspicious keyword %q", s.Keyword)
}

// Completeness indicator.

// IncompleteProfile means at least two of photos, bio and location are
// missing.
type IncompleteProfile struct{ MissingCount int }

func (i IncompleteProfile) Description() string {
	return fmt.Sprintf("profile is incomplete (%d fields missing)", i.MissingCount)
}

func (NoPhotos) indicator()              {}
func (SinglePhoto) indicator()           {}
func (StockPhoto) indicator()            {}
func (ProfessionalPhoto) indicator()     {}
func (InconsistentFaces) indicator()     {}
func (HighQualityPhotos) indicator()     {}
func (EmptyBio) indicator()              {}
func (ShortBio) indicator()              {}
func (GenericBio) indicator()            {}
func (ExternalLinkBio) indicator()       {}
func (PaymentBio) indicator()            {}
func (EmojiFloodBio) indicator()         {}
func (BotLikeBio) indicator()            {}
func (SingleWordName) indicator()        {}
func (ShortName) indicator()             {}
func (UniformCaseName) indicator()       {}
func (NumericName) indicator()           {}
func (SuspiciousNameKeyword) indicator() {}
func (IncompleteProfile) indicator()     {}

// BehaviorIndicator is one tagged behavioral suspicion signal, disjoint
// from the content-derived Indicator set.
type BehaviorIndicator interface {
	Description() string

	behaviorIndicator()
}

// MassMessaging means many messages sent against very few matches.
type MassMessaging struct{ Sent, Matches int }

func (m MassMessaging) Description() string {
	return fmt.Sprintf("mass messaging: %d messages across %d matches", m.Sent, m.Matches)
}

// NewAccountBurst means heavy sending within the first day.
type NewAccountBurst struct{ Sent int }

func (n NewAccountBurst) Description() string {
	return fmt.Sprintf("new account sent %d messages in its first day", n.Sent)
}

// NoEngagement means sustained sending with zero replies.
type NoEngagement struct{ Sent int }

func (n NoEngagement) Description() string {
	return fmt.Sprintf("no replies to %d sent messages", n.Sent)
}

// RapidMatching means an implausible match count for the account's age.
type RapidMatching struct{ Matches int }

func (r RapidMatching) Description() string {
	return fmt.Sprintf("%d matches within the first week", r.Matches)
}

func (MassMessaging) behaviorIndicator()   {}
func (NewAccountBurst) behaviorIndicator() {}
func (NoEngagement) behaviorIndicator()    {}
func (RapidMatching) behaviorIndicator()   {}
