package fakeprofile

import "time"

// Behavioral weights and thresholds. Like the content weights, these are
// fixed scoring constants shared with downstream review tooling.
const (
	weightMassMessaging   = 0.7
	weightNewAccountBurst = 0.8
	weightNoEngagement    = 0.6
	weightRapidMatching   = 0.5

	massMessagingSentFloor  = 100
	massMessagingMatchCeil  = 10
	burstAccountAge         = 24 * time.Hour
	burstSentFloor          = 50
	noEngagementSentFloor   = 20
	rapidMatchingMatchFloor = 100
	rapidMatchingAccountAge = 7 * 24 * time.Hour
)

// BehaviorSnapshot holds the activity counters for one account.
type BehaviorSnapshot struct {
	MessagesSent     int
	MessagesReceived int
	Matches          int
	AccountAge       time.Duration
}

// BehaviorAnalysis is the outcome of analyzing behavioral counters. It uses
// the same clamped-sum scoring model as profile analysis over a disjoint
// signal set.
type BehaviorAnalysis struct {
	Suspicious bool
	Score      float64
	Indicators []BehaviorIndicator
}

// AnalyzeBehavior scores an account's activity counters for bot-like and
// scam-like patterns.
func (a *Analyzer) AnalyzeBehavior(s BehaviorSnapshot) BehaviorAnalysis {
	var score float64
	var indicators []BehaviorIndicator

	if s.MessagesSent > massMessagingSentFloor && s.Matches < massMessagingMatchCeil {
		score += weightMassMessaging
		indicators = append(indicators, MassMessaging{Sent: s.MessagesSent, Matches: s.Matches})
	}

	if s.AccountAge < burstAccountAge && s.MessagesSent > burstSentFloor {
		score += weightNewAccountBurst
		indicators = append(indicators, NewAccountBurst{Sent: s.MessagesSent})
	}

	if s.MessagesReceived == 0 && s.MessagesSent > noEngagementSentFloor {
		score += weightNoEngagement
		indicators = append(indicators, NoEngagement{Sent: s.MessagesSent})
	}

	if s.Matches > rapidMatchingMatchFloor && s.AccountAge < rapidMatchingAccountAge {
		score += weightRapidMatching
		indicators = append(indicators, RapidMatching{Matches: s.Matches})
	}

	normalized := clamp01(score / scoreNormalization)
	return BehaviorAnalysis{
		Suspicious: normalized >= suspicionThreshold,
		Score:      normalized,
		Indicators: indicators,
	}
}
