package fakeprofile

import (
	"reflect"
	"testing"
	"time"
)

func TestAnalyzeBehavior(t *testing.T) {
	a := NewAnalyzer(Options{})

	tests := []struct {
		name       string
		snapshot   BehaviorSnapshot
		score      float64
		indicators []BehaviorIndicator
	}{
		{
			name: "normal activity",
			snapshot: BehaviorSnapshot{
				MessagesSent:     10,
				MessagesReceived: 5,
				Matches:          3,
				AccountAge:       30 * 24 * time.Hour,
			},
			score:      0,
			indicators: nil,
		},
		{
			name: "mass messaging",
			snapshot: BehaviorSnapshot{
				MessagesSent:     150,
				MessagesReceived: 10,
				Matches:          5,
				AccountAge:       30 * 24 * time.Hour,
			},
			score:      weightMassMessaging / scoreNormalization,
			indicators: []BehaviorIndicator{MassMessaging{Sent: 150, Matches: 5}},
		},
		{
			name: "new account burst",
			snapshot: BehaviorSnapshot{
				MessagesSent:     60,
				MessagesReceived: 5,
				Matches:          20,
				AccountAge:       2 * time.Hour,
			},
			score:      weightNewAccountBurst / scoreNormalization,
			indicators: []BehaviorIndicator{NewAccountBurst{Sent: 60}},
		},
		{
			name: "no engagement",
			snapshot: BehaviorSnapshot{
				MessagesSent:     30,
				MessagesReceived: 0,
				Matches:          15,
				AccountAge:       10 * 24 * time.Hour,
			},
			score:      weightNoEngagement / scoreNormalization,
			indicators: []BehaviorIndicator{NoEngagement{Sent: 30}},
		},
		{
			name: "rapid matching",
			snapshot: BehaviorSnapshot{
				MessagesSent:     10,
				MessagesReceived: 5,
				Matches:          150,
				AccountAge:       3 * 24 * time.Hour,
			},
			score:      weightRapidMatching / scoreNormalization,
			indicators: []BehaviorIndicator{RapidMatching{Matches: 150}},
		},
		{
			name: "stacked signals",
			snapshot: BehaviorSnapshot{
				MessagesSent:     200,
				MessagesReceived: 0,
				Matches:          5,
				AccountAge:       2 * time.Hour,
			},
			score: (weightMassMessaging + weightNewAccountBurst + weightNoEngagement) / scoreNormalization,
			indicators: []BehaviorIndicator{
				MassMessaging{Sent: 200, Matches: 5},
				NewAccountBurst{Sent: 200},
				NoEngagement{Sent: 200},
			},
		},
		{
			name: "boundary values stay quiet",
			snapshot: BehaviorSnapshot{
				MessagesSent:     100,
				MessagesReceived: 1,
				Matches:          100,
				AccountAge:       burstAccountAge,
			},
			score:      0,
			indicators: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := a.AnalyzeBehavior(tt.snapshot)
			scoreNear(t, analysis.Score, tt.score)
			if !reflect.DeepEqual(analysis.Indicators, tt.indicators) {
				t.Errorf("indicators = %v, want %v", analysis.Indicators, tt.indicators)
			}
			if analysis.Suspicious != (analysis.Score >= suspicionThreshold) {
				t.Errorf("suspicious = %v with score %v", analysis.Suspicious, analysis.Score)
			}
		})
	}
}
