package scoring_test

import (
	"testing"

	"study-planner/internal/scoring"
)

func TestScoreClamped(t *testing.T) {
	e := scoring.NewPriorityEngine(scoring.DefaultPriorityConfig())

	tests := []struct {
		name string
		in   scoring.PriorityInput
	}{
		{
			name: "everything maxed",
			in: scoring.PriorityInput{
				Importance: 10, Impact: 10, CompletionPct: 0,
				EstimatedHours: 1000, DeadlineHours: 0.1,
				Mood: 1, Energy: 10, Motivation: 10, Stress: 1,
			},
		},
		{
			name: "everything minimal",
			in: scoring.PriorityInput{
				Importance: 1, Impact: 1, CompletionPct: 100,
				EstimatedHours: 0.1, DeadlineHours: 1000,
				Mood: 10, Energy: 1, Motivation: 1, Stress: 10,
			},
		},
		{
			name: "burnout under deadline",
			in: scoring.PriorityInput{
				Importance: 8, Impact: 9, CompletionPct: 10,
				EstimatedHours: 40, DeadlineHours: 2,
				Mood: 10, Energy: 2, Motivation: 3, Stress: 10,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Score(tt.in)
			if got.Score < 0 || got.Score > 100 {
				t.Errorf("score %v out of [0,100]", got.Score)
			}
			if got.Urgency < 0 || got.Urgency > 100 {
				t.Errorf("urgency %v out of [0,100]", got.Urgency)
			}
		})
	}
}

func TestUrgencyClampedAt100(t *testing.T) {
	e := scoring.NewPriorityEngine(scoring.DefaultPriorityConfig())

	got := e.Score(scoring.PriorityInput{
		Importance: 5, Impact: 5, CompletionPct: 0,
		EstimatedHours: 100000, DeadlineHours: 0.01,
		Mood: 5, Energy: 5, Motivation: 5, Stress: 5,
	})
	if got.Urgency != 100 {
		t.Errorf("urgency = %v, want clamp at 100", got.Urgency)
	}
}

func TestValueIndependentOfOtherSignals(t *testing.T) {
	e := scoring.NewPriorityEngine(scoring.DefaultPriorityConfig())

	for _, energy := range []int{1, 5, 10} {
		got := e.Score(scoring.PriorityInput{
			Importance: 10, Impact: 10, CompletionPct: 50,
			EstimatedHours: 2, DeadlineHours: 24,
			Mood: 3, Energy: energy, Motivation: 5, Stress: 2,
		})
		if got.Value != 100 {
			t.Errorf("energy=%d: value = %v, want 100", energy, got.Value)
		}
	}
}

func TestCapacityComposite(t *testing.T) {
	e := scoring.NewPriorityEngine(scoring.DefaultPriorityConfig())

	// (7 - (3 + 2/10)) * (1 + 5/100) = 3.8 * 1.05 = 3.99
	got := e.Score(scoring.PriorityInput{
		Importance: 5, Impact: 5, CompletionPct: 0,
		EstimatedHours: 1, DeadlineHours: 24,
		Mood: 3, Energy: 7, Motivation: 5, Stress: 2,
	})
	if got.Capacity < 3.98 || got.Capacity > 4.0 {
		t.Errorf("capacity = %v, want 3.99", got.Capacity)
	}
}

func TestBands(t *testing.T) {
	e := scoring.NewPriorityEngine(scoring.DefaultPriorityConfig())

	tests := []struct {
		name string
		in   scoring.PriorityInput
		want scoring.Band
	}{
		{
			name: "crunch when overloaded",
			in: scoring.PriorityInput{
				Importance: 10, Impact: 10, CompletionPct: 0,
				EstimatedHours: 48, DeadlineHours: 1,
				Mood: 3, Energy: 7, Motivation: 5, Stress: 2,
			},
			want: scoring.BandCrunch,
		},
		{
			name: "relaxed when done and distant",
			in: scoring.PriorityInput{
				Importance: 1, Impact: 1, CompletionPct: 95,
				EstimatedHours: 1, DeadlineHours: 240,
				Mood: 10, Energy: 1, Motivation: 1, Stress: 10,
			},
			want: scoring.BandRelaxed,
		},
		{
			name: "comfortable in the middle",
			in: scoring.PriorityInput{
				Importance: 5, Impact: 5, CompletionPct: 50,
				EstimatedHours: 10, DeadlineHours: 48,
				Mood: 5, Energy: 5, Motivation: 5, Stress: 5,
			},
			want: scoring.BandComfortable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Score(tt.in)
			if got.Band != tt.want {
				t.Errorf("band = %s (score %v), want %s", got.Band, got.Score, tt.want)
			}
		})
	}
}

func TestBandStyling(t *testing.T) {
	if scoring.BandCrunch.Styling() != "error" {
		t.Error("crunch should style as error")
	}
	if scoring.BandRelaxed.Styling() != "success" {
		t.Error("relaxed should style as success")
	}
	if scoring.BandComfortable.Styling() != "info" {
		t.Error("comfortable should style as info")
	}
}
