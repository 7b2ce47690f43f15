package scoring_test

import (
	"math"
	"testing"

	"study-planner/internal/scoring"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEstimateMidpoint(t *testing.T) {
	e := scoring.NewEstimator(scoring.DefaultEstimatorConfig())

	got := e.Estimate(scoring.EstimateInput{
		SubjectDifficulty: 5,
		TaskDifficulty:    5,
		BaselineTime:      60,
	})

	if !almostEqual(got.TimeMultiplier, 1.0) {
		t.Errorf("time multiplier = %v, want 1.0", got.TimeMultiplier)
	}
	if !almostEqual(got.PredictedTime, 60) {
		t.Errorf("predicted time = %v, want 60", got.PredictedTime)
	}
	if !almostEqual(got.DifficultyLevel, 5) {
		t.Errorf("difficulty level = %v, want 5", got.DifficultyLevel)
	}
	if !almostEqual(got.BreakLevel, 0.425) {
		t.Errorf("break level = %v, want 0.425", got.BreakLevel)
	}
	if !almostEqual(got.BreakTime, 2.55) {
		t.Errorf("break time = %v, want 2.55", got.BreakTime)
	}
	if !almostEqual(got.PredictedTotal, 46.9125) {
		t.Errorf("predicted total = %v, want 46.9125", got.PredictedTotal)
	}
	if !almostEqual(got.FocusLevel, 6) {
		t.Errorf("focus level = %v, want 6", got.FocusLevel)
	}
}

func TestEstimateRangeBracketsTotal(t *testing.T) {
	e := scoring.NewEstimator(scoring.DefaultEstimatorConfig())

	tests := []struct {
		name     string
		subject  float64
		task     float64
		baseline float64
	}{
		{name: "easy short", subject: 1, task: 1, baseline: 10},
		{name: "hard long", subject: 10, task: 10, baseline: 240},
		{name: "mixed", subject: 3, task: 8, baseline: 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Estimate(scoring.EstimateInput{
				SubjectDifficulty: tt.subject,
				TaskDifficulty:    tt.task,
				BaselineTime:      tt.baseline,
			})
			if got.RangeLow > got.PredictedTotal || got.RangeHigh < got.PredictedTotal {
				t.Errorf("range [%v, %v] does not bracket total %v",
					got.RangeLow, got.RangeHigh, got.PredictedTotal)
			}
			if !almostEqual(got.WorkingTime+got.BreakTotal, got.PredictedTotal) {
				t.Errorf("working %v + break %v != total %v",
					got.WorkingTime, got.BreakTotal, got.PredictedTotal)
			}
		})
	}
}

func TestEstimateZeroBaseline(t *testing.T) {
	e := scoring.NewEstimator(scoring.DefaultEstimatorConfig())

	got := e.Estimate(scoring.EstimateInput{SubjectDifficulty: 7, TaskDifficulty: 4, BaselineTime: 0})
	if got.PredictedTotal != 0 {
		t.Errorf("zero baseline must predict zero, got %v", got.PredictedTotal)
	}
	// Focus and difficulty are independent of the baseline.
	if !almostEqual(got.DifficultyLevel, 5.5) {
		t.Errorf("difficulty level = %v, want 5.5", got.DifficultyLevel)
	}
}
