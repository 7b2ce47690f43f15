package scoring

import "math"

// Band is the categorical pressure label attached to a priority score.
type Band string

const (
	BandCrunch      Band = "Crunch"
	BandComfortable Band = "Comfortable"
	BandRelaxed     Band = "Relaxed"
)

// Styling returns the alert level UIs should render the band with.
func (b Band) Styling() string {
	switch b {
	case BandCrunch:
		return "error"
	case BandRelaxed:
		return "success"
	default:
		return "info"
	}
}

// PriorityConfig tunes how the priority signals combine. Defaults
// reproduce the production formula.
type PriorityConfig struct {
	CapacityWeight   float64 // weight of the capacity composite in the raw score
	MinDeadlineHours float64 // floor applied to the deadline inside the urgency division
	CrunchThreshold  float64 // scores strictly above this are Crunch
	RelaxedThreshold float64 // scores strictly below this are Relaxed
}

// DefaultPriorityConfig returns the canonical thresholds and weights.
func DefaultPriorityConfig() PriorityConfig {
	return PriorityConfig{
		CapacityWeight:   1.5,
		MinDeadlineHours: 0.1,
		CrunchThreshold:  75,
		RelaxedThreshold: 25,
	}
}

// PriorityEngine computes a bounded priority score from value, urgency
// and capacity signals.
type PriorityEngine struct {
	config PriorityConfig
}

// NewPriorityEngine creates an engine with the given configuration.
func NewPriorityEngine(cfg PriorityConfig) *PriorityEngine {
	return &PriorityEngine{config: cfg}
}

// PriorityInput holds the already-validated analyzer inputs. Ratings are
// 1..10 integers, CompletionPct is 0..100, both times are canonical hours.
type PriorityInput struct {
	Importance     int
	Impact         int
	CompletionPct  float64
	EstimatedHours float64
	DeadlineHours  float64
	Mood           int
	Energy         int
	Motivation     int
	Stress         int
}

// PriorityScore is the bounded score plus the intermediate figures shown
// to the user.
type PriorityScore struct {
	Score    float64 // 0..100, rounded to one decimal
	Band     Band
	Value    float64 // 0..100
	Urgency  float64 // 0..100
	Capacity float64 // signed, unbounded
	WorkLeft float64 // remaining work in hours
}

// Score combines the signals into a clamped priority score.
func (e *PriorityEngine) Score(in PriorityInput) PriorityScore {
	value := (float64(in.Importance+in.Impact) / 2) * 10
	capacity := (float64(in.Energy) - (float64(in.Mood) + float64(in.Stress)/10)) *
		(1 + float64(in.Motivation)/100)

	workLeft := in.EstimatedHours * (1 - in.CompletionPct/100)
	urgency := math.Min(workLeft/math.Max(in.DeadlineHours, e.config.MinDeadlineHours)*100, 100)

	raw := (urgency + value/2) + capacity*e.config.CapacityWeight
	score := math.Min(math.Max(math.Round(raw*10)/10, 0), 100)

	return PriorityScore{
		Score:    score,
		Band:     e.band(score),
		Value:    value,
		Urgency:  urgency,
		Capacity: capacity,
		WorkLeft: workLeft,
	}
}

// band labels the score; ties fall into the middle band.
func (e *PriorityEngine) band(score float64) Band {
	switch {
	case score > e.config.CrunchThreshold:
		return BandCrunch
	case score < e.config.RelaxedThreshold:
		return BandRelaxed
	default:
		return BandComfortable
	}
}
