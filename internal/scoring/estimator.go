package scoring

// EstimatorConfig tunes the time prediction formula. The defaults
// reproduce the production formula exactly; they exist so experiments
// can be run from config without a rebuild.
type EstimatorConfig struct {
	BreakBase  float64 // baseline added to the difficulty-derived break level
	TotalScale float64 // final scale applied to predicted + break time
	RangeLow   float64 // lower bound multiplier of the completion range
	RangeHigh  float64 // upper bound multiplier of the completion range
}

// DefaultEstimatorConfig returns the canonical formula constants.
func DefaultEstimatorConfig() EstimatorConfig {
	return EstimatorConfig{
		BreakBase:  0.35,
		TotalScale: 0.75,
		RangeLow:   0.75,
		RangeHigh:  1.15,
	}
}

// Estimator predicts study time from difficulty ratings and a baseline.
type Estimator struct {
	config EstimatorConfig
}

// NewEstimator creates an Estimator with the given configuration.
func NewEstimator(cfg EstimatorConfig) *Estimator {
	return &Estimator{config: cfg}
}

// EstimateInput holds the already-validated estimator inputs. Difficulty
// ratings are 1..10; BaselineTime is in whatever unit the caller chose and
// the outputs come back in that same unit.
type EstimateInput struct {
	SubjectDifficulty float64
	TaskDifficulty    float64
	BaselineTime      float64
}

// Estimate is the full prediction, intermediates included.
type Estimate struct {
	TimeMultiplier  float64
	PredictedTime   float64 // baseline scaled by difficulty, before breaks
	DifficultyLevel float64 // 0..10
	BreakLevel      float64
	BreakTime       float64 // break allowance folded into the total
	PredictedTotal  float64
	RangeLow        float64
	RangeHigh       float64
	FocusLevel      float64
	WorkingTime     float64 // share of the total spent working
	BreakTotal      float64 // share of the total spent on breaks
}

// Estimate runs the prediction formula.
//
// Working time is reported as PredictedTotal*0.75 and break time as
// PredictedTotal*0.25 so the two always sum to the total shown to the
// user.
func (e *Estimator) Estimate(in EstimateInput) Estimate {
	timeMultiplier := (in.SubjectDifficulty/5 + in.TaskDifficulty/5) / 2
	predicted := in.BaselineTime * timeMultiplier

	difficulty := (in.SubjectDifficulty + in.TaskDifficulty) / 2
	breakLevel := (difficulty/10 + e.config.BreakBase) / 2
	breakTime := predicted * (breakLevel / 10)

	total := (predicted + breakTime) * e.config.TotalScale
	focus := (difficulty+10)/2 - 1.5

	return Estimate{
		TimeMultiplier:  timeMultiplier,
		PredictedTime:   predicted,
		DifficultyLevel: difficulty,
		BreakLevel:      breakLevel,
		BreakTime:       breakTime,
		PredictedTotal:  total,
		RangeLow:        total * e.config.RangeLow,
		RangeHigh:       total * e.config.RangeHigh,
		FocusLevel:      focus,
		WorkingTime:     total * 0.75,
		BreakTotal:      total * 0.25,
	}
}
