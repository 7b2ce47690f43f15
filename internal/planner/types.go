package planner

import (
	"study-planner/internal/model"
	"study-planner/internal/scoring"
	"study-planner/pkg/timeunit"
)

// TimeValue is a duration expressed in a user-chosen unit.
type TimeValue struct {
	Value float64
	Unit  timeunit.Unit
}

// --- UseCase Inputs ---

type EstimateInput struct {
	SessionID         string
	TaskName          string // defaults to model.DefaultTaskName when empty
	Subject           model.Subject
	TaskType          model.TaskType
	SubjectDifficulty float64 // 1..10
	TaskDifficulty    float64 // 1..10
	BaselineTime      float64 // >= 0, in Unit
	Unit              timeunit.Unit
}

type PrioritizeInput struct {
	SessionID     string
	TaskID        string // optional; empty targets the most recently appended record
	Importance    int    // 1..10
	Impact        int    // 1..10
	CompletionPct float64
	EstimatedTime *TimeValue // optional; defaults to the session hand-off
	Deadline      TimeValue
	Mood          int // 1..10
	Energy        int // 1..10
	Motivation    int // 1..10
	Stress        int // 1..10
}

type CalibrateInput struct {
	SessionID       string
	TaskID          string // preferred lookup key
	Name            string // fallback lookup: first record with this name
	ActualTimeHours float64
	ActualPriority  float64
}

type ScheduleInput struct {
	SessionID string
	StartHour int // 0..23
}

// --- UseCase Outputs ---

type EstimateOutput struct {
	Record   model.TaskRecord
	Estimate scoring.Estimate // in the requested unit
	Unit     timeunit.Unit
}

type PrioritizeOutput struct {
	Record model.TaskRecord
	Score  scoring.PriorityScore
}

type ListTasksOutput struct {
	Records []model.TaskRecord
}

type CalibrateOutput struct {
	Record        model.TaskRecord
	TimeDelta     float64 // actual - predicted, hours
	PriorityDelta float64 // actual - computed priority (0 when never computed)
}

// ScheduleSlot is one half-open time slot on the study schedule.
// Start/End are "HH:MM" and may exceed "24:00" when the ledger overflows
// the day.
type ScheduleSlot struct {
	Start         string
	End           string
	TaskName      string
	DurationHours float64
}

type ScheduleOutput struct {
	Slots []ScheduleSlot
}
