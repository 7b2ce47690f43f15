package model

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultTaskName is used when the user submits an estimate without a name.
const DefaultTaskName = "Untitled Task"

// RecordStatus is the lifecycle state of a ledger record.
// Transitions only ever move forward: Pending -> Completed -> Calibrated.
type RecordStatus string

const (
	StatusPending    RecordStatus = "Pending"
	StatusCompleted  RecordStatus = "Completed"
	StatusCalibrated RecordStatus = "Calibrated"
)

// rank orders statuses for forward-only transition checks.
func (s RecordStatus) rank() int {
	switch s {
	case StatusCompleted:
		return 1
	case StatusCalibrated:
		return 2
	default:
		return 0
	}
}

// CanTransitionTo reports whether moving from s to next is a forward move.
func (s RecordStatus) CanTransitionTo(next RecordStatus) bool {
	return next.rank() >= s.rank()
}

// TaskRecord is one entry in a session's ledger.
type TaskRecord struct {
	ID                 string       // assigned at append time
	Name               string       // user supplied, defaults to DefaultTaskName
	Subject            Subject      // informational, used for display/grouping
	TaskType           TaskType     // homework / project / exam
	PredictedTimeHours float64      // estimator output, canonical hours
	Priority           *float64     // nil until the analyzer backfills it, then 0..100
	ActualTimeHours    float64      // 0 until calibrated
	ActualPriority     float64      // 0 until calibrated
	Status             RecordStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Subject is one of the enumerated study subjects.
type Subject string

const (
	SubjectScience   Subject = "science"
	SubjectBiology   Subject = "biology"
	SubjectPhysics   Subject = "physics"
	SubjectChemistry Subject = "chemistry"
	SubjectMaths     Subject = "maths"
	SubjectSST       Subject = "sst"
	SubjectHistory   Subject = "history"
	SubjectGeography Subject = "geography"
	SubjectCivics    Subject = "civics"
	SubjectEconomics Subject = "economics"
	SubjectEnglish   Subject = "english"
	SubjectOther     Subject = "other"
)

// Subjects lists every valid subject in display order.
func Subjects() []Subject {
	return []Subject{
		SubjectScience, SubjectBiology, SubjectPhysics, SubjectChemistry,
		SubjectMaths, SubjectSST, SubjectHistory, SubjectGeography,
		SubjectCivics, SubjectEconomics, SubjectEnglish, SubjectOther,
	}
}

// Valid reports whether s is a known subject.
func (s Subject) Valid() bool {
	for _, known := range Subjects() {
		if s == known {
			return true
		}
	}
	return false
}

var titleCaser = cases.Title(language.English)

// Display returns the title-cased subject name for presentation.
func (s Subject) Display() string {
	if s == SubjectSST {
		return "SST"
	}
	return titleCaser.String(string(s))
}

// TaskType categorizes what kind of work a record is for.
type TaskType string

const (
	TaskHomework TaskType = "homework"
	TaskProject  TaskType = "project"
	TaskExam     TaskType = "exam"
)

// Valid reports whether t is a known task type.
func (t TaskType) Valid() bool {
	switch t {
	case TaskHomework, TaskProject, TaskExam:
		return true
	}
	return false
}

// Handoff carries the last estimate from the Time Estimator to the
// Priority Analyzer within one session.
type Handoff struct {
	LastPredictedHours float64
	LastTaskName       string
}

// DefaultHandoff is the session-start value of the hand-off scalars.
func DefaultHandoff() Handoff {
	return Handoff{LastPredictedHours: 1.0, LastTaskName: ""}
}
