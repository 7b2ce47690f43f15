package repository

import "study-planner/internal/model"

// AppendRecordOptions holds parameters for appending a new TaskRecord.
type AppendRecordOptions struct {
	SessionID          string
	Name               string
	Subject            model.Subject
	TaskType           model.TaskType
	PredictedTimeHours float64
}

// GetOneRecordOptions holds filter parameters for fetching a single
// TaskRecord. ID wins over Name; Last selects the most recently appended
// record when neither is set.
type GetOneRecordOptions struct {
	SessionID string
	ID        string
	Name      string // first record with this name, in append order
	Last      bool
}

// ListRecordsOptions holds parameters for listing a session's records.
type ListRecordsOptions struct {
	SessionID string
}

// UpdateRecordOptions holds parameters for updating an existing record.
// Nil pointer fields are left untouched.
type UpdateRecordOptions struct {
	SessionID       string
	ID              string
	Priority        *float64
	ActualTimeHours *float64
	ActualPriority  *float64
	Status          model.RecordStatus // empty keeps the current status
}
