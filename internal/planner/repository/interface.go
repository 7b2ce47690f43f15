package repository

import (
	"context"

	"study-planner/internal/model"
)

// Repository is the composed interface for the planner data store.
type Repository interface {
	LedgerRepository
	SessionRepository
}

// LedgerRepository defines all data access methods for the per-session
// task ledger.
type LedgerRepository interface {
	AppendRecord(ctx context.Context, opt AppendRecordOptions) (model.TaskRecord, error)
	// GetOneRecord returns the zero-value TaskRecord (ID == "") when no
	// record matches; not-found is not an error at this layer.
	GetOneRecord(ctx context.Context, opt GetOneRecordOptions) (model.TaskRecord, error)
	ListRecords(ctx context.Context, opt ListRecordsOptions) ([]model.TaskRecord, error)
	UpdateRecord(ctx context.Context, opt UpdateRecordOptions) (model.TaskRecord, error)
	ClearRecords(ctx context.Context, sessionID string) error
}

// SessionRepository stores the hand-off scalars the Time Estimator leaves
// for the Priority Analyzer.
type SessionRepository interface {
	GetHandoff(ctx context.Context, sessionID string) (model.Handoff, error)
	SetHandoff(ctx context.Context, sessionID string, handoff model.Handoff) error
}
