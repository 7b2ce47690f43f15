package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"study-planner/internal/model"
	repo "study-planner/internal/planner/repository"
)

// AppendRecord adds a fully-formed record to the end of the session
// ledger and returns it. Records always start Pending with priority unset.
func (r *implRepository) AppendRecord(ctx context.Context, opt repo.AppendRecordOptions) (model.TaskRecord, error) {
	state, err := r.session(opt.SessionID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AppendRecord"), err)
		return model.TaskRecord{}, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	now := time.Now()
	record := model.TaskRecord{
		ID:                 uuid.NewString(),
		Name:               opt.Name,
		Subject:            opt.Subject,
		TaskType:           opt.TaskType,
		PredictedTimeHours: opt.PredictedTimeHours,
		Status:             model.StatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	state.records = append(state.records, record)
	return record, nil
}

// GetOneRecord retrieves a single record by the provided filters.
// Returns zero-value TaskRecord (ID == "") when not found.
func (r *implRepository) GetOneRecord(ctx context.Context, opt repo.GetOneRecordOptions) (model.TaskRecord, error) {
	state, err := r.session(opt.SessionID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneRecord"), err)
		return model.TaskRecord{}, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	switch {
	case opt.ID != "":
		for _, rec := range state.records {
			if rec.ID == opt.ID {
				return rec, nil
			}
		}
	case opt.Name != "":
		for _, rec := range state.records {
			if rec.Name == opt.Name {
				return rec, nil
			}
		}
	case opt.Last:
		if n := len(state.records); n > 0 {
			return state.records[n-1], nil
		}
	}
	return model.TaskRecord{}, nil
}

// ListRecords returns the session ledger in append order.
func (r *implRepository) ListRecords(ctx context.Context, opt repo.ListRecordsOptions) ([]model.TaskRecord, error) {
	state, err := r.session(opt.SessionID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRecords"), err)
		return nil, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	out := make([]model.TaskRecord, len(state.records))
	copy(out, state.records)
	return out, nil
}

// UpdateRecord applies the non-nil fields to the record with opt.ID.
// Status moves are forward-only; a backward move fails without mutating.
// Returns zero-value TaskRecord when the record does not exist.
func (r *implRepository) UpdateRecord(ctx context.Context, opt repo.UpdateRecordOptions) (model.TaskRecord, error) {
	state, err := r.session(opt.SessionID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateRecord"), err)
		return model.TaskRecord{}, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	for i := range state.records {
		rec := &state.records[i]
		if rec.ID != opt.ID {
			continue
		}

		if opt.Status != "" && !rec.Status.CanTransitionTo(opt.Status) {
			r.l.Warnf(ctx, "%s: %s -> %s rejected", r.dsn("UpdateRecord"), rec.Status, opt.Status)
			return model.TaskRecord{}, repo.ErrStatusRegression
		}

		if opt.Priority != nil {
			rec.Priority = opt.Priority
		}
		if opt.ActualTimeHours != nil {
			rec.ActualTimeHours = *opt.ActualTimeHours
		}
		if opt.ActualPriority != nil {
			rec.ActualPriority = *opt.ActualPriority
		}
		if opt.Status != "" {
			rec.Status = opt.Status
		}
		rec.UpdatedAt = time.Now()
		return *rec, nil
	}
	return model.TaskRecord{}, nil
}

// ClearRecords empties the session ledger unconditionally. The hand-off
// scalars survive a clear.
func (r *implRepository) ClearRecords(ctx context.Context, sessionID string) error {
	state, err := r.session(sessionID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ClearRecords"), err)
		return err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	state.records = nil
	return nil
}
