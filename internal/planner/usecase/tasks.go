package usecase

import (
	"context"

	"study-planner/internal/planner"
	repo "study-planner/internal/planner/repository"
)

// ListTasks returns the session ledger in append order.
func (uc *implUseCase) ListTasks(ctx context.Context, sessionID string) (planner.ListTasksOutput, error) {
	records, err := uc.repo.ListRecords(ctx, repo.ListRecordsOptions{SessionID: sessionID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListTasks ListRecords: %v", err)
		return planner.ListTasksOutput{}, err
	}
	return planner.ListTasksOutput{Records: records}, nil
}

// Clear empties the session ledger. Clearing an already empty ledger is
// a no-op, not an error.
func (uc *implUseCase) Clear(ctx context.Context, sessionID string) error {
	if err := uc.repo.ClearRecords(ctx, sessionID); err != nil {
		uc.l.Errorf(ctx, "uc.Clear ClearRecords: %v", err)
		return err
	}
	return nil
}
