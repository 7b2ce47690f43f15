package planner

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Time Estimator: predicts study time and appends a ledger record.
	Estimate(ctx context.Context, input EstimateInput) (EstimateOutput, error)
	// Priority Analyzer: scores a task and backfills the targeted record.
	Prioritize(ctx context.Context, input PrioritizeInput) (PrioritizeOutput, error)

	// Ledger operations.
	ListTasks(ctx context.Context, sessionID string) (ListTasksOutput, error)
	Calibrate(ctx context.Context, input CalibrateInput) (CalibrateOutput, error)
	Clear(ctx context.Context, sessionID string) error
	Schedule(ctx context.Context, input ScheduleInput) (ScheduleOutput, error)
}
