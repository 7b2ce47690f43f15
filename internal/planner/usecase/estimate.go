package usecase

import (
	"context"

	"study-planner/internal/model"
	"study-planner/internal/planner"
	repo "study-planner/internal/planner/repository"
	"study-planner/internal/scoring"
	"study-planner/pkg/timeunit"
)

// Estimate runs the time prediction, appends a ledger record with the
// priority left unset, and stores the hand-off scalars for the analyzer.
func (uc *implUseCase) Estimate(ctx context.Context, input planner.EstimateInput) (planner.EstimateOutput, error) {
	estimate := uc.estimator.Estimate(scoring.EstimateInput{
		SubjectDifficulty: input.SubjectDifficulty,
		TaskDifficulty:    input.TaskDifficulty,
		BaselineTime:      input.BaselineTime,
	})

	name := input.TaskName
	if name == "" {
		name = model.DefaultTaskName
	}

	// The ledger stores hours regardless of the unit the user typed in.
	predictedHours := timeunit.ToHours(estimate.PredictedTotal, input.Unit)

	record, err := uc.repo.AppendRecord(ctx, repo.AppendRecordOptions{
		SessionID:          input.SessionID,
		Name:               name,
		Subject:            input.Subject,
		TaskType:           input.TaskType,
		PredictedTimeHours: predictedHours,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Estimate AppendRecord: %v", err)
		return planner.EstimateOutput{}, err
	}

	if err := uc.repo.SetHandoff(ctx, input.SessionID, model.Handoff{
		LastPredictedHours: predictedHours,
		LastTaskName:       name,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.Estimate SetHandoff: %v", err)
		return planner.EstimateOutput{}, err
	}

	return planner.EstimateOutput{
		Record:   record,
		Estimate: estimate,
		Unit:     input.Unit,
	}, nil
}
