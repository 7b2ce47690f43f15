package usecase

import (
	"context"

	"study-planner/internal/model"
	"study-planner/internal/planner"
	repo "study-planner/internal/planner/repository"
	"study-planner/internal/scoring"
	"study-planner/pkg/timeunit"
)

// Prioritize scores a task and backfills the priority of the targeted
// ledger record. The request may name the record by the id returned from
// Estimate; otherwise the most recently appended record is targeted.
func (uc *implUseCase) Prioritize(ctx context.Context, input planner.PrioritizeInput) (planner.PrioritizeOutput, error) {
	estimatedHours, err := uc.resolveEstimatedHours(ctx, input)
	if err != nil {
		return planner.PrioritizeOutput{}, err
	}

	score := uc.priority.Score(scoring.PriorityInput{
		Importance:     input.Importance,
		Impact:         input.Impact,
		CompletionPct:  input.CompletionPct,
		EstimatedHours: estimatedHours,
		DeadlineHours:  timeunit.ToHours(input.Deadline.Value, input.Deadline.Unit),
		Mood:           input.Mood,
		Energy:         input.Energy,
		Motivation:     input.Motivation,
		Stress:         input.Stress,
	})

	target, err := uc.repo.GetOneRecord(ctx, repo.GetOneRecordOptions{
		SessionID: input.SessionID,
		ID:        input.TaskID,
		Last:      input.TaskID == "",
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Prioritize GetOneRecord: %v", err)
		return planner.PrioritizeOutput{}, err
	}
	if target.ID == "" {
		if input.TaskID != "" {
			return planner.PrioritizeOutput{}, planner.ErrTaskNotFound
		}
		return planner.PrioritizeOutput{}, planner.ErrEmptyLedger
	}

	// A calibrated record keeps its status; the priority is still updated.
	status := model.StatusCompleted
	if !target.Status.CanTransitionTo(status) {
		status = target.Status
	}

	record, err := uc.repo.UpdateRecord(ctx, repo.UpdateRecordOptions{
		SessionID: input.SessionID,
		ID:        target.ID,
		Priority:  &score.Score,
		Status:    status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Prioritize UpdateRecord: %v", err)
		return planner.PrioritizeOutput{}, err
	}

	return planner.PrioritizeOutput{
		Record: record,
		Score:  score,
	}, nil
}

// resolveEstimatedHours returns the request's estimated time in hours,
// falling back to the session's hand-off scalar when none was supplied.
func (uc *implUseCase) resolveEstimatedHours(ctx context.Context, input planner.PrioritizeInput) (float64, error) {
	if input.EstimatedTime != nil {
		return timeunit.ToHours(input.EstimatedTime.Value, input.EstimatedTime.Unit), nil
	}

	handoff, err := uc.repo.GetHandoff(ctx, input.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Prioritize GetHandoff: %v", err)
		return 0, err
	}
	return handoff.LastPredictedHours, nil
}
