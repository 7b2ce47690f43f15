package usecase

import (
	"context"

	"study-planner/internal/model"
	"study-planner/internal/planner"
	repo "study-planner/internal/planner/repository"
)

// Calibrate overwrites a record's predicted values with user-reported
// actuals and reports the deltas against the prediction. The record is
// found by id when given, otherwise by the first name match.
func (uc *implUseCase) Calibrate(ctx context.Context, input planner.CalibrateInput) (planner.CalibrateOutput, error) {
	target, err := uc.repo.GetOneRecord(ctx, repo.GetOneRecordOptions{
		SessionID: input.SessionID,
		ID:        input.TaskID,
		Name:      input.Name,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Calibrate GetOneRecord: %v", err)
		return planner.CalibrateOutput{}, err
	}
	if target.ID == "" {
		return planner.CalibrateOutput{}, planner.ErrTaskNotFound
	}

	// Deltas are taken against the prediction as it stood at calibration
	// time. A never-computed priority counts as zero.
	timeDelta := input.ActualTimeHours - target.PredictedTimeHours
	priorityDelta := input.ActualPriority
	if target.Priority != nil {
		priorityDelta = input.ActualPriority - *target.Priority
	}

	record, err := uc.repo.UpdateRecord(ctx, repo.UpdateRecordOptions{
		SessionID:       input.SessionID,
		ID:              target.ID,
		ActualTimeHours: &input.ActualTimeHours,
		ActualPriority:  &input.ActualPriority,
		Status:          model.StatusCalibrated,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Calibrate UpdateRecord: %v", err)
		return planner.CalibrateOutput{}, err
	}

	return planner.CalibrateOutput{
		Record:        record,
		TimeDelta:     timeDelta,
		PriorityDelta: priorityDelta,
	}, nil
}
