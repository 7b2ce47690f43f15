package usecase

import (
	"context"
	"fmt"
	"math"

	"study-planner/internal/model"
	"study-planner/internal/planner"
	repo "study-planner/internal/planner/repository"
)

// Schedule walks the ledger in order from start_hour and lays the tasks
// out back to back. Slots are recomputed fresh on every call and are not
// wrapped at midnight, so a long ledger runs past "24:00".
func (uc *implUseCase) Schedule(ctx context.Context, input planner.ScheduleInput) (planner.ScheduleOutput, error) {
	records, err := uc.repo.ListRecords(ctx, repo.ListRecordsOptions{SessionID: input.SessionID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Schedule ListRecords: %v", err)
		return planner.ScheduleOutput{}, err
	}

	slots := make([]planner.ScheduleSlot, 0, len(records))
	current := float64(input.StartHour)
	for _, record := range records {
		duration := slotDuration(record)
		slots = append(slots, planner.ScheduleSlot{
			Start:         formatClock(current),
			End:           formatClock(current + duration),
			TaskName:      record.Name,
			DurationHours: duration,
		})
		current += duration
	}

	return planner.ScheduleOutput{Slots: slots}, nil
}

// slotDuration prefers the calibrated actual time once one was reported.
func slotDuration(record model.TaskRecord) float64 {
	if record.Status == model.StatusCalibrated && record.ActualTimeHours > 0 {
		return record.ActualTimeHours
	}
	return record.PredictedTimeHours
}

// formatClock renders fractional hours as HH:MM without wrapping at 24h.
func formatClock(hours float64) string {
	totalMinutes := int(math.Round(hours * 60))
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}
