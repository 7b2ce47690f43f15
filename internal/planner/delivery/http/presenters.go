package http

import (
	"fmt"
	"strings"

	"study-planner/internal/model"
	"study-planner/internal/planner"
	"study-planner/pkg/response"
	"study-planner/pkg/timeunit"
)

// --- Request DTOs ---

type estimateReq struct {
	TaskName          string   `json:"task_name"          binding:"max=255"`
	Subject           string   `json:"subject"            binding:"required"`
	TaskType          string   `json:"task_type"          binding:"required,oneof=homework project exam"`
	SubjectDifficulty float64  `json:"subject_difficulty" binding:"required,gte=1,lte=10"`
	TaskDifficulty    float64  `json:"task_difficulty"    binding:"required,gte=1,lte=10"`
	BaselineTime      *float64 `json:"baseline_time"      binding:"required,gte=0"`
	TimeUnit          string   `json:"time_unit"          binding:"required,oneof=minutes hours"`
}

func (r estimateReq) validate() error {
	if !model.Subject(strings.ToLower(r.Subject)).Valid() {
		return fmt.Errorf("unknown subject %q", r.Subject)
	}
	return nil
}

func (r estimateReq) toInput(sessionID string) planner.EstimateInput {
	unit, _ := timeunit.Parse(r.TimeUnit)
	return planner.EstimateInput{
		SessionID:         sessionID,
		TaskName:          r.TaskName,
		Subject:           model.Subject(strings.ToLower(r.Subject)),
		TaskType:          model.TaskType(r.TaskType),
		SubjectDifficulty: r.SubjectDifficulty,
		TaskDifficulty:    r.TaskDifficulty,
		BaselineTime:      *r.BaselineTime,
		Unit:              unit,
	}
}

// ---

type timeValueReq struct {
	Value float64 `json:"value" binding:"required,gt=0"`
	Unit  string  `json:"unit"  binding:"required,oneof=minutes hours days"`
}

func (r timeValueReq) toValue() planner.TimeValue {
	unit, _ := timeunit.Parse(r.Unit)
	return planner.TimeValue{Value: r.Value, Unit: unit}
}

type prioritizeReq struct {
	TaskID        string        `json:"task_id"`
	Importance    int           `json:"importance"     binding:"required,gte=1,lte=10"`
	Impact        int           `json:"impact"         binding:"required,gte=1,lte=10"`
	CompletionPct *float64      `json:"completion_pct" binding:"required,gte=0,lte=100"`
	EstimatedTime *timeValueReq `json:"estimated_time"`
	Deadline      timeValueReq  `json:"deadline"       binding:"required"`
	Mood          int           `json:"mood"           binding:"required,gte=1,lte=10"`
	Energy        int           `json:"energy"         binding:"required,gte=1,lte=10"`
	Motivation    int           `json:"motivation"     binding:"required,gte=1,lte=10"`
	Stress        int           `json:"stress"         binding:"required,gte=1,lte=10"`
}

func (r prioritizeReq) validate() error { return nil }

func (r prioritizeReq) toInput(sessionID string) planner.PrioritizeInput {
	input := planner.PrioritizeInput{
		SessionID:     sessionID,
		TaskID:        r.TaskID,
		Importance:    r.Importance,
		Impact:        r.Impact,
		CompletionPct: *r.CompletionPct,
		Deadline:      r.Deadline.toValue(),
		Mood:          r.Mood,
		Energy:        r.Energy,
		Motivation:    r.Motivation,
		Stress:        r.Stress,
	}
	if r.EstimatedTime != nil {
		tv := r.EstimatedTime.toValue()
		input.EstimatedTime = &tv
	}
	return input
}

// ---

type calibrateReq struct {
	TaskID         string   `json:"task_id"`
	Name           string   `json:"name"            binding:"max=255"`
	ActualTime     *float64 `json:"actual_time"     binding:"required,gte=0"`
	ActualPriority *float64 `json:"actual_priority" binding:"required,gte=0,lte=100"`
}

func (r calibrateReq) validate() error {
	if r.TaskID == "" && r.Name == "" {
		return fmt.Errorf("either task_id or name is required")
	}
	return nil
}

func (r calibrateReq) toInput(sessionID string) planner.CalibrateInput {
	return planner.CalibrateInput{
		SessionID:       sessionID,
		TaskID:          r.TaskID,
		Name:            r.Name,
		ActualTimeHours: *r.ActualTime,
		ActualPriority:  *r.ActualPriority,
	}
}

// ---

type scheduleReq struct {
	StartHour int `form:"start_hour" binding:"gte=0,lte=23"`
}

func (r scheduleReq) validate() error { return nil }

func (r scheduleReq) toInput(sessionID string) planner.ScheduleInput {
	return planner.ScheduleInput{
		SessionID: sessionID,
		StartHour: r.StartHour,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	Subject            string            `json:"subject"`
	SubjectDisplay     string            `json:"subject_display"`
	TaskType           string            `json:"task_type"`
	PredictedTimeHours float64           `json:"predicted_time_hours"`
	Priority           *float64          `json:"priority"`
	PriorityDisplay    string            `json:"priority_display"`
	ActualTimeHours    float64           `json:"actual_time_hours"`
	ActualPriority     float64           `json:"actual_priority"`
	Status             string            `json:"status"`
	CreatedAt          response.DateTime `json:"created_at"`
	UpdatedAt          response.DateTime `json:"updated_at"`
}

func newTaskResp(record model.TaskRecord) taskResp {
	display := "not calculated"
	if record.Priority != nil {
		display = fmt.Sprintf("%.1f", *record.Priority)
	}
	return taskResp{
		ID:                 record.ID,
		Name:               record.Name,
		Subject:            string(record.Subject),
		SubjectDisplay:     record.Subject.Display(),
		TaskType:           string(record.TaskType),
		PredictedTimeHours: record.PredictedTimeHours,
		Priority:           record.Priority,
		PriorityDisplay:    display,
		ActualTimeHours:    record.ActualTimeHours,
		ActualPriority:     record.ActualPriority,
		Status:             string(record.Status),
		CreatedAt:          response.DateTime(record.CreatedAt),
		UpdatedAt:          response.DateTime(record.UpdatedAt),
	}
}

type estimateResp struct {
	TaskID          string  `json:"task_id"`
	TaskName        string  `json:"task_name"`
	Subject         string  `json:"subject"`
	SubjectDisplay  string  `json:"subject_display"`
	Unit            string  `json:"unit"`
	PredictedTotal  float64 `json:"predicted_total"`
	RangeLow        float64 `json:"range_low"`
	RangeHigh       float64 `json:"range_high"`
	WorkingTime     float64 `json:"working_time"`
	BreakTime       float64 `json:"break_time"`
	FocusLevel      float64 `json:"focus_level"`
	DifficultyLevel float64 `json:"difficulty_level"`
}

func (h *handler) newEstimateResp(out planner.EstimateOutput) estimateResp {
	return estimateResp{
		TaskID:          out.Record.ID,
		TaskName:        out.Record.Name,
		Subject:         string(out.Record.Subject),
		SubjectDisplay:  out.Record.Subject.Display(),
		Unit:            string(out.Unit),
		PredictedTotal:  out.Estimate.PredictedTotal,
		RangeLow:        out.Estimate.RangeLow,
		RangeHigh:       out.Estimate.RangeHigh,
		WorkingTime:     out.Estimate.WorkingTime,
		BreakTime:       out.Estimate.BreakTotal,
		FocusLevel:      out.Estimate.FocusLevel,
		DifficultyLevel: out.Estimate.DifficultyLevel,
	}
}

type prioritizeResp struct {
	TaskID        string  `json:"task_id"`
	Priority      float64 `json:"priority"`
	Label         string  `json:"label"`
	Styling       string  `json:"styling"`
	Value         float64 `json:"value"`
	Urgency       float64 `json:"urgency"`
	Capacity      float64 `json:"capacity"`
	WorkLeftHours float64 `json:"work_left_hours"`
}

func (h *handler) newPrioritizeResp(out planner.PrioritizeOutput) prioritizeResp {
	return prioritizeResp{
		TaskID:        out.Record.ID,
		Priority:      out.Score.Score,
		Label:         string(out.Score.Band),
		Styling:       out.Score.Band.Styling(),
		Value:         out.Score.Value,
		Urgency:       out.Score.Urgency,
		Capacity:      out.Score.Capacity,
		WorkLeftHours: out.Score.WorkLeft,
	}
}

type listTasksResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListTasksResp(out planner.ListTasksOutput) listTasksResp {
	tasks := make([]taskResp, len(out.Records))
	for i, record := range out.Records {
		tasks[i] = newTaskResp(record)
	}
	return listTasksResp{Tasks: tasks, Total: len(tasks)}
}

type calibrateResp struct {
	Task          taskResp `json:"task"`
	TimeDelta     float64  `json:"time_delta"`
	PriorityDelta float64  `json:"priority_delta"`
}

func (h *handler) newCalibrateResp(out planner.CalibrateOutput) calibrateResp {
	return calibrateResp{
		Task:          newTaskResp(out.Record),
		TimeDelta:     out.TimeDelta,
		PriorityDelta: out.PriorityDelta,
	}
}

type slotResp struct {
	SlotStart     string  `json:"slot_start"`
	SlotEnd       string  `json:"slot_end"`
	TaskName      string  `json:"task_name"`
	DurationHours float64 `json:"duration_hours"`
}

type scheduleResp struct {
	Slots []slotResp `json:"slots"`
}

func (h *handler) newScheduleResp(out planner.ScheduleOutput) scheduleResp {
	slots := make([]slotResp, len(out.Slots))
	for i, slot := range out.Slots {
		slots[i] = slotResp{
			SlotStart:     slot.Start,
			SlotEnd:       slot.End,
			TaskName:      slot.TaskName,
			DurationHours: slot.DurationHours,
		}
	}
	return scheduleResp{Slots: slots}
}
