package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"study-planner/internal/middleware"
	plannerHTTP "study-planner/internal/planner/delivery/http"
	"study-planner/internal/planner/repository/memory"
	"study-planner/internal/planner/usecase"
	"study-planner/internal/scoring"
	"study-planner/pkg/response"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := &mockLogger{}
	store, err := memory.New(16, l)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	uc := usecase.New(
		store,
		scoring.NewEstimator(scoring.DefaultEstimatorConfig()),
		scoring.NewPriorityEngine(scoring.DefaultPriorityConfig()),
		l,
	)
	h := plannerHTTP.New(l, uc)

	router := gin.New()
	plannerHTTP.RegisterRoutes(router.Group("/api/v1/planner"), h, middleware.New(l, 0))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, session string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(middleware.SessionHeader, session)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	data, _ := resp.Data.(map[string]any)
	return data
}

func estimateBody() map[string]any {
	return map[string]any{
		"task_name":          "Algebra homework",
		"subject":            "maths",
		"task_type":          "homework",
		"subject_difficulty": 5,
		"task_difficulty":    5,
		"baseline_time":      60,
		"time_unit":          "minutes",
	}
}

func prioritizeBody() map[string]any {
	return map[string]any{
		"importance":     7,
		"impact":         8,
		"completion_pct": 20,
		"estimated_time": map[string]any{"value": 2, "unit": "hours"},
		"deadline":       map[string]any{"value": 1, "unit": "days"},
		"mood":           3,
		"energy":         7,
		"motivation":     5,
		"stress":         2,
	}
}

func TestEstimateFlow(t *testing.T) {
	router := newRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/planner/estimate", "s1", estimateBody())
	if w.Code != http.StatusOK {
		t.Fatalf("estimate status = %d, body %s", w.Code, w.Body.String())
	}

	data := dataOf(t, w)
	if data["task_id"] == "" {
		t.Error("estimate must return the new record's id")
	}
	if got := data["predicted_total"].(float64); got < 46.9 || got > 46.92 {
		t.Errorf("predicted_total = %v, want 46.9125", got)
	}
	if data["subject_display"] != "Maths" {
		t.Errorf("subject_display = %v, want Maths", data["subject_display"])
	}

	// The ledger now holds one pending record with priority unset.
	w = doJSON(t, router, http.MethodGet, "/api/v1/planner/tasks", "s1", nil)
	data = dataOf(t, w)
	tasks := data["tasks"].([]any)
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	task := tasks[0].(map[string]any)
	if task["priority"] != nil {
		t.Errorf("priority should be null, got %v", task["priority"])
	}
	if task["priority_display"] != "not calculated" {
		t.Errorf("priority_display = %v", task["priority_display"])
	}
	if task["status"] != "Pending" {
		t.Errorf("status = %v, want Pending", task["status"])
	}
}

func TestEstimateValidation(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{name: "difficulty above range", mutate: func(b map[string]any) { b["subject_difficulty"] = 11 }},
		{name: "difficulty below range", mutate: func(b map[string]any) { b["task_difficulty"] = 0.5 }},
		{name: "negative baseline", mutate: func(b map[string]any) { b["baseline_time"] = -5 }},
		{name: "bad unit", mutate: func(b map[string]any) { b["time_unit"] = "weeks" }},
		{name: "bad subject", mutate: func(b map[string]any) { b["subject"] = "astrology" }},
		{name: "bad task type", mutate: func(b map[string]any) { b["task_type"] = "chores" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := estimateBody()
			tt.mutate(body)
			w := doJSON(t, router, http.MethodPost, "/api/v1/planner/estimate", "s1", body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400; body %s", w.Code, w.Body.String())
			}
			// Rejected input must not reach the ledger.
			lw := doJSON(t, router, http.MethodGet, "/api/v1/planner/tasks", "s1", nil)
			if total := dataOf(t, lw)["total"].(float64); total != 0 {
				t.Errorf("ledger grew on invalid input: %v records", total)
			}
		})
	}
}

func TestPrioritizeFlow(t *testing.T) {
	router := newRouter(t)

	doJSON(t, router, http.MethodPost, "/api/v1/planner/estimate", "s1", estimateBody())

	w := doJSON(t, router, http.MethodPost, "/api/v1/planner/prioritize", "s1", prioritizeBody())
	if w.Code != http.StatusOK {
		t.Fatalf("prioritize status = %d, body %s", w.Code, w.Body.String())
	}
	data := dataOf(t, w)
	score := data["priority"].(float64)
	if score < 0 || score > 100 {
		t.Errorf("priority %v out of range", score)
	}
	label := data["label"].(string)
	if label != "Crunch" && label != "Comfortable" && label != "Relaxed" {
		t.Errorf("unexpected label %q", label)
	}

	// The score landed on the last record.
	w = doJSON(t, router, http.MethodGet, "/api/v1/planner/tasks", "s1", nil)
	task := dataOf(t, w)["tasks"].([]any)[0].(map[string]any)
	if task["priority"] == nil {
		t.Fatal("priority not backfilled")
	}
	if got := task["priority"].(float64); got != score {
		t.Errorf("stored priority %v != returned %v", got, score)
	}
	if task["status"] != "Completed" {
		t.Errorf("status = %v, want Completed", task["status"])
	}
}

func TestPrioritizeEmptyLedger(t *testing.T) {
	router := newRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/planner/prioritize", "fresh", prioritizeBody())
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409; body %s", w.Code, w.Body.String())
	}
}

func TestCalibrateFlow(t *testing.T) {
	router := newRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/planner/estimate", "s1", estimateBody())
	taskID := dataOf(t, w)["task_id"].(string)

	w = doJSON(t, router, http.MethodPost, "/api/v1/planner/tasks/calibrate", "s1", map[string]any{
		"task_id":         taskID,
		"actual_time":     1.25,
		"actual_priority": 66,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("calibrate status = %d, body %s", w.Code, w.Body.String())
	}
	data := dataOf(t, w)
	task := data["task"].(map[string]any)
	if task["actual_time_hours"].(float64) != 1.25 || task["actual_priority"].(float64) != 66 {
		t.Errorf("actuals not stored: %v", task)
	}
	if task["status"] != "Calibrated" {
		t.Errorf("status = %v, want Calibrated", task["status"])
	}
	predicted := task["predicted_time_hours"].(float64)
	if got := data["time_delta"].(float64); got != 1.25-predicted {
		t.Errorf("time_delta = %v, want %v", got, 1.25-predicted)
	}
}

func TestCalibrateNotFound(t *testing.T) {
	router := newRouter(t)
	doJSON(t, router, http.MethodPost, "/api/v1/planner/estimate", "s1", estimateBody())

	w := doJSON(t, router, http.MethodPost, "/api/v1/planner/tasks/calibrate", "s1", map[string]any{
		"name":            "no such task",
		"actual_time":     1,
		"actual_priority": 50,
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestClearAndSchedule(t *testing.T) {
	router := newRouter(t)

	doJSON(t, router, http.MethodPost, "/api/v1/planner/estimate", "s1", estimateBody())
	doJSON(t, router, http.MethodPost, "/api/v1/planner/estimate", "s1", estimateBody())

	w := doJSON(t, router, http.MethodGet, "/api/v1/planner/schedule?start_hour=9", "s1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("schedule status = %d", w.Code)
	}
	slots := dataOf(t, w)["slots"].([]any)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	first := slots[0].(map[string]any)
	if first["slot_start"] != "09:00" {
		t.Errorf("first slot starts %v, want 09:00", first["slot_start"])
	}

	w = doJSON(t, router, http.MethodPost, "/api/v1/planner/tasks/clear", "s1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("clear status = %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/planner/schedule", "s1", nil)
	if raw := dataOf(t, w)["slots"]; raw != nil {
		if slots := raw.([]any); len(slots) != 0 {
			t.Errorf("schedule after clear should be empty, got %d", len(slots))
		}
	}
}

func TestScheduleValidation(t *testing.T) {
	router := newRouter(t)
	w := doJSON(t, router, http.MethodGet, "/api/v1/planner/schedule?start_hour=24", "s1", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	router := newRouter(t)

	doJSON(t, router, http.MethodPost, "/api/v1/planner/estimate", "alice", estimateBody())

	w := doJSON(t, router, http.MethodGet, "/api/v1/planner/tasks", "bob", nil)
	if total := dataOf(t, w)["total"].(float64); total != 0 {
		t.Errorf("bob sees alice's ledger: %v records", total)
	}
}

func TestSessionHeaderAssigned(t *testing.T) {
	router := newRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/planner/estimate", "", estimateBody())
	if w.Header().Get(middleware.SessionHeader) == "" {
		t.Error("server must assign and echo a session id")
	}
}
