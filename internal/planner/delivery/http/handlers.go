package http

import (
	"github.com/gin-gonic/gin"

	"study-planner/internal/middleware"
	"study-planner/pkg/response"
)

// Estimate godoc
// @Summary     Predict study time for a task
// @Description Runs the time estimator and appends a new task record to the session ledger.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string       false "Session identifier (generated when absent)"
// @Param       body         body   estimateReq  true  "Task details"
// @Success     200 {object} estimateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/estimate [POST]
func (h *handler) Estimate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEstimateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Estimate(ctx, req.toInput(middleware.SessionID(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Estimate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newEstimateResp(output))
}

// Prioritize godoc
// @Summary     Score a task's priority
// @Description Combines value, urgency and capacity into a 0-100 score and backfills the targeted ledger record.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string        false "Session identifier"
// @Param       body         body   prioritizeReq true  "Priority signals"
// @Success     200 {object} prioritizeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Task not found"
// @Failure     409 {object} response.Resp "Empty ledger"
// @Router      /api/v1/planner/prioritize [POST]
func (h *handler) Prioritize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPrioritizeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Prioritize(ctx, req.toInput(middleware.SessionID(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Prioritize: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPrioritizeResp(output))
}

// ListTasks godoc
// @Summary     List the session's task ledger
// @Description Returns all task records in append order.
// @Tags        Planner
// @Produce     json
// @Param       X-Session-ID header string false "Session identifier"
// @Success     200 {object} listTasksResp
// @Router      /api/v1/planner/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListTasks(ctx, middleware.SessionID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListTasksResp(output))
}

// Calibrate godoc
// @Summary     Calibrate a task record with reported actuals
// @Description Overwrites a record's actual time and priority and returns the deltas against the prediction.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string       false "Session identifier"
// @Param       body         body   calibrateReq true  "Reported actuals"
// @Success     200 {object} calibrateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Task not found"
// @Router      /api/v1/planner/tasks/calibrate [POST]
func (h *handler) Calibrate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCalibrateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Calibrate(ctx, req.toInput(middleware.SessionID(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Calibrate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCalibrateResp(output))
}

// Clear godoc
// @Summary     Clear the session's task ledger
// @Description Removes every record for this session. Irreversible for the session.
// @Tags        Planner
// @Produce     json
// @Param       X-Session-ID header string false "Session identifier"
// @Success     200 {object} response.Resp
// @Router      /api/v1/planner/tasks/clear [POST]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Clear(ctx, middleware.SessionID(c)); err != nil {
		h.l.Errorf(ctx, "uc.Clear: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Schedule godoc
// @Summary     Build a study schedule from the ledger
// @Description Lays the ledger out as back-to-back time slots starting at start_hour. Slots may run past 24:00.
// @Tags        Planner
// @Produce     json
// @Param       X-Session-ID header string false "Session identifier"
// @Param       start_hour   query  int    false "Start hour 0..23 (default 0)"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/planner/schedule [GET]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Schedule(ctx, req.toInput(middleware.SessionID(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newScheduleResp(output))
}
