package http

import (
	"github.com/gin-gonic/gin"
)

// processEstimateReq binds and validates the estimate request body.
func (h *handler) processEstimateReq(c *gin.Context) (estimateReq, error) {
	var req estimateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processPrioritizeReq binds and validates the prioritize request body.
func (h *handler) processPrioritizeReq(c *gin.Context) (prioritizeReq, error) {
	var req prioritizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processCalibrateReq binds and validates the calibrate request body.
func (h *handler) processCalibrateReq(c *gin.Context) (calibrateReq, error) {
	var req calibrateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processScheduleReq binds and validates the schedule query parameters.
func (h *handler) processScheduleReq(c *gin.Context) (scheduleReq, error) {
	var req scheduleReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
