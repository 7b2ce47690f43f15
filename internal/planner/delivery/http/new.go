package http

import (
	"github.com/gin-gonic/gin"

	"study-planner/internal/planner"
	"study-planner/pkg/log"
)

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	Estimate(c *gin.Context)
	Prioritize(c *gin.Context)
	ListTasks(c *gin.Context)
	Calibrate(c *gin.Context)
	Clear(c *gin.Context)
	Schedule(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc planner.UseCase
}

// New creates a new HTTP handler for the planner domain.
func New(l log.Logger, uc planner.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
