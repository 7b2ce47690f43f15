package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"study-planner/internal/middleware"
	plannerHTTP "study-planner/internal/planner/delivery/http"
	"study-planner/internal/planner/repository/memory"
	plannerUC "study-planner/internal/planner/usecase"
	"study-planner/internal/scoring"
)

// setupPlannerDomain initializes the planner domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(...)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/mydomain"), h, mw)
func (srv *HTTPServer) setupPlannerDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Repository: in-memory, bounded number of sessions
	repo, err := memory.New(srv.sessionCapacity, srv.l)
	if err != nil {
		return err
	}

	// 2. UseCase with the configured scoring engines
	uc := plannerUC.New(
		repo,
		scoring.NewEstimator(srv.estimatorConfig),
		scoring.NewPriorityEngine(srv.priorityConfig),
		srv.l,
	)

	// 3. HTTP Handler
	h := plannerHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/planner/...
	mw := middleware.New(srv.l, srv.rateLimitPerMin)
	plannerHTTP.RegisterRoutes(api.Group("/planner"), h, mw)

	srv.l.Infof(ctx, "Planner domain registered")
	return nil
}
