package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"study-planner/internal/scoring"
	"study-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Planner domain
	sessionCapacity int
	rateLimitPerMin int
	estimatorConfig scoring.EstimatorConfig
	priorityConfig  scoring.PriorityConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Planner domain
	SessionCapacity int
	RateLimitPerMin int
	EstimatorConfig scoring.EstimatorConfig
	PriorityConfig  scoring.PriorityConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		sessionCapacity: cfg.SessionCapacity,
		rateLimitPerMin: cfg.RateLimitPerMin,
		estimatorConfig: cfg.EstimatorConfig,
		priorityConfig:  cfg.PriorityConfig,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.sessionCapacity <= 0 {
		return errors.New("session capacity must be positive")
	}
	return nil
}
