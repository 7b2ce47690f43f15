package usecase

import (
	"study-planner/internal/planner/repository"
	"study-planner/internal/scoring"
	"study-planner/pkg/log"
)

// implUseCase is the private implementation of planner.UseCase.
type implUseCase struct {
	repo      repository.Repository
	estimator *scoring.Estimator
	priority  *scoring.PriorityEngine
	l         log.Logger
}

// New creates a new planner UseCase implementation.
func New(repo repository.Repository, estimator *scoring.Estimator, priority *scoring.PriorityEngine, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:      repo,
		estimator: estimator,
		priority:  priority,
		l:         l,
	}
}
