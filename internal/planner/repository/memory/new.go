package memory

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"study-planner/internal/model"
	"study-planner/internal/planner/repository"
	"study-planner/pkg/log"
)

// sessionState owns one session's ledger and hand-off scalars. The mutex
// serializes concurrent requests on the same session; sessions never
// share state.
type sessionState struct {
	mu      sync.Mutex
	records []model.TaskRecord
	handoff model.Handoff
}

type implRepository struct {
	mu       sync.Mutex // guards get-or-create on sessions
	sessions *lru.Cache[string, *sessionState]
	l        log.Logger
}

// New creates an in-memory Repository holding at most capacity sessions.
// Least recently used sessions are evicted with their ledgers once the
// bound is hit.
func New(capacity int, l log.Logger) (repository.Repository, error) {
	cache, err := lru.New[string, *sessionState](capacity)
	if err != nil {
		return nil, fmt.Errorf("invalid session capacity %d: %w", capacity, err)
	}
	return &implRepository{sessions: cache, l: l}, nil
}

// session returns the state for sessionID, creating it on first use.
func (r *implRepository) session(sessionID string) (*sessionState, error) {
	if sessionID == "" {
		return nil, repository.ErrSessionRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if state, ok := r.sessions.Get(sessionID); ok {
		return state, nil
	}
	state := &sessionState{handoff: model.DefaultHandoff()}
	r.sessions.Add(sessionID, state)
	return state, nil
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("planner/repository/memory.%s", method)
}
