package memory

import (
	"context"

	"study-planner/internal/model"
)

// GetHandoff returns the session's hand-off scalars, initialized to the
// defaults on first use.
func (r *implRepository) GetHandoff(ctx context.Context, sessionID string) (model.Handoff, error) {
	state, err := r.session(sessionID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetHandoff"), err)
		return model.Handoff{}, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	return state.handoff, nil
}

// SetHandoff overwrites the session's hand-off scalars.
func (r *implRepository) SetHandoff(ctx context.Context, sessionID string, handoff model.Handoff) error {
	state, err := r.session(sessionID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetHandoff"), err)
		return err
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	state.handoff = handoff
	return nil
}
