package http

import (
	"errors"
	"net/http"

	"study-planner/internal/planner"
	pkgErrors "study-planner/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from
// pkg/errors. Unknown errors render as a generic 500 so internals never
// leak to the client.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, planner.ErrEmptyLedger):
		return pkgErrors.NewHTTPError(http.StatusConflict, "no task records in this session yet")
	case errors.Is(err, planner.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
