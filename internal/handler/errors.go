package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"draftsmith/internal/domain"
	"draftsmith/internal/httputil"
)

// handleError maps service errors to problem+json responses. Typed domain
// errors carry their own status code; anything else is a 500 and gets
// logged with the full error, never leaked to the client.
func handleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) && conflict.ResourceType != "" {
			httputil.RespondErrorWithExtras(w, httpErr.StatusCode(), httpErr.Error(), map[string]interface{}{
				"resource_type": conflict.ResourceType,
				"resource_id":   conflict.ResourceID,
			})
			return
		}
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrConflict):
		httputil.RespondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrGenerationFailed):
		httputil.RespondError(w, http.StatusBadGateway, err.Error())
	default:
		logger.Error("unhandled error", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// requireActor pulls the authenticated actor off the request, writing a 401
// when the auth middleware never ran.
func requireActor(w http.ResponseWriter, r *http.Request) (string, bool) {
	actor := httputil.GetActor(r)
	if actor.UserID == "" {
		httputil.RespondError(w, http.StatusUnauthorized, "authentication required")
		return "", false
	}
	return actor.UserID, true
}
