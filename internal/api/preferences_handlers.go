package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/pkg/entity"
	"github.com/limbo/planner/pkg/httputil"
)

// GetPreferences godoc
// @Router /preferences [get]
func (s *Server) GetPreferences(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, s.prefsService.GetPreferences())
}

// UpdatePreferences godoc
// @Summary Partially update preferences
// @Router /preferences [patch]
func (s *Server) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var patch entity.PreferencesPatch
	if err := httputil.DecodeJSONBody(r, &patch); err != nil {
		logger.Error("update preferences error: invalid request body", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	prefs, err := s.prefsService.UpdatePreferences(ctx, patch)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("update preferences error: validation failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid preferences", err)
		case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
			logger.Error("update preferences error: request cancelled")
			httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "preferences were not saved", nil)
		default:
			logger.Error("update preferences error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving preferences", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, prefs)
	logger.Info("preferences updated")
}

// GetUser godoc
// @Router /user [get]
func (s *Server) GetUser(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, s.prefsService.GetUser())
}

// UpdateUser godoc
// @Router /user [patch]
func (s *Server) UpdateUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var patch entity.UserPatch
	if err := httputil.DecodeJSONBody(r, &patch); err != nil {
		logger.Error("update user error: invalid request body", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	user, err := s.prefsService.UpdateUser(patch)
	if err != nil {
		if errors.Is(err, errorvalues.ErrValidation) {
			logger.Error("update user error: validation failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user data", err)
			return
		}
		logger.Error("update user error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating user", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
	logger.Info("user updated")
}
