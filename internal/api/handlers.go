package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/internal/service"
	"github.com/limbo/planner/internal/views"
	"github.com/limbo/planner/pkg/entity"
	"github.com/limbo/planner/pkg/httputil"
)

type CreateTaskRequest = service.TaskInput

type UpdateTaskRequest = service.UpdateTaskRequest

// ListTasks godoc
// @Summary Filtered task list
// @Param status query string false "pending, in-progress, completed or cancelled"
// @Param category query string false "task category"
// @Param priority query string false "task priority"
// @Param q query string false "search in title and description"
// @Router /tasks [get]
func (s *Server) ListTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	query := r.URL.Query()
	opts := views.FilterOptions{
		Status:   entity.Status(query.Get("status")),
		Category: entity.Category(query.Get("category")),
		Priority: entity.Priority(query.Get("priority")),
		Search:   query.Get("q"),
	}
	switch {
	case opts.Status != "" && !opts.Status.Valid():
		logger.Error("list tasks error: invalid status filter")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid status filter", nil)
		return
	case opts.Category != "" && !opts.Category.Valid():
		logger.Error("list tasks error: invalid category filter")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid category filter", nil)
		return
	case opts.Priority != "" && !opts.Priority.Valid():
		logger.Error("list tasks error: invalid priority filter")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid priority filter", nil)
		return
	}
	tasks := s.tasksService.Filter(opts)
	httputil.WriteJSONResponse(w, http.StatusOK, tasks)
	logger.Info("tasks provided", slog.Int("count", len(tasks)))
}

// CreateTask godoc
// @Summary Create task. Missing category and priority come from preferences
// @Router /tasks [post]
func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateTaskRequest
	if err := httputil.DecodeJSONBody(r, &req); err != nil {
		logger.Error("create task error: invalid request body", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	prefs := s.prefsService.GetPreferences()
	if req.Category == "" {
		req.Category = prefs.DefaultTaskCategory
	}
	if req.Priority == "" {
		req.Priority = prefs.DefaultTaskPriority
	}
	task, err := s.tasksService.CreateTask(req)
	if err != nil {
		if errors.Is(err, errorvalues.ErrValidation) {
			logger.Error("create task error: validation failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task", err)
			return
		}
		logger.Error("create task error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating task", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, task)
	logger.Info("task created", slog.String("task_id", task.ID.String()))
}

// GetTask godoc
// @Router /tasks/{id} [get]
func (s *Server) GetTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := taskIDFromPath(r)
	if err != nil {
		logger.Error("get task error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	task, err := s.tasksService.GetTask(id)
	if err != nil {
		s.writeTaskError(w, logger, "get task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
}

// UpdateTask godoc
// @Summary Replace editable task fields
// @Router /tasks/{id} [put]
func (s *Server) UpdateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := taskIDFromPath(r)
	if err != nil {
		logger.Error("update task error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	var req UpdateTaskRequest
	if err = httputil.DecodeJSONBody(r, &req); err != nil {
		logger.Error("update task error: invalid request body", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	task, err := s.tasksService.UpdateTask(id, req)
	if err != nil {
		s.writeTaskError(w, logger, "update task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
	logger.Info("task updated", slog.String("task_id", id.String()))
}

// DeleteTask godoc
// @Router /tasks/{id} [delete]
func (s *Server) DeleteTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := taskIDFromPath(r)
	if err != nil {
		logger.Error("task deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	if err = s.tasksService.DeleteTask(id); err != nil {
		s.writeTaskError(w, logger, "task deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("task deleted", slog.String("task_id", id.String()))
}

// CompleteTask godoc
// @Summary Mark task completed and advance its streak
// @Router /tasks/{id}/complete [post]
func (s *Server) CompleteTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := taskIDFromPath(r)
	if err != nil {
		logger.Error("complete task error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	task, err := s.tasksService.CompleteTask(id)
	if err != nil {
		s.writeTaskError(w, logger, "complete task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
	logger.Info("task completed", slog.String("task_id", id.String()), slog.Int("streak", task.Streak))
}

func (s *Server) writeTaskError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrTaskNotFound):
		logger.Error(op + " error: unexist task")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "task doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(op+" error: validation failed", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task", err)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}

func taskIDFromPath(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(chi.URLParam(r, "id")))
	if err != nil {
		return uuid.UUID{}, errorvalues.ErrInvalidTaskID
	}
	return id, nil
}
