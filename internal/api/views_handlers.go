package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/limbo/planner/pkg/entity"
	"github.com/limbo/planner/pkg/httputil"
)

const (
	defaultHistoryDays = 7
	maxHistoryDays     = 366
)

type StatsResponse struct {
	entity.TaskStats
	Overdue int `json:"overdue"`
}

// GetStats godoc
// @Router /stats [get]
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, StatsResponse{
		TaskStats: s.tasksService.Statistics(),
		Overdue:   len(s.tasksService.Overdue()),
	})
}

// GetActivity godoc
// @Summary Completed tasks per day
// @Param days query int false "days back including today, 7 by default"
// @Router /stats/activity [get]
func (s *Server) GetActivity(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, s.tasksService.Activity(historyDays(r)))
}

// GetStreaks godoc
// @Router /stats/streaks [get]
func (s *Server) GetStreaks(w http.ResponseWriter, r *http.Request) {
	if !s.prefsService.GetPreferences().StreakTrackingEnabled {
		httputil.WriteJSONResponse(w, http.StatusOK, entity.StreakStats{
			StreakHistory: []entity.StreakDay{},
		})
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, s.tasksService.StreakSummary(historyDays(r)))
}

// GetCalendar godoc
// @Param year query int false "defaults to current year"
// @Param month query int false "1-12, defaults to current month"
// @Router /calendar [get]
func (s *Server) GetCalendar(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	now := s.tasksService.Now()
	year, month := now.Year(), int(now.Month())
	var err error
	if v := r.URL.Query().Get("year"); v != "" {
		year, err = strconv.Atoi(v)
		if err != nil || year < 1 || year > 9999 {
			logger.Error("calendar error: invalid year")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid year", nil)
			return
		}
	}
	if v := r.URL.Query().Get("month"); v != "" {
		month, err = strconv.Atoi(v)
		if err != nil || month < 1 || month > 12 {
			logger.Error("calendar error: invalid month")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid month", nil)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, s.tasksService.Calendar(year, time.Month(month)))
}

func historyDays(r *http.Request) int {
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil || days < 1 || days > maxHistoryDays {
		days = defaultHistoryDays
	}
	return days
}
