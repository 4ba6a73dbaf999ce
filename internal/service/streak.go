package service

import (
	"time"

	"github.com/limbo/planner/internal/views"
	"github.com/limbo/planner/pkg/entity"
)

// CompleteTask returns task marked completed at now.
//
// Streaks move only for recurring tasks: the first completion or one made on
// the same or the next calendar day extends the streak, anything later starts
// a new streak of 1. Non-recurring tasks keep their streak and last completion
// date untouched.
func CompleteTask(task entity.Task, now time.Time) entity.Task {
	res := task.Clone()
	res.Status = entity.StatusCompleted
	completedAt := now
	res.CompletedAt = &completedAt

	if !res.IsRecurring {
		return res
	}
	switch {
	case res.LastCompletedDate == nil:
		res.Streak++
	case IsConsecutiveDay(*res.LastCompletedDate, now):
		res.Streak++
	default:
		res.Streak = 1
	}
	last := now
	res.LastCompletedDate = &last
	return res
}

// IsConsecutiveDay reports whether now falls at most one calendar day after last.
// Same-day completions count as consecutive. Days are taken in now's location.
func IsConsecutiveDay(last, now time.Time) bool {
	lastMidnight := views.StartOfDay(last.In(now.Location()))
	nowMidnight := views.StartOfDay(now)
	return nowMidnight.Sub(lastMidnight) <= 24*time.Hour
}
