// Package views holds read-only projections of a task collection. Every
// function is pure: it takes the current snapshot (and the current time where
// it matters) and never modifies its input.
package views

import (
	"math"
	"strings"
	"time"

	"github.com/limbo/planner/pkg/entity"
)

// ByStatus keeps tasks with the given status in collection order.
func ByStatus(tasks []entity.Task, status entity.Status) []entity.Task {
	return keep(tasks, func(t entity.Task) bool { return t.Status == status })
}

func Statistics(tasks []entity.Task) entity.TaskStats {
	stats := entity.TaskStats{
		Total:      len(tasks),
		ByCategory: make(map[entity.Category]int),
		ByPriority: make(map[entity.Priority]int),
	}
	for _, t := range tasks {
		switch t.Status {
		case entity.StatusCompleted:
			stats.Completed++
		case entity.StatusPending:
			stats.Pending++
		case entity.StatusInProgress:
			stats.InProgress++
		}
		stats.ByCategory[t.Category]++
		stats.ByPriority[t.Priority]++
	}
	if stats.Total > 0 {
		stats.CompletionRate = float64(stats.Completed) / float64(stats.Total) * 100
	}
	return stats
}

// FilterOptions narrows a task list. Zero values mean "any".
type FilterOptions struct {
	Status   entity.Status
	Category entity.Category
	Priority entity.Priority
	Search   string
}

// Filter applies status, category, priority and then a case-insensitive
// search over title and description.
func Filter(tasks []entity.Task, opts FilterOptions) []entity.Task {
	res := keep(tasks, func(t entity.Task) bool { return opts.Status == "" || t.Status == opts.Status })
	if opts.Category != "" {
		res = keep(res, func(t entity.Task) bool { return t.Category == opts.Category })
	}
	if opts.Priority != "" {
		res = keep(res, func(t entity.Task) bool { return t.Priority == opts.Priority })
	}
	if term := strings.ToLower(strings.TrimSpace(opts.Search)); term != "" {
		res = keep(res, func(t entity.Task) bool {
			return strings.Contains(strings.ToLower(t.Title), term) ||
				strings.Contains(strings.ToLower(t.Description), term)
		})
	}
	return res
}

func keep(tasks []entity.Task, pred func(entity.Task) bool) []entity.Task {
	res := make([]entity.Task, 0, len(tasks))
	for _, t := range tasks {
		if pred(t) {
			res = append(res, t)
		}
	}
	return res
}

// DaysUntil rounds the remaining time up to whole days. Negative when due has passed.
func DaysUntil(due, now time.Time) int {
	return int(math.Ceil(float64(due.Sub(now)) / float64(day)))
}

func ClassifyDueDate(due, now time.Time) entity.Urgency {
	days := DaysUntil(due, now)
	switch {
	case days < 0:
		return entity.UrgencyOverdue
	case days == 0:
		return entity.UrgencyDueToday
	case days <= 2:
		return entity.UrgencySoonDue
	default:
		return entity.UrgencyOnTrack
	}
}

// TaskUrgency is ClassifyDueDate for a task; tasks without a due date get UrgencyNone.
func TaskUrgency(task entity.Task, now time.Time) entity.Urgency {
	if task.DueDate == nil {
		return entity.UrgencyNone
	}
	return ClassifyDueDate(*task.DueDate, now)
}

// Overdue lists open tasks whose due date has passed.
func Overdue(tasks []entity.Task, now time.Time) []entity.Task {
	return keep(tasks, func(t entity.Task) bool {
		if t.Status == entity.StatusCompleted || t.Status == entity.StatusCancelled {
			return false
		}
		return TaskUrgency(t, now) == entity.UrgencyOverdue
	})
}
