package views

import (
	"time"

	"github.com/limbo/planner/pkg/entity"
)

// CompletionActivity counts completions per day for the last days days,
// oldest first, ending with today.
func CompletionActivity(tasks []entity.Task, now time.Time, days int) []entity.DayActivity {
	res := make([]entity.DayActivity, 0, max(days, 0))
	today := StartOfDay(now)
	for i := days - 1; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		count := 0
		for _, t := range tasks {
			if t.CompletedAt != nil && SameDay(*t.CompletedAt, d) {
				count++
			}
		}
		res = append(res, entity.DayActivity{Date: d, Completed: count})
	}
	return res
}

// IsStreakActive reports whether the last completion happened within the past day.
func IsStreakActive(lastCompleted *time.Time, now time.Time) bool {
	if lastCompleted == nil {
		return false
	}
	return !lastCompleted.Before(now.Add(-day))
}

// StreakSummary aggregates streaks of recurring tasks. CurrentStreak only
// counts streaks that are still active.
func StreakSummary(tasks []entity.Task, now time.Time, historyDays int) entity.StreakStats {
	stats := entity.StreakStats{
		Enabled:       true,
		StreakHistory: make([]entity.StreakDay, 0, max(historyDays, 0)),
	}
	completedDays := make(map[time.Time]struct{})
	for _, t := range tasks {
		if t.CompletedAt != nil {
			completedDays[StartOfDay(t.CompletedAt.In(now.Location()))] = struct{}{}
		}
		if !t.IsRecurring {
			continue
		}
		stats.LongestStreak = max(stats.LongestStreak, t.Streak)
		if IsStreakActive(t.LastCompletedDate, now) {
			stats.CurrentStreak = max(stats.CurrentStreak, t.Streak)
		}
	}
	stats.TotalDaysCompleted = len(completedDays)

	for _, a := range CompletionActivity(tasks, now, historyDays) {
		stats.StreakHistory = append(stats.StreakHistory, entity.StreakDay{
			Date:      a.Date,
			Completed: a.Completed > 0,
		})
	}
	return stats
}
