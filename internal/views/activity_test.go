package views_test

import (
	"testing"
	"time"

	"github.com/limbo/planner/internal/views"
	"github.com/limbo/planner/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedAt(t entity.Task, at time.Time) entity.Task {
	t.Status = entity.StatusCompleted
	t.CompletedAt = &at
	return t
}

func recurring(t entity.Task, streak int, last *time.Time) entity.Task {
	t.IsRecurring = true
	t.RecurrenceType = entity.RecurrenceDaily
	t.Streak = streak
	t.LastCompletedDate = last
	return t
}

func TestCompletionActivity(t *testing.T) {
	tasks := []entity.Task{
		completedAt(task("today", entity.StatusPending, entity.CategoryWork, entity.PriorityLow), now.Add(-time.Hour)),
		completedAt(task("today too", entity.StatusPending, entity.CategoryWork, entity.PriorityLow), now.Add(-9*time.Hour)),
		completedAt(task("two days ago", entity.StatusPending, entity.CategoryWork, entity.PriorityLow), now.Add(-48*time.Hour)),
		completedAt(task("long ago", entity.StatusPending, entity.CategoryWork, entity.PriorityLow), now.AddDate(0, 0, -10)),
		task("open", entity.StatusPending, entity.CategoryWork, entity.PriorityLow),
	}
	activity := views.CompletionActivity(tasks, now, 7)
	require.Len(t, activity, 7)
	assert.Equal(t, time.Date(2024, 3, 7, 0, 0, 0, 0, loc), activity[0].Date)
	assert.Equal(t, time.Date(2024, 3, 13, 0, 0, 0, 0, loc), activity[6].Date)

	counts := make([]int, 0, len(activity))
	for _, a := range activity {
		counts = append(counts, a.Completed)
	}
	assert.Equal(t, []int{0, 0, 0, 0, 1, 0, 2}, counts)

	assert.Empty(t, views.CompletionActivity(tasks, now, 0))
}

func TestIsStreakActive(t *testing.T) {
	recent := now.Add(-23 * time.Hour)
	stale := now.Add(-25 * time.Hour)
	assert.False(t, views.IsStreakActive(nil, now))
	assert.True(t, views.IsStreakActive(&recent, now))
	assert.False(t, views.IsStreakActive(&stale, now))
}

func TestStreakSummary(t *testing.T) {
	recent := now.Add(-2 * time.Hour)
	stale := now.Add(-72 * time.Hour)
	tasks := []entity.Task{
		completedAt(recurring(task("reading", entity.StatusPending, entity.CategoryPersonal, entity.PriorityMedium), 5, &recent), recent),
		completedAt(recurring(task("walk", entity.StatusPending, entity.CategoryHealth, entity.PriorityLow), 12, &stale), stale),
		recurring(task("stretch", entity.StatusPending, entity.CategoryHealth, entity.PriorityLow), 2, nil),
		completedAt(task("report", entity.StatusPending, entity.CategoryWork, entity.PriorityHigh), recent.Add(-time.Hour)),
	}
	stats := views.StreakSummary(tasks, now, 7)

	assert.True(t, stats.Enabled)
	assert.Equal(t, 5, stats.CurrentStreak)
	assert.Equal(t, 12, stats.LongestStreak)
	assert.Equal(t, 2, stats.TotalDaysCompleted)
	require.Len(t, stats.StreakHistory, 7)
	assert.True(t, stats.StreakHistory[6].Completed)
	assert.False(t, stats.StreakHistory[5].Completed)
	assert.True(t, stats.StreakHistory[3].Completed)

	empty := views.StreakSummary(nil, now, 3)
	assert.Equal(t, 0, empty.CurrentStreak)
	assert.Equal(t, 0, empty.LongestStreak)
	assert.Len(t, empty.StreakHistory, 3)
}

func TestStartOfDayAndSameDay(t *testing.T) {
	at := time.Date(2024, 3, 13, 23, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2024, 3, 13, 0, 0, 0, 0, loc), views.StartOfDay(at))
	// 23:30 UTC+3 is still March 13 in UTC
	assert.True(t, views.SameDay(at, time.Date(2024, 3, 13, 1, 0, 0, 0, time.UTC)))
	// 01:00 UTC+3 on March 14 is March 13 22:00 UTC
	assert.True(t, views.SameDay(time.Date(2024, 3, 14, 1, 0, 0, 0, loc), time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC)))
	assert.False(t, views.SameDay(at, time.Date(2024, 3, 14, 12, 0, 0, 0, loc)))
}
