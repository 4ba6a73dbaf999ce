package views_test

import (
	"testing"
	"time"

	"github.com/limbo/planner/internal/views"
	"github.com/limbo/planner/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarMarch2024(t *testing.T) {
	due := time.Date(2024, 3, 15, 8, 0, 0, 0, loc)
	tasks := []entity.Task{
		dueAt(task("taxes", entity.StatusPending, entity.CategoryFinance, entity.PriorityHigh), due),
		task("undated", entity.StatusPending, entity.CategoryFinance, entity.PriorityHigh),
	}
	cal := views.Calendar(tasks, 2024, time.March, time.Saturday, now)

	assert.Equal(t, 3, cal.Month)
	assert.Equal(t, 2024, cal.Year)
	require.Len(t, cal.Weeks, 6)

	first := cal.Weeks[0].Days[0]
	assert.Equal(t, time.Date(2024, 2, 24, 0, 0, 0, 0, loc), first.Date)
	assert.False(t, first.IsCurrentMonth)
	last := cal.Weeks[5].Days[6]
	assert.Equal(t, time.Date(2024, 4, 5, 0, 0, 0, 0, loc), last.Date)

	days, found, today := 0, 0, 0
	for i, w := range cal.Weeks {
		assert.Equal(t, i+1, w.WeekNumber)
		require.Len(t, w.Days, 7)
		assert.Equal(t, time.Saturday, w.Days[0].Date.Weekday())
		for _, d := range w.Days {
			days++
			if d.IsToday {
				today++
				assert.Equal(t, 13, d.Date.Day())
			}
			assert.NotNil(t, d.Tasks)
			for _, tk := range d.Tasks {
				assert.Equal(t, "taxes", tk.Title)
				assert.Equal(t, 15, d.Date.Day())
				assert.True(t, d.IsCurrentMonth)
				found++
			}
		}
	}
	assert.Equal(t, 42, days)
	assert.Equal(t, 1, found)
	assert.Equal(t, 1, today)
}

func TestCalendarWeekStart(t *testing.T) {
	testCases := []struct {
		Desc      string
		Year      int
		Month     time.Month
		WeekStart time.Weekday
		Weeks     int
		First     time.Time
	}{
		{
			Desc:      "february 2026 fits four sunday weeks",
			Year:      2026,
			Month:     time.February,
			WeekStart: time.Sunday,
			Weeks:     4,
			First:     time.Date(2026, 2, 1, 0, 0, 0, 0, loc),
		},
		{
			Desc:      "february 2026 monday start",
			Year:      2026,
			Month:     time.February,
			WeekStart: time.Monday,
			Weeks:     5,
			First:     time.Date(2026, 1, 26, 0, 0, 0, 0, loc),
		},
		{
			Desc:      "december into next year",
			Year:      2024,
			Month:     time.December,
			WeekStart: time.Saturday,
			Weeks:     5,
			First:     time.Date(2024, 11, 30, 0, 0, 0, 0, loc),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			cal := views.Calendar(nil, tc.Year, tc.Month, tc.WeekStart, now)
			require.Len(t, cal.Weeks, tc.Weeks)
			assert.Equal(t, tc.First, cal.Weeks[0].Days[0].Date)
			for _, w := range cal.Weeks {
				for _, d := range w.Days {
					assert.False(t, d.IsToday)
				}
			}
		})
	}
}

func TestTasksOnDayIgnoresTime(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)
	tasks := []entity.Task{
		dueAt(task("early", entity.StatusPending, entity.CategoryWork, entity.PriorityLow), day.Add(time.Minute)),
		dueAt(task("late", entity.StatusPending, entity.CategoryWork, entity.PriorityLow), day.Add(23*time.Hour+59*time.Minute)),
		dueAt(task("next", entity.StatusPending, entity.CategoryWork, entity.PriorityLow), day.Add(24*time.Hour)),
	}
	res := views.TasksOnDay(tasks, day)
	require.Len(t, res, 2)
	assert.Equal(t, "early", res[0].Title)
	assert.Equal(t, "late", res[1].Title)
}
