package views

import (
	"time"

	"github.com/limbo/planner/pkg/entity"
)

// Calendar lays out month as whole weeks starting on weekStart and puts every
// task under the day its due date falls on. Days are computed in now's
// location; tasks without a due date are left out.
func Calendar(tasks []entity.Task, year int, month time.Month, weekStart time.Weekday, now time.Time) entity.CalendarMonth {
	loc := now.Location()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	start := first.AddDate(0, 0, -weekdayOffset(first.Weekday(), weekStart))
	end := last.AddDate(0, 0, 6-weekdayOffset(last.Weekday(), weekStart))

	dated := keep(tasks, func(t entity.Task) bool { return t.DueDate != nil })

	cal := entity.CalendarMonth{
		Month: int(month),
		Year:  year,
		Weeks: make([]entity.CalendarWeek, 0, 6),
	}
	var week entity.CalendarWeek
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if len(week.Days) == 0 {
			week = entity.CalendarWeek{
				WeekNumber: len(cal.Weeks) + 1,
				Days:       make([]entity.CalendarDay, 0, 7),
			}
		}
		week.Days = append(week.Days, entity.CalendarDay{
			Date:           d,
			Tasks:          TasksOnDay(dated, d),
			IsToday:        SameDay(now, d),
			IsCurrentMonth: d.Month() == month,
		})
		if len(week.Days) == 7 {
			cal.Weeks = append(cal.Weeks, week)
			week = entity.CalendarWeek{}
		}
	}
	return cal
}

// TasksOnDay selects tasks due on day's calendar date, ignoring time of day.
func TasksOnDay(tasks []entity.Task, day time.Time) []entity.Task {
	return keep(tasks, func(t entity.Task) bool {
		return t.DueDate != nil && SameDay(*t.DueDate, day)
	})
}

// weekdayOffset counts days from weekStart forward to wd.
func weekdayOffset(wd, weekStart time.Weekday) int {
	return (int(wd) - int(weekStart) + 7) % 7
}
