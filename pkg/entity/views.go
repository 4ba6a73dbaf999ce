package entity

import "time"

// TaskStats maps hold only the keys observed in the collection, never zero entries.
type TaskStats struct {
	Total          int              `json:"total"`
	Completed      int              `json:"completed"`
	Pending        int              `json:"pending"`
	InProgress     int              `json:"inProgress"`
	ByCategory     map[Category]int `json:"byCategory"`
	ByPriority     map[Priority]int `json:"byPriority"`
	CompletionRate float64          `json:"completionRate"`
}

type CalendarDay struct {
	Date           time.Time `json:"date"`
	Tasks          []Task    `json:"tasks"`
	IsToday        bool      `json:"isToday"`
	IsCurrentMonth bool      `json:"isCurrentMonth"`
}

type CalendarWeek struct {
	WeekNumber int           `json:"weekNumber"`
	Days       []CalendarDay `json:"days"`
}

type CalendarMonth struct {
	Month int            `json:"month"`
	Year  int            `json:"year"`
	Weeks []CalendarWeek `json:"weeks"`
}

type Urgency string

const (
	UrgencyNone     Urgency = "none"
	UrgencyOverdue  Urgency = "overdue"
	UrgencyDueToday Urgency = "due-today"
	UrgencySoonDue  Urgency = "soon-due"
	UrgencyOnTrack  Urgency = "on-track"
)

type DayActivity struct {
	Date      time.Time `json:"date"`
	Completed int       `json:"completed"`
}

type StreakDay struct {
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
}

type StreakStats struct {
	Enabled            bool        `json:"enabled"`
	CurrentStreak      int         `json:"currentStreak"`
	LongestStreak      int         `json:"longestStreak"`
	TotalDaysCompleted int         `json:"totalDaysCompleted"`
	StreakHistory      []StreakDay `json:"streakHistory"`
}
