package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

func (p Priority) Valid() bool {
	return slices.Contains(Priorities(), p)
}

type Category string

const (
	CategoryPersonal Category = "personal"
	CategoryWork     Category = "work"
	CategoryStudy    Category = "study"
	CategoryHealth   Category = "health"
	CategoryFinance  Category = "finance"
	CategoryOther    Category = "other"
)

func Categories() []Category {
	return []Category{CategoryPersonal, CategoryWork, CategoryStudy, CategoryHealth, CategoryFinance, CategoryOther}
}

func (c Category) Valid() bool {
	return slices.Contains(Categories(), c)
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}
}

func (s Status) Valid() bool {
	return slices.Contains(Statuses(), s)
}

type RecurrenceType string

const (
	RecurrenceNone    RecurrenceType = "none"
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
	RecurrenceCustom  RecurrenceType = "custom"
)

func RecurrenceTypes() []RecurrenceType {
	return []RecurrenceType{RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceCustom}
}

func (r RecurrenceType) Valid() bool {
	return slices.Contains(RecurrenceTypes(), r)
}

// Task is treated as an immutable value by everything outside the store.
// Status is Completed exactly when CompletedAt is set, and Streak is only
// ever positive for recurring tasks.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Priority    Priority   `json:"priority"`
	Category    Category   `json:"category"`
	Status      Status     `json:"status"`
	IsRecurring bool       `json:"isRecurring"`
	// Meaningful only when IsRecurring is set
	RecurrenceType RecurrenceType `json:"recurrenceType"`
	// Day count, meaningful only for RecurrenceCustom
	RecurrenceInterval *int       `json:"recurrenceInterval,omitempty"`
	Streak             int        `json:"streak"`
	LastCompletedDate  *time.Time `json:"lastCompletedDate,omitempty"`
	Tags               []string   `json:"tags"`
}

// Clone returns a copy that shares no pointers or slices with t.
func (t Task) Clone() Task {
	c := t
	c.DueDate = clonePtr(t.DueDate)
	c.CompletedAt = clonePtr(t.CompletedAt)
	c.LastCompletedDate = clonePtr(t.LastCompletedDate)
	c.RecurrenceInterval = clonePtr(t.RecurrenceInterval)
	c.Tags = slices.Clone(t.Tags)
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// NormalizeTags trims tags and drops empty and repeated ones. First occurrence wins.
func NormalizeTags(tags []string) []string {
	res := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		res = append(res, tag)
	}
	return res
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

type TaskView string

const (
	TaskViewList     TaskView = "list"
	TaskViewCalendar TaskView = "calendar"
)

func (v TaskView) Valid() bool {
	return v == TaskViewList || v == TaskViewCalendar
}

type UserPreferences struct {
	Theme                Theme `json:"theme"`
	NotificationsEnabled bool  `json:"notificationsEnabled"`
	// Minutes before the due time
	ReminderTime          int      `json:"reminderTime"`
	DefaultTaskView       TaskView `json:"defaultTaskView"`
	DefaultTaskCategory   Category `json:"defaultTaskCategory"`
	DefaultTaskPriority   Priority `json:"defaultTaskPriority"`
	StreakTrackingEnabled bool     `json:"streakTrackingEnabled"`
}

func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Theme:                 ThemeLight,
		NotificationsEnabled:  true,
		ReminderTime:          30,
		DefaultTaskView:       TaskViewList,
		DefaultTaskCategory:   CategoryPersonal,
		DefaultTaskPriority:   PriorityMedium,
		StreakTrackingEnabled: true,
	}
}

// PreferencesPatch carries a partial preferences update. Nil fields are left as is.
type PreferencesPatch struct {
	Theme                 *Theme    `json:"theme,omitempty" validate:"omitempty,theme"`
	NotificationsEnabled  *bool     `json:"notificationsEnabled,omitempty"`
	ReminderTime          *int      `json:"reminderTime,omitempty" validate:"omitempty,gt=0"`
	DefaultTaskView       *TaskView `json:"defaultTaskView,omitempty" validate:"omitempty,task_view"`
	DefaultTaskCategory   *Category `json:"defaultTaskCategory,omitempty" validate:"omitempty,task_category"`
	DefaultTaskPriority   *Priority `json:"defaultTaskPriority,omitempty" validate:"omitempty,task_priority"`
	StreakTrackingEnabled *bool     `json:"streakTrackingEnabled,omitempty"`
}

// Apply returns p with every non-nil field of patch written over it.
func (patch PreferencesPatch) Apply(p UserPreferences) UserPreferences {
	if patch.Theme != nil {
		p.Theme = *patch.Theme
	}
	if patch.NotificationsEnabled != nil {
		p.NotificationsEnabled = *patch.NotificationsEnabled
	}
	if patch.ReminderTime != nil {
		p.ReminderTime = *patch.ReminderTime
	}
	if patch.DefaultTaskView != nil {
		p.DefaultTaskView = *patch.DefaultTaskView
	}
	if patch.DefaultTaskCategory != nil {
		p.DefaultTaskCategory = *patch.DefaultTaskCategory
	}
	if patch.DefaultTaskPriority != nil {
		p.DefaultTaskPriority = *patch.DefaultTaskPriority
	}
	if patch.StreakTrackingEnabled != nil {
		p.StreakTrackingEnabled = *patch.StreakTrackingEnabled
	}
	return p
}

type User struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Preferences UserPreferences `json:"preferences"`
}

type UserPatch struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}
