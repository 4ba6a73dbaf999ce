package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/planner/internal/views"
	"github.com/limbo/planner/pkg/entity"
)

// UpdateTaskRequest replaces the editable fields of a task. ID, CreatedAt,
// Streak and LastCompletedDate are kept from the stored task.
type UpdateTaskRequest struct {
	Title              string                `json:"title" validate:"required,max=200"`
	Description        string                `json:"description" validate:"max=2000"`
	DueDate            *time.Time            `json:"dueDate,omitempty"`
	Priority           entity.Priority       `json:"priority" validate:"required,task_priority"`
	Category           entity.Category       `json:"category" validate:"required,task_category"`
	Status             entity.Status         `json:"status" validate:"required,task_status"`
	IsRecurring        bool                  `json:"isRecurring"`
	RecurrenceType     entity.RecurrenceType `json:"recurrenceType,omitempty" validate:"omitempty,recurrence_type"`
	RecurrenceInterval *int                  `json:"recurrenceInterval,omitempty" validate:"omitempty,min=1"`
	Tags               []string              `json:"tags,omitempty" validate:"omitempty,unique,dive,max=50"`
}

type TasksServiceI interface {
	// Validates input, builds a task with defaults and stores it
	CreateTask(input TaskInput) (entity.Task, error)
	GetTask(id uuid.UUID) (entity.Task, error)
	UpdateTask(id uuid.UUID, req UpdateTaskRequest) (entity.Task, error)
	DeleteTask(id uuid.UUID) error
	// Marks task completed now and advances its streak
	CompleteTask(id uuid.UUID) (entity.Task, error)
	AllTasks() []entity.Task
	ByStatus(status entity.Status) []entity.Task
	Filter(opts views.FilterOptions) []entity.Task
	Statistics() entity.TaskStats
	Overdue() []entity.Task
	Calendar(year int, month time.Month) entity.CalendarMonth
	Activity(days int) []entity.DayActivity
	StreakSummary(days int) entity.StreakStats
	// Current time in the location used to split days
	Now() time.Time
}

type PreferencesServiceI interface {
	GetPreferences() entity.UserPreferences
	// Validates patch and applies it after the configured save delay
	UpdatePreferences(ctx context.Context, patch entity.PreferencesPatch) (entity.UserPreferences, error)
	GetUser() entity.User
	UpdateUser(patch entity.UserPatch) (entity.User, error)
}
