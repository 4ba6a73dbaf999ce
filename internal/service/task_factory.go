package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/limbo/planner/pkg/entity"
)

// TaskInput is the caller-controlled part of a new task. Validation tags are
// checked by TasksService; the factory itself accepts any input.
type TaskInput struct {
	Title              string                `json:"title" validate:"required,max=200"`
	Description        string                `json:"description" validate:"max=2000"`
	DueDate            *time.Time            `json:"dueDate,omitempty"`
	Priority           entity.Priority       `json:"priority,omitempty" validate:"omitempty,task_priority"`
	Category           entity.Category       `json:"category,omitempty" validate:"omitempty,task_category"`
	IsRecurring        bool                  `json:"isRecurring"`
	RecurrenceType     entity.RecurrenceType `json:"recurrenceType,omitempty" validate:"omitempty,recurrence_type"`
	RecurrenceInterval *int                  `json:"recurrenceInterval,omitempty" validate:"omitempty,min=1"`
	Tags               []string              `json:"tags,omitempty" validate:"omitempty,unique,dive,max=50"`
}

// CreateTask builds a fresh pending task from input. It never fails and does
// not validate: rejecting empty titles and the like is up to the caller.
func CreateTask(input TaskInput, now time.Time) entity.Task {
	task := entity.Task{
		ID:             uuid.New(),
		Title:          input.Title,
		Description:    input.Description,
		CreatedAt:      now,
		Priority:       input.Priority,
		Category:       input.Category,
		Status:         entity.StatusPending,
		IsRecurring:    input.IsRecurring,
		RecurrenceType: input.RecurrenceType,
		Streak:         0,
		Tags:           entity.NormalizeTags(input.Tags),
	}
	if input.DueDate != nil {
		due := *input.DueDate
		task.DueDate = &due
	}
	if input.RecurrenceInterval != nil {
		interval := *input.RecurrenceInterval
		task.RecurrenceInterval = &interval
	}
	if task.Priority == "" {
		task.Priority = entity.PriorityMedium
	}
	if task.Category == "" {
		task.Category = entity.CategoryPersonal
	}
	if task.RecurrenceType == "" {
		task.RecurrenceType = entity.RecurrenceNone
	}
	return task
}
