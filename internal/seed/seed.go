// Package seed builds the default task collection shown on a fresh session.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/limbo/planner/pkg/entity"
)

//go:embed default_tasks.yaml
var defaultTasks []byte

type document struct {
	Tasks []taskSpec `yaml:"tasks"`
}

// taskSpec describes a task with dates relative to load time. DueIn is added
// to now; DueAt pins the due date to a clock time today.
type taskSpec struct {
	Title          string   `yaml:"title"`
	Description    string   `yaml:"description"`
	CreatedDaysAgo int      `yaml:"created_days_ago"`
	DueIn          string   `yaml:"due_in"`
	DueAt          string   `yaml:"due_at"`
	Priority       string   `yaml:"priority"`
	Category       string   `yaml:"category"`
	Status         string   `yaml:"status"`
	IsRecurring    bool     `yaml:"is_recurring"`
	RecurrenceType string   `yaml:"recurrence_type"`
	Interval       *int     `yaml:"recurrence_interval"`
	Streak         int      `yaml:"streak"`
	Tags           []string `yaml:"tags"`
}

// DefaultTasks returns the embedded data set resolved against now.
func DefaultTasks(now time.Time) ([]entity.Task, error) {
	return Parse(defaultTasks, now)
}

func Parse(data []byte, now time.Time) ([]entity.Task, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.New("parsing seed document error: " + err.Error())
	}
	tasks := make([]entity.Task, 0, len(doc.Tasks))
	for i, item := range doc.Tasks {
		task, err := item.build(now)
		if err != nil {
			return nil, fmt.Errorf("seed task #%d (%q): %w", i+1, item.Title, err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (s taskSpec) build(now time.Time) (entity.Task, error) {
	task := entity.Task{
		ID:                 uuid.New(),
		Title:              s.Title,
		Description:        s.Description,
		CreatedAt:          now.AddDate(0, 0, -s.CreatedDaysAgo),
		Priority:           entity.Priority(s.Priority),
		Category:           entity.Category(s.Category),
		Status:             entity.Status(s.Status),
		IsRecurring:        s.IsRecurring,
		RecurrenceType:     entity.RecurrenceType(s.RecurrenceType),
		RecurrenceInterval: s.Interval,
		Streak:             s.Streak,
		Tags:               entity.NormalizeTags(s.Tags),
	}
	if task.Priority == "" {
		task.Priority = entity.PriorityMedium
	}
	if task.Category == "" {
		task.Category = entity.CategoryPersonal
	}
	if task.Status == "" {
		task.Status = entity.StatusPending
	}
	if task.RecurrenceType == "" {
		task.RecurrenceType = entity.RecurrenceNone
	}
	switch {
	case !task.Priority.Valid():
		return entity.Task{}, fmt.Errorf("unknown priority %q", s.Priority)
	case !task.Category.Valid():
		return entity.Task{}, fmt.Errorf("unknown category %q", s.Category)
	case !task.Status.Valid():
		return entity.Task{}, fmt.Errorf("unknown status %q", s.Status)
	case !task.RecurrenceType.Valid():
		return entity.Task{}, fmt.Errorf("unknown recurrence type %q", s.RecurrenceType)
	case task.Streak > 0 && !task.IsRecurring:
		return entity.Task{}, errors.New("streak on a non-recurring task")
	}

	switch {
	case s.DueIn != "":
		d, err := time.ParseDuration(s.DueIn)
		if err != nil {
			return entity.Task{}, fmt.Errorf("due_in: %w", err)
		}
		due := now.Add(d)
		task.DueDate = &due
	case s.DueAt != "":
		clock, err := time.Parse(time.TimeOnly, s.DueAt)
		if err != nil {
			return entity.Task{}, fmt.Errorf("due_at: %w", err)
		}
		y, m, d := now.Date()
		due := time.Date(y, m, d, clock.Hour(), clock.Minute(), clock.Second(), 0, now.Location())
		task.DueDate = &due
	}
	if task.Status == entity.StatusCompleted {
		completedAt := now
		task.CompletedAt = &completedAt
	}
	return task, nil
}
