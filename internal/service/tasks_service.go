package service

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/internal/repository"
	"github.com/limbo/planner/internal/views"
	"github.com/limbo/planner/pkg/entity"
)

type TasksServiceOpts struct {
	// First day of a calendar week. Zero value is Sunday
	WeekStart time.Weekday
	// Location used to split time into calendar days. Defaults to time.Local
	Location *time.Location
	// Clock, defaults to time.Now
	Now func() time.Time
}

type TasksService struct {
	repo      repository.TasksRepositoryI
	weekStart time.Weekday
	loc       *time.Location
	now       func() time.Time
}

func NewTasksService(tasksRepo repository.TasksRepositoryI, opts TasksServiceOpts) *TasksService {
	if tasksRepo == nil {
		log.Fatal("provided nil tasksRepo")
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &TasksService{
		repo:      tasksRepo,
		weekStart: opts.WeekStart,
		loc:       opts.Location,
		now:       opts.Now,
	}
}

// Now returns the service clock reading in the configured location.
func (ts *TasksService) Now() time.Time {
	return ts.currentTime()
}

func (ts *TasksService) currentTime() time.Time {
	return ts.now().In(ts.loc)
}

func (ts *TasksService) CreateTask(input TaskInput) (entity.Task, error) {
	if err := validateStruct(input); err != nil {
		return entity.Task{}, err
	}
	if !input.IsRecurring {
		input.RecurrenceType = entity.RecurrenceNone
		input.RecurrenceInterval = nil
	}
	task := CreateTask(input, ts.currentTime())
	ts.repo.Add(task)
	return task, nil
}

func (ts *TasksService) GetTask(id uuid.UUID) (entity.Task, error) {
	task, err := ts.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return entity.Task{}, err
		}
		return entity.Task{}, errors.New("tasks repository error: " + err.Error())
	}
	return task, nil
}

func (ts *TasksService) UpdateTask(id uuid.UUID, req UpdateTaskRequest) (entity.Task, error) {
	if err := validateStruct(req); err != nil {
		return entity.Task{}, err
	}
	now := ts.currentTime()
	task, err := ts.repo.UpdateFunc(id, func(t entity.Task) entity.Task {
		t.Title = req.Title
		t.Description = req.Description
		t.DueDate = req.DueDate
		t.Priority = req.Priority
		t.Category = req.Category
		t.IsRecurring = req.IsRecurring
		t.RecurrenceType = req.RecurrenceType
		t.RecurrenceInterval = req.RecurrenceInterval
		t.Tags = entity.NormalizeTags(req.Tags)
		if t.RecurrenceType == "" || !t.IsRecurring {
			t.RecurrenceType = entity.RecurrenceNone
		}
		if !t.IsRecurring {
			t.RecurrenceInterval = nil
			t.Streak = 0
			t.LastCompletedDate = nil
		}
		// Editing a task into Completed stamps it, but does not count toward a streak
		switch {
		case req.Status != entity.StatusCompleted:
			t.CompletedAt = nil
		case t.CompletedAt == nil:
			t.CompletedAt = &now
		}
		t.Status = req.Status
		return t
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return entity.Task{}, err
		}
		return entity.Task{}, errors.New("tasks repository error: " + err.Error())
	}
	return task, nil
}

func (ts *TasksService) DeleteTask(id uuid.UUID) error {
	err := ts.repo.Delete(id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return err
		}
		return errors.New("tasks repository error: " + err.Error())
	}
	return nil
}

func (ts *TasksService) CompleteTask(id uuid.UUID) (entity.Task, error) {
	now := ts.currentTime()
	task, err := ts.repo.UpdateFunc(id, func(t entity.Task) entity.Task {
		return CompleteTask(t, now)
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return entity.Task{}, err
		}
		return entity.Task{}, errors.New("tasks repository error: " + err.Error())
	}
	return task, nil
}

func (ts *TasksService) AllTasks() []entity.Task {
	return ts.repo.All()
}

func (ts *TasksService) ByStatus(status entity.Status) []entity.Task {
	return views.ByStatus(ts.repo.All(), status)
}

func (ts *TasksService) Filter(opts views.FilterOptions) []entity.Task {
	return views.Filter(ts.repo.All(), opts)
}

func (ts *TasksService) Statistics() entity.TaskStats {
	return views.Statistics(ts.repo.All())
}

func (ts *TasksService) Overdue() []entity.Task {
	return views.Overdue(ts.repo.All(), ts.currentTime())
}

func (ts *TasksService) Calendar(year int, month time.Month) entity.CalendarMonth {
	return views.Calendar(ts.repo.All(), year, month, ts.weekStart, ts.currentTime())
}

func (ts *TasksService) Activity(days int) []entity.DayActivity {
	return views.CompletionActivity(ts.repo.All(), ts.currentTime(), days)
}

func (ts *TasksService) StreakSummary(days int) entity.StreakStats {
	return views.StreakSummary(ts.repo.All(), ts.currentTime(), days)
}
