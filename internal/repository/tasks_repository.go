package repository

import (
	"sync"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/pkg/entity"
)

// TasksRepository keeps the session's task collection in memory.
// Mutations never touch the published slice: each one builds a new slice
// and swaps it in, so a reader always holds a complete snapshot.
type TasksRepository struct {
	mu    sync.RWMutex
	tasks []entity.Task
}

func NewTasksRepo() *TasksRepository {
	return &TasksRepository{
		tasks: []entity.Task{},
	}
}

// NewTasksRepoWithTasks creates repository pre-filled with tasks (e.g. default data set)
func NewTasksRepoWithTasks(tasks []entity.Task) *TasksRepository {
	repo := NewTasksRepo()
	for _, t := range tasks {
		repo.Add(t)
	}
	return repo
}

func (tr *TasksRepository) Add(task entity.Task) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	next := make([]entity.Task, len(tr.tasks), len(tr.tasks)+1)
	copy(next, tr.tasks)
	tr.tasks = append(next, task.Clone())
}

func (tr *TasksRepository) Update(task entity.Task) error {
	_, err := tr.UpdateFunc(task.ID, func(entity.Task) entity.Task {
		return task
	})
	return err
}

func (tr *TasksRepository) UpdateFunc(id uuid.UUID, fn func(entity.Task) entity.Task) (entity.Task, error) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	idx := tr.indexOf(id)
	if idx == -1 {
		return entity.Task{}, errorvalues.ErrTaskNotFound
	}
	updated := fn(tr.tasks[idx].Clone()).Clone()
	// ID is immutable whatever fn returned
	updated.ID = id

	next := make([]entity.Task, len(tr.tasks))
	copy(next, tr.tasks)
	next[idx] = updated
	tr.tasks = next
	return updated.Clone(), nil
}

func (tr *TasksRepository) Delete(id uuid.UUID) error {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	idx := tr.indexOf(id)
	if idx == -1 {
		return errorvalues.ErrTaskNotFound
	}
	next := make([]entity.Task, 0, len(tr.tasks)-1)
	next = append(next, tr.tasks[:idx]...)
	next = append(next, tr.tasks[idx+1:]...)
	tr.tasks = next
	return nil
}

func (tr *TasksRepository) GetByID(id uuid.UUID) (entity.Task, error) {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	idx := tr.indexOf(id)
	if idx == -1 {
		return entity.Task{}, errorvalues.ErrTaskNotFound
	}
	return tr.tasks[idx].Clone(), nil
}

func (tr *TasksRepository) All() []entity.Task {
	tr.mu.RLock()
	snapshot := tr.tasks
	tr.mu.RUnlock()

	res := make([]entity.Task, len(snapshot))
	for i, t := range snapshot {
		res[i] = t.Clone()
	}
	return res
}

func (tr *TasksRepository) indexOf(id uuid.UUID) int {
	for i, t := range tr.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
