package repository

import (
	"github.com/google/uuid"

	"github.com/limbo/planner/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

type TasksRepositoryI interface {
	// Appends task to the collection. Task is expected to come from the factory
	Add(task entity.Task)
	// Replaces task with the same ID
	Update(task entity.Task) error
	// Applies fn to the task with id and stores the result in one step
	UpdateFunc(id uuid.UUID, fn func(entity.Task) entity.Task) (entity.Task, error)
	// Removes task with id
	Delete(id uuid.UUID) error
	GetByID(id uuid.UUID) (entity.Task, error)
	// Returns current snapshot in insertion order
	All() []entity.Task
}

type PreferencesRepositoryI interface {
	Get() entity.UserPreferences
	// Merges non-nil patch fields, returns resulting preferences
	Update(patch entity.PreferencesPatch) entity.UserPreferences
	User() entity.User
	UpdateUser(patch entity.UserPatch) entity.User
}
