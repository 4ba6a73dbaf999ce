package repository

import (
	"sync"

	"github.com/google/uuid"

	"github.com/limbo/planner/pkg/entity"
)

// PreferencesRepository holds the single session user and their preferences.
type PreferencesRepository struct {
	mu   sync.RWMutex
	user entity.User
}

func NewPreferencesRepo(name, email string) *PreferencesRepository {
	return NewPreferencesRepoWithUser(entity.User{
		ID:          uuid.New(),
		Name:        name,
		Email:       email,
		Preferences: entity.DefaultPreferences(),
	})
}

func NewPreferencesRepoWithUser(user entity.User) *PreferencesRepository {
	return &PreferencesRepository{
		user: user,
	}
}

func (pr *PreferencesRepository) Get() entity.UserPreferences {
	pr.mu.RLock()
	defer pr.mu.RUnlock()
	return pr.user.Preferences
}

func (pr *PreferencesRepository) Update(patch entity.PreferencesPatch) entity.UserPreferences {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	pr.user.Preferences = patch.Apply(pr.user.Preferences)
	return pr.user.Preferences
}

func (pr *PreferencesRepository) User() entity.User {
	pr.mu.RLock()
	defer pr.mu.RUnlock()
	return pr.user
}

func (pr *PreferencesRepository) UpdateUser(patch entity.UserPatch) entity.User {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	if patch.Name != nil {
		pr.user.Name = *patch.Name
	}
	if patch.Email != nil {
		pr.user.Email = *patch.Email
	}
	return pr.user
}
