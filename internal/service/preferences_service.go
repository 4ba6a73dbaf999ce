package service

import (
	"context"
	"log"
	"time"

	"github.com/limbo/planner/internal/repository"
	"github.com/limbo/planner/pkg/entity"
)

type PreferencesService struct {
	repo      repository.PreferencesRepositoryI
	saveDelay time.Duration
}

// NewPreferencesService creates service that applies preference updates after saveDelay
func NewPreferencesService(prefsRepo repository.PreferencesRepositoryI, saveDelay time.Duration) *PreferencesService {
	if prefsRepo == nil {
		log.Fatal("provided nil prefsRepo")
	}
	return &PreferencesService{
		repo:      prefsRepo,
		saveDelay: saveDelay,
	}
}

func (ps *PreferencesService) GetPreferences() entity.UserPreferences {
	return ps.repo.Get()
}

func (ps *PreferencesService) UpdatePreferences(ctx context.Context, patch entity.PreferencesPatch) (entity.UserPreferences, error) {
	if err := validateStruct(patch); err != nil {
		return entity.UserPreferences{}, err
	}
	if ps.saveDelay > 0 {
		timer := time.NewTimer(ps.saveDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return entity.UserPreferences{}, ctx.Err()
		case <-timer.C:
		}
	}
	return ps.repo.Update(patch), nil
}

func (ps *PreferencesService) GetUser() entity.User {
	return ps.repo.User()
}

func (ps *PreferencesService) UpdateUser(patch entity.UserPatch) (entity.User, error) {
	if err := validateStruct(patch); err != nil {
		return entity.User{}, err
	}
	return ps.repo.UpdateUser(patch), nil
}
