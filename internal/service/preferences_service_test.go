package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/internal/repository"
	"github.com/limbo/planner/internal/repository/mocks"
	"github.com/limbo/planner/internal/service"
	"github.com/limbo/planner/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePreferences(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	prefsRepo := mocks.NewMockPreferencesRepositoryI(ctrl)
	serv := service.NewPreferencesService(prefsRepo, 0)

	dark := entity.ThemeDark
	zero := 0
	board := entity.TaskView("board")
	testCases := []struct {
		Desc         string
		Error        error
		Patch        entity.PreferencesPatch
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			Patch: entity.PreferencesPatch{Theme: &dark},
			MockPrepFunc: func() {
				prefs := entity.DefaultPreferences()
				prefs.Theme = entity.ThemeDark
				prefsRepo.EXPECT().Update(entity.PreferencesPatch{Theme: &dark}).Return(prefs)
			},
		},
		{
			Desc:         "error zero reminder time",
			Error:        errorvalues.ErrValidation,
			Patch:        entity.PreferencesPatch{ReminderTime: &zero},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "error unknown task view",
			Error:        errorvalues.ErrValidation,
			Patch:        entity.PreferencesPatch{DefaultTaskView: &board},
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			prefs, err := serv.UpdatePreferences(context.Background(), tc.Patch)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Equal(t, entity.ThemeDark, prefs.Theme)
			}
		})
	}
}

func TestUpdatePreferencesDelay(t *testing.T) {
	t.Parallel()
	repo := repository.NewPreferencesRepo("User", "user@example.com")
	serv := service.NewPreferencesService(repo, 50*time.Millisecond)
	reminder := 45

	t.Run("cancelled before save", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := serv.UpdatePreferences(ctx, entity.PreferencesPatch{ReminderTime: &reminder})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 30, serv.GetPreferences().ReminderTime)
	})

	t.Run("saved after delay", func(t *testing.T) {
		start := time.Now()
		prefs, err := serv.UpdatePreferences(context.Background(), entity.PreferencesPatch{ReminderTime: &reminder})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
		assert.Equal(t, 45, prefs.ReminderTime)
		assert.Equal(t, 45, serv.GetPreferences().ReminderTime)
	})
}

func TestUpdateUser(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	prefsRepo := mocks.NewMockPreferencesRepositoryI(ctrl)
	serv := service.NewPreferencesService(prefsRepo, 0)

	name := "Alex"
	empty := ""
	badEmail := "not-an-email"
	testCases := []struct {
		Desc         string
		Error        error
		Patch        entity.UserPatch
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			Patch: entity.UserPatch{Name: &name},
			MockPrepFunc: func() {
				prefsRepo.EXPECT().UpdateUser(entity.UserPatch{Name: &name}).Return(entity.User{Name: name})
			},
		},
		{
			Desc:         "error empty name",
			Error:        errorvalues.ErrValidation,
			Patch:        entity.UserPatch{Name: &empty},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "error bad email",
			Error:        errorvalues.ErrValidation,
			Patch:        entity.UserPatch{Email: &badEmail},
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			user, err := serv.UpdateUser(tc.Patch)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Equal(t, name, user.Name)
			}
		})
	}
}
