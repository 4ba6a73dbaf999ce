package service

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/limbo/planner/internal/error_values"
	"github.com/limbo/planner/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		enums := map[string]func(string) bool{
			"task_priority":   func(v string) bool { return entity.Priority(v).Valid() },
			"task_category":   func(v string) bool { return entity.Category(v).Valid() },
			"task_status":     func(v string) bool { return entity.Status(v).Valid() },
			"recurrence_type": func(v string) bool { return entity.RecurrenceType(v).Valid() },
			"theme":           func(v string) bool { return entity.Theme(v).Valid() },
			"task_view":       func(v string) bool { return entity.TaskView(v).Valid() },
		}
		for tag, valid := range enums {
			validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
				return valid(fl.Field().String())
			})
		}
	})
}

// validateStruct joins every field error with ErrValidation so callers can match it with errors.Is.
func validateStruct(v any) error {
	InitValidator()
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		err = errorvalues.ErrValidation
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.New("validation unexpected error: " + err.Error())
}
