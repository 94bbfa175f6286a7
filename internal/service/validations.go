package service

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/limbo/dayflow/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// HH:MM, 24-hour clock
		validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
			_, err := ParseClock(fl.Field().String())
			return err == nil
		})
		// Loadable IANA zone name
		validate.RegisterValidation("timezone", func(fl validator.FieldLevel) bool {
			_, err := LoadZone(fl.Field().String())
			return err == nil
		})
	})
}

func validateRequest(req any) error {
	InitValidator()
	err := validate.Struct(req)
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
	return errors.Join(errorvalues.ErrValidation, err)
}
