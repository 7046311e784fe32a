package service

import (
	"errors"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("pet_name", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot start with a space
				if i == 0 && unicode.IsSpace(char) {
					return false
				}
				// Letters (any script, marks included), digits, spaces, dash or apostrophe
				if !unicode.IsLetter(char) && !unicode.IsMark(char) && !unicode.IsDigit(char) &&
					char != ' ' && char != '-' && char != '\'' {
					return false
				}
			}
			return true
		})
	})
}

func validateStruct(s any) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		err = errors.New("validation error")
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.New("validation unexpected error: " + err.Error())
}
