package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/places-microservice/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// ValidateRequest - валидация входного DTO; нарушения сворачиваются в AppError
// с перечнем полей в деталях
func ValidateRequest(s interface{}) *errors.AppError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fields := make(map[string]interface{})
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
	}

	return errors.New(errors.CodeInvalidRequest, "Invalid request parameters", 400).
		WithDetails(map[string]interface{}{"fields": fields})
}
