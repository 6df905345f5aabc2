package service

import (
	"errors"

	"github.com/vcr/payment-service/internal/domain"

	"github.com/go-playground/validator/v10"
)

// validate единый валидатор структур запросов. Потокобезопасен,
// кэширует метаданные структур между вызовами.
var validate = validator.New()

// validateRequest проверяет структуру запроса и переводит ошибки
// валидатора в доменный набор ошибок полей
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.ValidationErrors{{Field: "request", Message: err.Error()}}
	}

	var out domain.ValidationErrors
	for _, fe := range fieldErrs {
		out.Add(fe.Field(), validationMessage(fe))
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gte", "min":
		return "must be at least " + fe.Param()
	default:
		return "is invalid"
	}
}
