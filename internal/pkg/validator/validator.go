package validator

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("date", validateDate)
}

// Validate - валидация структуры, ошибки приводятся к AppError с перечнем полей
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.ErrInvalidRequest.WithMessage(err.Error())
	}

	fields := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field())] = fmt.Sprintf("failed on '%s'", fe.Tag())
	}
	return errors.ErrInvalidRequest.WithDetails(fields)
}

// validateDate - пустая строка допустима (для required используется отдельный тег)
func validateDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse(domain.DateLayout, value)
	return err == nil
}
