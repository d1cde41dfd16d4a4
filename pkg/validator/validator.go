package validator

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their JSON name so messages match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterValidation("clock", validateClock)
	v.RegisterValidation("isodate", validateISODate)
	v.RegisterValidation("notblank", validateNotBlank)

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required", "notblank":
				errors[field] = field + " es obligatorio"
			case "email":
				errors[field] = field + " debe ser un correo electrónico válido"
			case "min":
				errors[field] = field + " debe tener al menos " + e.Param() + " caracteres"
			case "max":
				errors[field] = field + " debe tener como máximo " + e.Param() + " caracteres"
			case "gt":
				errors[field] = field + " debe ser mayor que " + e.Param()
			case "gte":
				errors[field] = field + " debe ser mayor o igual que " + e.Param()
			case "lte":
				errors[field] = field + " debe ser menor o igual que " + e.Param()
			case "oneof":
				errors[field] = field + " debe ser uno de: " + strings.Join(strings.Fields(e.Param()), ", ")
			case "clock":
				errors[field] = field + " debe tener formato HH:MM o HH:MM:SS"
			case "isodate":
				errors[field] = field + " debe tener formato YYYY-MM-DD"
			default:
				errors[field] = field + " no es válido"
			}
		}
	}

	return errors
}

func validateClock(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, layout := range []string{"15:04:05", "15:04"} {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
