package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/tourism-directory/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// route - идентификатор экрана в канонической форме
	_ = validate.RegisterValidation("route", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseRoute(fl.Field().String())
		return err == nil
	})

	// role - одна из известных ролей
	_ = validate.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseRole(fl.Field().String())
		return err == nil
	})

	// poi_kind - тип записи каталога (shop, spots, ...)
	_ = validate.RegisterValidation("poi_kind", func(fl validator.FieldLevel) bool {
		_, err := domain.ParsePOIKind(fl.Field().String())
		return err == nil
	})
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
