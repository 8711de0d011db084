package api

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	yearPattern  = regexp.MustCompile(`^\d{4}$`)
	phonePattern = regexp.MustCompile(`^\d{11,12}$`)
)

type Validator struct {
	validator *validator.Validate
}

// NewValidator builds the request validator with the listing form's
// custom rules: year4 (exactly 4 digits) and phone11 (11-12 digits).
func NewValidator() *Validator {
	v := validator.New()

	v.RegisterValidation("year4", func(fl validator.FieldLevel) bool {
		return yearPattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("phone11", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return &Validator{validator: v}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}
