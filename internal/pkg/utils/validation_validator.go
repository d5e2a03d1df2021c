package utils

import (
	"regexp"
	"rosta-service/internal/pkg/constvars"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("dayformat", validateDayFormat)
	validate.RegisterValidation("clock", validateClock)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateDayFormat(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !regexp.MustCompile(constvars.RegexDateYYYYMMDD).MatchString(value) {
		return false
	}
	_, err := time.Parse(DayKeyLayout, value)
	return err == nil
}

func validateClock(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexClockHHMM).MatchString(fl.Field().String())
}
