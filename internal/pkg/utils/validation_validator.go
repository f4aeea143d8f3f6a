package utils

import (
	"hospicare-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("identity_number", validateIdentityNumber)
	validate.RegisterValidation("bhyt_code", validateBHYTCode)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateIdentityNumber(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexIdentityNumber).MatchString(fl.Field().String())
}

func validateBHYTCode(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexBHYTCode).MatchString(fl.Field().String())
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexVietnamPhoneNumber).MatchString(fl.Field().String())
}
