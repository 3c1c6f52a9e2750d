package validators

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// phone numbers: optional leading "+", then 7 to 15 digits
var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

func IsPhone(s string) bool {
	return phonePattern.MatchString(strings.TrimSpace(s))
}

func validatePhone(fl validator.FieldLevel) bool {
	return IsPhone(fl.Field().String())
}

// Register adds the "phone" tag to gin's binding validator.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("phone", validatePhone)
}
