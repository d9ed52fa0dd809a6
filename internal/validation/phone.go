package validation

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var iranianMobile = regexp.MustCompile(`^(\+98|0)?9\d{9}$`)

// IsIranianMobile reports whether phone looks like 09xxxxxxxxx, +989xxxxxxxxx
// or 9xxxxxxxxx.
func IsIranianMobile(phone string) bool {
	return iranianMobile.MatchString(strings.TrimSpace(phone))
}

// NormalizePhone keeps the digits of phone and, when there are at least ten,
// only the last ten. 09121234567 and +989121234567 both become 9121234567.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) >= 10 {
		return digits[len(digits)-10:]
	}
	return digits
}

// SamePhone compares two numbers by their normalized form. Empty numbers
// never match.
func SamePhone(a, b string) bool {
	na, nb := NormalizePhone(a), NormalizePhone(b)
	return na != "" && na == nb
}

// RegisterGinValidators adds the ir_mobile tag to gin's validator.
func RegisterGinValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	return v.RegisterValidation("ir_mobile", func(fl validator.FieldLevel) bool {
		return IsIranianMobile(fl.Field().String())
	})
}
