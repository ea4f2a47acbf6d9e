package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// PasswordSymbols is the fixed set of symbols a password may (and must) use.
const PasswordSymbols = "@$!%*?&"

// emailPattern accepts "local@domain.tld"-shaped addresses starting with a letter.
var emailPattern = regexp.MustCompile(`^[A-Za-z].*@.+\..+`)

// Email reports whether s looks like a valid email address.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Password reports whether s satisfies the password policy: minimum length 6,
// at least one ASCII letter, one digit and one symbol from PasswordSymbols,
// and no characters outside those three classes.
func Password(s string) bool {
	if len(s) < 6 {
		return false
	}
	var letter, digit, symbol bool
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			letter = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(PasswordSymbols, r):
			symbol = true
		default:
			return false
		}
	}
	return letter && digit && symbol
}

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers the password policy as the "pwd" tag.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("pwd", func(fl validator.FieldLevel) bool {
			return Password(fl.Field().String())
		})
	}
}

// ToDetails converts validation/binding errors into a map[field]message
// suitable for the API error payload.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return map[string]string{"payload": "invalid json"}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	return map[string]string{"payload": "invalid payload"}
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "uuid":
		return "must be a valid UUID"
	case "min":
		return "must be at least " + param + " characters"
	case "max":
		return "must be at most " + param + " characters"
	case "pwd":
		return "must be at least 6 characters with a letter, a digit and a symbol"
	default:
		if param != "" {
			return fmt.Sprintf("validation failed for '%s' with parameter '%s'", tag, param)
		}
		return fmt.Sprintf("validation failed for '%s'", tag)
	}
}
