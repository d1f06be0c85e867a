package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/multirole/auth-api/internal/core/domain"
)

var (
	usernameCharset = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	hasLower        = regexp.MustCompile(`[a-z]`)
	hasUpper        = regexp.MustCompile(`[A-Z]`)
	hasDigit        = regexp.MustCompile(`\d`)
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
// Violations surface as *domain.ValidationError so the central error handler
// can render the fieldErrors envelope.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()
	// username: letters, digits and underscore only
	_ = v.RegisterValidation("username_charset", func(fl validator.FieldLevel) bool {
		return usernameCharset.MatchString(fl.Field().String())
	})
	// password: at least one lowercase, one uppercase and one digit
	_ = v.RegisterValidation("password_strength", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return hasLower.MatchString(s) && hasUpper.MatchString(s) && hasDigit.MatchString(s)
	})
	// role: one of the known roles, or empty for the default
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseRole(fl.Field().String())
		return ok
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make([]domain.FieldError, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, fieldError(fe))
			}
			return &domain.ValidationError{Fields: fields}
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into the response shape.
// Password values are never echoed back, even when rejected.
func fieldError(fe validator.FieldError) domain.FieldError {
	field := strings.ToLower(fe.Field())

	var rejected any
	if field != "password" {
		rejected = fe.Value()
	}

	return domain.FieldError{
		Field:         field,
		Message:       fieldMessage(field, fe),
		RejectedValue: rejected,
	}
}

func fieldMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "username_charset":
		return field + " may only contain letters, digits and underscores"
	case "password_strength":
		return field + " must contain an uppercase letter, a lowercase letter and a digit"
	case "role":
		return field + " must be one of: ADMIN, USER, SALES"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
