package domain

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	ErrContactIncomplete = errors.New("all fields are required")
	ErrInvalidEmail      = errors.New("invalid email address")
)

// basicEmail is the local@domain.tld shape accepted by the contact form.
var basicEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("basic_email", func(fl validator.FieldLevel) bool {
		return basicEmail.MatchString(fl.Field().String())
	})
	return v
}

// ContactMessage is the landing page contact form submission.
type ContactMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,basic_email"`
	Message string `json:"message" validate:"required"`
}

// Validate reports ErrContactIncomplete when a field is empty and
// ErrInvalidEmail when the address does not look like one.
func (m ContactMessage) Validate() error {
	err := validate.Struct(m)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return ErrContactIncomplete
		}
	}
	return ErrInvalidEmail
}
