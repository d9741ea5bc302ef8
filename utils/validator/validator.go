package validatorx

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/vibecommerce/user-service/model"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()

	// report fields by their json names so boundary errors match the wire format
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("userpassword", validUserPassword)
	v.RegisterStructValidation(atLeastOneField, model.UpdateUserRequest{})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// validUserPassword requires length >= 5 with at least one lowercase and one
// uppercase ASCII letter. No digit or symbol requirement.
func validUserPassword(fl gpvalidator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 5 {
		return false
	}
	var hasLower, hasUpper bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		}
	}
	return hasLower && hasUpper
}

// atLeastOneField rejects a partial update that sets none of the fields.
func atLeastOneField(sl gpvalidator.StructLevel) {
	req := sl.Current().Interface().(model.UpdateUserRequest)
	if req.FirstName == nil && req.LastName == nil && req.Email == nil &&
		req.Password == nil && req.Address == nil {
		sl.ReportError(req.FirstName, "firstName", "FirstName", "atleastonefield", "")
	}
}

// Translate turns validator errors into per-field messages for the client.
func Translate(err error) string {
	verrs, ok := err.(gpvalidator.ValidationErrors)
	if !ok {
		return "invalid request"
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fieldMessage(fe))
	}
	return strings.Join(messages, "; ")
}

func fieldMessage(fe gpvalidator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "eqfield":
		return "passwords do not match"
	case "userpassword":
		return fmt.Sprintf("%s must contain at least one uppercase, one lowercase, and be at least 5 characters long", fe.Field())
	case "atleastonefield":
		return "at least one field must be provided"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
