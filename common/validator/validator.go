package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apierrors "github.com/narender/cellar-store/common/apierrors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRequest performs validation on the struct payload.
// Returns nil on success, or an AppError with ErrCodeRequestValidation on failure.
func ValidateRequest(payload any) *apierrors.AppError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var messages []string
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		for _, vErr := range vErrs {
			messages = append(messages, fieldMessage(vErr))
		}
	} else {
		messages = append(messages, err.Error())
	}

	return apierrors.NewApplicationError(
		apierrors.ErrCodeRequestValidation,
		"Validation failed: "+strings.Join(messages, "; "),
		err)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("field '%s' is required", fe.Field())
	case "gte", "gt":
		return fmt.Sprintf("field '%s' must be at least %s", fe.Field(), fe.Param())
	case "lte", "lt":
		return fmt.Sprintf("field '%s' must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("field '%s' failed validation on '%s' tag", fe.Field(), fe.Tag())
	}
}
