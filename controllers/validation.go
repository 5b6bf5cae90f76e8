package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationError is one field-level failure in a 400 response body.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// respondValidationError writes a 400 with field-level detail when the bind
// failure came from validation, or just the generic message otherwise.
func respondValidationError(c *gin.Context, message string, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		details := make([]ValidationError, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			details = append(details, ValidationError{
				Field:   fe.Field(),
				Message: fieldErrorMessage(fe),
			})
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"message": message,
			"errors":  details,
		})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"message": message,
	})
}

// fieldErrorMessage maps a validator tag to a readable message
func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation rule %q", fe.Tag())
	}
}
