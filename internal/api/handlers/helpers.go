package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func formatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errors := make(map[string]string)
	for _, err := range errs {
		fieldName := err.Field()
		switch err.Tag() {
		case "required":
			errors[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errors[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "min":
			errors[fieldName] = fmt.Sprintf("Field '%s' must be at least %s", fieldName, err.Param())
		case "max":
			errors[fieldName] = fmt.Sprintf("Field '%s' must be at most %s", fieldName, err.Param())
		case "oneof":
			errors[fieldName] = fmt.Sprintf("Field '%s' must be one of: %s", fieldName, err.Param())
		case "datetime":
			errors[fieldName] = fmt.Sprintf("Field '%s' must be a date in YYYY-MM-DD format", fieldName)
		default:
			errors[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, err.Tag())
		}
	}
	return errors
}

// respondValidationError writes a 400 with per-field details when err comes
// from the validator, and a generic 400 otherwise.
func respondValidationError(c *gin.Context, err error) {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": formatValidationErrors(validationErrors)})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed"})
}

// parseIDParam parses the :id path parameter as a UUID, writing a 400 response
// itself when the value is malformed.
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return uuid.Nil, false
	}
	return id, true
}
