package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Toxic209/noteForge/internal/apperror"
)

var validate = validator.New()

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// bindAndValidate decodes the JSON body into obj and runs struct validation.
// On failure it writes a VALIDATION_ERROR response and returns false.
func (s *Server) bindAndValidate(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		s.respondError(c, apperror.Validation("invalid request body"))
		return false
	}

	err := validate.Struct(obj)
	if err == nil {
		return true
	}

	var details []fieldError
	for _, fe := range err.(validator.ValidationErrors) {
		details = append(details, fieldError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
			Type:    fe.Tag(),
		})
	}

	s.respondError(c, apperror.Validation("invalid request data").WithDetails(details))
	return false
}

func validationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	default:
		return "Invalid value"
	}
}
