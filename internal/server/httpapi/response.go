package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/Toxic209/noteForge/internal/apperror"
)

// Response is the success envelope: a message plus an arbitrary payload.
type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type errorResponse struct {
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode"`
	Details   any    `json:"details,omitempty"`
}

func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{Message: message, Data: data})
}

// respondError translates a service error into a transport response using the
// errorCode and statusCode carried by operational errors. Anything else is a
// defect or an infrastructure failure: log it and answer with a generic 500.
func (s *Server) respondError(c *gin.Context, err error) {
	if e, ok := apperror.From(err); ok {
		c.JSON(e.StatusCode, errorResponse{
			Message:   e.Message,
			ErrorCode: string(e.Code),
			Details:   e.Details,
		})
		return
	}

	s.logger.Error(c.Request.Context(), "unexpected error", "error", err.Error(), "path", c.FullPath())
	c.JSON(500, errorResponse{Message: "internal server error", ErrorCode: "INTERNAL"})
}
