package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON error body for non-HTML endpoints
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func RespondWithError(c *gin.Context, statusCode int, errorCode string, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   errorCode,
		Message: message,
	})
}

func BadRequest(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusBadRequest, errorCode, message)
}

// InternalError answers 500. An empty code or message falls back to the
// unexpected-error pair.
func InternalError(c *gin.Context, errorCode string, message string) {
	if errorCode == "" {
		errorCode = CodeUnexpected
	}
	if message == "" {
		message = MsgUnexpected
	}
	RespondWithError(c, http.StatusInternalServerError, errorCode, message)
}
