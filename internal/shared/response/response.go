package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ApiResponse is the uniform envelope every endpoint returns. StatusCode
// always mirrors the HTTP status the envelope was written with.
type ApiResponse struct {
	Success    bool      `json:"success"`
	Message    string    `json:"message"`
	Data       any       `json:"data"`
	StatusCode int       `json:"statusCode"`
	Timestamp  time.Time `json:"timestamp"`
}

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, ApiResponse{
		Success:    true,
		Message:    message,
		Data:       data,
		StatusCode: status,
		Timestamp:  time.Now().UTC(),
	})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ApiResponse{
		Success:    false,
		Message:    message,
		Data:       nil,
		StatusCode: status,
		Timestamp:  time.Now().UTC(),
	})
}
