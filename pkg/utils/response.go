package utils

import (
	"github.com/gin-gonic/gin"
)

// Error kinds surfaced in API error payloads.
const (
	KindValidationError = "validation_error"
	KindUpstreamError   = "upstream_error"
	KindRateLimited     = "rate_limited"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Kind    string      `json:"kind,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func SuccessResponse(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, code int, kind, message string, err error) {
	response := APIResponse{
		Success: false,
		Message: message,
		Kind:    kind,
	}

	if err != nil {
		response.Error = err.Error()
	}

	c.JSON(code, response)
}
