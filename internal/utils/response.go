package utils

import (
	"github.com/gin-gonic/gin"
)

// ListResponse is the envelope of the public listing endpoints.
type ListResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Count   int         `json:"count"`
	Filters interface{} `json:"filters,omitempty"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse acknowledges an operation that returns no record.
type MessageResponse struct {
	Message string `json:"message"`
}

// Success writes data as the response body.
func Success(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// List writes a listing with its count and the filters that produced it.
func List(c *gin.Context, data interface{}, count int, filters interface{}) {
	c.JSON(200, ListResponse{
		Success: true,
		Data:    data,
		Count:   count,
		Filters: filters,
	})
}

// Message writes a plain acknowledgement.
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Message: message})
}

// Error writes an error response with the given status and message.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// RequestID returns the id assigned by the logging middleware, or a fresh one.
func RequestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	return NewRequestID()
}
