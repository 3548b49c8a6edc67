// Package response writes the JSON envelope shared by every endpoint.
package response

import (
	"github.com/labstack/echo/v4"
)

// Response unified API response structure. Errors use the same shape and are
// written by the central error handler.
type Response struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`    // HTTP status code
	Message string `json:"message"` // User-facing message
	Data    any    `json:"data,omitempty"`
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "OK"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Blob writes a non-JSON body such as a PNG or XML document with an optional Cache-Control value.
func Blob(c echo.Context, statusCode int, contentType string, body []byte, cacheControl string) error {
	if cacheControl != "" {
		c.Response().Header().Set("Cache-Control", cacheControl)
	}

	return c.Blob(statusCode, contentType, body)
}
