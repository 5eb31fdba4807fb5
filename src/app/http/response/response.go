// Package response defines consistent HTTP response structures.
// All API responses should use these types for consistency.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"forumapi/src/core/domain"
)

// Response statuses.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Success represents a successful response with optional data.
type Success struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

// Error represents an error response.
type Error struct {
	Status string      `json:"status"`
	Error  ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND",
	// "NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY")
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Field is the field that caused the error (for validation errors)
	Field string `json:"field,omitempty"`

	// RequestID is the request ID for debugging
	RequestID string `json:"request_id,omitempty"`
}

// OK sends a 200 response with data. A nil data sends only the status.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Success{Status: StatusSuccess, Data: data})
}

// Created sends a 201 response with the created resource.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Success{Status: StatusSuccess, Data: data})
}

func fail(c *gin.Context, status int, detail ErrorDetail) {
	c.JSON(status, Error{Status: StatusFail, Error: detail})
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string, requestID string) {
	fail(c, http.StatusBadRequest, ErrorDetail{
		Code:      "BAD_REQUEST",
		Message:   message,
		RequestID: requestID,
	})
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message, requestID string) {
	fail(c, http.StatusNotFound, ErrorDetail{
		Code:      "NOT_FOUND",
		Message:   message,
		RequestID: requestID,
	})
}

// Unauthorized sends a 401 response.
func Unauthorized(c *gin.Context, message, requestID string) {
	fail(c, http.StatusUnauthorized, ErrorDetail{
		Code:      "UNAUTHORIZED",
		Message:   message,
		RequestID: requestID,
	})
}

// InternalError sends a 500 response.
func InternalError(c *gin.Context, requestID string) {
	c.JSON(http.StatusInternalServerError, Error{
		Status: StatusError,
		Error: ErrorDetail{
			Code:      "INTERNAL_ERROR",
			Message:   "An unexpected error occurred",
			RequestID: requestID,
		},
	})
}

// FromDomainError converts a domain error to an appropriate HTTP response.
// This centralizes error handling and ensures consistent error responses.
func FromDomainError(c *gin.Context, err error, requestID string) {
	var de *domain.DomainError
	if !errors.As(err, &de) {
		InternalError(c, requestID)
		return
	}

	detail := ErrorDetail{
		Code:      de.Code,
		Message:   de.Message,
		Field:     de.Field,
		RequestID: requestID,
	}

	switch {
	case domain.IsNotFound(err):
		fail(c, http.StatusNotFound, detail)
	case domain.IsValidationError(err):
		fail(c, http.StatusBadRequest, detail)
	case domain.IsConflict(err):
		fail(c, http.StatusConflict, detail)
	case domain.IsForbidden(err):
		fail(c, http.StatusForbidden, detail)
	case domain.IsUnauthorized(err):
		fail(c, http.StatusUnauthorized, detail)
	default:
		InternalError(c, requestID)
	}
}
