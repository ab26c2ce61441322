package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	searchErrors "github.com/gcbaptista/pdf-phrase-search/internal/errors"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeInvalidQuery ErrorCode = "INVALID_QUERY"
	ErrorCodeRateLimited  ErrorCode = "RATE_LIMITED"

	// Server Error Codes (5xx)
	ErrorCodeInternalError      ErrorCode = "INTERNAL_ERROR"
	ErrorCodeSearchFailed       ErrorCode = "SEARCH_FAILED"
	ErrorCodeStorageUnavailable ErrorCode = "STORAGE_UNAVAILABLE"
)

// APIError represents a standardized API error response
type APIError struct {
	Error     string    `json:"error"`
	Code      ErrorCode `json:"code,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
}

// SendError sends a standardized error response
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string) {
	errorResponse := &APIError{
		Error: message,
		Code:  code,
	}

	// Add request ID if available
	if requestID, exists := c.Get(requestIDKey); exists {
		if id, ok := requestID.(string); ok {
			errorResponse.RequestID = id
		}
	}

	c.AbortWithStatusJSON(statusCode, errorResponse)
}

// SendSearchError sends the error for a failed search. Storage failures are
// reported as such; anything else is an internal error.
func SendSearchError(c *gin.Context, err error) {
	if errors.Is(err, searchErrors.ErrStorageUnavailable) {
		SendError(c, http.StatusInternalServerError, ErrorCodeStorageUnavailable,
			"Search failed: "+err.Error())
		return
	}
	SendError(c, http.StatusInternalServerError, ErrorCodeSearchFailed,
		"Search failed: "+err.Error())
}

// SendRateLimitedError sends a standardized rate limit error
func SendRateLimitedError(c *gin.Context) {
	SendError(c, http.StatusTooManyRequests, ErrorCodeRateLimited, "Rate limit exceeded")
}
