// Package api provides validation utilities for API request handling.
package api

import (
	"strings"
)

// SearchRequest holds the query parameters of a search.
type SearchRequest struct {
	Query string `form:"q"`
	Mode  string `form:"mode"`
}

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateSearchRequest trims the query phrase in place and checks it is not empty.
// The mode is never rejected: unrecognised values select count-only results.
func ValidateSearchRequest(req *SearchRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if req == nil {
		result.AddError("q", "Search request is required")
		return result
	}

	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		result.AddError("q", "Query phrase is required")
	}

	return result
}
