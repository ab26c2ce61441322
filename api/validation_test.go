package api

import (
	"testing"
)

func TestValidateSearchRequest(t *testing.T) {
	tests := []struct {
		name        string
		req         *SearchRequest
		expectValid bool
		expectQuery string
	}{
		{
			name:        "valid phrase",
			req:         &SearchRequest{Query: "flight log", Mode: "sample"},
			expectValid: true,
			expectQuery: "flight log",
		},
		{
			name:        "phrase is trimmed",
			req:         &SearchRequest{Query: "  Epstein \n"},
			expectValid: true,
			expectQuery: "Epstein",
		},
		{
			name:        "unknown mode is accepted",
			req:         &SearchRequest{Query: "island", Mode: "everything"},
			expectValid: true,
			expectQuery: "island",
		},
		{
			name:        "empty phrase",
			req:         &SearchRequest{Query: ""},
			expectValid: false,
		},
		{
			name:        "whitespace phrase",
			req:         &SearchRequest{Query: " \t "},
			expectValid: false,
		},
		{
			name:        "nil request",
			req:         nil,
			expectValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateSearchRequest(tt.req)

			if result.Valid != tt.expectValid {
				t.Errorf("Expected valid=%v, got valid=%v (errors: %v)", tt.expectValid, result.Valid, result.Errors)
			}
			if result.HasErrors() == tt.expectValid {
				t.Errorf("HasErrors()=%v inconsistent with valid=%v", result.HasErrors(), tt.expectValid)
			}
			if tt.expectValid && tt.req.Query != tt.expectQuery {
				t.Errorf("Expected query %q, got %q", tt.expectQuery, tt.req.Query)
			}
			if !tt.expectValid && (len(result.Errors) == 0 || result.Errors[0].Field != "q") {
				t.Errorf("Expected an error on field 'q', got %v", result.Errors)
			}
		})
	}
}
