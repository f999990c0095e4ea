// Package dto contains the request and response shapes of the HTTP API
package dto

// APIResponse represents the standard API response structure
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty" validate:"omitempty"`
	Error   any    `json:"error,omitempty" validate:"omitempty"`
}

// ErrorDetail represents error details in API responses
type ErrorDetail struct {
	Code    string `json:"code"`
	Details any    `json:"details,omitempty" validate:"omitempty"`
}

// ListResponse is the result of every list operation
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewListResponse wraps items; Total always equals len(items)
func NewListResponse[T any](items []T) *ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return &ListResponse[T]{Items: items, Total: len(items)}
}
