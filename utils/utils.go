// Package utils provides utility functions for the application.
package utils

import (
	"strings"

	"github.com/google/uuid"
)

func ToPtr[T any](v T) *T {
	return &v
}

// ParseUUID parses a textual UUID, rejecting blank input.
func ParseUUID(s string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, ErrEmptyUUID
	}
	return uuid.Parse(s)
}
