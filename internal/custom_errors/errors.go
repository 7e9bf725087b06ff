package custom_errors

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrFollowerNotFound = errors.New("follower not found")
	ErrUserNotFound     = errors.New("user not found")

	ErrForbidden        = errors.New("you do not have permission to perform this action")
	ErrNotAuthenticated = errors.New("authentication credentials were not provided")
	ErrInvalidToken     = errors.New("invalid token")

	ErrDuplicateFollow = errors.New("possible duplicate")
	ErrInvalidInput    = errors.New("invalid input")

	ErrDatabaseQuery = errors.New("database query failed")
	ErrCacheMiss     = errors.New("cache miss")
)

// ValidationError carries per-field messages for a rejected payload.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields[field] = append(e.Fields[field], message)
	return e
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrInvalidInput) match any validation failure.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
