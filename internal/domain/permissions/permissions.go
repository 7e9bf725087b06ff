// Package permissions holds the object-level access rules shared by every resource.
package permissions

import (
	"social-feed-service/internal/custom_errors"
	model "social-feed-service/internal/domain/models"
)

type Action int

const (
	ActionRead Action = iota
	ActionWrite
	ActionDelete
)

func (a Action) Safe() bool {
	return a == ActionRead
}

func (a Action) String() string {
	switch a {
	case ActionRead:
		return "read"
	case ActionWrite:
		return "write"
	case ActionDelete:
		return "delete"
	}
	return "unknown"
}

// IsAuthenticatedOrReadOnly allows reads for anyone and writes for authenticated requesters.
func IsAuthenticatedOrReadOnly(requester *model.Requester, action Action) error {
	if action.Safe() {
		return nil
	}
	if !requester.IsAuthenticated() {
		return custom_errors.ErrNotAuthenticated
	}
	return nil
}

// IsOwnerOrReadOnly allows reads for anyone and writes only for the owner of the object.
func IsOwnerOrReadOnly(requester *model.Requester, action Action, ownerID int64) error {
	if action.Safe() {
		return nil
	}
	if !requester.IsAuthenticated() {
		return custom_errors.ErrNotAuthenticated
	}
	if !requester.Owns(ownerID) {
		return custom_errors.ErrForbidden
	}
	return nil
}
