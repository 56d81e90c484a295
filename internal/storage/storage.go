// Package storage defines the Storage interface that every backend must
// satisfy. Handlers depend only on this interface, so a backend can be swapped
// in main.go without touching them, and tests can run against any of them.
package storage

import (
	"errors"

	"github.com/aanand-mishra/users-api/internal/types"
	"github.com/google/uuid"
)

// ErrNotFound is returned (possibly wrapped) when no user has the requested id.
var ErrNotFound = errors.New("user not found")

// Storage is the user collection contract.
//
// Each method is atomic with respect to the others: an implementation must
// not let a concurrent call observe or interleave with a half-done
// check-then-write.
type Storage interface {
	// CreateUser stores the input under a freshly generated id and returns
	// the stored record.
	CreateUser(input types.UserInput) (types.User, error)

	// GetUserByID returns ErrNotFound if id is unknown.
	GetUserByID(id string) (types.User, error)

	// GetUsers returns every user in insertion order. Returns an empty
	// slice (not nil) when there are none.
	GetUsers() ([]types.User, error)

	// UpdateUserByID replaces all fields of an existing user, keeping its
	// id and its position in GetUsers. Returns ErrNotFound if id is unknown.
	UpdateUserByID(id string, input types.UserInput) (types.User, error)

	// DeleteUserByID returns ErrNotFound if id is unknown.
	DeleteUserByID(id string) error

	Close() error
}

// NewID returns a new random user id (UUID v4).
func NewID() string {
	return uuid.NewString()
}
