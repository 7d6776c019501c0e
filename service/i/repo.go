package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(user *dmn.User) error

	// ByID retrieves a user by their unique ID.
	// Returns dmn.ErrUserNotFound if the user is not found.
	ByID(id uuid.UUID) (*dmn.User, error)

	// ByUsername retrieves a user by their username.
	// Returns dmn.ErrUserNotFound if the user is not found.
	ByUsername(username string) (*dmn.User, error)
}

// MazeRepo persists maze generation records.
type MazeRepo interface {
	// Save inserts a new record.
	Save(ctx context.Context, record *dmn.MazeRecord) error

	// ByID returns dmn.ErrMazeNotFound when no record has the ID.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// ByOwner lists an owner's records, newest first.
	ByOwner(ctx context.Context, owner uuid.UUID) ([]*dmn.MazeRecord, error)
}
