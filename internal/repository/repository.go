// Package repository declares the persistence interfaces the service layer
// depends on. Concrete implementations live in subpackages (sqlite).
//
// Entities have no update path — lifecycle is create → read → delete — so
// the interfaces deliberately have no Update method.
package repository

import (
	"context"

	"github.com/nikitav/billboard/internal/model"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// Create inserts a new user and fills in the store-assigned ID and
	// RegistrationTime on the passed struct. A duplicate user_name or email
	// yields an apperror conflict.
	Create(ctx context.Context, user *model.User) error

	// GetByID fetches a user by id. Missing id yields an apperror not-found.
	GetByID(ctx context.Context, id int64) (*model.User, error)

	// Delete removes a user by id. The store cascades the delete to every
	// billboard owned by that user. Missing id yields an apperror not-found.
	Delete(ctx context.Context, id int64) error
}

// BillboardRepository persists billboard posts.
type BillboardRepository interface {
	// Create inserts a new billboard and fills in the store-assigned ID and
	// CreationTime. A duplicate topic or description yields an apperror
	// conflict; a user_id referencing no existing user yields an apperror
	// validation error.
	Create(ctx context.Context, billboard *model.Billboard) error

	// GetByID fetches a billboard by id. Missing id yields an apperror
	// not-found.
	GetByID(ctx context.Context, id int64) (*model.Billboard, error)

	// Delete removes a billboard by id. Missing id yields an apperror
	// not-found.
	Delete(ctx context.Context, id int64) error
}
