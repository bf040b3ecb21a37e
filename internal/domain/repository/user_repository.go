package repository

import (
	"context"

	"reviewpulse/internal/domain/entity"
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// Upsert inserts the user or, when its ID already exists, overwrites
	// the display name.
	Upsert(ctx context.Context, user *entity.User) error
}
