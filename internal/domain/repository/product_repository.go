// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"reviewpulse/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
// The application layer will depend on this interface, not the concrete implementation.
type ProductRepository interface {
	// Upsert inserts the product or, when its ID already exists,
	// overwrites every non-key field with the given values.
	Upsert(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a single product with its review aggregates.
	// Returns ErrProductNotFound when the ID is unknown.
	FindByID(ctx context.Context, id string) (*entity.ProductWithStats, error)

	// SearchByName retrieves up to limit products whose name contains
	// every given word (case-insensitive substring match), each with its
	// review aggregates.
	SearchByName(ctx context.Context, words []string, limit int) ([]*entity.ProductWithStats, error)
}
