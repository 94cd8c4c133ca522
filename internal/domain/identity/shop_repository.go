package identity

import (
	"context"

	"github.com/google/uuid"
)

// ShopRepository defines the persistence contract for Shop aggregates
type ShopRepository interface {
	// Create creates a new shop account
	Create(ctx context.Context, shop *Shop) error

	// Update updates an existing shop account
	Update(ctx context.Context, shop *Shop) error

	// FindByID finds a shop by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Shop, error)

	// FindByEmail finds a shop by its lowercased email
	FindByEmail(ctx context.Context, email string) (*Shop, error)

	// ExistsByEmail checks whether a shop with the given email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
