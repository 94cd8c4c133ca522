package shared

import (
	"github.com/google/uuid"
)

// BaseAggregateRoot provides common fields for aggregate roots
type BaseAggregateRoot struct {
	BaseEntity
	Version int `gorm:"not null;default:1"`
}

// GetVersion returns the aggregate version for optimistic locking
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion increments the version number
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}

// ShopAggregateRoot extends BaseAggregateRoot with shop ownership
type ShopAggregateRoot struct {
	BaseAggregateRoot
	ShopID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// NewShopAggregateRoot creates a new shop-owned aggregate root
func NewShopAggregateRoot(shopID uuid.UUID) ShopAggregateRoot {
	return ShopAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		ShopID:            shopID,
	}
}

// GetShopID returns the owning shop ID
func (s *ShopAggregateRoot) GetShopID() uuid.UUID {
	return s.ShopID
}
