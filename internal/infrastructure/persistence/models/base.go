package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/promokit/backend/internal/domain/shared"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// AggregateModel provides common persistence fields for aggregate roots.
// It extends BaseModel with version for optimistic locking.
type AggregateModel struct {
	BaseModel
	Version int `gorm:"not null;default:1"`
}

// FromDomainAggregateRoot populates AggregateModel from domain BaseAggregateRoot
func (m *AggregateModel) FromDomainAggregateRoot(a shared.BaseAggregateRoot) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.Version = a.Version
}

// ToDomainAggregateRoot converts AggregateModel to domain BaseAggregateRoot
func (m *AggregateModel) ToDomainAggregateRoot() shared.BaseAggregateRoot {
	return shared.BaseAggregateRoot{
		BaseEntity: m.ToDomain(),
		Version:    m.Version,
	}
}

// ShopAggregateModel provides common persistence fields for shop-owned aggregate roots
type ShopAggregateModel struct {
	AggregateModel
	ShopID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// FromDomainShopAggregateRoot populates ShopAggregateModel from domain ShopAggregateRoot
func (m *ShopAggregateModel) FromDomainShopAggregateRoot(s shared.ShopAggregateRoot) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.ShopID = s.ShopID
}

// ToDomainShopAggregateRoot converts ShopAggregateModel to domain ShopAggregateRoot
func (m *ShopAggregateModel) ToDomainShopAggregateRoot() shared.ShopAggregateRoot {
	return shared.ShopAggregateRoot{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		ShopID:            m.ShopID,
	}
}
