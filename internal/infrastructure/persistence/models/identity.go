package models

import (
	"time"

	"github.com/promokit/backend/internal/domain/identity"
	"github.com/promokit/backend/internal/domain/shared"
)

// ShopModel is the persistence model for the Shop domain entity.
type ShopModel struct {
	AggregateModel
	ShopName     string     `gorm:"type:varchar(200);not null"`
	Address      string     `gorm:"type:varchar(500)"`
	PhoneNumber  string     `gorm:"type:varchar(50)"`
	Email        string     `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	LastLoginAt  *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (ShopModel) TableName() string {
	return "shops"
}

// ToDomain converts the persistence model to a domain Shop entity
func (m *ShopModel) ToDomain() *identity.Shop {
	return &identity.Shop{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		ShopName:     m.ShopName,
		Address:      m.Address,
		PhoneNumber:  m.PhoneNumber,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		LastLoginAt:  m.LastLoginAt,
	}
}

// ShopModelFromDomain converts a domain Shop entity to a persistence model
func ShopModelFromDomain(shop *identity.Shop) *ShopModel {
	m := &ShopModel{
		ShopName:     shop.ShopName,
		Address:      shop.Address,
		PhoneNumber:  shop.PhoneNumber,
		Email:        shop.Email,
		PasswordHash: shop.PasswordHash,
		LastLoginAt:  shop.LastLoginAt,
	}
	m.FromDomainAggregateRoot(shop.BaseAggregateRoot)
	return m
}
