package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/promokit/backend/internal/domain/identity"
	"github.com/promokit/backend/internal/domain/shared"
	"github.com/promokit/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormShopRepository implements ShopRepository using GORM
type GormShopRepository struct {
	db *gorm.DB
}

// NewGormShopRepository creates a new GormShopRepository
func NewGormShopRepository(db *gorm.DB) *GormShopRepository {
	return &GormShopRepository{db: db}
}

// Create creates a new shop account. The unique index on email maps
// duplicate registrations to shared.ErrAlreadyExists.
func (r *GormShopRepository) Create(ctx context.Context, shop *identity.Shop) error {
	model := models.ShopModelFromDomain(shop)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Update updates an existing shop account
func (r *GormShopRepository) Update(ctx context.Context, shop *identity.Shop) error {
	model := models.ShopModelFromDomain(shop)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByID finds a shop by its ID
func (r *GormShopRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Shop, error) {
	var model models.ShopModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEmail finds a shop by its lowercased email
func (r *GormShopRepository) FindByEmail(ctx context.Context, email string) (*identity.Shop, error) {
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	var model models.ShopModel
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsByEmail checks whether a shop with the given email exists
func (r *GormShopRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ShopModel{}).
		Where("email = ?", strings.ToLower(email)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormShopRepository implements ShopRepository
var _ identity.ShopRepository = (*GormShopRepository)(nil)
