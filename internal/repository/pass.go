package repository

import (
	"context"

	"github.com/loyalx/backend/internal/entity"
	"github.com/loyalx/backend/pkg/xcontext"
)

type PassRepository interface {
	Create(ctx context.Context, pass *entity.LoyaltyPass) error
	GetByPublicKey(ctx context.Context, publicKey string) (*entity.LoyaltyPass, error)
	GetByCollection(ctx context.Context, collection string) ([]entity.LoyaltyPass, error)
	GetByCollections(ctx context.Context, collections []string) ([]entity.LoyaltyPass, error)
	GetByRecipient(ctx context.Context, recipient string) ([]entity.LoyaltyPass, error)
}

type passRepository struct{}

func NewPassRepository() *passRepository {
	return &passRepository{}
}

func (r *passRepository) Create(ctx context.Context, pass *entity.LoyaltyPass) error {
	return xcontext.DB(ctx).Create(pass).Error
}

func (r *passRepository) GetByPublicKey(ctx context.Context, publicKey string) (*entity.LoyaltyPass, error) {
	var result entity.LoyaltyPass
	if err := xcontext.DB(ctx).Take(&result, "public_key=?", publicKey).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *passRepository) GetByCollection(ctx context.Context, collection string) ([]entity.LoyaltyPass, error) {
	var result []entity.LoyaltyPass
	if err := xcontext.DB(ctx).Find(&result, "collection=?", collection).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *passRepository) GetByCollections(ctx context.Context, collections []string) ([]entity.LoyaltyPass, error) {
	var result []entity.LoyaltyPass
	if err := xcontext.DB(ctx).Find(&result, "collection IN (?)", collections).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *passRepository) GetByRecipient(ctx context.Context, recipient string) ([]entity.LoyaltyPass, error) {
	var result []entity.LoyaltyPass
	if err := xcontext.DB(ctx).Find(&result, "recipient=?", recipient).Error; err != nil {
		return nil, err
	}

	return result, nil
}
