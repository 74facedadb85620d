package repository

import (
	"context"

	"github.com/loyalx/backend/internal/entity"
	"github.com/loyalx/backend/pkg/xcontext"
)

type ProgramRepository interface {
	Create(ctx context.Context, program *entity.LoyaltyProgram) error
	GetByPublicKey(ctx context.Context, publicKey string) (*entity.LoyaltyProgram, error)
	GetByPublicKeys(ctx context.Context, publicKeys []string) ([]entity.LoyaltyProgram, error)
	GetByCreator(ctx context.Context, creator, network string) ([]entity.LoyaltyProgram, error)
}

type programRepository struct{}

func NewProgramRepository() *programRepository {
	return &programRepository{}
}

func (r *programRepository) Create(ctx context.Context, program *entity.LoyaltyProgram) error {
	return xcontext.DB(ctx).Create(program).Error
}

func (r *programRepository) GetByPublicKey(ctx context.Context, publicKey string) (*entity.LoyaltyProgram, error) {
	var result entity.LoyaltyProgram
	if err := xcontext.DB(ctx).Take(&result, "public_key=?", publicKey).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *programRepository) GetByPublicKeys(ctx context.Context, publicKeys []string) ([]entity.LoyaltyProgram, error) {
	var result []entity.LoyaltyProgram
	if err := xcontext.DB(ctx).Find(&result, "public_key IN (?)", publicKeys).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *programRepository) GetByCreator(ctx context.Context, creator, network string) ([]entity.LoyaltyProgram, error) {
	var result []entity.LoyaltyProgram
	tx := xcontext.DB(ctx).Where("creator=?", creator)
	if network != "" {
		tx = tx.Where("network=?", network)
	}

	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
