package repository

import (
	"context"
	"time"

	"github.com/loyalx/backend/internal/entity"
	"github.com/loyalx/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type GetListRaffleFilter struct {
	Status         entity.RaffleStatus
	ProgramAddress string
	Creator        string
}

type RaffleRepository interface {
	// Raffle
	Create(ctx context.Context, raffle *entity.Raffle) error
	GetByID(ctx context.Context, id string) (*entity.Raffle, error)
	GetList(ctx context.Context, filter GetListRaffleFilter) ([]entity.Raffle, error)
	GetByProgramAddresses(ctx context.Context, addresses []string) ([]entity.Raffle, error)
	GetDueForDraw(ctx context.Context, now time.Time) ([]entity.Raffle, error)

	// Winner
	CreateWinners(ctx context.Context, winners []*entity.RaffleWinner) error
	GetWinners(ctx context.Context, raffleID string) ([]entity.RaffleWinner, error)
	CountWinners(ctx context.Context, raffleID string) (int64, error)
	CountWinnersByRaffleIDs(ctx context.Context, raffleIDs []string) (map[string]int64, error)
	ClaimWinner(ctx context.Context, raffleID, passPublicKey string, claimedAt time.Time) error
}

type raffleRepository struct{}

func NewRaffleRepository() *raffleRepository {
	return &raffleRepository{}
}

func (r *raffleRepository) Create(ctx context.Context, raffle *entity.Raffle) error {
	return xcontext.DB(ctx).Create(raffle).Error
}

func (r *raffleRepository) GetByID(ctx context.Context, id string) (*entity.Raffle, error) {
	var result entity.Raffle
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *raffleRepository) GetList(ctx context.Context, filter GetListRaffleFilter) ([]entity.Raffle, error) {
	tx := xcontext.DB(ctx).Model(&entity.Raffle{})
	if filter.Status != "" {
		tx = tx.Where("status=?", filter.Status)
	}

	if filter.ProgramAddress != "" {
		tx = tx.Where("program_address=?", filter.ProgramAddress)
	}

	if filter.Creator != "" {
		tx = tx.Where("creator=?", filter.Creator)
	}

	var result []entity.Raffle
	if err := tx.Order("start_date DESC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *raffleRepository) GetByProgramAddresses(ctx context.Context, addresses []string) ([]entity.Raffle, error) {
	var result []entity.Raffle
	err := xcontext.DB(ctx).
		Where("program_address IN (?)", addresses).
		Order("start_date DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *raffleRepository) GetDueForDraw(ctx context.Context, now time.Time) ([]entity.Raffle, error) {
	var result []entity.Raffle
	err := xcontext.DB(ctx).
		Where("draw_date <= ? AND status <> ?", now, entity.RaffleStatusCancelled).
		Where("id NOT IN (?)",
			xcontext.DB(ctx).Model(&entity.RaffleWinner{}).Select("raffle_id")).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *raffleRepository) CreateWinners(ctx context.Context, winners []*entity.RaffleWinner) error {
	return xcontext.DB(ctx).Create(winners).Error
}

func (r *raffleRepository) GetWinners(ctx context.Context, raffleID string) ([]entity.RaffleWinner, error) {
	var result []entity.RaffleWinner
	err := xcontext.DB(ctx).
		Where("raffle_id=?", raffleID).
		Order("position ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *raffleRepository) CountWinners(ctx context.Context, raffleID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.RaffleWinner{}).
		Where("raffle_id=?", raffleID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *raffleRepository) CountWinnersByRaffleIDs(ctx context.Context, raffleIDs []string) (map[string]int64, error) {
	var rows []struct {
		RaffleID string
		Count    int64
	}

	err := xcontext.DB(ctx).Model(&entity.RaffleWinner{}).
		Select("raffle_id, COUNT(*) as count").
		Where("raffle_id IN (?)", raffleIDs).
		Group("raffle_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := map[string]int64{}
	for _, row := range rows {
		result[row.RaffleID] = row.Count
	}

	return result, nil
}

// ClaimWinner flips the claimed flag with a conditional write. Two
// concurrent claims of the same winner can never both succeed: the second
// one matches no row and gets gorm.ErrRecordNotFound.
func (r *raffleRepository) ClaimWinner(ctx context.Context, raffleID, passPublicKey string, claimedAt time.Time) error {
	tx := xcontext.DB(ctx).Model(&entity.RaffleWinner{}).
		Where("raffle_id=? AND pass_public_key=? AND claimed=?", raffleID, passPublicKey, false).
		Updates(map[string]any{"claimed": true, "claimed_at": claimedAt})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
