package migration

import (
	"context"

	"github.com/loyalx/backend/internal/entity"
	"github.com/loyalx/backend/pkg/xcontext"
)

// When this migrator is called, no need to call other migrators.
func AutoMigrate(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.LoyaltyProgram{},
		&entity.LoyaltyPass{},
		&entity.Raffle{},
		&entity.RaffleWinner{},
	)
}
