package cron

import (
	"context"
	"errors"
	"time"

	"github.com/loyalx/backend/internal/domain"
	"github.com/loyalx/backend/internal/repository"
	"github.com/loyalx/backend/pkg/errorx"
	"github.com/loyalx/backend/pkg/xcontext"
)

// DrawRafflesCronJob draws every raffle whose draw date has passed and which
// has no winner set yet. Drawing from a single scheduled job keeps the
// selection away from request handlers; a raffle that cannot be drawn is
// logged and retried on the next run.
type DrawRafflesCronJob struct {
	raffleDomain domain.RaffleDomain
	raffleRepo   repository.RaffleRepository
	interval     time.Duration
}

func NewDrawRafflesCronJob(
	raffleDomain domain.RaffleDomain,
	raffleRepo repository.RaffleRepository,
	interval time.Duration,
) *DrawRafflesCronJob {
	if interval <= 0 {
		interval = time.Minute
	}

	return &DrawRafflesCronJob{
		raffleDomain: raffleDomain,
		raffleRepo:   raffleRepo,
		interval:     interval,
	}
}

func (job *DrawRafflesCronJob) Do(ctx context.Context) {
	raffles, err := job.raffleRepo.GetDueForDraw(ctx, time.Now())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get due raffles: %v", err)
		return
	}

	for _, raffle := range raffles {
		result, err := job.raffleDomain.Draw(ctx, raffle.ID)
		if err != nil {
			// Another instance drew this raffle between the query and now.
			var errx errorx.Error
			if errors.As(err, &errx) && errx.Code == errorx.AlreadyExists {
				continue
			}

			xcontext.Logger(ctx).Errorf("Cannot draw raffle %s: %v", raffle.ID, err)
			continue
		}

		if len(result.Winners) == 0 {
			xcontext.Logger(ctx).Warnf("Raffle %s has no eligible entries", raffle.ID)
			continue
		}

		xcontext.Logger(ctx).Infof(
			"Drew raffle %s with %d winners (partial=%v)",
			raffle.ID, len(result.Winners), result.Partial)
	}
}

func (job *DrawRafflesCronJob) RunNow() bool {
	return true
}

func (job *DrawRafflesCronJob) Next() time.Time {
	return time.Now().Add(job.interval)
}
