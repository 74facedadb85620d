package raffle

import (
	"time"

	"github.com/loyalx/backend/internal/entity"
)

// Phase derives the raffle's current phase from its dates and whether a
// winner set exists. The stored status never participates here; cancelled
// raffles are surfaced through the stored status instead.
func Phase(raffle *entity.Raffle, now time.Time, hasWinners bool) entity.RafflePhase {
	switch {
	case hasWinners:
		return entity.RafflePhaseCompleted
	case now.Before(raffle.StartDate):
		return entity.RafflePhaseUpcoming
	case !now.After(raffle.EndDate):
		return entity.RafflePhaseActive
	case !now.After(raffle.DrawDate):
		return entity.RafflePhaseDrawing
	default:
		return entity.RafflePhaseEnded
	}
}
