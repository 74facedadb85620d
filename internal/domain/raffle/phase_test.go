package raffle

import (
	"testing"
	"time"

	"github.com/loyalx/backend/internal/entity"
	"github.com/stretchr/testify/require"
)

func Test_Phase(t *testing.T) {
	start := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	raffle := &entity.Raffle{
		StartDate: start,
		EndDate:   start.Add(24 * time.Hour),
		DrawDate:  start.Add(48 * time.Hour),
	}

	testCases := []struct {
		name       string
		now        time.Time
		hasWinners bool
		expected   entity.RafflePhase
	}{
		{
			name:     "before start",
			now:      start.Add(-time.Hour),
			expected: entity.RafflePhaseUpcoming,
		},
		{
			name:     "at start",
			now:      start,
			expected: entity.RafflePhaseActive,
		},
		{
			name:     "at end",
			now:      raffle.EndDate,
			expected: entity.RafflePhaseActive,
		},
		{
			name:     "between end and draw",
			now:      raffle.EndDate.Add(time.Hour),
			expected: entity.RafflePhaseDrawing,
		},
		{
			name:     "at draw",
			now:      raffle.DrawDate,
			expected: entity.RafflePhaseDrawing,
		},
		{
			name:     "after draw without winners",
			now:      raffle.DrawDate.Add(time.Hour),
			expected: entity.RafflePhaseEnded,
		},
		{
			name:       "winners exist",
			now:        start.Add(-time.Hour),
			hasWinners: true,
			expected:   entity.RafflePhaseCompleted,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Phase(raffle, tc.now, tc.hasWinners))
		})
	}
}
