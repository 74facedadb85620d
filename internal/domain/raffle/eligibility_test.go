package raffle

import (
	"testing"

	"github.com/loyalx/backend/internal/entity"
	"github.com/stretchr/testify/require"
)

func Test_EligiblePasses(t *testing.T) {
	tiers := []string{"Bronze", "Silver", "Gold"}
	passes := []entity.LoyaltyPass{
		{PublicKey: "pass-1", Recipient: "alice", Tier: "Bronze"},
		{PublicKey: "pass-2", Recipient: "alice", Tier: "Gold"},
		{PublicKey: "pass-3", Recipient: "bob", Tier: "Silver"},
		{PublicKey: "pass-4", Recipient: "carol", Tier: "Diamond"},
	}

	t.Run("no minimum tier keeps everything", func(t *testing.T) {
		require.Len(t, EligiblePasses(tiers, "", passes), 4)
	})

	t.Run("minimum tier filters by index", func(t *testing.T) {
		eligible := EligiblePasses(tiers, "Silver", passes)
		require.Len(t, eligible, 2)
		require.Equal(t, "pass-2", eligible[0].PublicKey)
		require.Equal(t, "pass-3", eligible[1].PublicKey)
	})

	t.Run("unknown pass tier never qualifies", func(t *testing.T) {
		eligible := EligiblePasses(tiers, "Bronze", passes)
		require.Len(t, eligible, 3)
		for _, pass := range eligible {
			require.NotEqual(t, "pass-4", pass.PublicKey)
		}
	})

	t.Run("unknown minimum tier disqualifies everything", func(t *testing.T) {
		require.Empty(t, EligiblePasses(tiers, "Platinum", passes))
	})

	t.Run("one entry per pass, not per holder", func(t *testing.T) {
		eligible := EligiblePasses(tiers, "Bronze", passes)
		count := 0
		for _, pass := range eligible {
			if pass.Recipient == "alice" {
				count++
			}
		}
		require.Equal(t, 2, count)
	})
}

func Test_TierIndex(t *testing.T) {
	tiers := []string{"Bronze", "Silver", "Gold"}
	require.Equal(t, 0, TierIndex(tiers, "Bronze"))
	require.Equal(t, 2, TierIndex(tiers, "Gold"))
	require.Equal(t, -1, TierIndex(tiers, "bronze"))
}
