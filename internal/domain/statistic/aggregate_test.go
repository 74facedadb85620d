package statistic

import (
	"context"
	"errors"
	"testing"

	"github.com/loyalx/backend/internal/entity"
	"github.com/loyalx/backend/pkg/api/points"
	"github.com/loyalx/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func pass(publicKey, recipient string) entity.LoyaltyPass {
	return entity.LoyaltyPass{PublicKey: publicKey, Recipient: recipient}
}

func Test_FetchAssetData(t *testing.T) {
	passes := []entity.LoyaltyPass{
		pass("pass-1", "alice"),
		pass("pass-2", "alice"),
		pass("pass-3", "bob"),
	}

	endpoint := &testutil.MockPointsEndpoint{
		GetAssetDataFunc: func(ctx context.Context, passPublicKey string) (points.AssetData, error) {
			if passPublicKey == "pass-2" {
				return points.AssetData{}, errors.New("protocol unavailable")
			}

			return points.AssetData{Xp: 100, LastAction: "2023-05-01T00:00:00Z"}, nil
		},
	}

	results := FetchAssetData(context.Background(), endpoint, passes)
	require.Len(t, results, 3)

	// Results stay in pass order regardless of completion order.
	require.Equal(t, "pass-1", results[0].Pass.PublicKey)
	require.Equal(t, "pass-2", results[1].Pass.PublicKey)
	require.Equal(t, "pass-3", results[2].Pass.PublicKey)

	require.False(t, results[0].Failed)
	require.True(t, results[1].Failed)
	require.False(t, results[2].Failed)
	require.Equal(t, 100, results[2].Data.Xp)
}

func Test_Leaderboard(t *testing.T) {
	t.Run("groups by recipient and ranks by total xp", func(t *testing.T) {
		leaderboard := Leaderboard([]PassAssetData{
			{Pass: pass("pass-1", "alice"), Data: points.AssetData{Xp: 100, LastAction: "2023-05-01T00:00:00Z"}},
			{Pass: pass("pass-2", "alice"), Data: points.AssetData{Xp: 30, LastAction: "2023-05-02T00:00:00Z"}},
			{Pass: pass("pass-3", "bob"), Data: points.AssetData{Xp: 50}},
		})

		require.Len(t, leaderboard, 2)
		require.Equal(t, "alice", leaderboard[0].Address)
		require.Equal(t, 130, leaderboard[0].TotalXp)
		require.Equal(t, 1, leaderboard[0].Rank)
		require.Equal(t, "2023-05-02T00:00:00Z", leaderboard[0].LastAction)
		require.Equal(t, "bob", leaderboard[1].Address)
		require.Equal(t, 50, leaderboard[1].TotalXp)
		require.Equal(t, 2, leaderboard[1].Rank)
	})

	t.Run("failed lookup zero-fills but keeps the member", func(t *testing.T) {
		leaderboard := Leaderboard([]PassAssetData{
			{Pass: pass("pass-1", "alice"), Failed: true},
			{Pass: pass("pass-2", "bob"), Data: points.AssetData{Xp: 10}},
		})

		require.Len(t, leaderboard, 2)
		require.Equal(t, "bob", leaderboard[0].Address)
		require.Equal(t, "alice", leaderboard[1].Address)
		require.Equal(t, 0, leaderboard[1].TotalXp)
		require.Empty(t, leaderboard[1].LastAction)
	})

	t.Run("equal totals order by ascending address", func(t *testing.T) {
		leaderboard := Leaderboard([]PassAssetData{
			{Pass: pass("pass-1", "carol"), Data: points.AssetData{Xp: 10}},
			{Pass: pass("pass-2", "alice"), Data: points.AssetData{Xp: 10}},
			{Pass: pass("pass-3", "bob"), Data: points.AssetData{Xp: 10}},
		})

		require.Equal(t, "alice", leaderboard[0].Address)
		require.Equal(t, "bob", leaderboard[1].Address)
		require.Equal(t, "carol", leaderboard[2].Address)
	})

	t.Run("ranks are contiguous and xp is conserved", func(t *testing.T) {
		results := []PassAssetData{
			{Pass: pass("pass-1", "alice"), Data: points.AssetData{Xp: 100}},
			{Pass: pass("pass-2", "alice"), Data: points.AssetData{Xp: 30}},
			{Pass: pass("pass-3", "bob"), Data: points.AssetData{Xp: 50}},
			{Pass: pass("pass-4", "carol"), Data: points.AssetData{Xp: 70}},
		}

		leaderboard := Leaderboard(results)
		total := 0
		for i, member := range leaderboard {
			require.Equal(t, i+1, member.Rank)
			total += member.TotalXp
		}

		require.Equal(t, TotalXp(results), total)
	})
}

func Test_Members(t *testing.T) {
	results := []PassAssetData{
		{Pass: pass("pass-1", "alice"), Data: points.AssetData{
			Name:        "Pass #1",
			Xp:          100,
			CurrentTier: "Gold",
			ActionHistory: []points.Action{
				{Type: "purchase", Points: 100, Timestamp: "2023-05-01T00:00:00Z", NewTotal: 100},
			},
		}},
		{Pass: pass("pass-2", "alice"), Failed: true},
		{Pass: pass("pass-3", "bob"), Data: points.AssetData{Xp: 50}},
	}

	members := Members(results)
	require.Len(t, members, 2)

	require.Equal(t, "alice", members[0].Address)
	require.Equal(t, 100, members[0].TotalXp)

	// The failed pass is dropped from the list, not zero-filled.
	require.Len(t, members[0].Passes, 1)
	require.Equal(t, "pass-1", members[0].Passes[0].PublicKey)
	require.Equal(t, "Gold", members[0].Passes[0].CurrentTier)
	require.Len(t, members[0].Passes[0].ActionHistory, 1)
	require.Equal(t, "purchase", members[0].Passes[0].ActionHistory[0].Type)

	require.Equal(t, "bob", members[1].Address)
	require.Len(t, members[1].Passes, 1)
}

func Test_DistinctRecipients(t *testing.T) {
	passes := []entity.LoyaltyPass{
		pass("pass-1", "alice"),
		pass("pass-2", "alice"),
		pass("pass-3", "bob"),
	}

	require.Equal(t, 2, DistinctRecipients(passes))
	require.Equal(t, 0, DistinctRecipients(nil))
}
