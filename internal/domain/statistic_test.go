package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/loyalx/backend/internal/model"
	"github.com/loyalx/backend/internal/repository"
	"github.com/loyalx/backend/pkg/api/points"
	"github.com/loyalx/backend/pkg/testutil"
	"github.com/loyalx/backend/pkg/xredis"
	"github.com/stretchr/testify/require"
)

func fixtureAssetData() map[string]points.AssetData {
	return map[string]points.AssetData{
		testutil.Pass1.PublicKey: {
			Name:       testutil.Pass1.Name,
			Xp:         100,
			LastAction: "2023-05-01T00:00:00Z",
			ActionHistory: []points.Action{
				{Type: "purchase", Points: 100, Timestamp: "2023-05-01T00:00:00Z", NewTotal: 100},
			},
			CurrentTier: "Bronze",
		},
		testutil.Pass2.PublicKey: {
			Name:        testutil.Pass2.Name,
			Xp:          30,
			LastAction:  "2023-05-02T00:00:00Z",
			CurrentTier: "Gold",
		},
		testutil.Pass3.PublicKey: {
			Name:        testutil.Pass3.Name,
			Xp:          50,
			LastAction:  "2023-04-01T00:00:00Z",
			CurrentTier: "Silver",
		},
	}
}

func newTestStatisticDomain(
	endpoint points.IEndpoint, redisClient xredis.Client,
) *statisticDomain {
	return NewStatisticDomain(
		repository.NewProgramRepository(),
		repository.NewPassRepository(),
		endpoint,
		redisClient,
	)
}

func fixtureEndpoint(failing ...string) *testutil.MockPointsEndpoint {
	data := fixtureAssetData()
	return &testutil.MockPointsEndpoint{
		GetAssetDataFunc: func(ctx context.Context, passPublicKey string) (points.AssetData, error) {
			for _, f := range failing {
				if f == passPublicKey {
					return points.AssetData{}, errors.New("protocol unavailable")
				}
			}

			return data[passPublicKey], nil
		},
	}
}

func Test_statisticDomain_GetLeaderboard(t *testing.T) {
	t.Run("groups and ranks by total xp", func(t *testing.T) {
		ctx := testutil.MockContext()
		testutil.CreateFixtureDb(ctx)
		domain := newTestStatisticDomain(fixtureEndpoint(), nil)

		resp, err := domain.GetLeaderboard(ctx, &model.GetLeaderboardRequest{Creator: "creator1"})
		require.NoError(t, err)
		require.Len(t, resp.Leaderboard, 2)
		require.Equal(t, "alice", resp.Leaderboard[0].Address)
		require.Equal(t, 130, resp.Leaderboard[0].TotalXp)
		require.Equal(t, 1, resp.Leaderboard[0].Rank)
		require.Equal(t, "2023-05-02T00:00:00Z", resp.Leaderboard[0].LastAction)
		require.Equal(t, "bob", resp.Leaderboard[1].Address)
		require.Equal(t, 2, resp.Leaderboard[1].Rank)
	})

	t.Run("zero-fills failed lookups", func(t *testing.T) {
		ctx := testutil.MockContext()
		testutil.CreateFixtureDb(ctx)
		domain := newTestStatisticDomain(fixtureEndpoint(testutil.Pass1.PublicKey), nil)

		resp, err := domain.GetLeaderboard(ctx, &model.GetLeaderboardRequest{Creator: "creator1"})
		require.NoError(t, err)
		require.Len(t, resp.Leaderboard, 2)
		require.Equal(t, "bob", resp.Leaderboard[0].Address)
		require.Equal(t, 50, resp.Leaderboard[0].TotalXp)
		require.Equal(t, "alice", resp.Leaderboard[1].Address)
		require.Equal(t, 30, resp.Leaderboard[1].TotalXp)
	})

	t.Run("requires creator", func(t *testing.T) {
		ctx := testutil.MockContext()
		domain := newTestStatisticDomain(fixtureEndpoint(), nil)
		_, err := domain.GetLeaderboard(ctx, &model.GetLeaderboardRequest{})
		require.Error(t, err)
	})

	t.Run("unknown creator gets an empty leaderboard", func(t *testing.T) {
		ctx := testutil.MockContext()
		testutil.CreateFixtureDb(ctx)
		domain := newTestStatisticDomain(fixtureEndpoint(), nil)

		resp, err := domain.GetLeaderboard(ctx, &model.GetLeaderboardRequest{Creator: "nobody"})
		require.NoError(t, err)
		require.Empty(t, resp.Leaderboard)
	})

	t.Run("cached response skips the protocol", func(t *testing.T) {
		ctx := testutil.MockContext()
		testutil.CreateFixtureDb(ctx)

		called := false
		endpoint := &testutil.MockPointsEndpoint{
			GetAssetDataFunc: func(context.Context, string) (points.AssetData, error) {
				called = true
				return points.AssetData{}, nil
			},
		}

		domain := newTestStatisticDomain(endpoint, &testutil.MockRedisClient{
			GetObjFunc: func(ctx context.Context, key string, v any) error {
				resp, ok := v.(*model.GetLeaderboardResponse)
				require.True(t, ok)
				resp.Leaderboard = []model.LeaderboardMember{{Address: "cached", Rank: 1}}
				return nil
			},
		})

		resp, err := domain.GetLeaderboard(ctx, &model.GetLeaderboardRequest{Creator: "creator1"})
		require.NoError(t, err)
		require.Len(t, resp.Leaderboard, 1)
		require.Equal(t, "cached", resp.Leaderboard[0].Address)
		require.False(t, called)
	})
}

func Test_statisticDomain_GetMembers(t *testing.T) {
	t.Run("keeps per-pass details", func(t *testing.T) {
		ctx := testutil.MockContext()
		testutil.CreateFixtureDb(ctx)
		domain := newTestStatisticDomain(fixtureEndpoint(), nil)

		resp, err := domain.GetMembers(ctx, &model.GetMembersRequest{Creator: "creator1"})
		require.NoError(t, err)
		require.Len(t, resp.Members, 2)

		alice := resp.Members[0]
		require.Equal(t, "alice", alice.Address)
		require.Equal(t, 130, alice.TotalXp)
		require.Len(t, alice.Passes, 2)
		require.Equal(t, "Bronze", alice.Passes[0].CurrentTier)
		require.Len(t, alice.Passes[0].ActionHistory, 1)
	})

	t.Run("drops failed passes from the list", func(t *testing.T) {
		ctx := testutil.MockContext()
		testutil.CreateFixtureDb(ctx)
		domain := newTestStatisticDomain(fixtureEndpoint(testutil.Pass2.PublicKey), nil)

		resp, err := domain.GetMembers(ctx, &model.GetMembersRequest{Creator: "creator1"})
		require.NoError(t, err)

		var alice *model.Member
		for i := range resp.Members {
			if resp.Members[i].Address == "alice" {
				alice = &resp.Members[i]
			}
		}

		require.NotNil(t, alice)
		require.Equal(t, 100, alice.TotalXp)
		require.Len(t, alice.Passes, 1)
		require.Equal(t, testutil.Pass1.PublicKey, alice.Passes[0].PublicKey)
	})
}

func Test_statisticDomain_GetStats(t *testing.T) {
	t.Run("formats every value", func(t *testing.T) {
		ctx := testutil.MockContext()
		testutil.CreateFixtureDb(ctx)
		domain := newTestStatisticDomain(fixtureEndpoint(), nil)

		resp, err := domain.GetStats(ctx, &model.GetStatsRequest{Creator: "creator1"})
		require.NoError(t, err)
		require.Equal(t, "2", resp.TotalPrograms)
		require.Equal(t, "3", resp.ActivePasses)
		require.Equal(t, "2", resp.TotalMembers)
		require.Equal(t, "180", resp.TotalPoints)
	})

	t.Run("network filter", func(t *testing.T) {
		ctx := testutil.MockContext()
		testutil.CreateFixtureDb(ctx)
		domain := newTestStatisticDomain(fixtureEndpoint(), nil)

		resp, err := domain.GetStats(ctx, &model.GetStatsRequest{
			Creator: "creator1",
			Network: "mainnet",
		})
		require.NoError(t, err)
		require.Equal(t, "1", resp.TotalPrograms)
		require.Equal(t, "0", resp.ActivePasses)
		require.Equal(t, "0", resp.TotalPoints)
	})

	t.Run("failed lookups zero-fill the total", func(t *testing.T) {
		ctx := testutil.MockContext()
		testutil.CreateFixtureDb(ctx)
		domain := newTestStatisticDomain(fixtureEndpoint(testutil.Pass3.PublicKey), nil)

		resp, err := domain.GetStats(ctx, &model.GetStatsRequest{Creator: "creator1"})
		require.NoError(t, err)
		require.Equal(t, "130", resp.TotalPoints)
		require.Equal(t, "3", resp.ActivePasses)
	})
}
