package statistic

import (
	"context"
	"sort"

	"github.com/loyalx/backend/internal/entity"
	"github.com/loyalx/backend/internal/model"
	"github.com/loyalx/backend/pkg/api/points"
	"github.com/loyalx/backend/pkg/xcontext"
	"golang.org/x/sync/errgroup"
)

// PassAssetData is one pass paired with the protocol's view of it. Failed
// shows whether the lookup failed; the fold decides what to do with it.
type PassAssetData struct {
	Pass   entity.LoyaltyPass
	Data   points.AssetData
	Failed bool
}

// FetchAssetData fans out one protocol lookup per pass and joins the whole
// batch. Each lookup writes into its own slot, so there is no shared mutable
// state between the goroutines. A failed lookup is logged and marked, never
// fatal: one slow or broken pass must not take the whole view down.
func FetchAssetData(
	ctx context.Context, endpoint points.IEndpoint, passes []entity.LoyaltyPass,
) []PassAssetData {
	results := make([]PassAssetData, len(passes))

	var eg errgroup.Group
	for i := range passes {
		i := i
		eg.Go(func() error {
			results[i].Pass = passes[i]
			data, err := endpoint.GetAssetData(ctx, passes[i].PublicKey)
			if err != nil {
				xcontext.Logger(ctx).Warnf(
					"Cannot get asset data of pass %s: %v", passes[i].PublicKey, err)
				results[i].Failed = true
				return nil
			}

			results[i].Data = data
			return nil
		})
	}

	// The group never sees an error, lookups degrade in place.
	_ = eg.Wait()

	return results
}

// Leaderboard folds fetched asset data into a ranked view grouped by
// recipient. A failed lookup contributes zero xp and no last action, the
// pass still counts as a member. Ranking is by total xp descending; equal
// totals order by ascending address so the ranking is stable across runs.
func Leaderboard(results []PassAssetData) []model.LeaderboardMember {
	totals := map[string]int{}
	lastActions := map[string]string{}
	order := []string{}

	for _, result := range results {
		address := result.Pass.Recipient
		if _, ok := totals[address]; !ok {
			totals[address] = 0
			order = append(order, address)
		}

		if result.Failed {
			continue
		}

		totals[address] += result.Data.Xp
		if result.Data.LastAction > lastActions[address] {
			lastActions[address] = result.Data.LastAction
		}
	}

	members := make([]model.LeaderboardMember, 0, len(order))
	for _, address := range order {
		members = append(members, model.LeaderboardMember{
			Address:    address,
			TotalXp:    totals[address],
			LastAction: lastActions[address],
		})
	}

	sort.Slice(members, func(i, j int) bool {
		if members[i].TotalXp != members[j].TotalXp {
			return members[i].TotalXp > members[j].TotalXp
		}

		return members[i].Address < members[j].Address
	})

	for i := range members {
		members[i].Rank = i + 1
	}

	return members
}

// Members folds fetched asset data into the detailed per-member view. Unlike
// the leaderboard, a pass whose lookup failed is dropped from the member's
// pass list entirely instead of showing up with zero xp.
func Members(results []PassAssetData) []model.Member {
	passesByAddress := map[string][]model.MemberPass{}
	totals := map[string]int{}
	order := []string{}

	for _, result := range results {
		address := result.Pass.Recipient
		if _, ok := totals[address]; !ok {
			totals[address] = 0
			order = append(order, address)
		}

		if result.Failed {
			continue
		}

		history := make([]model.Action, 0, len(result.Data.ActionHistory))
		for _, action := range result.Data.ActionHistory {
			history = append(history, model.Action{
				Type:      action.Type,
				Points:    action.Points,
				Timestamp: action.Timestamp,
				NewTotal:  action.NewTotal,
			})
		}

		totals[address] += result.Data.Xp
		passesByAddress[address] = append(passesByAddress[address], model.MemberPass{
			PublicKey:     result.Pass.PublicKey,
			Name:          result.Data.Name,
			Xp:            result.Data.Xp,
			ActionHistory: history,
			CurrentTier:   result.Data.CurrentTier,
		})
	}

	members := make([]model.Member, 0, len(order))
	for _, address := range order {
		passes := passesByAddress[address]
		if passes == nil {
			passes = []model.MemberPass{}
		}

		members = append(members, model.Member{
			Address: address,
			TotalXp: totals[address],
			Passes:  passes,
		})
	}

	sort.Slice(members, func(i, j int) bool {
		if members[i].TotalXp != members[j].TotalXp {
			return members[i].TotalXp > members[j].TotalXp
		}

		return members[i].Address < members[j].Address
	})

	return members
}

// TotalXp sums the xp of every fetched pass under the leaderboard's
// zero-fill policy.
func TotalXp(results []PassAssetData) int {
	total := 0
	for _, result := range results {
		if !result.Failed {
			total += result.Data.Xp
		}
	}

	return total
}

// DistinctRecipients counts unique pass holders.
func DistinctRecipients(passes []entity.LoyaltyPass) int {
	seen := map[string]bool{}
	for _, pass := range passes {
		seen[pass.Recipient] = true
	}

	return len(seen)
}
