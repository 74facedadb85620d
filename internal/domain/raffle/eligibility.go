package raffle

import (
	"github.com/loyalx/backend/internal/entity"
	"golang.org/x/exp/slices"
)

// TierIndex returns the position of tier in the program's ordered tier list,
// or -1 when the tier is unknown. Tiers compare by index, never lexically.
func TierIndex(tiers []string, tier string) int {
	return slices.Index(tiers, tier)
}

// EligiblePasses filters passes against the raffle's minimum tier using the
// program's tier ordering. Without a minimum tier every pass qualifies. A
// pass whose tier is not in the program's list never qualifies, and an
// unknown minimum tier disqualifies everything.
//
// The result keeps one entry per pass. A recipient holding two qualifying
// passes contributes two entries.
func EligiblePasses(tiers []string, minTier string, passes []entity.LoyaltyPass) []entity.LoyaltyPass {
	if minTier == "" {
		return passes
	}

	minIndex := TierIndex(tiers, minTier)
	if minIndex == -1 {
		return nil
	}

	var eligible []entity.LoyaltyPass
	for _, pass := range passes {
		if index := TierIndex(tiers, pass.Tier); index >= minIndex {
			eligible = append(eligible, pass)
		}
	}

	return eligible
}
