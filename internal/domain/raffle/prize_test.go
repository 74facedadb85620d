package raffle

import (
	"context"
	"testing"

	"github.com/loyalx/backend/internal/entity"
	"github.com/stretchr/testify/require"
)

func Test_ParsePrize(t *testing.T) {
	ctx := context.Background()

	t.Run("token prize", func(t *testing.T) {
		prize, err := ParsePrize(ctx, entity.PrizeTypeToken, map[string]any{
			"token_address": "0xabc",
			"symbol":        "USDC",
			"amount":        float64(100),
		})
		require.NoError(t, err)
		require.Equal(t, "0xabc", prize.Map()["token_address"])
	})

	t.Run("token prize without address", func(t *testing.T) {
		_, err := ParsePrize(ctx, entity.PrizeTypeToken, map[string]any{"amount": float64(100)})
		require.Error(t, err)
	})

	t.Run("token prize with non positive amount", func(t *testing.T) {
		_, err := ParsePrize(ctx, entity.PrizeTypeToken, map[string]any{
			"token_address": "0xabc",
			"amount":        float64(0),
		})
		require.Error(t, err)
	})

	t.Run("merch prize defaults quantity", func(t *testing.T) {
		prize, err := ParsePrize(ctx, entity.PrizeTypeMerch, map[string]any{"item": "hoodie"})
		require.NoError(t, err)
		require.Equal(t, 1, prize.Map()["quantity"])
	})

	t.Run("nft prize without collection", func(t *testing.T) {
		_, err := ParsePrize(ctx, entity.PrizeTypeNFT, map[string]any{"token_id": "42"})
		require.Error(t, err)
	})

	t.Run("other prize", func(t *testing.T) {
		prize, err := ParsePrize(ctx, entity.PrizeTypeOther, map[string]any{
			"description": "dinner with the team",
		})
		require.NoError(t, err)
		require.Equal(t, "dinner with the team", prize.Map()["description"])
	})

	t.Run("unknown prize type", func(t *testing.T) {
		_, err := ParsePrize(ctx, entity.PrizeType("GIFT"), map[string]any{})
		require.Error(t, err)
	})
}
