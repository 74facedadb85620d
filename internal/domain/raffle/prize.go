package raffle

import (
	"context"

	"github.com/fatih/structs"
	"github.com/loyalx/backend/internal/entity"
	"github.com/loyalx/backend/pkg/errorx"
	"github.com/loyalx/backend/pkg/xcontext"
	"github.com/mitchellh/mapstructure"
)

// Prize is the validated variant payload behind a raffle's prize type.
type Prize interface {
	Map() map[string]any
}

// ParsePrize validates raw prize details against the payload shape of the
// given prize type and returns the normalized payload.
func ParsePrize(ctx context.Context, prizeType entity.PrizeType, data map[string]any) (Prize, error) {
	switch prizeType {
	case entity.PrizeTypeToken:
		return newTokenPrize(ctx, data)
	case entity.PrizeTypeMerch:
		return newMerchPrize(ctx, data)
	case entity.PrizeTypeNFT:
		return newNFTPrize(ctx, data)
	case entity.PrizeTypeOther:
		return newOtherPrize(ctx, data)
	default:
		return nil, errorx.New(errorx.BadRequest, "Invalid prize type %s", prizeType)
	}
}

// Token Prize
type tokenPrize struct {
	TokenAddress string  `mapstructure:"token_address" structs:"token_address"`
	Symbol       string  `mapstructure:"symbol" structs:"symbol"`
	Amount       float64 `mapstructure:"amount" structs:"amount"`
}

func newTokenPrize(ctx context.Context, data map[string]any) (*tokenPrize, error) {
	token := tokenPrize{}
	err := mapstructure.Decode(data, &token)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode map to struct: %v", err)
		return nil, errorx.Unknown
	}

	if token.TokenAddress == "" {
		return nil, errorx.New(errorx.BadRequest, "Not found token address")
	}

	if token.Amount <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Token amount must be positive")
	}

	return &token, nil
}

func (p *tokenPrize) Map() map[string]any {
	return structs.Map(p)
}

// Merch Prize
type merchPrize struct {
	Item     string `mapstructure:"item" structs:"item"`
	Quantity int    `mapstructure:"quantity" structs:"quantity"`
	Note     string `mapstructure:"note" structs:"note"`
}

func newMerchPrize(ctx context.Context, data map[string]any) (*merchPrize, error) {
	merch := merchPrize{}
	err := mapstructure.Decode(data, &merch)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode map to struct: %v", err)
		return nil, errorx.Unknown
	}

	if merch.Item == "" {
		return nil, errorx.New(errorx.BadRequest, "Not found merch item")
	}

	if merch.Quantity == 0 {
		merch.Quantity = 1
	}

	if merch.Quantity < 0 {
		return nil, errorx.New(errorx.BadRequest, "Merch quantity must be positive")
	}

	return &merch, nil
}

func (p *merchPrize) Map() map[string]any {
	return structs.Map(p)
}

// NFT Prize
type nftPrize struct {
	CollectionAddress string `mapstructure:"collection_address" structs:"collection_address"`
	TokenID           string `mapstructure:"token_id" structs:"token_id"`
}

func newNFTPrize(ctx context.Context, data map[string]any) (*nftPrize, error) {
	nft := nftPrize{}
	err := mapstructure.Decode(data, &nft)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode map to struct: %v", err)
		return nil, errorx.Unknown
	}

	if nft.CollectionAddress == "" {
		return nil, errorx.New(errorx.BadRequest, "Not found collection address")
	}

	return &nft, nil
}

func (p *nftPrize) Map() map[string]any {
	return structs.Map(p)
}

// Other Prize
type otherPrize struct {
	Description string `mapstructure:"description" structs:"description"`
}

func newOtherPrize(ctx context.Context, data map[string]any) (*otherPrize, error) {
	other := otherPrize{}
	err := mapstructure.Decode(data, &other)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode map to struct: %v", err)
		return nil, errorx.Unknown
	}

	if other.Description == "" {
		return nil, errorx.New(errorx.BadRequest, "Not found prize description")
	}

	return &other, nil
}

func (p *otherPrize) Map() map[string]any {
	return structs.Map(p)
}
