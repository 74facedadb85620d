package points

import "context"

type IEndpoint interface {
	GetAssetData(ctx context.Context, passPublicKey string) (AssetData, error)
}
