package testutil

import (
	"context"
	"errors"

	"github.com/loyalx/backend/pkg/api/points"
)

type MockPointsEndpoint struct {
	GetAssetDataFunc func(ctx context.Context, passPublicKey string) (points.AssetData, error)
}

func (m *MockPointsEndpoint) GetAssetData(
	ctx context.Context, passPublicKey string,
) (points.AssetData, error) {
	if m.GetAssetDataFunc != nil {
		return m.GetAssetDataFunc(ctx, passPublicKey)
	}

	return points.AssetData{}, errors.New("no asset data")
}
