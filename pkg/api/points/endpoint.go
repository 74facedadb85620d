package points

import (
	"context"
	"time"

	"github.com/loyalx/backend/config"
	"github.com/loyalx/backend/pkg/api"
)

type Endpoint struct {
	apiGenerator api.Generator
	timeout      time.Duration
}

func New(cfg config.PointsConfigs) *Endpoint {
	return &Endpoint{
		apiGenerator: api.NewGenerator(cfg.BaseURL),
		timeout:      cfg.Timeout,
	}
}

// GetAssetData fetches the protocol facts of a single pass. The timeout
// bounds this call only, so one slow pass cannot stall a whole aggregation.
func (e *Endpoint) GetAssetData(ctx context.Context, passPublicKey string) (AssetData, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	resp, err := e.apiGenerator.New("/v1/assets/%s", passPublicKey).GET(ctx)
	if err != nil {
		return AssetData{}, err
	}

	var data AssetData
	if err := resp.Decode(&data); err != nil {
		return AssetData{}, err
	}

	return data, nil
}
