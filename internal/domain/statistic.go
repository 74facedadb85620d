package domain

import (
	"context"
	"fmt"

	"github.com/loyalx/backend/internal/domain/statistic"
	"github.com/loyalx/backend/internal/entity"
	"github.com/loyalx/backend/internal/model"
	"github.com/loyalx/backend/internal/repository"
	"github.com/loyalx/backend/pkg/api/points"
	"github.com/loyalx/backend/pkg/errorx"
	"github.com/loyalx/backend/pkg/xcontext"
	"github.com/loyalx/backend/pkg/xredis"
)

type StatisticDomain interface {
	GetLeaderboard(context.Context, *model.GetLeaderboardRequest) (*model.GetLeaderboardResponse, error)
	GetMembers(context.Context, *model.GetMembersRequest) (*model.GetMembersResponse, error)
	GetStats(context.Context, *model.GetStatsRequest) (*model.GetStatsResponse, error)
}

type statisticDomain struct {
	programRepo    repository.ProgramRepository
	passRepo       repository.PassRepository
	pointsEndpoint points.IEndpoint
	redisClient    xredis.Client
}

func NewStatisticDomain(
	programRepo repository.ProgramRepository,
	passRepo repository.PassRepository,
	pointsEndpoint points.IEndpoint,
	redisClient xredis.Client,
) *statisticDomain {
	return &statisticDomain{
		programRepo:    programRepo,
		passRepo:       passRepo,
		pointsEndpoint: pointsEndpoint,
		redisClient:    redisClient,
	}
}

func (d *statisticDomain) GetLeaderboard(
	ctx context.Context, req *model.GetLeaderboardRequest,
) (*model.GetLeaderboardResponse, error) {
	if req.Creator == "" {
		return nil, errorx.New(errorx.BadRequest, "Not found creator")
	}

	key := fmt.Sprintf("leaderboard:%s:%s", req.Creator, req.Network)
	var cached model.GetLeaderboardResponse
	if d.getCache(ctx, key, &cached) {
		return &cached, nil
	}

	passes, err := d.creatorPasses(ctx, req.Creator, req.Network)
	if err != nil {
		return nil, err
	}

	results := statistic.FetchAssetData(ctx, d.pointsEndpoint, passes)
	resp := &model.GetLeaderboardResponse{Leaderboard: statistic.Leaderboard(results)}
	d.setCache(ctx, key, resp)

	return resp, nil
}

func (d *statisticDomain) GetMembers(
	ctx context.Context, req *model.GetMembersRequest,
) (*model.GetMembersResponse, error) {
	if req.Creator == "" {
		return nil, errorx.New(errorx.BadRequest, "Not found creator")
	}

	key := fmt.Sprintf("members:%s:%s", req.Creator, req.Network)
	var cached model.GetMembersResponse
	if d.getCache(ctx, key, &cached) {
		return &cached, nil
	}

	passes, err := d.creatorPasses(ctx, req.Creator, req.Network)
	if err != nil {
		return nil, err
	}

	results := statistic.FetchAssetData(ctx, d.pointsEndpoint, passes)
	resp := &model.GetMembersResponse{Members: statistic.Members(results)}
	d.setCache(ctx, key, resp)

	return resp, nil
}

func (d *statisticDomain) GetStats(
	ctx context.Context, req *model.GetStatsRequest,
) (*model.GetStatsResponse, error) {
	if req.Creator == "" {
		return nil, errorx.New(errorx.BadRequest, "Not found creator")
	}

	key := fmt.Sprintf("stats:%s:%s", req.Creator, req.Network)
	var cached model.GetStatsResponse
	if d.getCache(ctx, key, &cached) {
		return &cached, nil
	}

	programs, err := d.programRepo.GetByCreator(ctx, req.Creator, req.Network)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get programs of creator: %v", err)
		return nil, errorx.Unknown
	}

	passes, err := d.passesOf(ctx, programs, req.Network)
	if err != nil {
		return nil, err
	}

	results := statistic.FetchAssetData(ctx, d.pointsEndpoint, passes)
	resp := &model.GetStatsResponse{
		TotalPrograms: statistic.FormatStat(len(programs)),
		ActivePasses:  statistic.FormatStat(len(passes)),
		TotalMembers:  statistic.FormatStat(statistic.DistinctRecipients(passes)),
		TotalPoints:   statistic.FormatStat(statistic.TotalXp(results)),
	}

	d.setCache(ctx, key, resp)

	return resp, nil
}

func (d *statisticDomain) creatorPasses(
	ctx context.Context, creator, network string,
) ([]entity.LoyaltyPass, error) {
	programs, err := d.programRepo.GetByCreator(ctx, creator, network)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get programs of creator: %v", err)
		return nil, errorx.Unknown
	}

	return d.passesOf(ctx, programs, network)
}

func (d *statisticDomain) passesOf(
	ctx context.Context, programs []entity.LoyaltyProgram, network string,
) ([]entity.LoyaltyPass, error) {
	if len(programs) == 0 {
		return nil, nil
	}

	addresses := make([]string, 0, len(programs))
	for _, program := range programs {
		addresses = append(addresses, program.PublicKey)
	}

	passes, err := d.passRepo.GetByCollections(ctx, addresses)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get passes of programs: %v", err)
		return nil, errorx.Unknown
	}

	if network == "" {
		return passes, nil
	}

	filtered := []entity.LoyaltyPass{}
	for _, pass := range passes {
		if pass.Network == network {
			filtered = append(filtered, pass)
		}
	}

	return filtered, nil
}

func (d *statisticDomain) getCache(ctx context.Context, key string, v any) bool {
	if d.redisClient == nil {
		return false
	}

	return d.redisClient.GetObj(ctx, key, v) == nil
}

func (d *statisticDomain) setCache(ctx context.Context, key string, v any) {
	if d.redisClient == nil {
		return
	}

	ttl := xcontext.Configs(ctx).Statistic.CacheTTL
	if err := d.redisClient.SetObj(ctx, key, v, ttl); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot cache %s: %v", key, err)
	}
}
