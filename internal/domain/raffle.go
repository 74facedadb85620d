package domain

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/loyalx/backend/internal/domain/raffle"
	"github.com/loyalx/backend/internal/entity"
	"github.com/loyalx/backend/internal/model"
	"github.com/loyalx/backend/internal/repository"
	"github.com/loyalx/backend/pkg/enum"
	"github.com/loyalx/backend/pkg/errorx"
	"github.com/loyalx/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type RaffleDomain interface {
	Create(context.Context, *model.CreateRaffleRequest) (*model.CreateRaffleResponse, error)
	Get(context.Context, *model.GetRaffleRequest) (*model.GetRaffleResponse, error)
	GetList(context.Context, *model.GetListRaffleRequest) (*model.GetListRaffleResponse, error)
	GetByUser(context.Context, *model.GetUserRafflesRequest) (*model.GetUserRafflesResponse, error)
	Claim(context.Context, *model.ClaimRaffleRequest) (*model.ClaimRaffleResponse, error)
	Draw(ctx context.Context, raffleID string) (*model.DrawRaffleResult, error)
}

type raffleDomain struct {
	raffleRepo  repository.RaffleRepository
	passRepo    repository.PassRepository
	programRepo repository.ProgramRepository
	drawer      *raffle.Drawer
}

func NewRaffleDomain(
	raffleRepo repository.RaffleRepository,
	passRepo repository.PassRepository,
	programRepo repository.ProgramRepository,
	drawer *raffle.Drawer,
) *raffleDomain {
	return &raffleDomain{
		raffleRepo:  raffleRepo,
		passRepo:    passRepo,
		programRepo: programRepo,
		drawer:      drawer,
	}
}

func (d *raffleDomain) Create(
	ctx context.Context, req *model.CreateRaffleRequest,
) (*model.CreateRaffleResponse, error) {
	creator := xcontext.RequestUserID(ctx)
	if creator == "" {
		return nil, errorx.New(errorx.Unauthenticated, "Not authenticated")
	}

	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not found raffle name")
	}

	if req.NumWinners <= 0 {
		return nil, errorx.New(errorx.BadRequest, "The number of winners must be a positive number")
	}

	if req.EntryCost != nil && *req.EntryCost < 0 {
		return nil, errorx.New(errorx.BadRequest, "Entry cost must not be negative")
	}

	now := time.Now()
	if req.StartDate.Before(now) {
		return nil, errorx.New(errorx.BadRequest, "Start date must be in the future")
	}

	if !req.EndDate.After(req.StartDate) {
		return nil, errorx.New(errorx.BadRequest, "End date must be after start date")
	}

	if !req.DrawDate.After(req.EndDate) {
		return nil, errorx.New(errorx.BadRequest, "Draw date must be after end date")
	}

	prizeType, err := enum.ToEnum[entity.PrizeType](req.PrizeType)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid prize type %s", req.PrizeType)
	}

	prize, err := raffle.ParsePrize(ctx, prizeType, req.PrizeDetails)
	if err != nil {
		return nil, err
	}

	status := entity.RaffleStatusUpcoming
	if req.Status != "" {
		status, err = enum.ToEnum[entity.RaffleStatus](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
		}
	}

	program, err := d.programRepo.GetByPublicKey(ctx, req.ProgramAddress)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found program")
		}

		xcontext.Logger(ctx).Errorf("Cannot get program: %v", err)
		return nil, errorx.Unknown
	}

	if req.MinTier != "" && raffle.TierIndex(program.Tiers, req.MinTier) == -1 {
		return nil, errorx.New(errorx.BadRequest, "Tier %s is not in the program", req.MinTier)
	}

	record := &entity.Raffle{
		Base:           entity.Base{ID: uuid.NewString()},
		Name:           req.Name,
		Description:    req.Description,
		PrizeType:      prizeType,
		PrizeDetails:   prize.Map(),
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		DrawDate:       req.DrawDate,
		Status:         status,
		MinTier:        sql.NullString{String: req.MinTier, Valid: req.MinTier != ""},
		NumWinners:     req.NumWinners,
		ProgramAddress: program.PublicKey,
		Creator:        creator,
	}

	if req.EntryCost != nil {
		record.EntryCost.Valid = true
		record.EntryCost.Int64 = *req.EntryCost
	}

	if err := d.raffleRepo.Create(ctx, record); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create raffle: %v", err)
		return nil, errorx.Unknown
	}

	passes, err := d.passRepo.GetByCollection(ctx, record.ProgramAddress)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get passes of program: %v", err)
		return nil, errorx.Unknown
	}

	eligible := raffle.EligiblePasses(program.Tiers, record.MinTier.String, passes)
	phase := raffle.Phase(record, time.Now(), false)

	return &model.CreateRaffleResponse{
		Raffle: model.ConvertRaffle(record, phase, len(eligible), nil),
	}, nil
}

func (d *raffleDomain) Get(
	ctx context.Context, req *model.GetRaffleRequest,
) (*model.GetRaffleResponse, error) {
	record, err := d.raffleRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found raffle")
		}

		xcontext.Logger(ctx).Errorf("Cannot get raffle: %v", err)
		return nil, errorx.Unknown
	}

	winners, err := d.raffleRepo.GetWinners(ctx, record.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get raffle winners: %v", err)
		return nil, errorx.Unknown
	}

	winnerModels := make([]model.RaffleWinner, 0, len(winners))
	for i := range winners {
		winnerModels = append(winnerModels, model.ConvertRaffleWinner(&winners[i]))
	}

	eligible, err := d.eligibleCount(ctx, record)
	if err != nil {
		return nil, err
	}

	phase := raffle.Phase(record, time.Now(), len(winners) > 0)
	return &model.GetRaffleResponse{
		Raffle: model.ConvertRaffle(record, phase, eligible, winnerModels),
	}, nil
}

func (d *raffleDomain) GetList(
	ctx context.Context, req *model.GetListRaffleRequest,
) (*model.GetListRaffleResponse, error) {
	filter := repository.GetListRaffleFilter{
		ProgramAddress: req.ProgramAddress,
		Creator:        req.Creator,
	}

	if req.Status != "" {
		status, err := enum.ToEnum[entity.RaffleStatus](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
		}

		filter.Status = status
	}

	records, err := d.raffleRepo.GetList(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get raffles: %v", err)
		return nil, errorx.Unknown
	}

	raffles, err := d.annotate(ctx, records)
	if err != nil {
		return nil, err
	}

	return &model.GetListRaffleResponse{Raffles: raffles}, nil
}

func (d *raffleDomain) GetByUser(
	ctx context.Context, req *model.GetUserRafflesRequest,
) (*model.GetUserRafflesResponse, error) {
	passes, err := d.passRepo.GetByRecipient(ctx, req.Wallet)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get passes of wallet: %v", err)
		return nil, errorx.Unknown
	}

	collectionSet := map[string]bool{}
	collections := []string{}
	for _, pass := range passes {
		if !collectionSet[pass.Collection] {
			collectionSet[pass.Collection] = true
			collections = append(collections, pass.Collection)
		}
	}

	if len(collections) == 0 {
		return &model.GetUserRafflesResponse{Raffles: []model.Raffle{}}, nil
	}

	records, err := d.raffleRepo.GetByProgramAddresses(ctx, collections)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get raffles of programs: %v", err)
		return nil, errorx.Unknown
	}

	raffles, err := d.annotate(ctx, records)
	if err != nil {
		return nil, err
	}

	return &model.GetUserRafflesResponse{Raffles: raffles}, nil
}

func (d *raffleDomain) Claim(
	ctx context.Context, req *model.ClaimRaffleRequest,
) (*model.ClaimRaffleResponse, error) {
	if xcontext.RequestUserID(ctx) == "" {
		return nil, errorx.New(errorx.Unauthenticated, "Not authenticated")
	}

	if req.PassPublicKey == "" {
		return nil, errorx.New(errorx.BadRequest, "Not found pass public key")
	}

	if _, err := d.raffleRepo.GetByID(ctx, req.RaffleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found raffle")
		}

		xcontext.Logger(ctx).Errorf("Cannot get raffle: %v", err)
		return nil, errorx.Unknown
	}

	claimedAt := time.Now()
	err := d.raffleRepo.ClaimWinner(ctx, req.RaffleID, req.PassPublicKey, claimedAt)
	if err != nil {
		// An already-claimed prize and a pass that never won are reported
		// the same way on purpose: the caller learns nothing about other
		// participants' winner rows.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found unclaimed prize")
		}

		xcontext.Logger(ctx).Errorf("Cannot claim prize: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ClaimRaffleResponse{ClaimedAt: claimedAt}, nil
}

// Draw selects and persists the winner set of a raffle. It is called by the
// draw cron job, never directly from the HTTP surface.
func (d *raffleDomain) Draw(ctx context.Context, raffleID string) (*model.DrawRaffleResult, error) {
	record, err := d.raffleRepo.GetByID(ctx, raffleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found raffle")
		}

		xcontext.Logger(ctx).Errorf("Cannot get raffle: %v", err)
		return nil, errorx.Unknown
	}

	if record.Status == entity.RaffleStatusCancelled {
		return nil, errorx.New(errorx.Unavailable, "Raffle is cancelled")
	}

	if time.Now().Before(record.EndDate) {
		return nil, errorx.New(errorx.Unavailable, "Raffle has not ended yet")
	}

	// The lock covers the already-drawn check and the winner insert, so two
	// concurrent draws of the same raffle cannot both pass the check.
	defer d.drawer.Lock(record.ID)()

	count, err := d.raffleRepo.CountWinners(ctx, record.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count raffle winners: %v", err)
		return nil, errorx.Unknown
	}

	if count > 0 {
		return nil, errorx.New(errorx.AlreadyExists, "Raffle is already drawn")
	}

	program, err := d.programRepo.GetByPublicKey(ctx, record.ProgramAddress)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get program of raffle: %v", err)
		return nil, errorx.Unknown
	}

	passes, err := d.passRepo.GetByCollection(ctx, record.ProgramAddress)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get passes of program: %v", err)
		return nil, errorx.Unknown
	}

	eligible := raffle.EligiblePasses(program.Tiers, record.MinTier.String, passes)
	picked, partial := d.drawer.Pick(eligible, record.NumWinners)
	if len(picked) == 0 {
		return &model.DrawRaffleResult{Winners: []model.RaffleWinner{}, Partial: partial}, nil
	}

	winners := make([]*entity.RaffleWinner, 0, len(picked))
	for i, pass := range picked {
		winners = append(winners, &entity.RaffleWinner{
			Base:          entity.Base{ID: uuid.NewString()},
			RaffleID:      record.ID,
			PassPublicKey: pass.PublicKey,
			Position:      i + 1,
		})
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.raffleRepo.CreateWinners(ctx, winners); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create raffle winners: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	winnerModels := make([]model.RaffleWinner, 0, len(winners))
	for _, winner := range winners {
		winnerModels = append(winnerModels, model.ConvertRaffleWinner(winner))
	}

	return &model.DrawRaffleResult{Winners: winnerModels, Partial: partial}, nil
}

func (d *raffleDomain) eligibleCount(ctx context.Context, record *entity.Raffle) (int, error) {
	program, err := d.programRepo.GetByPublicKey(ctx, record.ProgramAddress)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot get program of raffle: %v", err)
		return 0, errorx.Unknown
	}

	passes, err := d.passRepo.GetByCollection(ctx, record.ProgramAddress)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get passes of program: %v", err)
		return 0, errorx.Unknown
	}

	return len(raffle.EligiblePasses(program.Tiers, record.MinTier.String, passes)), nil
}

// annotate converts raffle records to API models with the computed phase and
// the eligible participant count. It batches the program, pass, and winner
// lookups instead of going record by record.
func (d *raffleDomain) annotate(ctx context.Context, records []entity.Raffle) ([]model.Raffle, error) {
	if len(records) == 0 {
		return []model.Raffle{}, nil
	}

	raffleIDs := []string{}
	addressSet := map[string]bool{}
	addresses := []string{}
	for _, record := range records {
		raffleIDs = append(raffleIDs, record.ID)
		if !addressSet[record.ProgramAddress] {
			addressSet[record.ProgramAddress] = true
			addresses = append(addresses, record.ProgramAddress)
		}
	}

	programs, err := d.programRepo.GetByPublicKeys(ctx, addresses)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get programs of raffles: %v", err)
		return nil, errorx.Unknown
	}

	tiersByProgram := map[string][]string{}
	for _, program := range programs {
		tiersByProgram[program.PublicKey] = program.Tiers
	}

	passes, err := d.passRepo.GetByCollections(ctx, addresses)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get passes of programs: %v", err)
		return nil, errorx.Unknown
	}

	passesByProgram := map[string][]entity.LoyaltyPass{}
	for _, pass := range passes {
		passesByProgram[pass.Collection] = append(passesByProgram[pass.Collection], pass)
	}

	winnerCounts, err := d.raffleRepo.CountWinnersByRaffleIDs(ctx, raffleIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count winners of raffles: %v", err)
		return nil, errorx.Unknown
	}

	now := time.Now()
	raffles := make([]model.Raffle, 0, len(records))
	for i := range records {
		record := &records[i]
		eligible := raffle.EligiblePasses(
			tiersByProgram[record.ProgramAddress],
			record.MinTier.String,
			passesByProgram[record.ProgramAddress],
		)

		phase := raffle.Phase(record, now, winnerCounts[record.ID] > 0)
		raffles = append(raffles, model.ConvertRaffle(record, phase, len(eligible), nil))
	}

	return raffles, nil
}
