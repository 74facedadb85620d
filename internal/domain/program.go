package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/loyalx/backend/internal/domain/raffle"
	"github.com/loyalx/backend/internal/entity"
	"github.com/loyalx/backend/internal/model"
	"github.com/loyalx/backend/internal/repository"
	"github.com/loyalx/backend/pkg/errorx"
	"github.com/loyalx/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ProgramDomain interface {
	Create(context.Context, *model.CreateProgramRequest) (*model.CreateProgramResponse, error)
	CreatePass(context.Context, *model.CreatePassRequest) (*model.CreatePassResponse, error)
}

type programDomain struct {
	programRepo repository.ProgramRepository
	passRepo    repository.PassRepository
}

func NewProgramDomain(
	programRepo repository.ProgramRepository,
	passRepo repository.PassRepository,
) *programDomain {
	return &programDomain{programRepo: programRepo, passRepo: passRepo}
}

func (d *programDomain) Create(
	ctx context.Context, req *model.CreateProgramRequest,
) (*model.CreateProgramResponse, error) {
	creator := xcontext.RequestUserID(ctx)
	if creator == "" {
		return nil, errorx.New(errorx.Unauthenticated, "Not authenticated")
	}

	if req.PublicKey == "" {
		return nil, errorx.New(errorx.BadRequest, "Not found program public key")
	}

	if len(req.Tiers) == 0 {
		return nil, errorx.New(errorx.BadRequest, "Not found tier list")
	}

	seen := map[string]bool{}
	for _, tier := range req.Tiers {
		if tier == "" {
			return nil, errorx.New(errorx.BadRequest, "Tier name must not be empty")
		}

		if seen[tier] {
			return nil, errorx.New(errorx.BadRequest, "Duplicated tier %s", tier)
		}

		seen[tier] = true
	}

	if _, err := d.programRepo.GetByPublicKey(ctx, req.PublicKey); err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "Program already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get program: %v", err)
		return nil, errorx.Unknown
	}

	program := &entity.LoyaltyProgram{
		Base:      entity.Base{ID: uuid.NewString()},
		PublicKey: req.PublicKey,
		Creator:   creator,
		Network:   req.Network,
		Tiers:     req.Tiers,
	}

	if err := d.programRepo.Create(ctx, program); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create program: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateProgramResponse{Program: model.ConvertProgram(program)}, nil
}

func (d *programDomain) CreatePass(
	ctx context.Context, req *model.CreatePassRequest,
) (*model.CreatePassResponse, error) {
	if xcontext.RequestUserID(ctx) == "" {
		return nil, errorx.New(errorx.Unauthenticated, "Not authenticated")
	}

	if req.PublicKey == "" {
		return nil, errorx.New(errorx.BadRequest, "Not found pass public key")
	}

	if req.Recipient == "" {
		return nil, errorx.New(errorx.BadRequest, "Not found recipient")
	}

	program, err := d.programRepo.GetByPublicKey(ctx, req.Collection)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found program")
		}

		xcontext.Logger(ctx).Errorf("Cannot get program: %v", err)
		return nil, errorx.Unknown
	}

	if req.Tier != "" && raffle.TierIndex(program.Tiers, req.Tier) == -1 {
		return nil, errorx.New(errorx.BadRequest, "Tier %s is not in the program", req.Tier)
	}

	if _, err := d.passRepo.GetByPublicKey(ctx, req.PublicKey); err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "Pass already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get pass: %v", err)
		return nil, errorx.Unknown
	}

	network := req.Network
	if network == "" {
		network = program.Network
	}

	pass := &entity.LoyaltyPass{
		Base:       entity.Base{ID: uuid.NewString()},
		PublicKey:  req.PublicKey,
		Recipient:  req.Recipient,
		Collection: program.PublicKey,
		Network:    network,
		Name:       req.Name,
		Tier:       req.Tier,
	}

	if err := d.passRepo.Create(ctx, pass); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create pass: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreatePassResponse{Pass: model.ConvertPass(pass)}, nil
}
