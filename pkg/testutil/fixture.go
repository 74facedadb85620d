package testutil

import (
	"context"
	"database/sql"
	"time"

	"github.com/loyalx/backend/internal/entity"
	"github.com/loyalx/backend/internal/repository"
)

var (
	Program1 = &entity.LoyaltyProgram{
		Base:      entity.Base{ID: "program1"},
		PublicKey: "program1-address",
		Creator:   "creator1",
		Network:   "devnet",
		Tiers:     entity.Array[string]{"Bronze", "Silver", "Gold"},
	}

	Program2 = &entity.LoyaltyProgram{
		Base:      entity.Base{ID: "program2"},
		PublicKey: "program2-address",
		Creator:   "creator1",
		Network:   "mainnet",
		Tiers:     entity.Array[string]{"Member", "VIP"},
	}

	Pass1 = &entity.LoyaltyPass{
		Base:       entity.Base{ID: "pass1"},
		PublicKey:  "pass1-pubkey",
		Recipient:  "alice",
		Collection: Program1.PublicKey,
		Network:    Program1.Network,
		Name:       "Pass #1",
		Tier:       "Bronze",
	}

	Pass2 = &entity.LoyaltyPass{
		Base:       entity.Base{ID: "pass2"},
		PublicKey:  "pass2-pubkey",
		Recipient:  "alice",
		Collection: Program1.PublicKey,
		Network:    Program1.Network,
		Name:       "Pass #2",
		Tier:       "Gold",
	}

	Pass3 = &entity.LoyaltyPass{
		Base:       entity.Base{ID: "pass3"},
		PublicKey:  "pass3-pubkey",
		Recipient:  "bob",
		Collection: Program1.PublicKey,
		Network:    Program1.Network,
		Name:       "Pass #3",
		Tier:       "Silver",
	}

	// Raffle1 has ended and is ready to be drawn.
	Raffle1 = &entity.Raffle{
		Base:           entity.Base{ID: "raffle1"},
		Name:           "Ended Raffle",
		Description:    "First raffle of program1",
		PrizeType:      entity.PrizeTypeToken,
		PrizeDetails:   entity.Map{"token_address": "0xabc", "symbol": "USDC", "amount": float64(100)},
		StartDate:      time.Now().Add(-3 * time.Hour),
		EndDate:        time.Now().Add(-2 * time.Hour),
		DrawDate:       time.Now().Add(-time.Hour),
		Status:         entity.RaffleStatusUpcoming,
		NumWinners:     2,
		ProgramAddress: Program1.PublicKey,
		Creator:        Program1.Creator,
	}

	// Raffle2 is still running and requires at least the Silver tier.
	Raffle2 = &entity.Raffle{
		Base:           entity.Base{ID: "raffle2"},
		Name:           "Active Raffle",
		Description:    "Second raffle of program1",
		PrizeType:      entity.PrizeTypeMerch,
		PrizeDetails:   entity.Map{"item": "hoodie", "quantity": 1, "note": ""},
		StartDate:      time.Now().Add(-time.Hour),
		EndDate:        time.Now().Add(time.Hour),
		DrawDate:       time.Now().Add(2 * time.Hour),
		Status:         entity.RaffleStatusUpcoming,
		MinTier:        sql.NullString{String: "Silver", Valid: true},
		NumWinners:     1,
		ProgramAddress: Program1.PublicKey,
		Creator:        Program1.Creator,
	}
)

func CreateFixtureDb(ctx context.Context) {
	InsertPrograms(ctx)
	InsertPasses(ctx)
	InsertRaffles(ctx)
}

func InsertPrograms(ctx context.Context) {
	programRepo := repository.NewProgramRepository()
	for _, program := range []*entity.LoyaltyProgram{Program1, Program2} {
		if err := programRepo.Create(ctx, program); err != nil {
			panic(err)
		}
	}
}

func InsertPasses(ctx context.Context) {
	passRepo := repository.NewPassRepository()
	for _, pass := range []*entity.LoyaltyPass{Pass1, Pass2, Pass3} {
		if err := passRepo.Create(ctx, pass); err != nil {
			panic(err)
		}
	}
}

func InsertRaffles(ctx context.Context) {
	raffleRepo := repository.NewRaffleRepository()
	for _, raffle := range []*entity.Raffle{Raffle1, Raffle2} {
		if err := raffleRepo.Create(ctx, raffle); err != nil {
			panic(err)
		}
	}
}
