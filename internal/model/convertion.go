package model

import (
	"time"

	"github.com/loyalx/backend/internal/entity"
)

const DefaultTimeLayout string = time.RFC3339Nano

func ConvertRaffle(
	raffle *entity.Raffle,
	phase entity.RafflePhase,
	eligibleParticipants int,
	winners []RaffleWinner,
) Raffle {
	if raffle == nil {
		return Raffle{}
	}

	var entryCost *int64
	if raffle.EntryCost.Valid {
		cost := raffle.EntryCost.Int64
		entryCost = &cost
	}

	return Raffle{
		ID:                   raffle.ID,
		Name:                 raffle.Name,
		Description:          raffle.Description,
		PrizeType:            string(raffle.PrizeType),
		PrizeDetails:         raffle.PrizeDetails,
		StartDate:            raffle.StartDate,
		EndDate:              raffle.EndDate,
		DrawDate:             raffle.DrawDate,
		Phase:                string(phase),
		StoredStatus:         string(raffle.Status),
		EntryCost:            entryCost,
		MinTier:              raffle.MinTier.String,
		NumWinners:           raffle.NumWinners,
		ProgramAddress:       raffle.ProgramAddress,
		Creator:              raffle.Creator,
		EligibleParticipants: eligibleParticipants,
		Winners:              winners,
		CreatedAt:            raffle.CreatedAt,
	}
}

func ConvertRaffleWinner(winner *entity.RaffleWinner) RaffleWinner {
	if winner == nil {
		return RaffleWinner{}
	}

	claimedAt := ""
	if winner.ClaimedAt.Valid {
		claimedAt = winner.ClaimedAt.Time.Format(DefaultTimeLayout)
	}

	return RaffleWinner{
		PassPublicKey: winner.PassPublicKey,
		Position:      winner.Position,
		Claimed:       winner.Claimed,
		ClaimedAt:     claimedAt,
	}
}

func ConvertProgram(program *entity.LoyaltyProgram) Program {
	if program == nil {
		return Program{}
	}

	return Program{
		PublicKey: program.PublicKey,
		Creator:   program.Creator,
		Network:   program.Network,
		Tiers:     program.Tiers,
	}
}

func ConvertPass(pass *entity.LoyaltyPass) Pass {
	if pass == nil {
		return Pass{}
	}

	return Pass{
		PublicKey:  pass.PublicKey,
		Recipient:  pass.Recipient,
		Collection: pass.Collection,
		Network:    pass.Network,
		Name:       pass.Name,
		Tier:       pass.Tier,
	}
}
