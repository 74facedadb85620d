package entity

import (
	"database/sql"
	"time"

	"github.com/loyalx/backend/pkg/enum"
)

type PrizeType string

var (
	PrizeTypeToken = enum.New(PrizeType("TOKEN"))
	PrizeTypeMerch = enum.New(PrizeType("MERCH"))
	PrizeTypeNFT   = enum.New(PrizeType("NFT"))
	PrizeTypeOther = enum.New(PrizeType("OTHER"))
)

// RaffleStatus is the status recorded at creation time. It never changes
// afterwards; the phase computed from dates and winner existence is the
// display truth.
type RaffleStatus string

var (
	RaffleStatusUpcoming  = enum.New(RaffleStatus("UPCOMING"))
	RaffleStatusActive    = enum.New(RaffleStatus("ACTIVE"))
	RaffleStatusCompleted = enum.New(RaffleStatus("COMPLETED"))
	RaffleStatusCancelled = enum.New(RaffleStatus("CANCELLED"))
)

// RafflePhase is derived from the raffle dates and the existence of winners.
// It is never persisted.
type RafflePhase string

const (
	RafflePhaseUpcoming  RafflePhase = "UPCOMING"
	RafflePhaseActive    RafflePhase = "ACTIVE"
	RafflePhaseDrawing   RafflePhase = "DRAWING"
	RafflePhaseCompleted RafflePhase = "COMPLETED"
	RafflePhaseEnded     RafflePhase = "ENDED"
)

type Raffle struct {
	Base

	Name        string
	Description string

	PrizeType    PrizeType
	PrizeDetails Map

	StartDate time.Time
	EndDate   time.Time
	DrawDate  time.Time

	Status RaffleStatus

	EntryCost  sql.NullInt64
	MinTier    sql.NullString
	NumWinners int

	ProgramAddress string `gorm:"index"`
	Creator        string `gorm:"index"`
}

type RaffleWinner struct {
	Base

	RaffleID string `gorm:"uniqueIndex:idx_winner_raffle_position;uniqueIndex:idx_winner_raffle_pass"`
	Raffle   Raffle `gorm:"foreignKey:RaffleID"`

	PassPublicKey string `gorm:"uniqueIndex:idx_winner_raffle_pass"`
	Position      int    `gorm:"uniqueIndex:idx_winner_raffle_position"`

	Claimed   bool
	ClaimedAt sql.NullTime
}
