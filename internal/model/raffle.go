package model

import (
	"net/http"
	"time"
)

type RaffleWinner struct {
	PassPublicKey string `json:"pass_public_key"`
	Position      int    `json:"position"`
	Claimed       bool   `json:"claimed"`
	ClaimedAt     string `json:"claimed_at,omitempty"`
}

type Raffle struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	PrizeType    string         `json:"prize_type"`
	PrizeDetails map[string]any `json:"prize_details"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	DrawDate  time.Time `json:"draw_date"`

	// Phase is computed from the dates and winner existence on every read.
	// StoredStatus is the creation-time record and may disagree with it.
	Phase        string `json:"phase"`
	StoredStatus string `json:"stored_status"`

	EntryCost  *int64 `json:"entry_cost,omitempty"`
	MinTier    string `json:"min_tier,omitempty"`
	NumWinners int    `json:"num_winners"`

	ProgramAddress string `json:"program_address"`
	Creator        string `json:"creator"`

	EligibleParticipants int            `json:"eligible_participants"`
	Winners              []RaffleWinner `json:"winners,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type GetListRaffleRequest struct {
	Status         string `form:"status"`
	ProgramAddress string `form:"programId"`
	Creator        string `form:"creator"`
}

type GetListRaffleResponse struct {
	Raffles []Raffle `json:"raffles"`
}

// CreateRaffleRequest carries no creator field. The creator is always the
// authenticated identity from the access token; a creator in the body would
// be ignored.
type CreateRaffleRequest struct {
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	PrizeType    string         `json:"prize_type"`
	PrizeDetails map[string]any `json:"prize_details"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	DrawDate  time.Time `json:"draw_date"`

	EntryCost  *int64 `json:"entry_cost"`
	MinTier    string `json:"min_tier"`
	NumWinners int    `json:"num_winners"`

	ProgramAddress string `json:"program_address"`

	// Status optionally overrides the default UPCOMING stored status.
	Status string `json:"status"`
}

type CreateRaffleResponse struct {
	Raffle Raffle `json:"raffle"`
}

func (CreateRaffleResponse) HTTPStatus() int {
	return http.StatusCreated
}

type GetRaffleRequest struct {
	ID string `uri:"id"`
}

type GetRaffleResponse struct {
	Raffle Raffle `json:"raffle"`
}

type GetUserRafflesRequest struct {
	Wallet string `uri:"wallet"`
}

type GetUserRafflesResponse struct {
	Raffles []Raffle `json:"raffles"`
}

type ClaimRaffleRequest struct {
	RaffleID      string `uri:"id"`
	PassPublicKey string `json:"pass_public_key"`
}

type ClaimRaffleResponse struct {
	ClaimedAt time.Time `json:"claimed_at"`
}

// DrawRaffleResult is not exposed over HTTP; the cron job draws due raffles.
type DrawRaffleResult struct {
	Winners []RaffleWinner `json:"winners"`

	// Partial is set when fewer eligible entries existed than the requested
	// number of winners. The draw still succeeds with the truncated set.
	Partial bool `json:"partial"`
}
