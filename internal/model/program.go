package model

import "net/http"

type Program struct {
	PublicKey string   `json:"public_key"`
	Creator   string   `json:"creator"`
	Network   string   `json:"network"`
	Tiers     []string `json:"tiers"`
}

type CreateProgramRequest struct {
	PublicKey string   `json:"public_key"`
	Network   string   `json:"network"`
	Tiers     []string `json:"tiers"`
}

type CreateProgramResponse struct {
	Program Program `json:"program"`
}

func (CreateProgramResponse) HTTPStatus() int {
	return http.StatusCreated
}

type Pass struct {
	PublicKey  string `json:"public_key"`
	Recipient  string `json:"recipient"`
	Collection string `json:"collection"`
	Network    string `json:"network"`
	Name       string `json:"name"`
	Tier       string `json:"tier"`
}

type CreatePassRequest struct {
	PublicKey  string `json:"public_key"`
	Recipient  string `json:"recipient"`
	Collection string `json:"collection"`
	Network    string `json:"network"`
	Name       string `json:"name"`
	Tier       string `json:"tier"`
}

type CreatePassResponse struct {
	Pass Pass `json:"pass"`
}

func (CreatePassResponse) HTTPStatus() int {
	return http.StatusCreated
}
