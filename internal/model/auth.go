package model

// AccessToken is the object embedded in JWT access tokens. ID is the wallet
// address of the authenticated user.
type AccessToken struct {
	ID      string `json:"id"`
	Address string `json:"address"`
}
