package entity

// LoyaltyPass is an issued membership credential. The tier column records
// what was issued; xp and the authoritative tier live in the points protocol.
type LoyaltyPass struct {
	Base

	PublicKey string `gorm:"uniqueIndex"`
	Recipient string `gorm:"index"`

	// Collection is the address of the program this pass belongs to.
	Collection string `gorm:"index"`
	Network    string
	Name       string
	Tier       string
}
