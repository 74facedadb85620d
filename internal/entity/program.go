package entity

// LoyaltyProgram owns an ordered tier list. Tier comparison is by index in
// this list, never lexical.
type LoyaltyProgram struct {
	Base

	PublicKey string `gorm:"uniqueIndex"`
	Creator   string `gorm:"index"`
	Network   string

	Tiers Array[string]
}
