package points

// Action is one entry of a pass action history, ordered oldest first.
type Action struct {
	Type      string `json:"type"`
	Points    int    `json:"points"`
	Timestamp string `json:"timestamp"`
	NewTotal  int    `json:"newTotal"`
}

// AssetData is the protocol's view of a loyalty pass. The relational store
// never holds xp; this is the only source of it.
type AssetData struct {
	Name          string   `json:"name"`
	Xp            int      `json:"xp"`
	LastAction    string   `json:"lastAction"`
	ActionHistory []Action `json:"actionHistory"`
	CurrentTier   string   `json:"currentTier"`
}
