package model

type GetLeaderboardRequest struct {
	Creator string `form:"creator"`
	Network string `form:"network"`
}

type LeaderboardMember struct {
	Address    string `json:"address"`
	TotalXp    int    `json:"total_xp"`
	LastAction string `json:"last_action,omitempty"`
	Rank       int    `json:"rank"`
}

type GetLeaderboardResponse struct {
	Leaderboard []LeaderboardMember `json:"leaderboard"`
}

type MemberPass struct {
	PublicKey     string   `json:"public_key"`
	Name          string   `json:"name"`
	Xp            int      `json:"xp"`
	ActionHistory []Action `json:"action_history"`
	CurrentTier   string   `json:"current_tier"`
}

type Action struct {
	Type      string `json:"type"`
	Points    int    `json:"points"`
	Timestamp string `json:"timestamp"`
	NewTotal  int    `json:"new_total"`
}

type Member struct {
	Address string       `json:"address"`
	TotalXp int          `json:"total_xp"`
	Passes  []MemberPass `json:"passes"`
}

type GetMembersRequest struct {
	Creator string `form:"creator"`
	Network string `form:"network"`
}

type GetMembersResponse struct {
	Members []Member `json:"members"`
}

type GetStatsRequest struct {
	Creator string `form:"creator"`
	Network string `form:"network"`
}

// All stats values are display strings produced by statistic.FormatStat.
type GetStatsResponse struct {
	TotalPrograms string `json:"total_programs"`
	ActivePasses  string `json:"active_passes"`
	TotalMembers  string `json:"total_members"`
	TotalPoints   string `json:"total_points"`
}
