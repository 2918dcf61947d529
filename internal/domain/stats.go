package domain

import "context"

// UserStats aggregates one user's participation across all slots.
// Contributions = guests invited + users sponsored through invitations.
// swagger:model UserStats
type UserStats struct {
	UserID             string `json:"user_id"`
	Username           string `json:"username"`
	Attendance         int    `json:"attendance"`
	Wins               int    `json:"wins"`
	GuestsInvited      int    `json:"guests_invited"`
	SponsoredUsers     int    `json:"sponsored_users"`
	TotalContributions int    `json:"total_contributions"`
}

// StatsOverview is the leaderboard plus per-user stats, sorted by attendance.
// swagger:model StatsOverview
type StatsOverview struct {
	MostWins       *UserStats   `json:"most_wins"`
	BestAttendance *UserStats   `json:"best_attendance"`
	TopContributor *UserStats   `json:"top_contributor"`
	AllStats       []*UserStats `json:"all_stats"`
}

// StatsRepository computes participation aggregates from stored slots.
// Wins are derived from team rosters and integer scores.
type StatsRepository interface {
	ForAllUsers(ctx context.Context) ([]*UserStats, error)
	ForUser(ctx context.Context, userID string) (*UserStats, error)
}

// StatsService exposes the statistics endpoints' business logic.
type StatsService interface {
	Overview(ctx context.Context) (*StatsOverview, error)
	ForUsername(ctx context.Context, username string) (*UserStats, error)
}
