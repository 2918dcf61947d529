package postgres

import (
	"context"
	"database/sql"
	"errors"

	"soccerslotmanager/internal/domain"
)

type statsRepository struct {
	DB *sql.DB
}

func NewStatsRepository(db *sql.DB) domain.StatsRepository {
	return &statsRepository{DB: db}
}

// Wins count a user on the winning roster of a scored slot. Guests win
// matches too but carry no account, so only kind = 'player' rows count here.
const statsSelect = `
	SELECT u.id, u.username,
		(SELECT count(*) FROM slot_players sp WHERE sp.user_id = u.id) AS attendance,
		(SELECT count(*) FROM slot_team_members m
			JOIN slots s ON s.id = m.slot_id
			WHERE m.kind = 'player' AND m.participant_id = u.id
			  AND s.team_a_score IS NOT NULL
			  AND ((m.team = 'A' AND s.team_a_score > s.team_b_score)
			    OR (m.team = 'B' AND s.team_b_score > s.team_a_score))) AS wins,
		(SELECT count(*) FROM slot_guests sg WHERE sg.invited_by_id = u.id) AS guests_invited,
		(SELECT count(*) FROM users su WHERE su.invited_by = u.id) AS sponsored_users
	FROM users u
`

func (r *statsRepository) ForAllUsers(ctx context.Context) ([]*domain.UserStats, error) {
	query := statsSelect + ` ORDER BY attendance DESC, u.username`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	stats := make([]*domain.UserStats, 0)
	for rows.Next() {
		st := &domain.UserStats{}
		if err := rows.Scan(&st.UserID, &st.Username, &st.Attendance, &st.Wins, &st.GuestsInvited, &st.SponsoredUsers); err != nil {
			return nil, err
		}
		st.TotalContributions = st.GuestsInvited + st.SponsoredUsers
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

func (r *statsRepository) ForUser(ctx context.Context, userID string) (*domain.UserStats, error) {
	query := statsSelect + ` WHERE u.id = $1`
	st := &domain.UserStats{}
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&st.UserID, &st.Username, &st.Attendance, &st.Wins, &st.GuestsInvited, &st.SponsoredUsers)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	st.TotalContributions = st.GuestsInvited + st.SponsoredUsers
	return st, nil
}
