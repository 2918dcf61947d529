package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"soccerslotmanager/internal/domain"
)

type slotRepository struct {
	DB *sql.DB
}

func NewSlotRepository(db *sql.DB) domain.SlotRepository {
	return &slotRepository{DB: db}
}

const slotColumns = `id, date, team_a_score, team_b_score, created_at, updated_at`

// GetOrCreateByDate inserts an empty slot for the date unless one exists,
// then reads it back. The unique index on date makes racing creations
// converge on the same row: the loser of the insert re-reads.
func (r *slotRepository) GetOrCreateByDate(ctx context.Context, date time.Time) (*domain.Slot, error) {
	insert := `INSERT INTO slots (date) VALUES ($1) ON CONFLICT (date) DO NOTHING`
	if _, err := r.DB.ExecContext(ctx, insert, date); err != nil {
		return nil, err
	}
	return r.GetByDate(ctx, date)
}

func (r *slotRepository) GetByDate(ctx context.Context, date time.Time) (*domain.Slot, error) {
	query := `SELECT ` + slotColumns + ` FROM slots WHERE date = $1`
	return r.getOne(ctx, query, date)
}

func (r *slotRepository) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	query := `SELECT ` + slotColumns + ` FROM slots WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *slotRepository) getOne(ctx context.Context, query string, arg any) (*domain.Slot, error) {
	s := &domain.Slot{}
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(&s.ID, &s.Date, &s.TeamAScore, &s.TeamBScore, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, err
	}
	if err := r.loadParticipants(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *slotRepository) loadParticipants(ctx context.Context, s *domain.Slot) error {
	playersQuery := `
		SELECT id, slot_id, user_id, username, registered_at
		FROM slot_players
		WHERE slot_id = $1
		ORDER BY registered_at, id
	`
	rows, err := r.DB.QueryContext(ctx, playersQuery, s.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	s.Players = make([]*domain.SlotPlayer, 0)
	for rows.Next() {
		p := &domain.SlotPlayer{}
		if err := rows.Scan(&p.ID, &p.SlotID, &p.UserID, &p.Username, &p.RegisteredAt); err != nil {
			return err
		}
		s.Players = append(s.Players, p)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	guestsQuery := `
		SELECT id, slot_id, name, invited_by_id, invited_by_username, registered_at
		FROM slot_guests
		WHERE slot_id = $1
		ORDER BY registered_at, id
	`
	rows, err = r.DB.QueryContext(ctx, guestsQuery, s.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	s.Guests = make([]*domain.SlotGuest, 0)
	for rows.Next() {
		g := &domain.SlotGuest{}
		if err := rows.Scan(&g.ID, &g.SlotID, &g.Name, &g.InvitedByID, &g.InvitedByUsername, &g.RegisteredAt); err != nil {
			return err
		}
		s.Guests = append(s.Guests, g)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	teamQuery := `
		SELECT slot_id, team, participant_id, kind, position
		FROM slot_team_members
		WHERE slot_id = $1
		ORDER BY team, position
	`
	rows, err = r.DB.QueryContext(ctx, teamQuery, s.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	s.TeamMembers = make([]*domain.TeamMember, 0)
	for rows.Next() {
		m := &domain.TeamMember{}
		if err := rows.Scan(&m.SlotID, &m.Team, &m.ParticipantID, &m.Kind, &m.Position); err != nil {
			return err
		}
		s.TeamMembers = append(s.TeamMembers, m)
	}
	return rows.Err()
}

func (r *slotRepository) ListPage(ctx context.Context, params domain.PaginationParams) ([]*domain.Slot, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT count(*) FROM slots`).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `
		SELECT ` + slotColumns + `
		FROM slots
		ORDER BY date DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		s := &domain.Slot{}
		if err := rows.Scan(&s.ID, &s.Date, &s.TeamAScore, &s.TeamBScore, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, err
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	for _, s := range slots {
		if err := r.loadParticipants(ctx, s); err != nil {
			return nil, 0, err
		}
	}
	return slots, total, nil
}

// AddPlayer appends a registration inside one transaction: the slot row is
// locked, occupants are counted under the lock, and the insert only happens
// with capacity left. Two concurrent registrations can never overfill.
func (r *slotRepository) AddPlayer(ctx context.Context, slotID string, player *domain.SlotPlayer) error {
	return r.addOccupant(ctx, slotID, func(tx *sql.Tx) error {
		insert := `
			INSERT INTO slot_players (slot_id, user_id, username, registered_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`
		err := tx.QueryRowContext(ctx, insert, slotID, player.UserID, player.Username, player.RegisteredAt).Scan(&player.ID)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
				return domain.ErrAlreadyRegistered
			}
			return err
		}
		player.SlotID = slotID
		return nil
	})
}

// AddGuest works like AddPlayer; the unique (slot_id, name) constraint maps
// to ErrDuplicateGuestName.
func (r *slotRepository) AddGuest(ctx context.Context, slotID string, guest *domain.SlotGuest) error {
	return r.addOccupant(ctx, slotID, func(tx *sql.Tx) error {
		insert := `
			INSERT INTO slot_guests (id, slot_id, name, invited_by_id, invited_by_username, registered_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		_, err := tx.ExecContext(ctx, insert, guest.ID, slotID, guest.Name, guest.InvitedByID, guest.InvitedByUsername, guest.RegisteredAt)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
				return domain.ErrDuplicateGuestName
			}
			return err
		}
		guest.SlotID = slotID
		return nil
	})
}

func (r *slotRepository) addOccupant(ctx context.Context, slotID string, insert func(tx *sql.Tx) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var locked string
	err = tx.QueryRowContext(ctx, `SELECT id FROM slots WHERE id = $1 FOR UPDATE`, slotID).Scan(&locked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSlotNotFound
		}
		return err
	}

	countQuery := `
		SELECT (SELECT count(*) FROM slot_players WHERE slot_id = $1)
		     + (SELECT count(*) FROM slot_guests WHERE slot_id = $1)
	`
	var occupants int
	if err := tx.QueryRowContext(ctx, countQuery, slotID).Scan(&occupants); err != nil {
		return err
	}
	if occupants >= domain.MaxPlayers {
		return domain.ErrSlotFull
	}

	if err := insert(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// RemovePlayer deletes the registration and any team assignment of the user
// in the same transaction.
func (r *slotRepository) RemovePlayer(ctx context.Context, slotID, userID string) error {
	return r.removeOccupant(ctx, slotID, userID,
		`DELETE FROM slot_players WHERE slot_id = $1 AND user_id = $2`)
}

// RemoveGuest deletes the guest and any team assignment of the guest in the
// same transaction.
func (r *slotRepository) RemoveGuest(ctx context.Context, slotID, guestID string) error {
	return r.removeOccupant(ctx, slotID, guestID,
		`DELETE FROM slot_guests WHERE slot_id = $1 AND id = $2`)
}

func (r *slotRepository) removeOccupant(ctx context.Context, slotID, participantID, deleteQuery string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM slot_team_members WHERE slot_id = $1 AND participant_id = $2`, slotID, participantID); err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, deleteQuery, slotID, participantID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrParticipantNotFound
	}
	return tx.Commit()
}

// ReplaceTeams swaps the whole team assignment of a slot transactionally.
func (r *slotRepository) ReplaceTeams(ctx context.Context, slotID string, members []*domain.TeamMember) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM slot_team_members WHERE slot_id = $1`, slotID); err != nil {
		return err
	}
	insert := `
		INSERT INTO slot_team_members (slot_id, team, participant_id, kind, position)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, m := range members {
		if _, err := tx.ExecContext(ctx, insert, slotID, m.Team, m.ParticipantID, m.Kind, m.Position); err != nil {
			return fmt.Errorf("insert team member %s: %w", m.ParticipantID, err)
		}
	}
	return tx.Commit()
}

func (r *slotRepository) SetScores(ctx context.Context, slotID string, teamAScore, teamBScore int) error {
	query := `
		UPDATE slots
		SET team_a_score = $1, team_b_score = $2, updated_at = now()
		WHERE id = $3
	`
	result, err := r.DB.ExecContext(ctx, query, teamAScore, teamBScore, slotID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrSlotNotFound
	}
	return nil
}
