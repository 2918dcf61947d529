package postgres

import (
	"context"
	"database/sql"
	"errors"

	"soccerslotmanager/internal/domain"
)

type invitationRepository struct {
	DB *sql.DB
}

func NewInvitationRepository(db *sql.DB) domain.InvitationRepository {
	return &invitationRepository{DB: db}
}

func (r *invitationRepository) Create(ctx context.Context, inv *domain.InvitationToken) error {
	query := `
		INSERT INTO invitation_tokens (token, created_by, created_by_username, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, inv.Token, inv.CreatedBy, inv.CreatedByUsername, inv.ExpiresAt, inv.CreatedAt).Scan(&inv.ID)
}

// Consume deletes the token and returns its row in a single statement, so
// concurrent redemptions of the same token can only succeed once.
func (r *invitationRepository) Consume(ctx context.Context, token string) (*domain.InvitationToken, error) {
	query := `
		DELETE FROM invitation_tokens
		WHERE token = $1
		RETURNING id, token, created_by, created_by_username, expires_at, created_at
	`
	inv := &domain.InvitationToken{}
	err := r.DB.QueryRowContext(ctx, query, token).Scan(
		&inv.ID, &inv.Token, &inv.CreatedBy, &inv.CreatedByUsername, &inv.ExpiresAt, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, err
	}
	return inv, nil
}
