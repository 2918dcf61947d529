package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"soccerslotmanager/internal/domain"
)

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (username, pin_hash, pin_salt, role, invited_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid, $6, $7)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, u.Username, u.PINHash, u.PINSalt, u.Role, u.InvitedBy, u.CreatedAt, u.UpdatedAt).Scan(&u.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrDuplicateUsername
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, pin_hash, pin_salt, role, invited_by, created_at, updated_at
		FROM users
		WHERE username = $1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, username))
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, username, pin_hash, pin_salt, role, invited_by, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *userRepository) scanOne(row *sql.Row) (*domain.User, error) {
	u := &domain.User{}
	var invitedBy sql.NullString
	err := row.Scan(&u.ID, &u.Username, &u.PINHash, &u.PINSalt, &u.Role, &invitedBy, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.InvitedBy = invitedBy.String
	return u, nil
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `
		SELECT id, username, pin_hash, pin_salt, role, invited_by, created_at, updated_at
		FROM users
		ORDER BY created_at
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	users := make([]*domain.User, 0)
	for rows.Next() {
		u := &domain.User{}
		var invitedBy sql.NullString
		if err := rows.Scan(&u.ID, &u.Username, &u.PINHash, &u.PINSalt, &u.Role, &invitedBy, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		u.InvitedBy = invitedBy.String
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) UpdatePIN(ctx context.Context, username, pinHash, pinSalt string, updatedAt time.Time) error {
	query := `
		UPDATE users
		SET pin_hash = $1, pin_salt = $2, updated_at = $3
		WHERE username = $4
	`
	result, err := r.DB.ExecContext(ctx, query, pinHash, pinSalt, updatedAt, username)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, username string) error {
	query := `DELETE FROM users WHERE username = $1`
	result, err := r.DB.ExecContext(ctx, query, username)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
