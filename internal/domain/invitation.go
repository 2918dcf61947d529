package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for invitation tokens.
var (
	ErrTokenNotFound = errors.New("invitation token not found")
	ErrTokenExpired  = errors.New("invitation token expired")
)

// InvitationToken is a single-use 6-digit code an admin issues to let a new
// user create an account. Valid for 24 hours; deleted on redemption.
// swagger:model InvitationToken
type InvitationToken struct {
	ID                string    `json:"id"`
	Token             string    `json:"token"`
	CreatedBy         string    `json:"created_by"`
	CreatedByUsername string    `json:"created_by_username"`
	ExpiresAt         time.Time `json:"expires_at"`
	CreatedAt         time.Time `json:"created_at"`
}

// InvitationRepository defines storage operations for invitation tokens.
type InvitationRepository interface {
	Create(ctx context.Context, inv *InvitationToken) error
	// Consume deletes the token and returns it in a single statement, so a
	// token can never be redeemed twice. Returns ErrTokenNotFound when the
	// token does not exist (or was already consumed).
	Consume(ctx context.Context, token string) (*InvitationToken, error)
}
