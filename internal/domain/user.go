package domain

import (
	"context"
	"errors"
	"time"
)

// Roles assignable to a user.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Sentinel errors for identity operations.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPIN         = errors.New("pin must be exactly 4 digits")
	ErrAuthRequired       = errors.New("authentication required")
	ErrForbidden          = errors.New("forbidden")
)

// User represents an account identified by a username and a 4-digit PIN.
// The PIN is stored hashed; InvitedBy references the admin whose invitation
// the user signed up with (non-owning, may be empty).
// swagger:model User
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	PINHash   string    `json:"-"`
	PINSalt   string    `json:"-"`
	Role      string    `json:"role"`
	InvitedBy string    `json:"invited_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser returns a new User with the given fields. ID is typically set by the repository on create.
func NewUser(username, pinHash, pinSalt, role, invitedBy string, createdAt, updatedAt time.Time) *User {
	return &User{
		Username:  username,
		PINHash:   pinHash,
		PINSalt:   pinSalt,
		Role:      role,
		InvitedBy: invitedBy,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// PasswordHasher handles salt generation, hashing, and verification of PINs.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, pin string) (hash string, err error)
	Compare(hash, salt, pin string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, username, role string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	UpdatePIN(ctx context.Context, username, pinHash, pinSalt string, updatedAt time.Time) error
	Delete(ctx context.Context, username string) error
}

// IdentityService defines authentication, signup, and admin user management.
type IdentityService interface {
	// Login checks username/PIN and returns a signed token with the user.
	// A wrong PIN and an unknown username both return ErrInvalidCredentials.
	Login(ctx context.Context, username, pin string) (token string, user *User, err error)
	// SignUp redeems an invitation token and creates the user.
	SignUp(ctx context.Context, inviteToken, username, pin string) (*User, error)
	ChangePIN(ctx context.Context, username, oldPIN, newPIN string) error
	GetByID(ctx context.Context, id string) (*User, error)
	// RequireUser resolves the identity parameter of a request.
	// An unknown username returns ErrAuthRequired.
	RequireUser(ctx context.Context, username string) (*User, error)
	// RequireAdmin resolves the identity parameter and checks the admin role.
	RequireAdmin(ctx context.Context, username string) (*User, error)
	// IssueInvite creates a single-use invitation token valid for 24 hours.
	// When email is non-empty the token is mailed to the invitee.
	IssueInvite(ctx context.Context, adminUsername, email string) (*InvitationToken, error)
	ListUsers(ctx context.Context, adminUsername string) ([]*User, error)
	DeleteUser(ctx context.Context, adminUsername, username string) error
	ResetPIN(ctx context.Context, adminUsername, username, newPIN string) error
}
