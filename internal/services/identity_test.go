package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"soccerslotmanager/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInviteRepo implements domain.InvitationRepository for tests.
type fakeInviteRepo struct {
	byToken   map[string]*domain.InvitationToken
	createErr error
}

func newFakeInviteRepo(tokens ...*domain.InvitationToken) *fakeInviteRepo {
	f := &fakeInviteRepo{byToken: make(map[string]*domain.InvitationToken)}
	for _, inv := range tokens {
		f.byToken[inv.Token] = inv
	}
	return f
}

func (f *fakeInviteRepo) Create(ctx context.Context, inv *domain.InvitationToken) error {
	if f.createErr != nil {
		return f.createErr
	}
	inv.ID = "inv-" + inv.Token
	f.byToken[inv.Token] = inv
	return nil
}

func (f *fakeInviteRepo) Consume(ctx context.Context, token string) (*domain.InvitationToken, error) {
	inv, ok := f.byToken[token]
	if !ok {
		return nil, domain.ErrTokenNotFound
	}
	delete(f.byToken, token)
	return inv, nil
}

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct{}

func (fakePasswordHasher) GenerateSalt() (string, error) { return "salt", nil }
func (fakePasswordHasher) Hash(salt, pin string) (string, error) {
	return "hash-" + salt + "-" + pin, nil
}
func (fakePasswordHasher) Compare(hash, salt, pin string) error {
	if hash != "hash-"+salt+"-"+pin {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	err error
}

func (f *fakeTokenIssuer) Issue(userID, username, role string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-" + userID, nil
}

// fakeEmailService implements domain.EmailService for tests.
type fakeEmailService struct {
	sent []*domain.InvitationEmailData
	err  error
}

func (f *fakeEmailService) SendInvitation(ctx context.Context, data *domain.InvitationEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}

var testClock = func() time.Time { return time.Date(2025, 2, 3, 12, 0, 0, 0, time.UTC) }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestIdentity(users *fakeUserRepo, invites *fakeInviteRepo, email *fakeEmailService) domain.IdentityService {
	var emailSvc domain.EmailService
	if email != nil {
		emailSvc = email
	}
	return NewIdentityService(users, invites, fakePasswordHasher{}, &fakeTokenIssuer{}, 24*time.Hour, emailSvc, discardLogger(), testClock)
}

func storedUser(username, pin, role string) *domain.User {
	return &domain.User{
		ID:       "id-" + username,
		Username: username,
		PINHash:  "hash-salt-" + pin,
		PINSalt:  "salt",
		Role:     role,
	}
}

func TestIdentityService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success issues token", func(t *testing.T) {
		svc := newTestIdentity(newFakeUserRepo(storedUser("alice", "1234", domain.RoleUser)), newFakeInviteRepo(), nil)
		token, user, err := svc.Login(ctx, "alice", "1234")
		require.NoError(t, err)
		assert.Equal(t, "token-id-alice", token)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("wrong pin and unknown user are indistinguishable", func(t *testing.T) {
		svc := newTestIdentity(newFakeUserRepo(storedUser("alice", "1234", domain.RoleUser)), newFakeInviteRepo(), nil)
		_, _, errWrongPIN := svc.Login(ctx, "alice", "0000")
		_, _, errUnknown := svc.Login(ctx, "ghost", "1234")
		assert.ErrorIs(t, errWrongPIN, domain.ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	})
}

func TestIdentityService_SignUp(t *testing.T) {
	ctx := context.Background()

	validInvite := func() *domain.InvitationToken {
		return &domain.InvitationToken{
			Token:             "483920",
			CreatedBy:         "id-boss",
			CreatedByUsername: "boss",
			ExpiresAt:         testClock().Add(time.Hour),
		}
	}

	t.Run("success consumes the token and records the inviter", func(t *testing.T) {
		invites := newFakeInviteRepo(validInvite())
		svc := newTestIdentity(newFakeUserRepo(), invites, nil)

		user, err := svc.SignUp(ctx, "483920", "newbie", "1234")
		require.NoError(t, err)
		assert.Equal(t, "newbie", user.Username)
		assert.Equal(t, domain.RoleUser, user.Role)
		assert.Equal(t, "id-boss", user.InvitedBy)

		// Single use: the same token cannot be redeemed again.
		_, err = svc.SignUp(ctx, "483920", "other", "1234")
		assert.ErrorIs(t, err, domain.ErrTokenNotFound)
	})

	t.Run("expired token", func(t *testing.T) {
		inv := validInvite()
		inv.ExpiresAt = testClock().Add(-time.Minute)
		svc := newTestIdentity(newFakeUserRepo(), newFakeInviteRepo(inv), nil)
		_, err := svc.SignUp(ctx, "483920", "newbie", "1234")
		assert.ErrorIs(t, err, domain.ErrTokenExpired)
	})

	t.Run("pin must be exactly 4 digits", func(t *testing.T) {
		svc := newTestIdentity(newFakeUserRepo(), newFakeInviteRepo(validInvite()), nil)
		for _, pin := range []string{"123", "12345", "12a4", ""} {
			_, err := svc.SignUp(ctx, "483920", "newbie", pin)
			assert.ErrorIs(t, err, domain.ErrInvalidPIN, "pin %q", pin)
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		svc := newTestIdentity(newFakeUserRepo(storedUser("alice", "1234", domain.RoleUser)), newFakeInviteRepo(validInvite()), nil)
		_, err := svc.SignUp(ctx, "483920", "alice", "5678")
		assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
	})

	t.Run("unknown token", func(t *testing.T) {
		svc := newTestIdentity(newFakeUserRepo(), newFakeInviteRepo(), nil)
		_, err := svc.SignUp(ctx, "000000", "newbie", "1234")
		assert.ErrorIs(t, err, domain.ErrTokenNotFound)
	})
}

func TestIdentityService_ChangePIN(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		users := newFakeUserRepo(storedUser("alice", "1234", domain.RoleUser))
		svc := newTestIdentity(users, newFakeInviteRepo(), nil)
		require.NoError(t, svc.ChangePIN(ctx, "alice", "1234", "5678"))

		// New PIN logs in; old one no longer does.
		_, _, err := svc.Login(ctx, "alice", "5678")
		assert.NoError(t, err)
		_, _, err = svc.Login(ctx, "alice", "1234")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("wrong old pin", func(t *testing.T) {
		svc := newTestIdentity(newFakeUserRepo(storedUser("alice", "1234", domain.RoleUser)), newFakeInviteRepo(), nil)
		err := svc.ChangePIN(ctx, "alice", "0000", "5678")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("invalid new pin", func(t *testing.T) {
		svc := newTestIdentity(newFakeUserRepo(storedUser("alice", "1234", domain.RoleUser)), newFakeInviteRepo(), nil)
		err := svc.ChangePIN(ctx, "alice", "1234", "56789")
		assert.ErrorIs(t, err, domain.ErrInvalidPIN)
	})
}

func TestIdentityService_IssueInvite(t *testing.T) {
	ctx := context.Background()
	admin := storedUser("boss", "1234", domain.RoleAdmin)
	sixDigits := regexp.MustCompile(`^\d{6}$`)

	t.Run("admin gets a 6-digit token with 24h ttl", func(t *testing.T) {
		svc := newTestIdentity(newFakeUserRepo(admin), newFakeInviteRepo(), nil)
		inv, err := svc.IssueInvite(ctx, "boss", "")
		require.NoError(t, err)
		assert.Regexp(t, sixDigits, inv.Token)
		assert.Equal(t, testClock().Add(24*time.Hour), inv.ExpiresAt)
		assert.Equal(t, "boss", inv.CreatedByUsername)
	})

	t.Run("emails the invitee when an address is given", func(t *testing.T) {
		email := &fakeEmailService{}
		svc := newTestIdentity(newFakeUserRepo(admin), newFakeInviteRepo(), email)
		inv, err := svc.IssueInvite(ctx, "boss", "friend@example.com")
		require.NoError(t, err)
		require.Len(t, email.sent, 1)
		assert.Equal(t, inv.Token, email.sent[0].Token)
		assert.Equal(t, "friend@example.com", email.sent[0].Email)
	})

	t.Run("mail failure does not void the invitation", func(t *testing.T) {
		email := &fakeEmailService{err: errors.New("smtp down")}
		svc := newTestIdentity(newFakeUserRepo(admin), newFakeInviteRepo(), email)
		inv, err := svc.IssueInvite(ctx, "boss", "friend@example.com")
		require.NoError(t, err)
		assert.NotEmpty(t, inv.Token)
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		svc := newTestIdentity(newFakeUserRepo(storedUser("alice", "1234", domain.RoleUser)), newFakeInviteRepo(), nil)
		_, err := svc.IssueInvite(ctx, "alice", "")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unknown username", func(t *testing.T) {
		svc := newTestIdentity(newFakeUserRepo(), newFakeInviteRepo(), nil)
		_, err := svc.IssueInvite(ctx, "ghost", "")
		assert.ErrorIs(t, err, domain.ErrAuthRequired)
	})
}

func TestIdentityService_AdminUserManagement(t *testing.T) {
	ctx := context.Background()
	admin := storedUser("boss", "1234", domain.RoleAdmin)
	alice := storedUser("alice", "1234", domain.RoleUser)

	t.Run("list requires admin", func(t *testing.T) {
		svc := newTestIdentity(newFakeUserRepo(admin, alice), newFakeInviteRepo(), nil)
		users, err := svc.ListUsers(ctx, "boss")
		require.NoError(t, err)
		assert.Len(t, users, 2)

		_, err = svc.ListUsers(ctx, "alice")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("delete user", func(t *testing.T) {
		users := newFakeUserRepo(admin, alice)
		svc := newTestIdentity(users, newFakeInviteRepo(), nil)
		require.NoError(t, svc.DeleteUser(ctx, "boss", "alice"))
		err := svc.DeleteUser(ctx, "boss", "alice")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("reset pin validates format", func(t *testing.T) {
		users := newFakeUserRepo(admin, alice)
		svc := newTestIdentity(users, newFakeInviteRepo(), nil)
		assert.ErrorIs(t, svc.ResetPIN(ctx, "boss", "alice", "abcd"), domain.ErrInvalidPIN)
		require.NoError(t, svc.ResetPIN(ctx, "boss", "alice", "9999"))

		_, _, err := svc.Login(ctx, "alice", "9999")
		assert.NoError(t, err)
	})
}
