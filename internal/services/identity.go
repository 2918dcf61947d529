package services

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"soccerslotmanager/internal/domain"
)

const (
	inviteTokenDigits = 6
	inviteTokenTTL    = 24 * time.Hour
	maxUsernameLength = 100
)

var pinRegexp = regexp.MustCompile(`^\d{4}$`)

type identityService struct {
	userRepo     domain.UserRepository
	inviteRepo   domain.InvitationRepository
	hasher       domain.PasswordHasher
	tokenIssuer  domain.TokenIssuer
	tokenExpiry  time.Duration
	emailService domain.EmailService
	logger       *slog.Logger
	now          func() time.Time
}

// NewIdentityService creates an IdentityService. emailService may be nil;
// invitation emails are then skipped. now may be nil and defaults to time.Now.
func NewIdentityService(
	userRepo domain.UserRepository,
	inviteRepo domain.InvitationRepository,
	hasher domain.PasswordHasher,
	tokenIssuer domain.TokenIssuer,
	tokenExpiry time.Duration,
	emailService domain.EmailService,
	logger *slog.Logger,
	now func() time.Time,
) domain.IdentityService {
	if now == nil {
		now = time.Now
	}
	return &identityService{
		userRepo:     userRepo,
		inviteRepo:   inviteRepo,
		hasher:       hasher,
		tokenIssuer:  tokenIssuer,
		tokenExpiry:  tokenExpiry,
		emailService: emailService,
		logger:       logger,
		now:          now,
	}
}

// Login never tells the caller whether the username or the PIN was wrong.
func (s *identityService) Login(ctx context.Context, username, pin string) (string, *domain.User, error) {
	username = strings.TrimSpace(username)
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to get user: %w", err)
	}
	if err := s.hasher.Compare(user.PINHash, user.PINSalt, pin); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	token, err := s.tokenIssuer.Issue(user.ID, user.Username, user.Role, s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, user, nil
}

func (s *identityService) SignUp(ctx context.Context, inviteToken, username, pin string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(username) > maxUsernameLength {
		return nil, domain.ErrInvalidCredentials
	}
	if !pinRegexp.MatchString(pin) {
		return nil, domain.ErrInvalidPIN
	}
	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, domain.ErrDuplicateUsername
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	inv, err := s.inviteRepo.Consume(ctx, strings.TrimSpace(inviteToken))
	if err != nil {
		if errors.Is(err, domain.ErrTokenNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to consume invitation: %w", err)
	}
	if s.now().After(inv.ExpiresAt) {
		return nil, domain.ErrTokenExpired
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, pin)
	if err != nil {
		return nil, fmt.Errorf("failed to hash pin: %w", err)
	}
	nowTime := s.now()
	user := domain.NewUser(username, hash, salt, domain.RoleUser, inv.CreatedBy, nowTime, nowTime)
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *identityService) ChangePIN(ctx context.Context, username, oldPIN, newPIN string) error {
	if !pinRegexp.MatchString(newPIN) {
		return domain.ErrInvalidPIN
	}
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrInvalidCredentials
		}
		return fmt.Errorf("failed to get user: %w", err)
	}
	if err := s.hasher.Compare(user.PINHash, user.PINSalt, oldPIN); err != nil {
		return domain.ErrInvalidCredentials
	}
	return s.updatePIN(ctx, user.Username, newPIN)
}

func (s *identityService) updatePIN(ctx context.Context, username, newPIN string) error {
	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, newPIN)
	if err != nil {
		return fmt.Errorf("failed to hash pin: %w", err)
	}
	if err := s.userRepo.UpdatePIN(ctx, username, hash, salt, s.now()); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("failed to update pin: %w", err)
	}
	return nil
}

func (s *identityService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *identityService) RequireUser(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAuthRequired
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *identityService) RequireAdmin(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.RequireUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return user, nil
}

// IssueInvite generates a 6-digit code. Collisions are not checked: tokens
// expire after 24 hours and the keyspace is large at this scale.
func (s *identityService) IssueInvite(ctx context.Context, adminUsername, email string) (*domain.InvitationToken, error) {
	admin, err := s.RequireAdmin(ctx, adminUsername)
	if err != nil {
		return nil, err
	}
	token, err := generateInviteToken(inviteTokenDigits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	nowTime := s.now()
	inv := &domain.InvitationToken{
		Token:             token,
		CreatedBy:         admin.ID,
		CreatedByUsername: admin.Username,
		ExpiresAt:         nowTime.Add(inviteTokenTTL),
		CreatedAt:         nowTime,
	}
	if err := s.inviteRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to store invitation: %w", err)
	}
	if email != "" && s.emailService != nil {
		data := &domain.InvitationEmailData{
			Email:     email,
			Token:     inv.Token,
			InvitedBy: admin.Username,
			ExpiresAt: inv.ExpiresAt,
		}
		if err := s.emailService.SendInvitation(ctx, data); err != nil {
			// The token is already stored and usable; a mail failure
			// should not void the invitation.
			s.logger.ErrorContext(ctx, "invitation email failed", "to", email, "err", err)
		}
	}
	return inv, nil
}

func (s *identityService) ListUsers(ctx context.Context, adminUsername string) ([]*domain.User, error) {
	if _, err := s.RequireAdmin(ctx, adminUsername); err != nil {
		return nil, err
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *identityService) DeleteUser(ctx context.Context, adminUsername, username string) error {
	if _, err := s.RequireAdmin(ctx, adminUsername); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, username); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *identityService) ResetPIN(ctx context.Context, adminUsername, username, newPIN string) error {
	if _, err := s.RequireAdmin(ctx, adminUsername); err != nil {
		return err
	}
	if !pinRegexp.MatchString(newPIN) {
		return domain.ErrInvalidPIN
	}
	return s.updatePIN(ctx, username, newPIN)
}

func generateInviteToken(digits int) (string, error) {
	const digitspace = "0123456789"
	b := make([]byte, digits)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = digitspace[int(b[i])%len(digitspace)]
	}
	return string(b), nil
}
