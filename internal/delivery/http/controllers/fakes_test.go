package controllers

import (
	"context"
	"io"
	"log/slog"
	"time"

	"soccerslotmanager/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fakeIdentityService implements domain.IdentityService for handler tests.
type fakeIdentityService struct {
	loginToken string
	loginUser  *domain.User
	loginErr   error

	signUpUser *domain.User
	signUpErr  error
	gotSignUp  []string

	changePINErr error

	getByIDUser *domain.User
	getByIDErr  error

	invite    *domain.InvitationToken
	inviteErr error
	gotEmail  string

	users    []*domain.User
	listErr  error
	deleteErr error
	resetErr  error
	gotTarget string
}

func (f *fakeIdentityService) Login(ctx context.Context, username, pin string) (string, *domain.User, error) {
	if f.loginErr != nil {
		return "", nil, f.loginErr
	}
	return f.loginToken, f.loginUser, nil
}

func (f *fakeIdentityService) SignUp(ctx context.Context, inviteToken, username, pin string) (*domain.User, error) {
	f.gotSignUp = []string{inviteToken, username, pin}
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return f.signUpUser, nil
}

func (f *fakeIdentityService) ChangePIN(ctx context.Context, username, oldPIN, newPIN string) error {
	return f.changePINErr
}

func (f *fakeIdentityService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	return f.getByIDUser, nil
}

func (f *fakeIdentityService) RequireUser(ctx context.Context, username string) (*domain.User, error) {
	return nil, nil
}

func (f *fakeIdentityService) RequireAdmin(ctx context.Context, username string) (*domain.User, error) {
	return nil, nil
}

func (f *fakeIdentityService) IssueInvite(ctx context.Context, adminUsername, email string) (*domain.InvitationToken, error) {
	f.gotEmail = email
	if f.inviteErr != nil {
		return nil, f.inviteErr
	}
	return f.invite, nil
}

func (f *fakeIdentityService) ListUsers(ctx context.Context, adminUsername string) ([]*domain.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.users, nil
}

func (f *fakeIdentityService) DeleteUser(ctx context.Context, adminUsername, username string) error {
	f.gotTarget = username
	return f.deleteErr
}

func (f *fakeIdentityService) ResetPIN(ctx context.Context, adminUsername, username, newPIN string) error {
	f.gotTarget = username
	return f.resetErr
}

// fakeSlotService implements domain.SlotService for handler tests.
type fakeSlotService struct {
	view    *domain.SlotView
	viewErr error
	gotAsOf *time.Time

	slot    *domain.Slot
	slotErr error

	gotKind          string
	gotParticipantID string
	gotTeamA         []string
	gotTeamB         []string
	gotScores        [2]int

	historySlots []*domain.Slot
	historyTotal int
	historyErr   error
	gotParams    domain.PaginationParams
}

func (f *fakeSlotService) CurrentView(ctx context.Context, asOf *time.Time) (*domain.SlotView, error) {
	f.gotAsOf = asOf
	if f.viewErr != nil {
		return nil, f.viewErr
	}
	return f.view, nil
}

func (f *fakeSlotService) RegisterPlayer(ctx context.Context, username string) (*domain.SlotView, error) {
	if f.viewErr != nil {
		return nil, f.viewErr
	}
	return f.view, nil
}

func (f *fakeSlotService) RegisterGuest(ctx context.Context, username, guestName string) (*domain.SlotView, error) {
	if f.viewErr != nil {
		return nil, f.viewErr
	}
	return f.view, nil
}

func (f *fakeSlotService) Unregister(ctx context.Context, actorUsername, kind, participantID string) (*domain.SlotView, error) {
	f.gotKind = kind
	f.gotParticipantID = participantID
	if f.viewErr != nil {
		return nil, f.viewErr
	}
	return f.view, nil
}

func (f *fakeSlotService) SetTeams(ctx context.Context, adminUsername string, teamA, teamB []string) (*domain.Slot, error) {
	f.gotTeamA, f.gotTeamB = teamA, teamB
	if f.slotErr != nil {
		return nil, f.slotErr
	}
	return f.slot, nil
}

func (f *fakeSlotService) SetScores(ctx context.Context, adminUsername string, teamAScore, teamBScore int) (*domain.Slot, error) {
	f.gotScores = [2]int{teamAScore, teamBScore}
	if f.slotErr != nil {
		return nil, f.slotErr
	}
	return f.slot, nil
}

func (f *fakeSlotService) SlotDetail(ctx context.Context, adminUsername, slotID string) (*domain.Slot, error) {
	if f.slotErr != nil {
		return nil, f.slotErr
	}
	return f.slot, nil
}

func (f *fakeSlotService) History(ctx context.Context, username string, params domain.PaginationParams) ([]*domain.Slot, int, error) {
	f.gotParams = params
	if f.historyErr != nil {
		return nil, 0, f.historyErr
	}
	return f.historySlots, f.historyTotal, nil
}

// fakeStatsService implements domain.StatsService for handler tests.
type fakeStatsService struct {
	overview    *domain.StatsOverview
	overviewErr error
	userStats   *domain.UserStats
	userErr     error
	gotUsername string
}

func (f *fakeStatsService) Overview(ctx context.Context) (*domain.StatsOverview, error) {
	if f.overviewErr != nil {
		return nil, f.overviewErr
	}
	return f.overview, nil
}

func (f *fakeStatsService) ForUsername(ctx context.Context, username string) (*domain.UserStats, error) {
	f.gotUsername = username
	if f.userErr != nil {
		return nil, f.userErr
	}
	return f.userStats, nil
}
