package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"soccerslotmanager/internal/domain"
	"soccerslotmanager/internal/matchday"
)

const maxGuestNameLength = 100

type slotService struct {
	slotRepo domain.SlotRepository
	userRepo domain.UserRepository
	now      func() time.Time
}

// NewSlotService creates a SlotService. now may be nil and defaults to time.Now.
func NewSlotService(slotRepo domain.SlotRepository, userRepo domain.UserRepository, now func() time.Time) domain.SlotService {
	if now == nil {
		now = time.Now
	}
	return &slotService{
		slotRepo: slotRepo,
		userRepo: userRepo,
		now:      now,
	}
}

func (s *slotService) CurrentView(ctx context.Context, asOf *time.Time) (*domain.SlotView, error) {
	nowTime := s.now()
	if asOf != nil {
		nowTime = *asOf
	}
	slot, err := s.slotRepo.GetOrCreateByDate(ctx, matchday.Next(nowTime))
	if err != nil {
		return nil, fmt.Errorf("failed to load current slot: %w", err)
	}
	return buildView(slot, nowTime), nil
}

// RegisterPlayer gates in order: registration window, user exists, then
// capacity and duplicate checks which the repository enforces atomically.
func (s *slotService) RegisterPlayer(ctx context.Context, username string) (*domain.SlotView, error) {
	nowTime := s.now()
	if !matchday.RegistrationOpen(nowTime) {
		return nil, domain.ErrRegistrationClosed
	}
	user, err := s.requireUser(ctx, username)
	if err != nil {
		return nil, err
	}
	slot, err := s.slotRepo.GetOrCreateByDate(ctx, matchday.Next(nowTime))
	if err != nil {
		return nil, fmt.Errorf("failed to load current slot: %w", err)
	}
	player := &domain.SlotPlayer{
		UserID:       user.ID,
		Username:     user.Username,
		RegisteredAt: nowTime,
	}
	if err := s.slotRepo.AddPlayer(ctx, slot.ID, player); err != nil {
		if errors.Is(err, domain.ErrSlotFull) || errors.Is(err, domain.ErrAlreadyRegistered) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to register player: %w", err)
	}
	return s.reload(ctx, slot.ID, nowTime)
}

func (s *slotService) RegisterGuest(ctx context.Context, username, guestName string) (*domain.SlotView, error) {
	nowTime := s.now()
	if !matchday.RegistrationOpen(nowTime) {
		return nil, domain.ErrRegistrationClosed
	}
	guestName = strings.TrimSpace(guestName)
	if guestName == "" || len(guestName) > maxGuestNameLength {
		return nil, domain.ErrInvalidGuestName
	}
	user, err := s.requireUser(ctx, username)
	if err != nil {
		return nil, err
	}
	slot, err := s.slotRepo.GetOrCreateByDate(ctx, matchday.Next(nowTime))
	if err != nil {
		return nil, fmt.Errorf("failed to load current slot: %w", err)
	}
	guest := &domain.SlotGuest{
		ID:                uuid.NewString(),
		Name:              guestName,
		InvitedByID:       user.ID,
		InvitedByUsername: user.Username,
		RegisteredAt:      nowTime,
	}
	if err := s.slotRepo.AddGuest(ctx, slot.ID, guest); err != nil {
		if errors.Is(err, domain.ErrSlotFull) || errors.Is(err, domain.ErrDuplicateGuestName) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to register guest: %w", err)
	}
	return s.reload(ctx, slot.ID, nowTime)
}

// Unregister takes a typed target: kind "player" with the user id, or
// "guest" with the guest id. Admins remove anyone; players remove
// themselves; inviters remove their own guests.
func (s *slotService) Unregister(ctx context.Context, actorUsername, kind, participantID string) (*domain.SlotView, error) {
	nowTime := s.now()
	actor, err := s.requireUser(ctx, actorUsername)
	if err != nil {
		return nil, err
	}
	slot, err := s.slotRepo.GetOrCreateByDate(ctx, matchday.Next(nowTime))
	if err != nil {
		return nil, fmt.Errorf("failed to load current slot: %w", err)
	}

	switch kind {
	case domain.KindPlayer:
		target := slot.PlayerByUserID(participantID)
		if target == nil {
			return nil, domain.ErrParticipantNotFound
		}
		if !actor.IsAdmin() && actor.ID != target.UserID {
			return nil, domain.ErrForbidden
		}
		if err := s.slotRepo.RemovePlayer(ctx, slot.ID, target.UserID); err != nil {
			if errors.Is(err, domain.ErrParticipantNotFound) {
				return nil, err
			}
			return nil, fmt.Errorf("failed to remove player: %w", err)
		}
	case domain.KindGuest:
		target := slot.GuestByID(participantID)
		if target == nil {
			return nil, domain.ErrParticipantNotFound
		}
		if !actor.IsAdmin() && actor.ID != target.InvitedByID {
			return nil, domain.ErrForbidden
		}
		if err := s.slotRepo.RemoveGuest(ctx, slot.ID, target.ID); err != nil {
			if errors.Is(err, domain.ErrParticipantNotFound) {
				return nil, err
			}
			return nil, fmt.Errorf("failed to remove guest: %w", err)
		}
	default:
		return nil, domain.ErrParticipantNotFound
	}
	return s.reload(ctx, slot.ID, nowTime)
}

func (s *slotService) SetTeams(ctx context.Context, adminUsername string, teamA, teamB []string) (*domain.Slot, error) {
	if err := s.requireAdmin(ctx, adminUsername); err != nil {
		return nil, err
	}
	if len(teamA) != domain.TeamSize || len(teamB) != domain.TeamSize {
		return nil, domain.ErrInvalidTeamSize
	}
	union := make(map[string]struct{}, len(teamA)+len(teamB))
	for _, id := range append(append([]string{}, teamA...), teamB...) {
		union[id] = struct{}{}
	}
	if len(union) != domain.TeamSize*2 {
		return nil, domain.ErrTeamOverlap
	}

	slot, err := s.slotRepo.GetOrCreateByDate(ctx, matchday.Next(s.now()))
	if err != nil {
		return nil, fmt.Errorf("failed to load current slot: %w", err)
	}
	members := make([]*domain.TeamMember, 0, len(teamA)+len(teamB))
	for team, ids := range map[string][]string{domain.TeamA: teamA, domain.TeamB: teamB} {
		for pos, id := range ids {
			kind, err := resolveParticipantKind(slot, id)
			if err != nil {
				return nil, err
			}
			members = append(members, &domain.TeamMember{
				SlotID:        slot.ID,
				Team:          team,
				ParticipantID: id,
				Kind:          kind,
				Position:      pos,
			})
		}
	}
	if err := s.slotRepo.ReplaceTeams(ctx, slot.ID, members); err != nil {
		return nil, fmt.Errorf("failed to set teams: %w", err)
	}
	return s.slotRepo.GetByID(ctx, slot.ID)
}

func resolveParticipantKind(slot *domain.Slot, id string) (string, error) {
	if slot.PlayerByUserID(id) != nil {
		return domain.KindPlayer, nil
	}
	if slot.GuestByID(id) != nil {
		return domain.KindGuest, nil
	}
	return "", domain.ErrUnknownParticipant
}

// SetScores overwrites unconditionally; team composition is not required.
func (s *slotService) SetScores(ctx context.Context, adminUsername string, teamAScore, teamBScore int) (*domain.Slot, error) {
	if err := s.requireAdmin(ctx, adminUsername); err != nil {
		return nil, err
	}
	if teamAScore < 0 || teamBScore < 0 {
		return nil, domain.ErrInvalidScore
	}
	slot, err := s.slotRepo.GetOrCreateByDate(ctx, matchday.Next(s.now()))
	if err != nil {
		return nil, fmt.Errorf("failed to load current slot: %w", err)
	}
	if err := s.slotRepo.SetScores(ctx, slot.ID, teamAScore, teamBScore); err != nil {
		return nil, fmt.Errorf("failed to set scores: %w", err)
	}
	return s.slotRepo.GetByID(ctx, slot.ID)
}

func (s *slotService) SlotDetail(ctx context.Context, adminUsername, slotID string) (*domain.Slot, error) {
	if err := s.requireAdmin(ctx, adminUsername); err != nil {
		return nil, err
	}
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, domain.ErrSlotNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load slot: %w", err)
	}
	return slot, nil
}

func (s *slotService) History(ctx context.Context, username string, params domain.PaginationParams) ([]*domain.Slot, int, error) {
	if _, err := s.requireUser(ctx, username); err != nil {
		return nil, 0, err
	}
	slots, total, err := s.slotRepo.ListPage(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list slots: %w", err)
	}
	return slots, total, nil
}

func (s *slotService) requireUser(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAuthRequired
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *slotService) requireAdmin(ctx context.Context, username string) error {
	user, err := s.requireUser(ctx, username)
	if err != nil {
		return err
	}
	if !user.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

func (s *slotService) reload(ctx context.Context, slotID string, nowTime time.Time) (*domain.SlotView, error) {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload slot: %w", err)
	}
	return buildView(slot, nowTime), nil
}

// buildView assembles the display shape: players first in registration
// order, then guests in registration order. The combined list is never
// interleaved by timestamp even though timestamps are tracked per entry.
func buildView(slot *domain.Slot, nowTime time.Time) *domain.SlotView {
	view := &domain.SlotView{
		ID:               slot.ID,
		Date:             slot.Date.Format(time.RFC3339),
		Players:          make([]string, 0, slot.OccupantCount()),
		Timestamps:       make([]time.Time, 0, slot.OccupantCount()),
		Participants:     make([]*domain.Participant, 0, slot.OccupantCount()),
		PlayerCount:      slot.OccupantCount(),
		MaxPlayers:       domain.MaxPlayers,
		TeamAScore:       slot.TeamAScore,
		TeamBScore:       slot.TeamBScore,
		RegistrationOpen: matchday.RegistrationOpen(nowTime),
	}

	participantsByID := make(map[string]*domain.Participant, slot.OccupantCount())
	for _, p := range slot.Players {
		entry := &domain.Participant{
			ID:           p.UserID,
			Kind:         domain.KindPlayer,
			DisplayName:  p.Username,
			RegisteredAt: p.RegisteredAt,
		}
		view.Players = append(view.Players, p.Username)
		view.Timestamps = append(view.Timestamps, p.RegisteredAt)
		view.Participants = append(view.Participants, entry)
		participantsByID[entry.ID] = entry
	}
	for _, g := range slot.Guests {
		entry := &domain.Participant{
			ID:           g.ID,
			Kind:         domain.KindGuest,
			DisplayName:  guestDisplayName(g),
			RegisteredAt: g.RegisteredAt,
		}
		view.Players = append(view.Players, entry.DisplayName)
		view.Timestamps = append(view.Timestamps, g.RegisteredAt)
		view.Participants = append(view.Participants, entry)
		participantsByID[entry.ID] = entry
	}

	for _, m := range slot.TeamMembers {
		entry, ok := participantsByID[m.ParticipantID]
		if !ok {
			continue
		}
		switch m.Team {
		case domain.TeamA:
			view.TeamA = append(view.TeamA, entry)
		case domain.TeamB:
			view.TeamB = append(view.TeamB, entry)
		}
	}
	return view
}

// guestDisplayName is the legacy rendering of a guest in the combined list.
// Display only: removal targets are typed, never parsed back out of this.
func guestDisplayName(g *domain.SlotGuest) string {
	return fmt.Sprintf("(Invité) %s [par %s]", g.Name, g.InvitedByUsername)
}
