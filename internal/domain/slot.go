package domain

import (
	"context"
	"errors"
	"time"
)

// MaxPlayers is the occupant capacity of a slot (players plus guests).
const MaxPlayers = 10

// TeamSize is the required roster size of each team.
const TeamSize = 5

// Team labels.
const (
	TeamA = "A"
	TeamB = "B"
)

// Participant kinds.
const (
	KindPlayer = "player"
	KindGuest  = "guest"
)

// Sentinel errors for slot operations.
var (
	ErrSlotNotFound        = errors.New("slot not found")
	ErrSlotFull            = errors.New("slot is full")
	ErrAlreadyRegistered   = errors.New("player already registered")
	ErrDuplicateGuestName  = errors.New("guest name already registered")
	ErrInvalidGuestName    = errors.New("guest name must be 1 to 100 characters")
	ErrRegistrationClosed  = errors.New("registration window closed")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrInvalidTeamSize     = errors.New("each team must have exactly 5 members")
	ErrTeamOverlap         = errors.New("teams must be disjoint")
	ErrUnknownParticipant  = errors.New("id does not match a slot participant")
	ErrInvalidScore        = errors.New("scores must be non-negative integers")
)

// Slot is the weekly match instance, keyed by its Wednesday-19:00 timestamp.
// Fullness is always derived from len(Players)+len(Guests); it is never stored.
// swagger:model Slot
type Slot struct {
	ID          string        `json:"id"`
	Date        time.Time     `json:"date"`
	Players     []*SlotPlayer `json:"players"`
	Guests      []*SlotGuest  `json:"guests"`
	TeamMembers []*TeamMember `json:"team_members,omitempty"`
	TeamAScore  *int          `json:"team_a_score,omitempty"`
	TeamBScore  *int          `json:"team_b_score,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// OccupantCount returns the number of players plus guests.
func (s *Slot) OccupantCount() int {
	return len(s.Players) + len(s.Guests)
}

// PlayerByUserID returns the registration of the given user, or nil.
func (s *Slot) PlayerByUserID(userID string) *SlotPlayer {
	for _, p := range s.Players {
		if p.UserID == userID {
			return p
		}
	}
	return nil
}

// GuestByID returns the guest with the given id, or nil.
func (s *Slot) GuestByID(guestID string) *SlotGuest {
	for _, g := range s.Guests {
		if g.ID == guestID {
			return g
		}
	}
	return nil
}

// SlotPlayer is a user registered for a slot. Insertion order is display order.
// swagger:model SlotPlayer
type SlotPlayer struct {
	ID           string    `json:"id"`
	SlotID       string    `json:"slot_id"`
	UserID       string    `json:"user_id"`
	Username     string    `json:"username"`
	RegisteredAt time.Time `json:"registered_at"`
}

// SlotGuest is a guest brought by a registered user, counted against capacity.
// swagger:model SlotGuest
type SlotGuest struct {
	ID                string    `json:"id"`
	SlotID            string    `json:"slot_id"`
	Name              string    `json:"name"`
	InvitedByID       string    `json:"invited_by_id"`
	InvitedByUsername string    `json:"invited_by_username"`
	RegisteredAt      time.Time `json:"registered_at"`
}

// TeamMember assigns one slot participant (player or guest) to a team roster.
// swagger:model TeamMember
type TeamMember struct {
	SlotID        string `json:"slot_id"`
	Team          string `json:"team"`
	ParticipantID string `json:"participant_id"`
	Kind          string `json:"kind"`
	Position      int    `json:"position"`
}

// Participant is a display entry of the combined players+guests list.
// swagger:model Participant
type Participant struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	DisplayName  string    `json:"display_name"`
	RegisteredAt time.Time `json:"registered_at"`
}

// SlotView is the assembled display shape of a slot: the combined legacy
// player list (players first, then guests, both in registration order), a
// parallel timestamps list, typed participants, resolved team rosters,
// scores, and the live registration-open flag.
// swagger:model SlotView
type SlotView struct {
	ID               string         `json:"id"`
	Date             string         `json:"date"`
	Players          []string       `json:"players"`
	Timestamps       []time.Time    `json:"timestamps"`
	Participants     []*Participant `json:"participants"`
	PlayerCount      int            `json:"player_count"`
	MaxPlayers       int            `json:"max_players"`
	TeamA            []*Participant `json:"team_a,omitempty"`
	TeamB            []*Participant `json:"team_b,omitempty"`
	TeamAScore       *int           `json:"team_a_score,omitempty"`
	TeamBScore       *int           `json:"team_b_score,omitempty"`
	RegistrationOpen bool           `json:"registration_open"`
}

// SlotRepository defines the interface for slot storage. Mutations that
// depend on current occupancy (AddPlayer, AddGuest) must be atomic with
// respect to concurrent mutations of the same slot.
type SlotRepository interface {
	GetOrCreateByDate(ctx context.Context, date time.Time) (*Slot, error)
	GetByDate(ctx context.Context, date time.Time) (*Slot, error)
	GetByID(ctx context.Context, id string) (*Slot, error)
	ListPage(ctx context.Context, params PaginationParams) (slots []*Slot, total int, err error)
	AddPlayer(ctx context.Context, slotID string, player *SlotPlayer) error
	AddGuest(ctx context.Context, slotID string, guest *SlotGuest) error
	RemovePlayer(ctx context.Context, slotID, userID string) error
	RemoveGuest(ctx context.Context, slotID, guestID string) error
	ReplaceTeams(ctx context.Context, slotID string, members []*TeamMember) error
	SetScores(ctx context.Context, slotID string, teamAScore, teamBScore int) error
}

// SlotService defines the slot lifecycle operations.
type SlotService interface {
	// CurrentView returns the view of the current slot, creating it lazily.
	// A non-nil asOf overrides the clock (display/testing aid).
	CurrentView(ctx context.Context, asOf *time.Time) (*SlotView, error)
	RegisterPlayer(ctx context.Context, username string) (*SlotView, error)
	RegisterGuest(ctx context.Context, username, guestName string) (*SlotView, error)
	// Unregister removes one participant, identified by a typed target
	// (kind "player" with the user id, or "guest" with the guest id).
	// Allowed for admins, the player themself, or the guest's inviter.
	Unregister(ctx context.Context, actorUsername, kind, participantID string) (*SlotView, error)
	SetTeams(ctx context.Context, adminUsername string, teamA, teamB []string) (*Slot, error)
	SetScores(ctx context.Context, adminUsername string, teamAScore, teamBScore int) (*Slot, error)
	// SlotDetail returns the raw slot (ids, rosters, scores) for admins.
	SlotDetail(ctx context.Context, adminUsername, slotID string) (*Slot, error)
	// History lists past and current slots, newest first.
	History(ctx context.Context, username string, params PaginationParams) ([]*Slot, int, error)
}
