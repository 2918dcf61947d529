package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"soccerslotmanager/internal/delivery/http/helpers"
	"soccerslotmanager/internal/domain"
)

// RegisterRequest is the request body for POST /api/register
type RegisterRequest struct {
	Name string `json:"name"`
}

// Validate implements Validator.
func (r RegisterRequest) Validate() []string {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return []string{"Le nom est requis."}
	}
	if len(name) > 100 {
		return []string{"Le nom est trop long (100 caractères maximum)."}
	}
	return nil
}

// RegisterGuestRequest is the request body for POST /api/register-guest
type RegisterGuestRequest struct {
	GuestName string `json:"guestName"`
}

// Validate implements Validator.
func (r RegisterGuestRequest) Validate() []string {
	name := strings.TrimSpace(r.GuestName)
	if name == "" {
		return []string{"Le nom de l'invité est requis."}
	}
	if len(name) > 100 {
		return []string{"Le nom de l'invité est trop long (100 caractères maximum)."}
	}
	return nil
}

// SlotHistoryResponse is the response body for GET /api/slots
type SlotHistoryResponse struct {
	Slots      []*domain.Slot         `json:"slots"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// SlotController handles the current slot view and registrations.
type SlotController struct {
	Logger  *slog.Logger
	Service domain.SlotService
}

// NewSlotController creates a SlotController with the given logger and service.
func NewSlotController(logger *slog.Logger, svc domain.SlotService) *SlotController {
	return &SlotController{Logger: logger, Service: svc}
}

// CurrentSlot godoc
// @Summary Get the current slot
// @Description Returns the upcoming match slot with its participants, teams, scores, and whether registration is open. Creates the slot lazily. An as_of query parameter (RFC 3339) overrides the clock for display purposes.
// @Tags slots
// @Produce json
// @Param as_of query string false "Reference instant (RFC 3339)"
// @Success 200 {object} domain.SlotView
// @Failure 422 {object} helpers.APIError
// @Router /api/current-slot [get]
func (c *SlotController) CurrentSlot(w http.ResponseWriter, r *http.Request) {
	var asOf *time.Time
	if raw := r.URL.Query().Get("as_of"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			helpers.WriteDetail(w, http.StatusUnprocessableEntity, "Le paramètre as_of doit être une date RFC 3339.")
			return
		}
		asOf = &t
	}
	view, err := c.Service.CurrentView(r.Context(), asOf)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, view)
}

// Register godoc
// @Summary Register for the current match
// @Description Registers the caller (identified by the username query parameter) for the upcoming match. Fails when registration is closed, the slot is full, or the caller is already registered.
// @Tags slots
// @Accept json
// @Produce json
// @Param username query string true "Caller username"
// @Param body body RegisterRequest true "Display name"
// @Success 200 {object} domain.SlotView
// @Failure 400 {object} helpers.APIError
// @Failure 401 {object} helpers.APIError
// @Failure 422 {object} helpers.APIError
// @Router /api/register [post]
func (c *SlotController) Register(w http.ResponseWriter, r *http.Request) {
	username, ok := helpers.UsernameParam(w, r)
	if !ok {
		return
	}
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	view, err := c.Service.RegisterPlayer(r.Context(), username)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, view)
}

// RegisterGuest godoc
// @Summary Register a guest
// @Description Adds a guest to the upcoming match, sponsored by the caller. Guest names are unique per slot (exact match).
// @Tags slots
// @Accept json
// @Produce json
// @Param username query string true "Caller username"
// @Param body body RegisterGuestRequest true "Guest name"
// @Success 200 {object} domain.SlotView
// @Failure 400 {object} helpers.APIError
// @Failure 401 {object} helpers.APIError
// @Failure 422 {object} helpers.APIError
// @Router /api/register-guest [post]
func (c *SlotController) RegisterGuest(w http.ResponseWriter, r *http.Request) {
	username, ok := helpers.UsernameParam(w, r)
	if !ok {
		return
	}
	var req RegisterGuestRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	view, err := c.Service.RegisterGuest(r.Context(), username, req.GuestName)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, view)
}

// Unregister godoc
// @Summary Remove a participant
// @Description Removes a player or guest from the upcoming match. Allowed for admins, the player themself, or the guest's inviter. Removal also clears any team assignment.
// @Tags slots
// @Produce json
// @Param username query string true "Caller username"
// @Param kind path string true "Participant kind" Enums(player, guest)
// @Param participantID path string true "User ID for players, guest ID for guests"
// @Success 200 {object} domain.SlotView
// @Failure 401 {object} helpers.APIError
// @Failure 403 {object} helpers.APIError
// @Failure 404 {object} helpers.APIError
// @Failure 422 {object} helpers.APIError
// @Router /api/unregister/{kind}/{participantID} [delete]
func (c *SlotController) Unregister(w http.ResponseWriter, r *http.Request) {
	username, ok := helpers.UsernameParam(w, r)
	if !ok {
		return
	}
	kind := r.PathValue("kind")
	if kind != domain.KindPlayer && kind != domain.KindGuest {
		helpers.WriteDetail(w, http.StatusUnprocessableEntity, "Le type de participant doit être 'player' ou 'guest'.")
		return
	}
	view, err := c.Service.Unregister(r.Context(), username, kind, r.PathValue("participantID"))
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, view)
}

// History godoc
// @Summary List slot history
// @Description Returns past and current slots, newest first, with pagination metadata.
// @Tags slots
// @Produce json
// @Param username query string true "Caller username"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.SlotHistoryResponse
// @Failure 401 {object} helpers.APIError
// @Failure 422 {object} helpers.APIError
// @Router /api/slots [get]
func (c *SlotController) History(w http.ResponseWriter, r *http.Request) {
	username, ok := helpers.UsernameParam(w, r)
	if !ok {
		return
	}
	params := helpers.ParsePagination(r)
	slots, total, err := c.Service.History(r.Context(), username, params)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, SlotHistoryResponse{
		Slots:      slots,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}
