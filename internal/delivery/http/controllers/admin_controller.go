package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"soccerslotmanager/internal/delivery/http/helpers"
	"soccerslotmanager/internal/domain"
)

// CreateInvitationRequest is the request body for POST /api/admin/invitations
type CreateInvitationRequest struct {
	Email string `json:"email"`
}

// CreateInvitationResponse is the response body for POST /api/admin/invitations
type CreateInvitationResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ResetPINRequest is the request body for POST /api/admin/users/{username}/reset-pin
type ResetPINRequest struct {
	NewPIN string `json:"newPin"`
}

// Validate implements Validator.
func (r ResetPINRequest) Validate() []string {
	if r.NewPIN == "" {
		return []string{"Le nouveau code PIN est requis."}
	}
	return nil
}

// SetTeamsRequest is the request body for PUT /api/admin/slots/current/teams
type SetTeamsRequest struct {
	TeamA []string `json:"teamA"`
	TeamB []string `json:"teamB"`
}

// SetScoresRequest is the request body for PUT /api/admin/slots/current/scores
type SetScoresRequest struct {
	TeamAScore *int `json:"teamAScore"`
	TeamBScore *int `json:"teamBScore"`
}

// Validate implements Validator.
func (r SetScoresRequest) Validate() []string {
	if r.TeamAScore == nil || r.TeamBScore == nil {
		return []string{"Les deux scores sont requis."}
	}
	return nil
}

// UserListResponse is the response body for GET /api/admin/users
type UserListResponse struct {
	Users []*domain.User `json:"users"`
}

// MessageResponse is a simple success acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// AdminController handles user management, invitations, teams, and scores.
type AdminController struct {
	Logger   *slog.Logger
	Identity domain.IdentityService
	Slots    domain.SlotService
}

// NewAdminController creates an AdminController with the given logger and services.
func NewAdminController(logger *slog.Logger, identity domain.IdentityService, slots domain.SlotService) *AdminController {
	return &AdminController{Logger: logger, Identity: identity, Slots: slots}
}

// ListUsers godoc
// @Summary List users
// @Description Returns every registered account. Admin only.
// @Tags admin
// @Produce json
// @Param username query string true "Admin username"
// @Success 200 {object} controllers.UserListResponse
// @Failure 401 {object} helpers.APIError
// @Failure 403 {object} helpers.APIError
// @Router /api/admin/users [get]
func (c *AdminController) ListUsers(w http.ResponseWriter, r *http.Request) {
	username, ok := helpers.UsernameParam(w, r)
	if !ok {
		return
	}
	users, err := c.Identity.ListUsers(r.Context(), username)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, UserListResponse{Users: users})
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Deletes an account by username. Admin only.
// @Tags admin
// @Produce json
// @Param username query string true "Admin username"
// @Param target path string true "Username to delete"
// @Success 200 {object} controllers.MessageResponse
// @Failure 401 {object} helpers.APIError
// @Failure 403 {object} helpers.APIError
// @Failure 404 {object} helpers.APIError
// @Router /api/admin/users/{target} [delete]
func (c *AdminController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	username, ok := helpers.UsernameParam(w, r)
	if !ok {
		return
	}
	if err := c.Identity.DeleteUser(r.Context(), username, r.PathValue("target")); err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, MessageResponse{Message: "Utilisateur supprimé."})
}

// ResetPIN godoc
// @Summary Reset a user's PIN
// @Description Sets a new 4-digit PIN for the given account. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Param username query string true "Admin username"
// @Param target path string true "Username whose PIN is reset"
// @Param body body ResetPINRequest true "New PIN"
// @Success 200 {object} controllers.MessageResponse
// @Failure 400 {object} helpers.APIError
// @Failure 401 {object} helpers.APIError
// @Failure 403 {object} helpers.APIError
// @Failure 404 {object} helpers.APIError
// @Router /api/admin/users/{target}/reset-pin [post]
func (c *AdminController) ResetPIN(w http.ResponseWriter, r *http.Request) {
	username, ok := helpers.UsernameParam(w, r)
	if !ok {
		return
	}
	var req ResetPINRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Identity.ResetPIN(r.Context(), username, r.PathValue("target"), req.NewPIN); err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, MessageResponse{Message: "Code PIN réinitialisé."})
}

// CreateInvitation godoc
// @Summary Create an invitation token
// @Description Issues a single-use 6-digit invitation token valid for 24 hours. When an email address is given, the token is mailed to the invitee; a mail failure does not void the token. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Param username query string true "Admin username"
// @Param body body CreateInvitationRequest false "Optional invitee email"
// @Success 201 {object} controllers.CreateInvitationResponse
// @Failure 401 {object} helpers.APIError
// @Failure 403 {object} helpers.APIError
// @Router /api/admin/invitations [post]
func (c *AdminController) CreateInvitation(w http.ResponseWriter, r *http.Request) {
	username, ok := helpers.UsernameParam(w, r)
	if !ok {
		return
	}
	var req CreateInvitationRequest
	if r.ContentLength != 0 {
		if !helpers.DecodeAndValidate(w, r, &req) {
			return
		}
	}
	invite, err := c.Identity.IssueInvite(r.Context(), username, req.Email)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, CreateInvitationResponse{Token: invite.Token, ExpiresAt: invite.ExpiresAt})
}

// SetTeams godoc
// @Summary Assign teams
// @Description Replaces the team composition of the current slot: two disjoint teams of exactly 5 participants each, covering all 10 registered participants. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Param username query string true "Admin username"
// @Param body body SetTeamsRequest true "Participant IDs per team"
// @Success 200 {object} domain.Slot
// @Failure 400 {object} helpers.APIError
// @Failure 401 {object} helpers.APIError
// @Failure 403 {object} helpers.APIError
// @Router /api/admin/slots/current/teams [put]
func (c *AdminController) SetTeams(w http.ResponseWriter, r *http.Request) {
	username, ok := helpers.UsernameParam(w, r)
	if !ok {
		return
	}
	var req SetTeamsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	slot, err := c.Slots.SetTeams(r.Context(), username, req.TeamA, req.TeamB)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, slot)
}

// SetScores godoc
// @Summary Record the match score
// @Description Sets both team scores for the current slot. Scores must be non-negative; setting them again overwrites the previous result. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Param username query string true "Admin username"
// @Param body body SetScoresRequest true "Final score"
// @Success 200 {object} domain.Slot
// @Failure 400 {object} helpers.APIError
// @Failure 401 {object} helpers.APIError
// @Failure 403 {object} helpers.APIError
// @Router /api/admin/slots/current/scores [put]
func (c *AdminController) SetScores(w http.ResponseWriter, r *http.Request) {
	username, ok := helpers.UsernameParam(w, r)
	if !ok {
		return
	}
	var req SetScoresRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	slot, err := c.Slots.SetScores(r.Context(), username, *req.TeamAScore, *req.TeamBScore)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, slot)
}

// SlotDetail godoc
// @Summary Get a slot by ID
// @Description Returns the raw slot with participant IDs, team assignments, and scores. Admin only.
// @Tags admin
// @Produce json
// @Param username query string true "Admin username"
// @Param slotID path string true "Slot ID"
// @Success 200 {object} domain.Slot
// @Failure 401 {object} helpers.APIError
// @Failure 403 {object} helpers.APIError
// @Failure 404 {object} helpers.APIError
// @Router /api/admin/slots/{slotID} [get]
func (c *AdminController) SlotDetail(w http.ResponseWriter, r *http.Request) {
	username, ok := helpers.UsernameParam(w, r)
	if !ok {
		return
	}
	slot, err := c.Slots.SlotDetail(r.Context(), username, r.PathValue("slotID"))
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, slot)
}
