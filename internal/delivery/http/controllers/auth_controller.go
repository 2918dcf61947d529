package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"soccerslotmanager/internal/delivery/http/helpers"
	"soccerslotmanager/internal/delivery/http/middleware"
	"soccerslotmanager/internal/domain"
)

// LoginRequest is the request body for POST /api/auth/login
type LoginRequest struct {
	Username string `json:"username"`
	PIN      string `json:"pin"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Username) == "" {
		errs = append(errs, "Le nom d'utilisateur est requis.")
	}
	if l.PIN == "" {
		errs = append(errs, "Le code PIN est requis.")
	}
	return errs
}

// LoginResponse is the response body for POST /api/auth/login
type LoginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token,omitempty"`
	User    *domain.User `json:"user,omitempty"`
	Message string       `json:"message"`
}

// SignUpRequest is the request body for POST /api/auth/signup
type SignUpRequest struct {
	Username    string `json:"username"`
	PIN         string `json:"pin"`
	InviteToken string `json:"inviteToken"`
}

// Validate implements Validator.
func (s SignUpRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Username) == "" {
		errs = append(errs, "Le nom d'utilisateur est requis.")
	} else if len(strings.TrimSpace(s.Username)) > 100 {
		errs = append(errs, "Le nom d'utilisateur est trop long (100 caractères maximum).")
	}
	if s.PIN == "" {
		errs = append(errs, "Le code PIN est requis.")
	}
	if strings.TrimSpace(s.InviteToken) == "" {
		errs = append(errs, "Le code d'invitation est requis.")
	}
	return errs
}

// ChangePINRequest is the request body for POST /api/auth/change-pin
type ChangePINRequest struct {
	Username string `json:"username"`
	OldPIN   string `json:"oldPin"`
	NewPIN   string `json:"newPin"`
}

// Validate implements Validator.
func (c ChangePINRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Username) == "" {
		errs = append(errs, "Le nom d'utilisateur est requis.")
	}
	if c.OldPIN == "" {
		errs = append(errs, "L'ancien code PIN est requis.")
	}
	if c.NewPIN == "" {
		errs = append(errs, "Le nouveau code PIN est requis.")
	}
	return errs
}

// ChangePINResponse is the response body for POST /api/auth/change-pin
type ChangePINResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AuthController handles login, signup, PIN change, and the current-user endpoint.
type AuthController struct {
	Logger  *slog.Logger
	Service domain.IdentityService
}

// NewAuthController creates an AuthController with the given logger and service.
func NewAuthController(logger *slog.Logger, svc domain.IdentityService) *AuthController {
	return &AuthController{Logger: logger, Service: svc}
}

// Login godoc
// @Summary Log in
// @Description Authenticate with username and 4-digit PIN. Returns a JWT and the user. An unknown username and a wrong PIN are indistinguishable.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} controllers.LoginResponse
// @Failure 401 {object} controllers.LoginResponse
// @Failure 422 {object} helpers.APIError
// @Router /api/auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, user, err := c.Service.Login(r.Context(), req.Username, req.PIN)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			helpers.WriteJSON(w, http.StatusUnauthorized, LoginResponse{Success: false, Message: "Identifiants invalides."})
			return
		}
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, LoginResponse{Success: true, Token: token, User: user, Message: "Connexion réussie."})
}

// SignUp godoc
// @Summary Sign up with an invitation token
// @Description Redeem a single-use invitation token to create an account. The PIN must be exactly 4 digits.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body SignUpRequest true "Sign-up data"
// @Success 201 {object} domain.User
// @Failure 400 {object} helpers.APIError
// @Failure 404 {object} helpers.APIError
// @Failure 422 {object} helpers.APIError
// @Router /api/auth/signup [post]
func (c *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.SignUp(r.Context(), req.InviteToken, req.Username, req.PIN)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, user)
}

// ChangePIN godoc
// @Summary Change PIN
// @Description Change the caller's PIN. The old credentials must match; the new PIN must be exactly 4 digits.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body ChangePINRequest true "PIN change data"
// @Success 200 {object} controllers.ChangePINResponse
// @Failure 400 {object} helpers.APIError
// @Failure 401 {object} helpers.APIError
// @Router /api/auth/change-pin [post]
func (c *AuthController) ChangePIN(w http.ResponseWriter, r *http.Request) {
	var req ChangePINRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.ChangePIN(r.Context(), req.Username, req.OldPIN, req.NewPIN); err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ChangePINResponse{Success: true, Message: "Code PIN modifié."})
}

// Me godoc
// @Summary Get current user
// @Description Returns the authenticated user's profile. Requires Bearer token.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User
// @Failure 401 {object} helpers.APIError
// @Failure 404 {object} helpers.APIError
// @Router /api/auth/me [get]
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteDetail(w, http.StatusUnauthorized, "Authentification requise.")
		return
	}
	user, err := c.Service.GetByID(r.Context(), userID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, user)
}
