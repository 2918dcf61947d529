package http

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"

	"soccerslotmanager/internal/delivery/http/controllers"
	"soccerslotmanager/internal/delivery/http/middleware"
	"soccerslotmanager/internal/domain"
)

// RouterDeps carries everything the router wires together.
type RouterDeps struct {
	Auth     *controllers.AuthController
	Slots    *controllers.SlotController
	Admin    *controllers.AdminController
	Stats    *controllers.StatsController
	Health   *controllers.HealthController
	Verifier domain.TokenVerifier
	// LoginRateLimit caps credential attempts per IP per minute. Zero disables the limiter.
	LoginRateLimit int
}

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(deps RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()

	requireAuth := middleware.RequireAuth(deps.Verifier)

	limit := func(h http.HandlerFunc) http.Handler {
		if deps.LoginRateLimit <= 0 {
			return h
		}
		return httprate.LimitByIP(deps.LoginRateLimit, time.Minute)(h)
	}

	// Auth
	mux.Handle("POST /api/auth/login", limit(deps.Auth.Login))
	mux.Handle("POST /api/auth/signup", limit(deps.Auth.SignUp))
	mux.Handle("POST /api/auth/change-pin", limit(deps.Auth.ChangePIN))
	mux.HandleFunc("GET /api/auth/me", requireAuth(deps.Auth.Me))

	// Slots
	mux.HandleFunc("GET /api/current-slot", deps.Slots.CurrentSlot)
	mux.HandleFunc("POST /api/register", deps.Slots.Register)
	mux.HandleFunc("POST /api/register-guest", deps.Slots.RegisterGuest)
	mux.HandleFunc("DELETE /api/unregister/{kind}/{participantID}", deps.Slots.Unregister)
	mux.HandleFunc("GET /api/slots", deps.Slots.History)

	// Stats
	mux.HandleFunc("GET /api/stats", deps.Stats.Overview)
	mux.HandleFunc("GET /api/stats/user/{username}", deps.Stats.ForUser)

	// Admin
	mux.HandleFunc("GET /api/admin/users", deps.Admin.ListUsers)
	mux.HandleFunc("DELETE /api/admin/users/{target}", deps.Admin.DeleteUser)
	mux.HandleFunc("POST /api/admin/users/{target}/reset-pin", deps.Admin.ResetPIN)
	mux.HandleFunc("POST /api/admin/invitations", deps.Admin.CreateInvitation)
	mux.HandleFunc("PUT /api/admin/slots/current/teams", deps.Admin.SetTeams)
	mux.HandleFunc("PUT /api/admin/slots/current/scores", deps.Admin.SetScores)
	mux.HandleFunc("GET /api/admin/slots/{slotID}", deps.Admin.SlotDetail)

	// Health
	mux.HandleFunc("GET /health", deps.Health.Check)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
