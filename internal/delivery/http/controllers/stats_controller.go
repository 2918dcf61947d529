package controllers

import (
	"log/slog"
	"net/http"

	"soccerslotmanager/internal/delivery/http/helpers"
	"soccerslotmanager/internal/domain"
)

// StatsController serves attendance, wins, and contribution statistics.
type StatsController struct {
	Logger  *slog.Logger
	Service domain.StatsService
}

// NewStatsController creates a StatsController with the given logger and service.
func NewStatsController(logger *slog.Logger, svc domain.StatsService) *StatsController {
	return &StatsController{Logger: logger, Service: svc}
}

// Overview godoc
// @Summary Get the stats overview
// @Description Returns per-user statistics for every account plus the current leaders (most wins, best attendance, top contributor).
// @Tags stats
// @Produce json
// @Success 200 {object} domain.StatsOverview
// @Failure 500 {object} helpers.APIError
// @Router /api/stats [get]
func (c *StatsController) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := c.Service.Overview(r.Context())
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, overview)
}

// ForUser godoc
// @Summary Get one user's stats
// @Description Returns attendance, wins, and contribution counters for a single user.
// @Tags stats
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} domain.UserStats
// @Failure 404 {object} helpers.APIError
// @Router /api/stats/user/{username} [get]
func (c *StatsController) ForUser(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Service.ForUsername(r.Context(), r.PathValue("username"))
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, stats)
}
