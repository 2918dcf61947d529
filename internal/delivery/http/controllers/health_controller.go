package controllers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"soccerslotmanager/internal/delivery/http/helpers"
)

// HealthResponse is the response body for GET /health
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthController reports process and database health.
type HealthController struct {
	DB *sql.DB
}

// NewHealthController creates a HealthController over the given database handle.
func NewHealthController(db *sql.DB) *HealthController {
	return &HealthController{DB: db}
}

// Check godoc
// @Summary Health check
// @Description Reports whether the service is up and the database reachable. Always returns 200 so load balancers can read the body.
// @Tags health
// @Produce json
// @Success 200 {object} controllers.HealthResponse
// @Router /health [get]
func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := HealthResponse{Status: "healthy", Database: "connected", Timestamp: time.Now().UTC()}
	if err := c.DB.PingContext(ctx); err != nil {
		resp.Status = "unhealthy"
		resp.Database = "disconnected"
	}
	helpers.WriteJSON(w, http.StatusOK, resp)
}
