package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"soccerslotmanager/config"
	_ "soccerslotmanager/docs"
	"soccerslotmanager/internal/adapters/auth"
	"soccerslotmanager/internal/adapters/email"
	delivery "soccerslotmanager/internal/delivery/http"
	"soccerslotmanager/internal/delivery/http/controllers"
	"soccerslotmanager/internal/delivery/http/middleware"
	"soccerslotmanager/internal/repository/postgres"
	"soccerslotmanager/internal/services"
)

// @title Soccer Slot Manager API
// @version 1.0
// @description Weekly five-a-side match registration: slots, guests, teams, scores, and stats.
// @BasePath /
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	err = db.PingContext(pingCtx)
	cancel()
	if err != nil {
		logger.Error("database unreachable", "err", err)
		os.Exit(1)
	}

	if err := postgres.ApplySchema(ctx, db); err != nil {
		logger.Error("failed to apply schema", "err", err)
		os.Exit(1)
	}

	userRepo := postgres.NewUserRepository(db)
	inviteRepo := postgres.NewInvitationRepository(db)
	slotRepo := postgres.NewSlotRepository(db)
	statsRepo := postgres.NewStatsRepository(db)

	hasher := auth.NewBcryptHasher(12)
	tokenIssuer := auth.NewJWTIssuer(cfg.JWTSecret)
	tokenVerifier := auth.NewJWTVerifier(cfg.JWTSecret)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromEmail,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.SESRegion,
			AccessKeyID:        cfg.SESAccessKeyID,
			SecretAccessKey:    cfg.SESSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureSkipVerify,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	identityService := services.NewIdentityService(
		userRepo,
		inviteRepo,
		hasher,
		tokenIssuer,
		time.Duration(cfg.TokenExpiryHours)*time.Hour,
		emailService,
		logger,
		nil,
	)
	slotService := services.NewSlotService(slotRepo, userRepo, nil)
	statsService := services.NewStatsService(statsRepo, userRepo)

	mux := delivery.NewRouter(delivery.RouterDeps{
		Auth:           controllers.NewAuthController(logger, identityService),
		Slots:          controllers.NewSlotController(logger, slotService),
		Admin:          controllers.NewAdminController(logger, identityService, slotService),
		Stats:          controllers.NewStatsController(logger, statsService),
		Health:         controllers.NewHealthController(db),
		Verifier:       tokenVerifier,
		LoginRateLimit: cfg.LoginRateLimit,
	})

	handler := middleware.CORS(cfg.CORSAllowedOrigins, mux)
	handler = middleware.LoggingMiddleware(logger, handler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
