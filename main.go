package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goalpost-app/backend/internal/config"
	v1 "github.com/goalpost-app/backend/internal/controllers/v1"
	"github.com/goalpost-app/backend/internal/live"
	"github.com/goalpost-app/backend/internal/metrics"
	"github.com/goalpost-app/backend/internal/models"
	"github.com/goalpost-app/backend/internal/payment"
	"github.com/goalpost-app/backend/internal/router"
	"github.com/goalpost-app/backend/internal/secret"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Requests still running after this are cut off on shutdown.
const shutdownTimeout = 10 * time.Second

//	@title			Goalpost
//	@description	The backend for Goalpost, fundraising goals with milestones and a live progress page.
//	@license.name	AGPL-3.0-or-later
//	@license.url	https://www.gnu.org/licenses/agpl-3.0.html

//	@securityDefinitions.apikey	BearerToken
//	@in							header
//	@name						Authorization
//	@description				Edit token issued for a goal, prefixed with "Bearer "

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create data directory
	if models.IsSQLite(cfg.DatabaseURL) {
		err = os.MkdirAll(filepath.Dir(cfg.DatabaseURL), os.ModePerm)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
	}

	// Connect to the database and migrate the schema
	err = models.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	hub := live.NewHub(metrics.LiveSubscribers)
	co := v1.Controller{
		Config:   cfg,
		Hub:      hub,
		Payments: payment.NewClient(cfg.PaymentAPIURL, cfg.PaymentAPIKey),
		Tokens:   secret.NewIssuer(cfg.TokenSigningKey, secret.DefaultTokenTTL),
	}

	r, teardown, err := router.Config(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(co, r.Group("/"))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Live views never finish on their own
	server.RegisterOnShutdown(hub.Close)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Listening")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msg(err.Error())
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server did not shut down cleanly")
	}
}
