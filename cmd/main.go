package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "training_briefing/docs"
	"training_briefing/internal/config"
	"training_briefing/internal/handlers"
	"training_briefing/internal/logger"
	"training_briefing/internal/repository"
	"training_briefing/internal/repository/db"
	"training_briefing/internal/server"
	"training_briefing/internal/service"
	"training_briefing/internal/webhook"
)

const (
	sweepTick       = time.Minute
	shutdownTimeout = 10 * time.Second
	// headroom over the webhook timeout for the rest of a submit response
	writeTimeoutPad = 5 * time.Second
)

// @title           Training Briefing API
// @version         1.0
// @description     Countdown to the training day and the lunch-menu submission form.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	configPath := flag.String("config", "", "path to config file (default configs/config.yml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	event, err := cfg.EventMeta()
	if err != nil {
		log.Fatalw("invalid event config", "err", err)
	}

	sqlDB, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err, "path", cfg.DB.Path)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	sender := webhook.NewClient(cfg.Webhook.URL, &http.Client{Timeout: cfg.Webhook.Timeout})
	services := service.NewService(repos, service.Deps{
		Event:         event,
		Menus:         cfg.Lunch.Menus,
		StorageKey:    cfg.Lunch.StorageKey,
		Sender:        sender,
		SessionSecret: cfg.Session.Secret,
		SessionTTL:    cfg.Session.TTL,
		CountdownTick: cfg.Countdown.Tick,
		Log:           log,
	})
	apiHandler := handlers.NewHandler(services, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go services.Sweeper.Run(ctx, sweepTick)

	log.Infow("starting",
		"port", cfg.Port,
		"event_starts_at", event.StartsAt,
		"webhook", sender.Endpoint(),
		"menus", len(cfg.Lunch.Menus),
	)

	srv := &server.Server{WriteTimeout: cfg.Webhook.Timeout + writeTimeoutPad}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	waitForShutdown(cancel, srv, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop the session sweeper
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
