package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	auctions "auction-marketplace/internal/auctionService"
	"auction-marketplace/internal/auth"
	bidding "auction-marketplace/internal/biddingService"
	"auction-marketplace/internal/config"
	"auction-marketplace/internal/database"
	"auction-marketplace/internal/describer"
	"auction-marketplace/internal/notifier"
	"auction-marketplace/internal/payments"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/reviews"
	"auction-marketplace/internal/server"
	"auction-marketplace/internal/settlement"
	"auction-marketplace/internal/watchlist"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}
	utils.SetLevel(cfg.LogLevel)
	gin.SetMode(gin.ReleaseMode)

	db, err := database.Open(cfg)
	if err != nil {
		utils.Fatal("failed to connect to database", map[string]any{"error": err.Error()})
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		utils.Fatal("failed to run migrations", map[string]any{"error": err.Error()})
	}

	repo := repository.NewGormRepo(db)
	notify := notifier.New(repo)
	processor := payments.NewStripeProcessor(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret, nil)

	router := server.SetupRouter(server.Dependencies{
		Auctions:       auctions.NewAuctionService(repo),
		Bidding:        bidding.NewBiddingService(repo, notify),
		Settlement:     settlement.NewService(repo, processor, notify, cfg.Stripe.Currency),
		Watchlist:      watchlist.NewService(repo),
		Notifications:  notify,
		Reviews:        reviews.NewService(repo),
		Payments:       payments.NewService(repo, processor),
		Describer:      describer.New(cfg.OpenAI.APIKey, cfg.OpenAI.Model),
		Verifier:       auth.NewVerifier(cfg.Auth.JWTSecret),
		CronSecret:     cfg.Auth.CronSecret,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		utils.Info("starting auction server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("server stopped unexpectedly", map[string]any{"error": err.Error()})
		}
	}()

	<-ctx.Done()
	utils.Info("shutting down auction server", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("graceful shutdown failed", map[string]any{"error": err.Error()})
	}
}
