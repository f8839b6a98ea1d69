// Command settle runs one close-out pass and then one charge pass, for schedulers that
// prefer running a process over calling the HTTP endpoints.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"auction-marketplace/internal/config"
	"auction-marketplace/internal/database"
	"auction-marketplace/internal/notifier"
	"auction-marketplace/internal/payments"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/settlement"
	"auction-marketplace/utils"
)

func main() {
	os.Exit(run())
}

func run() int {
	skipCharge := flag.Bool("close-only", false, "close ended auctions without charging winners")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}
	utils.SetLevel(cfg.LogLevel)

	db, err := database.Open(cfg)
	if err != nil {
		utils.Fatal("failed to connect to database", map[string]any{"error": err.Error()})
	}
	defer database.Close(db)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo := repository.NewGormRepo(db)
	svc := settlement.NewService(
		repo,
		payments.NewStripeProcessor(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret, nil),
		notifier.New(repo),
		cfg.Stripe.Currency,
	)

	return settle(ctx, svc, *skipCharge)
}

type settler interface {
	CloseEndedAuctions(ctx context.Context) ([]settlement.CloseResult, error)
	ChargeWinners(ctx context.Context) ([]settlement.ChargeResult, error)
}

// settle runs the passes and returns the exit code: 1 when a pass could not run,
// 2 when any auction failed and 0 otherwise.
func settle(ctx context.Context, svc settler, closeOnly bool) int {
	failed := 0
	closed, err := svc.CloseEndedAuctions(ctx)
	if err != nil {
		utils.Error("close pass failed", map[string]any{"error": err.Error()})
		return 1
	}
	failed += countCloseErrors(closed)

	if !closeOnly {
		charged, err := svc.ChargeWinners(ctx)
		if err != nil {
			utils.Error("charge pass failed", map[string]any{"error": err.Error()})
			return 1
		}
		failed += countChargeErrors(charged)
	}

	utils.Info("settlement run finished", map[string]any{"closed": len(closed), "failed": failed})
	if failed > 0 {
		return 2
	}
	return 0
}

func countCloseErrors(results []settlement.CloseResult) int {
	n := 0
	for _, r := range results {
		if r.Outcome == settlement.OutcomeError {
			n++
		}
	}
	return n
}

func countChargeErrors(results []settlement.ChargeResult) int {
	n := 0
	for _, r := range results {
		if r.Outcome == settlement.OutcomeError {
			n++
		}
	}
	return n
}
