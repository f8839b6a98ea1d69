package perftests

import (
	"context"
	"fmt"
	"testing"
	"time"

	bidding "auction-marketplace/internal/biddingService"
	"auction-marketplace/internal/database"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/notifier"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"

	"github.com/shopspring/decimal"
)

func init() {
	utils.SetLevel("error")
}

// setupService opens a fresh in-memory database seeded with numAuctions active auctions.
func setupService(tb testing.TB, numAuctions int) (*repository.GormRepo, *bidding.BiddingService) {
	tb.Helper()
	db, err := database.OpenMemory(utils.GenerateID())
	if err != nil {
		tb.Fatalf("failed to open database: %v", err)
	}
	tb.Cleanup(func() { database.Close(db) })

	repo := repository.NewGormRepo(db)
	svc := bidding.NewBiddingService(repo, notifier.New(repo))

	ctx := context.Background()
	for i := 0; i < numAuctions; i++ {
		auction := &model.Auction{
			AuctionID:     auctionID(i),
			Title:         fmt.Sprintf("title_%d", i),
			Description:   "Load test auction",
			Status:        model.AuctionStatusActive,
			StartingPrice: decimal.NewFromInt(50),
			EndDate:       time.Now().UTC().Add(24 * time.Hour),
			CreatedBy:     "seller",
		}
		if err := repo.CreateAuction(ctx, auction); err != nil {
			tb.Fatalf("failed to seed auction: %v", err)
		}
	}
	return repo, svc
}

func auctionID(i int) string {
	return fmt.Sprintf("auction_%d", i)
}
