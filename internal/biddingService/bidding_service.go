package bidding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/metrics"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/notifier"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"

	"github.com/shopspring/decimal"
)

// BiddingService defines the business logic for auction bidding
type BiddingService struct {
	repo   repository.AuctionDB
	notify notifier.Sender
	now    func() time.Time
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionDB, notify notifier.Sender) *BiddingService {
	return &BiddingService{
		repo:   repo,
		notify: notify,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// PlaceBid validates and records a user's bid on an auction
func (s *BiddingService) PlaceBid(ctx context.Context, auctionID, userID string, amount decimal.Decimal) (models.Bid, error) {
	if auctionID == "" || userID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing auctionID or userID", auctionerrors.ErrInvalidBid)
	}
	if !amount.IsPositive() {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}
	amount = amount.Round(2)

	auction, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: %w", err)
	}

	now := s.now()
	if err := validateBid(auction, userID, amount, now); err != nil {
		return models.Bid{}, err
	}

	var previous *models.Bid
	if auction.CurrentBid.Valid {
		top, err := s.repo.GetWinningBid(ctx, auctionID, time.Time{})
		if err == nil {
			previous = &top
		} else if !errors.Is(err, auctionerrors.ErrNoBids) {
			return models.Bid{}, fmt.Errorf("service: failed to check winning bid: %w", err)
		}
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		AuctionID: auctionID,
		UserID:    userID,
		Amount:    amount,
		CreatedAt: now,
	}

	if err := s.repo.RecordBid(ctx, bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for auction %s by user %s: %w", auctionID, userID, err)
	}
	metrics.BidsPlaced.Inc()

	if previous != nil && previous.UserID != userID {
		if err := s.notify.Outbid(ctx, previous.UserID, auction, amount); err != nil {
			utils.Warn("failed to send outbid notification", map[string]any{
				"auction_id": auctionID,
				"user_id":    previous.UserID,
				"error":      err.Error(),
			})
		}
	}

	return bid, nil
}

// validateBid checks the auction state and amount rules for bidding
func validateBid(auction models.Auction, userID string, amount decimal.Decimal, now time.Time) error {
	if auction.Status != models.AuctionStatusActive || !now.Before(auction.EndDate) {
		return fmt.Errorf("service: %w - auction %s is %s", auctionerrors.ErrAuctionClosed, auction.AuctionID, auction.Status)
	}
	if auction.CreatedBy == userID {
		return fmt.Errorf("service: %w", auctionerrors.ErrOwnAuction)
	}

	minimum, inclusive := auction.MinimumNextBid()
	if amount.LessThan(minimum) || (!inclusive && amount.Equal(minimum)) {
		return fmt.Errorf("service: %w - current highest bid is %s", auctionerrors.ErrBidTooLow, minimum.StringFixed(2))
	}
	return nil
}

// GetBidsForAuction returns all bids for a specific auction
func (s *BiddingService) GetBidsForAuction(ctx context.Context, auctionID string) ([]models.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}

	bids, err := s.repo.GetBidsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}

	return bids, nil
}

// GetWinningBid returns the highest bid for a specific auction
func (s *BiddingService) GetWinningBid(ctx context.Context, auctionID string) (models.Bid, error) {
	if auctionID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}

	winningBid, err := s.repo.GetWinningBid(ctx, auctionID, time.Time{})
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get winning bid for auction %s: %w", auctionID, err)
	}

	return winningBid, nil
}

// MyBids returns the user's highest bid per auction, split into active and outbid
func (s *BiddingService) MyBids(ctx context.Context, userID string) (models.MyBids, error) {
	if userID == "" {
		return models.MyBids{}, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidBid)
	}

	rows, err := s.repo.GetUserAuctionBids(ctx, userID)
	if err != nil {
		return models.MyBids{}, fmt.Errorf("service: failed to get bids for user %s: %w", userID, err)
	}

	return ClassifyBids(rows), nil
}
