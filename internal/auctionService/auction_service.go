package auctions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"

	"github.com/shopspring/decimal"
)

// CreateAuctionInput carries a seller's new listing
type CreateAuctionInput struct {
	Title         string
	Description   string
	StartingPrice decimal.Decimal
	EndDate       time.Time
}

// AuctionService manages seller listings
type AuctionService struct {
	repo repository.AuctionDB
	now  func() time.Time
}

func NewAuctionService(repo repository.AuctionDB) *AuctionService {
	return &AuctionService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// CreateAuction stores a new draft listing owned by sellerID
func (s *AuctionService) CreateAuction(ctx context.Context, sellerID string, in CreateAuctionInput) (models.Auction, error) {
	title := strings.TrimSpace(in.Title)
	switch {
	case sellerID == "":
		return models.Auction{}, fmt.Errorf("service: %w - missing seller", auctionerrors.ErrInvalidAuction)
	case title == "":
		return models.Auction{}, fmt.Errorf("service: %w - title is required", auctionerrors.ErrInvalidAuction)
	case !in.StartingPrice.IsPositive():
		return models.Auction{}, fmt.Errorf("service: %w - starting price must be positive", auctionerrors.ErrInvalidAuction)
	case !in.EndDate.After(s.now()):
		return models.Auction{}, fmt.Errorf("service: %w - end date must be in the future", auctionerrors.ErrInvalidAuction)
	}

	auction := models.Auction{
		AuctionID:     utils.GenerateID(),
		Title:         title,
		Description:   strings.TrimSpace(in.Description),
		Status:        models.AuctionStatusDraft,
		StartingPrice: in.StartingPrice.Round(2),
		EndDate:       in.EndDate.UTC(),
		CreatedBy:     sellerID,
	}
	if err := s.repo.CreateAuction(ctx, &auction); err != nil {
		return models.Auction{}, fmt.Errorf("service: %w", err)
	}
	return auction, nil
}

// PublishAuction opens a draft or upcoming listing for bidding
func (s *AuctionService) PublishAuction(ctx context.Context, sellerID, auctionID string) (models.Auction, error) {
	auction, err := s.ownedAuction(ctx, sellerID, auctionID)
	if err != nil {
		return models.Auction{}, err
	}
	if !auction.EndDate.After(s.now()) {
		return models.Auction{}, fmt.Errorf("service: %w - end date has passed", auctionerrors.ErrInvalidTransition)
	}

	return s.transition(ctx, auction,
		[]models.AuctionStatus{models.AuctionStatusDraft, models.AuctionStatusUpcoming},
		models.AuctionStatusActive)
}

// CancelAuction withdraws a listing that has not ended and has no bids
func (s *AuctionService) CancelAuction(ctx context.Context, sellerID, auctionID string) (models.Auction, error) {
	auction, err := s.ownedAuction(ctx, sellerID, auctionID)
	if err != nil {
		return models.Auction{}, err
	}

	bids, err := s.repo.CountBids(ctx, auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: %w", err)
	}
	if bids > 0 {
		return models.Auction{}, fmt.Errorf("service: %w", auctionerrors.ErrAuctionHasBids)
	}

	return s.transition(ctx, auction,
		[]models.AuctionStatus{models.AuctionStatusDraft, models.AuctionStatusUpcoming, models.AuctionStatusActive},
		models.AuctionStatusCancelled)
}

// GetAuction returns one listing
func (s *AuctionService) GetAuction(ctx context.Context, auctionID string) (models.Auction, error) {
	auction, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: %w", err)
	}
	return auction, nil
}

// ListAuctions returns listings filtered by status; an empty status lists everything
func (s *AuctionService) ListAuctions(ctx context.Context, status models.AuctionStatus) ([]models.Auction, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("service: %w - unknown status %q", auctionerrors.ErrInvalidAuction, status)
	}
	out, err := s.repo.ListAuctions(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return out, nil
}

func (s *AuctionService) ownedAuction(ctx context.Context, sellerID, auctionID string) (models.Auction, error) {
	auction, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: %w", err)
	}
	if auction.CreatedBy != sellerID {
		return models.Auction{}, fmt.Errorf("service: %w", auctionerrors.ErrNotAuctionOwner)
	}
	return auction, nil
}

func (s *AuctionService) transition(ctx context.Context, auction models.Auction, from []models.AuctionStatus, to models.AuctionStatus) (models.Auction, error) {
	ok, err := s.repo.UpdateAuctionStatus(ctx, auction.AuctionID, from, to)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: %w", err)
	}
	if !ok {
		return models.Auction{}, fmt.Errorf("service: %w - %s to %s", auctionerrors.ErrInvalidTransition, auction.Status, to)
	}
	auction.Status = to
	return auction, nil
}
