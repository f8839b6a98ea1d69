package watchlist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"
)

// Service keeps one watchlist entry per user and auction (or legacy auction item).
type Service struct {
	repo repository.WatchlistDB
}

func NewService(repo repository.WatchlistDB) *Service {
	return &Service{repo: repo}
}

// Add saves an auction, or an auction item, to the user's watchlist. Exactly one id must be set.
// A second save of the same target returns ErrAlreadyInWatchlist.
func (s *Service) Add(ctx context.Context, userID, auctionID, auctionItemID string) (models.WatchlistEntry, error) {
	if userID == "" || (auctionID == "") == (auctionItemID == "") {
		return models.WatchlistEntry{}, fmt.Errorf("service: %w - exactly one of auction_id or auction_item_id is required", auctionerrors.ErrInvalidWatchlist)
	}

	entry := models.WatchlistEntry{
		EntryID:   utils.GenerateID(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if auctionID != "" {
		entry.AuctionID = &auctionID
	} else {
		entry.AuctionItemID = &auctionItemID
	}

	if err := s.repo.AddWatchlistEntry(ctx, &entry); err != nil {
		if errors.Is(err, auctionerrors.ErrDuplicate) {
			return models.WatchlistEntry{}, fmt.Errorf("service: %w", auctionerrors.ErrAlreadyInWatchlist)
		}
		return models.WatchlistEntry{}, fmt.Errorf("service: %w", err)
	}
	return entry, nil
}

// Remove deletes the item-scoped entry for targetID, falling back to the auction-scoped one.
func (s *Service) Remove(ctx context.Context, userID, targetID string) error {
	if userID == "" || targetID == "" {
		return fmt.Errorf("service: %w - missing target", auctionerrors.ErrInvalidWatchlist)
	}

	n, err := s.repo.DeleteWatchlistByItem(ctx, userID, targetID)
	if err != nil {
		return fmt.Errorf("service: %w", err)
	}
	if n > 0 {
		return nil
	}

	n, err = s.repo.DeleteWatchlistByAuction(ctx, userID, targetID)
	if err != nil {
		return fmt.Errorf("service: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("service: %w", auctionerrors.ErrWatchlistNotFound)
	}
	return nil
}

func (s *Service) List(ctx context.Context, userID string) ([]models.WatchlistEntry, error) {
	entries, err := s.repo.ListWatchlist(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return entries, nil
}
