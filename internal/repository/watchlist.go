package repository

import (
	"context"
	"fmt"

	model "auction-marketplace/internal/models"
)

// AddWatchlistEntry inserts an entry; the unique indexes reject a second copy
func (r *GormRepo) AddWatchlistEntry(ctx context.Context, entry *model.WatchlistEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("add watchlist entry for user %s: %w", entry.UserID, translate(err))
	}
	return nil
}

// ListWatchlist returns a user's entries, newest first
func (r *GormRepo) ListWatchlist(ctx context.Context, userID string) ([]model.WatchlistEntry, error) {
	var entries []model.WatchlistEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list watchlist for user %s: %w", userID, err)
	}
	return entries, nil
}

// DeleteWatchlistByItem removes the user's item-scoped entry
func (r *GormRepo) DeleteWatchlistByItem(ctx context.Context, userID, auctionItemID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND auction_item_id = ?", userID, auctionItemID).
		Delete(&model.WatchlistEntry{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete watchlist item %s: %w", auctionItemID, res.Error)
	}
	return res.RowsAffected, nil
}

// DeleteWatchlistByAuction removes the user's auction-scoped entry
func (r *GormRepo) DeleteWatchlistByAuction(ctx context.Context, userID, auctionID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND auction_id = ?", userID, auctionID).
		Delete(&model.WatchlistEntry{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete watchlist auction %s: %w", auctionID, res.Error)
	}
	return res.RowsAffected, nil
}
