package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"

	"gorm.io/gorm"
)

// CreateAuction inserts a new listing
func (r *GormRepo) CreateAuction(ctx context.Context, auction *model.Auction) error {
	if err := r.db.WithContext(ctx).Create(auction).Error; err != nil {
		return fmt.Errorf("create auction %s: %w", auction.AuctionID, translate(err))
	}
	return nil
}

// GetAuction returns a listing by id
func (r *GormRepo) GetAuction(ctx context.Context, auctionID string) (model.Auction, error) {
	var auction model.Auction
	err := r.db.WithContext(ctx).Where("id = ?", auctionID).First(&auction).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// ListAuctions returns listings with the given status (all when empty), soonest ending first
func (r *GormRepo) ListAuctions(ctx context.Context, status model.AuctionStatus) ([]model.Auction, error) {
	q := r.db.WithContext(ctx).Order("end_date ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var auctions []model.Auction
	if err := q.Find(&auctions).Error; err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}
	return auctions, nil
}

// UpdateAuctionStatus moves an auction to `to` only if it is currently in one of `from`
func (r *GormRepo) UpdateAuctionStatus(ctx context.Context, auctionID string, from []model.AuctionStatus, to model.AuctionStatus) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Auction{}).
		Where("id = ? AND status IN ?", auctionID, from).
		Update("status", to)
	if res.Error != nil {
		return false, fmt.Errorf("update auction %s status: %w", auctionID, res.Error)
	}
	return res.RowsAffected == 1, nil
}

// CountBids returns how many bids an auction has received
func (r *GormRepo) CountBids(ctx context.Context, auctionID string) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Bid{}).Where("auction_id = ?", auctionID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count bids for auction %s: %w", auctionID, err)
	}
	return n, nil
}

// RecordBid inserts a bid and raises the auction's current bid in one transaction.
// The raise only applies while the auction is active, open and below the new amount,
// so two racing bidders cannot both lead.
func (r *GormRepo) RecordBid(ctx context.Context, bid model.Bid) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Auction{}).
			Where("id = ? AND status = ? AND end_date > ?", bid.AuctionID, model.AuctionStatusActive, bid.CreatedAt).
			Where("current_bid IS NULL OR current_bid < ?", bid.Amount).
			Update("current_bid", bid.Amount)
		if res.Error != nil {
			return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrBidTooLow)
		}

		if err := tx.Create(&bid).Error; err != nil {
			return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, translate(err))
		}
		return nil
	})
}

// GetBidsByAuction returns all bids for an auction, oldest first
func (r *GormRepo) GetBidsByAuction(ctx context.Context, auctionID string) ([]model.Bid, error) {
	var bids []model.Bid
	err := r.db.WithContext(ctx).
		Where("auction_id = ?", auctionID).
		Order("created_at ASC, id ASC").
		Find(&bids).Error
	if err != nil {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, err)
	}
	if len(bids) == 0 {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}
	return bids, nil
}

// GetWinningBid returns the highest bid placed at or before cutoff (any time when cutoff
// is zero). Equal amounts go to the earliest bid, then the lowest bid id.
func (r *GormRepo) GetWinningBid(ctx context.Context, auctionID string, cutoff time.Time) (model.Bid, error) {
	q := r.db.WithContext(ctx).Where("auction_id = ?", auctionID)
	if !cutoff.IsZero() {
		q = q.Where("created_at <= ?", cutoff)
	}

	var bid model.Bid
	err := q.Order("bid_amount DESC, created_at ASC, id ASC").First(&bid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Bid{}, fmt.Errorf("get winning bid for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("get winning bid for auction %s: %w", auctionID, err)
	}
	return bid, nil
}

// GetUserAuctionBids returns every bid the user placed, joined to its auction
func (r *GormRepo) GetUserAuctionBids(ctx context.Context, userID string) ([]model.UserAuctionBid, error) {
	var rows []model.UserAuctionBid
	err := r.db.WithContext(ctx).
		Table("bids").
		Select("bids.id AS bid_id, bids.auction_id, bids.bid_amount AS amount, bids.created_at, " +
			"auctions.title, auctions.status, auctions.starting_price, auctions.current_bid, auctions.end_date").
		Joins("JOIN auctions ON auctions.id = bids.auction_id").
		Where("bids.user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("get bids for user %s: %w", userID, err)
	}
	return rows, nil
}
