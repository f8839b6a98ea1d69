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

// ListAuctionsToClose returns active auctions whose end date has passed
func (r *GormRepo) ListAuctionsToClose(ctx context.Context, now time.Time) ([]model.Auction, error) {
	var auctions []model.Auction
	err := r.db.WithContext(ctx).
		Where("status = ? AND end_date <= ?", model.AuctionStatusActive, now).
		Order("end_date ASC").
		Find(&auctions).Error
	if err != nil {
		return nil, fmt.Errorf("list auctions to close: %w", err)
	}
	return auctions, nil
}

// CloseAuction marks an active auction ended and records the winner (nil for no bids).
// It reports false when the auction was no longer active, e.g. closed by a concurrent run.
func (r *GormRepo) CloseAuction(ctx context.Context, auctionID string, winner *model.Bid, endedAt time.Time) (bool, error) {
	updates := map[string]any{
		"status":      model.AuctionStatusEnded,
		"ended_at":    endedAt,
		"winner_id":   nil,
		"winning_bid": nil,
	}
	if winner != nil {
		updates["winner_id"] = winner.UserID
		updates["winning_bid"] = winner.Amount
	}

	res := r.db.WithContext(ctx).Model(&model.Auction{}).
		Where("id = ? AND status = ?", auctionID, model.AuctionStatusActive).
		Updates(updates)
	if res.Error != nil {
		return false, fmt.Errorf("close auction %s: %w", auctionID, res.Error)
	}
	return res.RowsAffected == 1, nil
}

// ListUnsettledAuctions returns ended auctions with a winner and no payment record
func (r *GormRepo) ListUnsettledAuctions(ctx context.Context) ([]model.Auction, error) {
	var auctions []model.Auction
	err := r.db.WithContext(ctx).
		Select("auctions.*").
		Joins("LEFT JOIN payments ON payments.auction_id = auctions.id").
		Where("auctions.status = ? AND auctions.winner_id IS NOT NULL AND payments.id IS NULL", model.AuctionStatusEnded).
		Order("auctions.ended_at ASC").
		Find(&auctions).Error
	if err != nil {
		return nil, fmt.Errorf("list unsettled auctions: %w", err)
	}
	return auctions, nil
}

// MarkSettlementError stamps the first failed charge attempt on an auction.
// It reports false when an earlier attempt already did.
func (r *GormRepo) MarkSettlementError(ctx context.Context, auctionID string, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Auction{}).
		Where("id = ? AND settlement_error_at IS NULL", auctionID).
		Update("settlement_error_at", at)
	if res.Error != nil {
		return false, fmt.Errorf("mark settlement error on auction %s: %w", auctionID, res.Error)
	}
	return res.RowsAffected == 1, nil
}

// GetCustomer returns the processor customer for a user
func (r *GormRepo) GetCustomer(ctx context.Context, userID string) (model.Customer, error) {
	var customer model.Customer
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Customer{}, fmt.Errorf("get customer for user %s: %w", userID, auctionerrors.ErrCustomerNotFound)
	}
	if err != nil {
		return model.Customer{}, fmt.Errorf("get customer for user %s: %w", userID, err)
	}
	return customer, nil
}

// CreatePayment writes a payment ledger row. A second row for the same auction is rejected.
func (r *GormRepo) CreatePayment(ctx context.Context, payment *model.PaymentRecord) error {
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		return fmt.Errorf("create payment for auction %s: %w", payment.AuctionID, translate(err))
	}
	return nil
}
