package repository

import (
	"context"
	"errors"
	"fmt"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertCustomer stores the processor customer id for a user, replacing any previous one
func (r *GormRepo) UpsertCustomer(ctx context.Context, customer *model.Customer) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"stripe_customer_id", "updated_at"}),
	}).Create(customer).Error
	if err != nil {
		return fmt.Errorf("upsert customer for user %s: %w", customer.UserID, translate(err))
	}
	return nil
}

// SetPaymentMethod stores the user's default off-session payment method
func (r *GormRepo) SetPaymentMethod(ctx context.Context, userID, paymentMethodID string) error {
	res := r.db.WithContext(ctx).Model(&model.Customer{}).
		Where("user_id = ?", userID).
		Update("payment_method_id", paymentMethodID)
	if res.Error != nil {
		return fmt.Errorf("set payment method for user %s: %w", userID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("set payment method for user %s: no customer record", userID)
	}
	return nil
}

// UpdatePaymentStatusByIntent mirrors a processor status change onto the ledger row
func (r *GormRepo) UpdatePaymentStatusByIntent(ctx context.Context, paymentIntentID, status, message string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.PaymentRecord{}).
		Where("payment_intent_id = ?", paymentIntentID).
		Updates(map[string]any{"status": status, "error_message": message})
	if res.Error != nil {
		return 0, fmt.Errorf("update payment %s: %w", paymentIntentID, res.Error)
	}
	return res.RowsAffected, nil
}

// GetPaymentByAuction returns the ledger row for an auction's settlement charge
func (r *GormRepo) GetPaymentByAuction(ctx context.Context, auctionID string) (model.PaymentRecord, error) {
	var payment model.PaymentRecord
	err := r.db.WithContext(ctx).Where("auction_id = ?", auctionID).First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.PaymentRecord{}, fmt.Errorf("get payment for auction %s: %w", auctionID, auctionerrors.ErrPaymentNotFound)
	}
	if err != nil {
		return model.PaymentRecord{}, fmt.Errorf("get payment for auction %s: %w", auctionID, err)
	}
	return payment, nil
}
