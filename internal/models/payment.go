package models

import "time"

// Customer links a user to the payment processor and their default payment method.
type Customer struct {
	UserID           string    `gorm:"primaryKey;size:36" json:"user_id"`
	StripeCustomerID string    `gorm:"size:255;not null;uniqueIndex" json:"stripe_customer_id"`
	PaymentMethodID  *string   `gorm:"size:255" json:"payment_method_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}

const (
	PaymentStatusSucceeded = "succeeded"
	PaymentStatusFailed    = "failed"
)

// PaymentRecord is the ledger row for one settlement charge. At most one per auction.
type PaymentRecord struct {
	PaymentID       string    `gorm:"column:id;primaryKey;size:36" json:"payment_id"`
	UserID          string    `gorm:"size:36;not null;index" json:"user_id"`
	AuctionID       string    `gorm:"size:36;not null;uniqueIndex" json:"auction_id"`
	AmountCents     int64     `gorm:"not null" json:"amount_cents"`
	Currency        string    `gorm:"size:3;not null;default:usd" json:"currency"`
	PaymentIntentID string    `gorm:"size:255;index" json:"payment_intent_id"`
	Status          string    `gorm:"size:40;not null;index" json:"status"`
	ErrorMessage    string    `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (PaymentRecord) TableName() string {
	return "payments"
}
