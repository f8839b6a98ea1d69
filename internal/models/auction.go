package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type AuctionStatus string

const (
	AuctionStatusDraft     AuctionStatus = "draft"
	AuctionStatusUpcoming  AuctionStatus = "upcoming"
	AuctionStatusActive    AuctionStatus = "active"
	AuctionStatusEnded     AuctionStatus = "ended"
	AuctionStatusCancelled AuctionStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s AuctionStatus) Valid() bool {
	switch s {
	case AuctionStatusDraft, AuctionStatusUpcoming, AuctionStatusActive, AuctionStatusEnded, AuctionStatusCancelled:
		return true
	}
	return false
}

// Auction is a listing with a close time. WinnerID is written once, by the closer.
type Auction struct {
	AuctionID     string              `gorm:"column:id;primaryKey;size:36" json:"auction_id"`
	Title         string              `gorm:"size:255;not null" json:"title"`
	Description   string              `gorm:"type:text" json:"description"`
	Status        AuctionStatus       `gorm:"size:20;not null;default:draft;index:idx_auctions_status_end,priority:1" json:"status"`
	StartingPrice decimal.Decimal     `gorm:"type:numeric(12,2);not null" json:"starting_price"`
	CurrentBid    decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"current_bid"`
	EndDate       time.Time           `gorm:"not null;index:idx_auctions_status_end,priority:2" json:"end_date"`
	CreatedBy     string              `gorm:"size:36;not null;index" json:"created_by"`
	WinnerID      *string             `gorm:"size:36;index" json:"winner_id"`
	WinningBid    decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"winning_bid"`
	EndedAt       *time.Time          `json:"ended_at"`
	// SettlementErrorAt is set by the first charge attempt that failed without a ledger row.
	SettlementErrorAt *time.Time `json:"settlement_error_at,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func (Auction) TableName() string {
	return "auctions"
}

// MinimumNextBid is the amount a bid must exceed (or, before the first bid, reach).
func (a Auction) MinimumNextBid() (amount decimal.Decimal, inclusive bool) {
	if a.CurrentBid.Valid {
		return a.CurrentBid.Decimal, false
	}
	return a.StartingPrice, true
}
