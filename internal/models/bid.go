package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bid is an offer by a user on an auction. Bids are never updated or deleted.
type Bid struct {
	BidID     string          `gorm:"column:id;primaryKey;size:36" json:"bid_id"`
	AuctionID string          `gorm:"size:36;not null;index:idx_bids_auction_amount,priority:1" json:"auction_id"`
	UserID    string          `gorm:"size:36;not null;index" json:"user_id"`
	Amount    decimal.Decimal `gorm:"column:bid_amount;type:numeric(12,2);not null;index:idx_bids_auction_amount,priority:2" json:"bid_amount"`
	CreatedAt time.Time       `json:"created_at"`
}

func (Bid) TableName() string {
	return "bids"
}

// UserAuctionBid is one row of a user's bids joined to the auction it was placed on.
type UserAuctionBid struct {
	BidID         string
	AuctionID     string
	Amount        decimal.Decimal
	CreatedAt     time.Time
	Title         string
	Status        AuctionStatus
	StartingPrice decimal.Decimal
	CurrentBid    decimal.NullDecimal
	EndDate       time.Time
}

type BidStanding string

const (
	BidStandingActive BidStanding = "active"
	BidStandingOutbid BidStanding = "outbid"
)

// MyBid is the user's highest bid on one auction, with its standing.
type MyBid struct {
	AuctionID     string              `json:"auction_id"`
	Title         string              `json:"title"`
	AuctionStatus AuctionStatus       `json:"auction_status"`
	EndDate       time.Time           `json:"end_date"`
	StartingPrice decimal.Decimal     `json:"starting_price"`
	CurrentBid    decimal.NullDecimal `json:"current_bid"`
	BidID         string              `json:"bid_id"`
	Amount        decimal.Decimal     `json:"bid_amount"`
	PlacedAt      time.Time           `json:"placed_at"`
	Standing      BidStanding         `json:"standing"`
}

// MyBids splits a user's bids into ones still leading and ones that were outbid.
type MyBids struct {
	Active []MyBid `json:"active"`
	Outbid []MyBid `json:"outbid"`
}
