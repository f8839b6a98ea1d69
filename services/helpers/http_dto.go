package helpers

import "time"

// Request/Response DTOs
type PlaceBidRequest struct {
	AuctionID string  `json:"auction_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	AuctionID string  `json:"auction_id"`
	UserID    string  `json:"user_id"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

type CreateAuctionRequest struct {
	Title         string    `json:"title" binding:"required"`
	Description   string    `json:"description"`
	StartingPrice float64   `json:"starting_price" binding:"required,gt=0"`
	EndDate       time.Time `json:"end_date" binding:"required"`
}

type WatchlistRequest struct {
	AuctionID     string `json:"auction_id"`
	AuctionItemID string `json:"auction_item_id"`
}

type ReviewRequest struct {
	RevieweeID string `json:"reviewee_id" binding:"required"`
	AuctionID  string `json:"auction_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

type PaymentMethodRequest struct {
	PaymentMethodID string `json:"payment_method_id" binding:"required"`
}

type SetupIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}

type DescribeRequest struct {
	Image string `json:"image"`
	Title string `json:"title"`
}

type DescribeResponse struct {
	Description string `json:"description"`
}
