package models

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Review is one user's rating of another. AuctionID is empty for reviews not tied to an auction
// so the one-review rule also holds for them.
type Review struct {
	ReviewID   string    `gorm:"column:id;primaryKey;size:36" json:"review_id"`
	ReviewerID string    `gorm:"size:36;not null;uniqueIndex:ux_review_once,priority:1" json:"reviewer_id"`
	RevieweeID string    `gorm:"size:36;not null;index;uniqueIndex:ux_review_once,priority:2" json:"reviewee_id"`
	AuctionID  string    `gorm:"size:36;not null;uniqueIndex:ux_review_once,priority:3" json:"auction_id,omitempty"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `gorm:"type:text" json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Review) TableName() string {
	return "user_reviews"
}

// ReviewSummary is a user's reviews with the mean rating (0 when there are none).
type ReviewSummary struct {
	UserID        string   `json:"user_id"`
	Count         int      `json:"count"`
	AverageRating float64  `json:"average_rating"`
	Reviews       []Review `json:"reviews"`
}
