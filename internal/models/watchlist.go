package models

import "time"

// WatchlistEntry references either an auction or, for older entries, an auction item.
type WatchlistEntry struct {
	EntryID       string    `gorm:"column:id;primaryKey;size:36" json:"entry_id"`
	UserID        string    `gorm:"size:36;not null;uniqueIndex:ux_watchlist_user_auction,priority:1;uniqueIndex:ux_watchlist_user_item,priority:1" json:"user_id"`
	AuctionID     *string   `gorm:"size:36;uniqueIndex:ux_watchlist_user_auction,priority:2" json:"auction_id,omitempty"`
	AuctionItemID *string   `gorm:"size:36;uniqueIndex:ux_watchlist_user_item,priority:2" json:"auction_item_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func (WatchlistEntry) TableName() string {
	return "watchlist"
}
