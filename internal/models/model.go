package models

import "time"

// User mirrors the identity provider's user; only the id is authoritative here.
type User struct {
	UserID    string    `gorm:"column:id;primaryKey;size:36" json:"user_id"`
	Email     string    `gorm:"size:255;index" json:"email"`
	Username  string    `gorm:"size:100" json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// AllModels lists every table owned by this service, in migration order.
func AllModels() []any {
	return []any{
		&User{},
		&Auction{},
		&Bid{},
		&Customer{},
		&PaymentRecord{},
		&Notification{},
		&WatchlistEntry{},
		&Review{},
	}
}
