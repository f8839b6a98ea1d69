package models

import "time"

type NotificationType string

const (
	NotificationAuctionWon         NotificationType = "auction_won"
	NotificationAuctionSold        NotificationType = "auction_sold"
	NotificationAuctionUnsold      NotificationType = "auction_ended_no_bids"
	NotificationPaymentSucceeded   NotificationType = "payment_succeeded"
	NotificationPaymentFailed      NotificationType = "payment_failed"
	NotificationOutbid             NotificationType = "outbid"
	NotificationConnectionAccepted NotificationType = "connection_accepted"
	NotificationConnectionRejected NotificationType = "connection_rejected"
)

// Notification is a user-facing event. Only the Read flag ever changes.
type Notification struct {
	NotificationID string           `gorm:"column:id;primaryKey;size:36" json:"notification_id"`
	UserID         string           `gorm:"size:36;not null;index" json:"user_id"`
	Type           NotificationType `gorm:"size:50;not null" json:"type"`
	Title          string           `gorm:"size:255;not null" json:"title"`
	Message        string           `gorm:"type:text" json:"message"`
	Read           bool             `gorm:"not null;default:false" json:"read"`
	CreatedAt      time.Time        `gorm:"index" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
