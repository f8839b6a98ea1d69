package notifier

import (
	"context"
	"fmt"
	"time"

	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mock_notifier.go -package=notifier auction-marketplace/internal/notifier Sender

// Sender creates notifications for workflow events.
type Sender interface {
	Notify(ctx context.Context, userID string, kind model.NotificationType, title, message string) error
	AuctionWon(ctx context.Context, auction model.Auction, amount decimal.Decimal) error
	AuctionSold(ctx context.Context, auction model.Auction, amount decimal.Decimal) error
	AuctionUnsold(ctx context.Context, auction model.Auction) error
	PaymentOutcome(ctx context.Context, auction model.Auction, succeeded bool, detail string) error
	Outbid(ctx context.Context, userID string, auction model.Auction, amount decimal.Decimal) error
	ConnectionResponse(ctx context.Context, requesterID, responderName string, accepted bool) error
}

// Notifier writes notification rows. Delivery ends at the insert.
type Notifier struct {
	repo repository.NotificationDB
}

var _ Sender = (*Notifier)(nil)

func New(repo repository.NotificationDB) *Notifier {
	return &Notifier{repo: repo}
}

// Notify inserts one unread notification
func (n *Notifier) Notify(ctx context.Context, userID string, kind model.NotificationType, title, message string) error {
	if userID == "" {
		return fmt.Errorf("notify: empty user id")
	}

	row := &model.Notification{
		NotificationID: utils.GenerateID(),
		UserID:         userID,
		Type:           kind,
		Title:          title,
		Message:        message,
		CreatedAt:      time.Now().UTC(),
	}
	if err := n.repo.CreateNotification(ctx, row); err != nil {
		return fmt.Errorf("notify %s (%s): %w", userID, kind, err)
	}
	return nil
}

func (n *Notifier) AuctionWon(ctx context.Context, auction model.Auction, amount decimal.Decimal) error {
	if auction.WinnerID == nil {
		return fmt.Errorf("notify winner of auction %s: no winner", auction.AuctionID)
	}
	return n.Notify(ctx, *auction.WinnerID, model.NotificationAuctionWon,
		"You won an auction",
		fmt.Sprintf("Your bid of %s won \"%s\". Your saved payment method will be charged.", amount.StringFixed(2), auction.Title))
}

func (n *Notifier) AuctionSold(ctx context.Context, auction model.Auction, amount decimal.Decimal) error {
	return n.Notify(ctx, auction.CreatedBy, model.NotificationAuctionSold,
		"Your auction has ended",
		fmt.Sprintf("\"%s\" sold for %s.", auction.Title, amount.StringFixed(2)))
}

func (n *Notifier) AuctionUnsold(ctx context.Context, auction model.Auction) error {
	return n.Notify(ctx, auction.CreatedBy, model.NotificationAuctionUnsold,
		"Your auction has ended",
		fmt.Sprintf("\"%s\" ended without any bids.", auction.Title))
}

// PaymentOutcome tells the winner how the settlement charge went.
func (n *Notifier) PaymentOutcome(ctx context.Context, auction model.Auction, succeeded bool, detail string) error {
	if auction.WinnerID == nil {
		return fmt.Errorf("notify payment for auction %s: no winner", auction.AuctionID)
	}
	if succeeded {
		return n.Notify(ctx, *auction.WinnerID, model.NotificationPaymentSucceeded,
			"Payment received",
			fmt.Sprintf("We charged your saved payment method for \"%s\".", auction.Title))
	}
	return n.Notify(ctx, *auction.WinnerID, model.NotificationPaymentFailed,
		"Payment could not be completed",
		fmt.Sprintf("We could not charge your payment method for \"%s\": %s", auction.Title, detail))
}

func (n *Notifier) Outbid(ctx context.Context, userID string, auction model.Auction, amount decimal.Decimal) error {
	return n.Notify(ctx, userID, model.NotificationOutbid,
		"You have been outbid",
		fmt.Sprintf("Someone bid %s on \"%s\".", amount.StringFixed(2), auction.Title))
}

// ConnectionResponse tells a requester whether their connection invitation was accepted.
// It is for the social-graph flows; no HTTP route calls it.
func (n *Notifier) ConnectionResponse(ctx context.Context, requesterID, responderName string, accepted bool) error {
	if accepted {
		return n.Notify(ctx, requesterID, model.NotificationConnectionAccepted,
			"Connection accepted",
			fmt.Sprintf("%s accepted your connection request.", responderName))
	}
	return n.Notify(ctx, requesterID, model.NotificationConnectionRejected,
		"Connection declined",
		fmt.Sprintf("%s declined your connection request.", responderName))
}

// List returns the user's notifications, newest first
func (n *Notifier) List(ctx context.Context, userID string, unreadOnly bool) ([]model.Notification, error) {
	out, err := n.repo.ListNotifications(ctx, userID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return out, nil
}

func (n *Notifier) MarkRead(ctx context.Context, userID, notificationID string) error {
	if err := n.repo.MarkNotificationRead(ctx, userID, notificationID); err != nil {
		return fmt.Errorf("service: %w", err)
	}
	return nil
}

func (n *Notifier) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	count, err := n.repo.MarkAllNotificationsRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("service: %w", err)
	}
	return count, nil
}
