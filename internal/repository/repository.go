package repository

import (
	"context"
	"errors"
	"time"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock_repository.go -package=repository auction-marketplace/internal/repository AuctionDB,SettlementDB,NotificationDB

// AuctionDB defines listing and bid storage for the auction system
type AuctionDB interface {
	CreateAuction(ctx context.Context, auction *model.Auction) error
	GetAuction(ctx context.Context, auctionID string) (model.Auction, error)
	ListAuctions(ctx context.Context, status model.AuctionStatus) ([]model.Auction, error)
	UpdateAuctionStatus(ctx context.Context, auctionID string, from []model.AuctionStatus, to model.AuctionStatus) (bool, error)
	CountBids(ctx context.Context, auctionID string) (int64, error)
	RecordBid(ctx context.Context, bid model.Bid) error
	GetBidsByAuction(ctx context.Context, auctionID string) ([]model.Bid, error)
	GetWinningBid(ctx context.Context, auctionID string, cutoff time.Time) (model.Bid, error)
	GetUserAuctionBids(ctx context.Context, userID string) ([]model.UserAuctionBid, error)
}

// SettlementDB defines the statements the closer and the charger run
type SettlementDB interface {
	ListAuctionsToClose(ctx context.Context, now time.Time) ([]model.Auction, error)
	GetWinningBid(ctx context.Context, auctionID string, cutoff time.Time) (model.Bid, error)
	CloseAuction(ctx context.Context, auctionID string, winner *model.Bid, endedAt time.Time) (bool, error)
	ListUnsettledAuctions(ctx context.Context) ([]model.Auction, error)
	MarkSettlementError(ctx context.Context, auctionID string, at time.Time) (bool, error)
	GetCustomer(ctx context.Context, userID string) (model.Customer, error)
	CreatePayment(ctx context.Context, payment *model.PaymentRecord) error
}

// NotificationDB stores user notifications
type NotificationDB interface {
	CreateNotification(ctx context.Context, n *model.Notification) error
	ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID string) error
	MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error)
}

// WatchlistDB stores watchlist entries
type WatchlistDB interface {
	AddWatchlistEntry(ctx context.Context, entry *model.WatchlistEntry) error
	ListWatchlist(ctx context.Context, userID string) ([]model.WatchlistEntry, error)
	DeleteWatchlistByItem(ctx context.Context, userID, auctionItemID string) (int64, error)
	DeleteWatchlistByAuction(ctx context.Context, userID, auctionID string) (int64, error)
}

// PaymentDB stores processor customers and payment ledger updates
type PaymentDB interface {
	GetCustomer(ctx context.Context, userID string) (model.Customer, error)
	UpsertCustomer(ctx context.Context, customer *model.Customer) error
	SetPaymentMethod(ctx context.Context, userID, paymentMethodID string) error
	UpdatePaymentStatusByIntent(ctx context.Context, paymentIntentID, status, message string) (int64, error)
	GetPaymentByAuction(ctx context.Context, auctionID string) (model.PaymentRecord, error)
}

// ReviewDB stores user reviews
type ReviewDB interface {
	CreateReview(ctx context.Context, review *model.Review) error
	ListReviewsForUser(ctx context.Context, userID string) ([]model.Review, error)
}

// GormRepo implements every storage interface over one shared *gorm.DB pool.
type GormRepo struct {
	db *gorm.DB
}

var (
	_ AuctionDB      = (*GormRepo)(nil)
	_ SettlementDB   = (*GormRepo)(nil)
	_ NotificationDB = (*GormRepo)(nil)
	_ WatchlistDB    = (*GormRepo)(nil)
	_ PaymentDB      = (*GormRepo)(nil)
	_ ReviewDB       = (*GormRepo)(nil)
)

// NewGormRepo creates a repository over an open pool
func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{db: db}
}

// translate maps driver-level duplicates onto the domain sentinel.
func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return auctionerrors.ErrDuplicate
	}
	return err
}
