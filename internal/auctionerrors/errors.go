package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound      = errors.New("auction not found")
	ErrNoBids               = errors.New("no bids found for auction")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrCustomerNotFound     = errors.New("missing customer record")
	ErrPaymentNotFound      = errors.New("payment record not found")
	ErrDuplicate            = errors.New("record already exists")
)

// business logic errors
var (
	ErrInvalidBid         = errors.New("invalid bid")
	ErrBidTooLow          = errors.New("bid amount too low")
	ErrAuctionClosed      = errors.New("auction is not accepting bids")
	ErrOwnAuction         = errors.New("sellers cannot bid on their own auction")
	ErrInvalidAuction     = errors.New("invalid auction details")
	ErrInvalidTransition  = errors.New("auction cannot change to the requested status")
	ErrNotAuctionOwner    = errors.New("auction belongs to another seller")
	ErrAuctionHasBids     = errors.New("auction already has bids")
	ErrInvalidReview      = errors.New("invalid review")
	ErrSelfReview         = errors.New("users cannot review themselves")
	ErrAlreadyReviewed    = errors.New("review already submitted")
	ErrInvalidWatchlist   = errors.New("invalid watchlist request")
	ErrAlreadyInWatchlist = errors.New("already in watchlist")
	ErrWatchlistNotFound  = errors.New("watchlist entry not found")
)

// settlement and payment errors
var (
	ErrMissingPaymentMethod = errors.New("missing payment method")
	ErrPaymentDeclined      = errors.New("payment declined by processor")
	ErrProcessor            = errors.New("payment processor error")
	ErrInvalidSignature     = errors.New("invalid webhook signature")
)

// auth and upstream errors
var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidPrompt   = errors.New("an image or a title is required")
	ErrDescribeFailure = errors.New("description service unavailable")
)
