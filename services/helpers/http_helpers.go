package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/auth"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, auctionerrors.ErrOwnAuction):
		return http.StatusForbidden, "sellers cannot bid on their own auction"
	case errors.Is(err, auctionerrors.ErrNotAuctionOwner):
		return http.StatusForbidden, "auction belongs to another seller"
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrNotificationNotFound):
		return http.StatusNotFound, "notification not found"
	case errors.Is(err, auctionerrors.ErrWatchlistNotFound):
		return http.StatusNotFound, "watchlist entry not found"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrInvalidAuction):
		return http.StatusBadRequest, "invalid auction details"
	case errors.Is(err, auctionerrors.ErrSelfReview):
		return http.StatusBadRequest, "users cannot review themselves"
	case errors.Is(err, auctionerrors.ErrInvalidReview):
		return http.StatusBadRequest, "invalid review"
	case errors.Is(err, auctionerrors.ErrInvalidWatchlist):
		return http.StatusBadRequest, "invalid watchlist request"
	case errors.Is(err, auctionerrors.ErrInvalidPrompt):
		return http.StatusBadRequest, "an image or a title is required"
	case errors.Is(err, auctionerrors.ErrInvalidSignature):
		return http.StatusBadRequest, "invalid webhook signature"
	case errors.Is(err, auctionerrors.ErrMissingPaymentMethod), errors.Is(err, auctionerrors.ErrCustomerNotFound):
		return http.StatusBadRequest, "missing payment method"
	case errors.Is(err, auctionerrors.ErrPaymentDeclined):
		return http.StatusBadRequest, "payment declined"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrAuctionClosed):
		return http.StatusConflict, "auction closed"
	case errors.Is(err, auctionerrors.ErrInvalidTransition):
		return http.StatusConflict, "invalid auction status change"
	case errors.Is(err, auctionerrors.ErrAuctionHasBids):
		return http.StatusConflict, "auction already has bids"
	case errors.Is(err, auctionerrors.ErrAlreadyInWatchlist):
		return http.StatusConflict, "already in watchlist"
	case errors.Is(err, auctionerrors.ErrAlreadyReviewed):
		return http.StatusConflict, "review already submitted"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusOK, "no bids found for auction"
	case errors.Is(err, auctionerrors.ErrProcessor), errors.Is(err, auctionerrors.ErrDescribeFailure):
		return http.StatusBadGateway, "upstream service error"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError maps err, writes the error envelope and logs it with the given context
func RespondError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	fields := map[string]any{"handler": handlerName, "status": status, "error": err.Error()}
	for k, v := range ctx {
		fields[k] = v
	}
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// RequireUser returns the session user id, writing a 401 when the session is missing
func RequireUser(c *gin.Context, handlerName string) (string, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		RespondError(c, handlerName, auctionerrors.ErrUnauthorized, nil)
		return "", false
	}
	return userID, true
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
