package handler

import (
	"context"
	"net/http"

	model "auction-marketplace/internal/models"
	"auction-marketplace/services/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type WatchlistServiceInterface interface {
	Add(ctx context.Context, userID, auctionID, auctionItemID string) (model.WatchlistEntry, error)
	Remove(ctx context.Context, userID, targetID string) error
	List(ctx context.Context, userID string) ([]model.WatchlistEntry, error)
}

type WatchlistHandler struct {
	service WatchlistServiceInterface
}

func NewWatchlistHandler(service WatchlistServiceInterface) *WatchlistHandler {
	return &WatchlistHandler{service: service}
}

// ListHandler handles GET /me/watchlist
func (h *WatchlistHandler) ListHandler(c *gin.Context) {
	userID, ok := helpers.RequireUser(c, "WatchlistListHandler")
	if !ok {
		return
	}

	entries, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, "WatchlistListHandler", err, map[string]any{"user_id": userID})
		return
	}
	if entries == nil {
		entries = []model.WatchlistEntry{}
	}
	utils.JSONResponse(c, http.StatusOK, entries, "watchlist retrieved successfully")
}

// AddHandler handles POST /me/watchlist
func (h *WatchlistHandler) AddHandler(c *gin.Context) {
	userID, ok := helpers.RequireUser(c, "WatchlistAddHandler")
	if !ok {
		return
	}

	var req helpers.WatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "WatchlistAddHandler", err)
		return
	}

	entry, err := h.service.Add(c.Request.Context(), userID, req.AuctionID, req.AuctionItemID)
	if err != nil {
		helpers.RespondError(c, "WatchlistAddHandler", err, map[string]any{
			"user_id":         userID,
			"auction_id":      req.AuctionID,
			"auction_item_id": req.AuctionItemID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, entry, "added to watchlist")
	helpers.LogSuccess("WatchlistAddHandler", "added to watchlist", map[string]any{
		"user_id":  userID,
		"entry_id": entry.EntryID,
	})
}

// RemoveHandler handles DELETE /me/watchlist/:target_id
func (h *WatchlistHandler) RemoveHandler(c *gin.Context) {
	userID, ok := helpers.RequireUser(c, "WatchlistRemoveHandler")
	if !ok {
		return
	}

	targetID := c.Param("target_id")
	if err := h.service.Remove(c.Request.Context(), userID, targetID); err != nil {
		helpers.RespondError(c, "WatchlistRemoveHandler", err, map[string]any{
			"user_id":   userID,
			"target_id": targetID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"removed": targetID}, "removed from watchlist")
}
