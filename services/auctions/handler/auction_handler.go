package handler

import (
	"context"
	"net/http"

	auctions "auction-marketplace/internal/auctionService"
	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/services/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AuctionServiceInterface interface {
	CreateAuction(ctx context.Context, sellerID string, in auctions.CreateAuctionInput) (model.Auction, error)
	PublishAuction(ctx context.Context, sellerID, auctionID string) (model.Auction, error)
	CancelAuction(ctx context.Context, sellerID, auctionID string) (model.Auction, error)
	GetAuction(ctx context.Context, auctionID string) (model.Auction, error)
	ListAuctions(ctx context.Context, status model.AuctionStatus) ([]model.Auction, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// ListAuctionsHandler handles GET /auctions?status=
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	status := model.AuctionStatus(c.Query("status"))
	list, err := h.service.ListAuctions(c.Request.Context(), status)
	if err != nil {
		helpers.RespondError(c, "ListAuctionsHandler", err, map[string]any{"status": string(status)})
		return
	}
	if list == nil {
		list = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, list, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"status": string(status),
		"count":  len(list),
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	auction, err := h.service.GetAuction(c.Request.Context(), auctionID)
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, auction, "auction retrieved successfully")
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	sellerID, ok := helpers.RequireUser(c, "CreateAuctionHandler")
	if !ok {
		return
	}

	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	auction, err := h.service.CreateAuction(c.Request.Context(), sellerID, auctions.CreateAuctionInput{
		Title:         req.Title,
		Description:   req.Description,
		StartingPrice: decimal.NewFromFloat(req.StartingPrice),
		EndDate:       req.EndDate,
	})
	if err != nil {
		helpers.RespondError(c, "CreateAuctionHandler", err, map[string]any{"seller_id": sellerID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auction, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"seller_id":  sellerID,
	})
}

// PublishAuctionHandler handles POST /auctions/:auction_id/publish
func (h *AuctionHandler) PublishAuctionHandler(c *gin.Context) {
	h.transition(c, "PublishAuctionHandler", "auction published", h.service.PublishAuction)
}

// CancelAuctionHandler handles POST /auctions/:auction_id/cancel
func (h *AuctionHandler) CancelAuctionHandler(c *gin.Context) {
	h.transition(c, "CancelAuctionHandler", "auction cancelled", h.service.CancelAuction)
}

func (h *AuctionHandler) transition(c *gin.Context, handlerName, message string,
	apply func(ctx context.Context, sellerID, auctionID string) (model.Auction, error)) {
	sellerID, ok := helpers.RequireUser(c, handlerName)
	if !ok {
		return
	}

	auctionID := c.Param("auction_id")
	if auctionID == "" {
		helpers.RespondError(c, handlerName, auctionerrors.ErrInvalidAuction, nil)
		return
	}

	auction, err := apply(c.Request.Context(), sellerID, auctionID)
	if err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{
			"auction_id": auctionID,
			"seller_id":  sellerID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, message)
	helpers.LogSuccess(handlerName, message, map[string]any{
		"auction_id": auctionID,
		"status":     string(auction.Status),
	})
}
