package handler

import (
	"context"
	"net/http"

	"auction-marketplace/internal/settlement"
	"auction-marketplace/services/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=mock_settlement_service.go -package=handler auction-marketplace/services/settlement/handler SettlementServiceInterface

type SettlementServiceInterface interface {
	CloseEndedAuctions(ctx context.Context) ([]settlement.CloseResult, error)
	ChargeWinners(ctx context.Context) ([]settlement.ChargeResult, error)
}

type SettlementHandler struct {
	service SettlementServiceInterface
}

func NewSettlementHandler(service SettlementServiceInterface) *SettlementHandler {
	return &SettlementHandler{service: service}
}

type closeSummary struct {
	Processed int                      `json:"processed"`
	Results   []settlement.CloseResult `json:"results"`
}

type chargeSummary struct {
	Processed int                       `json:"processed"`
	Results   []settlement.ChargeResult `json:"results"`
}

// CloseAuctionsHandler handles POST /settlement/close
func (h *SettlementHandler) CloseAuctionsHandler(c *gin.Context) {
	results, err := h.service.CloseEndedAuctions(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "CloseAuctionsHandler", err, nil)
		return
	}
	if results == nil {
		results = []settlement.CloseResult{}
	}

	utils.JSONResponse(c, http.StatusOK, closeSummary{Processed: len(results), Results: results}, "auctions closed")
	helpers.LogSuccess("CloseAuctionsHandler", "auctions closed", map[string]any{"processed": len(results)})
}

// ChargeWinnersHandler handles POST /settlement/charge
func (h *SettlementHandler) ChargeWinnersHandler(c *gin.Context) {
	results, err := h.service.ChargeWinners(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "ChargeWinnersHandler", err, nil)
		return
	}
	if results == nil {
		results = []settlement.ChargeResult{}
	}

	utils.JSONResponse(c, http.StatusOK, chargeSummary{Processed: len(results), Results: results}, "winners charged")
	helpers.LogSuccess("ChargeWinnersHandler", "winners charged", map[string]any{"processed": len(results)})
}
