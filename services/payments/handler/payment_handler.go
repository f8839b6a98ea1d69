package handler

import (
	"context"
	"io"
	"net/http"

	"auction-marketplace/internal/auth"
	"auction-marketplace/internal/payments"
	"auction-marketplace/services/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// maxWebhookBody caps the webhook payload read into memory.
const maxWebhookBody = 64 << 10

type PaymentServiceInterface interface {
	CreateSetupIntent(ctx context.Context, userID, email string) (string, error)
	SavePaymentMethod(ctx context.Context, userID, email, paymentMethodID string) error
	HandleWebhook(ctx context.Context, payload []byte, signature string) (payments.WebhookEvent, error)
}

type PaymentHandler struct {
	service PaymentServiceInterface
}

func NewPaymentHandler(service PaymentServiceInterface) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// SetupIntentHandler handles POST /payments/setup-intent
func (h *PaymentHandler) SetupIntentHandler(c *gin.Context) {
	userID, ok := helpers.RequireUser(c, "SetupIntentHandler")
	if !ok {
		return
	}

	secret, err := h.service.CreateSetupIntent(c.Request.Context(), userID, auth.GetEmail(c))
	if err != nil {
		helpers.RespondError(c, "SetupIntentHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.SetupIntentResponse{ClientSecret: secret}, "setup intent created")
	helpers.LogSuccess("SetupIntentHandler", "setup intent created", map[string]any{"user_id": userID})
}

// SavePaymentMethodHandler handles POST /payments/payment-method
func (h *PaymentHandler) SavePaymentMethodHandler(c *gin.Context) {
	userID, ok := helpers.RequireUser(c, "SavePaymentMethodHandler")
	if !ok {
		return
	}

	var req helpers.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SavePaymentMethodHandler", err)
		return
	}

	if err := h.service.SavePaymentMethod(c.Request.Context(), userID, auth.GetEmail(c), req.PaymentMethodID); err != nil {
		helpers.RespondError(c, "SavePaymentMethodHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"payment_method_id": req.PaymentMethodID}, "payment method saved")
	helpers.LogSuccess("SavePaymentMethodHandler", "payment method saved", map[string]any{"user_id": userID})
}

// WebhookHandler handles POST /payments/webhook
func (h *PaymentHandler) WebhookHandler(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		helpers.HandleBindError(c, "WebhookHandler", err)
		return
	}

	event, err := h.service.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		helpers.RespondError(c, "WebhookHandler", err, nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
	helpers.LogSuccess("WebhookHandler", "webhook processed", map[string]any{
		"event_id":   event.ID,
		"event_type": event.Type,
	})
}
