package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"auction-marketplace/internal/auctionerrors"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

//go:generate mockgen -destination=mock_processor.go -package=payments auction-marketplace/internal/payments Processor

// ChargeRequest describes one off-session settlement charge.
type ChargeRequest struct {
	AuctionID       string
	UserID          string
	CustomerID      string
	PaymentMethodID string
	AmountCents     int64
	Currency        string
	Description     string
}

// ChargeResult carries the processor's view of a charge. Status is passed through verbatim.
type ChargeResult struct {
	PaymentIntentID string
	Status          string
}

// WebhookEvent is the subset of a verified processor event this service acts on.
type WebhookEvent struct {
	ID              string
	Type            string
	PaymentIntentID string
	Status          string
	FailureMessage  string
}

const (
	EventPaymentIntentSucceeded = "payment_intent.succeeded"
	EventPaymentIntentFailed    = "payment_intent.payment_failed"
	EventCheckoutCompleted      = "checkout.session.completed"
)

// Processor is the payment processor surface used by settlement and payment setup.
type Processor interface {
	ChargeOffSession(ctx context.Context, req ChargeRequest) (ChargeResult, error)
	CreateCustomer(ctx context.Context, userID, email string) (string, error)
	CreateSetupIntent(ctx context.Context, customerID string) (string, error)
	AttachPaymentMethod(ctx context.Context, paymentMethodID, customerID string) error
	ParseWebhook(payload []byte, signature string) (WebhookEvent, error)
}

// StripeProcessor implements Processor with a per-instance Stripe client.
type StripeProcessor struct {
	api           *client.API
	webhookSecret string
}

var _ Processor = (*StripeProcessor)(nil)

// NewStripeProcessor builds a processor. backends may be nil to use Stripe's default endpoints.
func NewStripeProcessor(secretKey, webhookSecret string, backends *stripe.Backends) *StripeProcessor {
	api := &client.API{}
	api.Init(secretKey, backends)
	return &StripeProcessor{api: api, webhookSecret: webhookSecret}
}

// ChargeOffSession creates and confirms a PaymentIntent without the customer present.
// On a decline the returned result still carries the intent id and status when Stripe sent them.
func (p *StripeProcessor) ChargeOffSession(ctx context.Context, req ChargeRequest) (ChargeResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(req.AmountCents),
		Currency:      stripe.String(req.Currency),
		Customer:      stripe.String(req.CustomerID),
		PaymentMethod: stripe.String(req.PaymentMethodID),
		OffSession:    stripe.Bool(true),
		Confirm:       stripe.Bool(true),
	}
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	params.Context = ctx
	params.SetIdempotencyKey("settle-" + req.AuctionID)
	params.AddMetadata("auction_id", req.AuctionID)
	params.AddMetadata("user_id", req.UserID)

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			result := ChargeResult{}
			if stripeErr.PaymentIntent != nil {
				result.PaymentIntentID = stripeErr.PaymentIntent.ID
				result.Status = string(stripeErr.PaymentIntent.Status)
			}
			if stripeErr.Type == stripe.ErrorTypeCard {
				return result, fmt.Errorf("%w: %s", auctionerrors.ErrPaymentDeclined, stripeErr.Msg)
			}
			return result, fmt.Errorf("%w: %s", auctionerrors.ErrProcessor, stripeErr.Msg)
		}
		return ChargeResult{}, fmt.Errorf("%w: %v", auctionerrors.ErrProcessor, err)
	}

	return ChargeResult{PaymentIntentID: pi.ID, Status: string(pi.Status)}, nil
}

// CreateCustomer registers the user with Stripe and returns the customer id.
func (p *StripeProcessor) CreateCustomer(ctx context.Context, userID, email string) (string, error) {
	params := &stripe.CustomerParams{}
	if email != "" {
		params.Email = stripe.String(email)
	}
	params.Context = ctx
	params.AddMetadata("user_id", userID)

	c, err := p.api.Customers.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: create customer: %v", auctionerrors.ErrProcessor, err)
	}
	return c.ID, nil
}

// CreateSetupIntent prepares a card for future off-session charges and returns its client secret.
func (p *StripeProcessor) CreateSetupIntent(ctx context.Context, customerID string) (string, error) {
	params := &stripe.SetupIntentParams{
		Customer:           stripe.String(customerID),
		Usage:              stripe.String(string(stripe.SetupIntentUsageOffSession)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	si, err := p.api.SetupIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: create setup intent: %v", auctionerrors.ErrProcessor, err)
	}
	return si.ClientSecret, nil
}

// AttachPaymentMethod attaches a payment method and makes it the customer's default.
func (p *StripeProcessor) AttachPaymentMethod(ctx context.Context, paymentMethodID, customerID string) error {
	attach := &stripe.PaymentMethodAttachParams{Customer: stripe.String(customerID)}
	attach.Context = ctx
	if _, err := p.api.PaymentMethods.Attach(paymentMethodID, attach); err != nil {
		return fmt.Errorf("%w: attach payment method: %v", auctionerrors.ErrProcessor, err)
	}

	update := &stripe.CustomerParams{
		InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(paymentMethodID),
		},
	}
	update.Context = ctx
	if _, err := p.api.Customers.Update(customerID, update); err != nil {
		return fmt.Errorf("%w: set default payment method: %v", auctionerrors.ErrProcessor, err)
	}
	return nil
}

// ParseWebhook verifies the Stripe-Signature header and decodes the event.
func (p *StripeProcessor) ParseWebhook(payload []byte, signature string) (WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, p.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return WebhookEvent{}, fmt.Errorf("%w: %v", auctionerrors.ErrInvalidSignature, err)
	}

	out := WebhookEvent{ID: event.ID, Type: string(event.Type)}
	switch out.Type {
	case EventPaymentIntentSucceeded, EventPaymentIntentFailed:
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return WebhookEvent{}, fmt.Errorf("decode payment intent in event %s: %w", event.ID, err)
		}
		out.PaymentIntentID = pi.ID
		out.Status = string(pi.Status)
		if pi.LastPaymentError != nil {
			out.FailureMessage = pi.LastPaymentError.Msg
		}
	}
	return out, nil
}
