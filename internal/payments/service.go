package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"
)

// Service manages processor customers, saved payment methods and webhook updates.
type Service struct {
	repo      repository.PaymentDB
	processor Processor
}

func NewService(repo repository.PaymentDB, processor Processor) *Service {
	return &Service{repo: repo, processor: processor}
}

// EnsureCustomer returns the user's customer row, creating the processor customer on first use.
func (s *Service) EnsureCustomer(ctx context.Context, userID, email string) (model.Customer, error) {
	customer, err := s.repo.GetCustomer(ctx, userID)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, auctionerrors.ErrCustomerNotFound) {
		return model.Customer{}, fmt.Errorf("service: %w", err)
	}

	customerID, err := s.processor.CreateCustomer(ctx, userID, email)
	if err != nil {
		return model.Customer{}, fmt.Errorf("service: %w", err)
	}

	customer = model.Customer{UserID: userID, StripeCustomerID: customerID}
	if err := s.repo.UpsertCustomer(ctx, &customer); err != nil {
		return model.Customer{}, fmt.Errorf("service: %w", err)
	}
	utils.Info("processor customer created", map[string]any{"user_id": userID, "customer_id": customerID})
	return customer, nil
}

// CreateSetupIntent returns a client secret the frontend uses to save a card for off-session charges.
func (s *Service) CreateSetupIntent(ctx context.Context, userID, email string) (string, error) {
	customer, err := s.EnsureCustomer(ctx, userID, email)
	if err != nil {
		return "", err
	}

	secret, err := s.processor.CreateSetupIntent(ctx, customer.StripeCustomerID)
	if err != nil {
		return "", fmt.Errorf("service: %w", err)
	}
	return secret, nil
}

// SavePaymentMethod attaches a confirmed payment method and stores it as the default for settlement.
func (s *Service) SavePaymentMethod(ctx context.Context, userID, email, paymentMethodID string) error {
	if strings.TrimSpace(paymentMethodID) == "" {
		return fmt.Errorf("service: %w - empty payment method id", auctionerrors.ErrMissingPaymentMethod)
	}

	customer, err := s.EnsureCustomer(ctx, userID, email)
	if err != nil {
		return err
	}

	if err := s.processor.AttachPaymentMethod(ctx, paymentMethodID, customer.StripeCustomerID); err != nil {
		return fmt.Errorf("service: %w", err)
	}
	if err := s.repo.SetPaymentMethod(ctx, userID, paymentMethodID); err != nil {
		return fmt.Errorf("service: %w", err)
	}
	return nil
}

// HandleWebhook verifies an event and mirrors payment intent status changes onto the ledger.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) (WebhookEvent, error) {
	event, err := s.processor.ParseWebhook(payload, signature)
	if err != nil {
		return WebhookEvent{}, fmt.Errorf("service: %w", err)
	}

	switch event.Type {
	case EventPaymentIntentSucceeded, EventPaymentIntentFailed:
		if event.PaymentIntentID == "" {
			utils.Warn("payment intent event without intent id", map[string]any{"event_id": event.ID, "type": event.Type})
			return event, nil
		}
		status := event.Status
		if status == "" && event.Type == EventPaymentIntentSucceeded {
			status = model.PaymentStatusSucceeded
		}
		updated, err := s.repo.UpdatePaymentStatusByIntent(ctx, event.PaymentIntentID, status, event.FailureMessage)
		if err != nil {
			return event, fmt.Errorf("service: %w", err)
		}
		utils.Info("payment status updated from webhook", map[string]any{
			"event_id":          event.ID,
			"payment_intent_id": event.PaymentIntentID,
			"status":            status,
			"rows":              updated,
		})
	case EventCheckoutCompleted:
		utils.Info("checkout session completed", map[string]any{"event_id": event.ID})
	default:
		utils.Debug("ignoring webhook event", map[string]any{"event_id": event.ID, "type": event.Type})
	}
	return event, nil
}
