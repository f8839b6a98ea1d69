// Package settlement closes auctions whose end date has passed and charges their winners.
//
// Both steps are single-pass and stateless. The closer only touches auctions still marked
// active, and the charger only picks ended auctions with a winner and no payment row, so an
// external scheduler can call them repeatedly and in either order without double-processing.
package settlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/metrics"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/notifier"
	"auction-marketplace/internal/payments"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"

	"github.com/shopspring/decimal"
)

const (
	OutcomeWon     = "won"
	OutcomeNoBids  = "no_bids"
	OutcomeSkipped = "skipped"
	OutcomeCharged = "charged"
	OutcomeError   = "error"
)

// CloseResult is the closer's outcome for one auction.
type CloseResult struct {
	AuctionID string          `json:"auction_id"`
	Outcome   string          `json:"outcome"`
	WinnerID  string          `json:"winner_id,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Error     string          `json:"error,omitempty"`
}

// ChargeResult is the charger's outcome for one auction.
type ChargeResult struct {
	AuctionID       string `json:"auction_id"`
	UserID          string `json:"user_id"`
	AmountCents     int64  `json:"amount_cents"`
	PaymentIntentID string `json:"payment_intent_id,omitempty"`
	Status          string `json:"status,omitempty"`
	Outcome         string `json:"outcome"`
	Error           string `json:"error,omitempty"`
}

// Service runs the close-out and charge steps.
type Service struct {
	repo      repository.SettlementDB
	processor payments.Processor
	notify    notifier.Sender
	currency  string
	now       func() time.Time
}

func NewService(repo repository.SettlementDB, processor payments.Processor, notify notifier.Sender, currency string) *Service {
	return &Service{
		repo:      repo,
		processor: processor,
		notify:    notify,
		currency:  currency,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CloseEndedAuctions ends every active auction whose end date has passed and records its winner.
// A failure on one auction is reported in its result and does not stop the others.
func (s *Service) CloseEndedAuctions(ctx context.Context) ([]CloseResult, error) {
	now := s.now()

	auctions, err := s.repo.ListAuctionsToClose(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	results := make([]CloseResult, 0, len(auctions))
	for _, auction := range auctions {
		res := s.closeAuction(ctx, auction, now)
		metrics.AuctionsClosed.WithLabelValues(res.Outcome).Inc()
		results = append(results, res)
	}

	utils.Info("close run finished", map[string]any{"auctions": len(auctions), "now": now.Format(time.RFC3339)})
	return results, nil
}

func (s *Service) closeAuction(ctx context.Context, auction model.Auction, now time.Time) CloseResult {
	res := CloseResult{AuctionID: auction.AuctionID}

	var winner *model.Bid
	top, err := s.repo.GetWinningBid(ctx, auction.AuctionID, auction.EndDate)
	switch {
	case err == nil:
		winner = &top
	case errors.Is(err, auctionerrors.ErrNoBids):
	default:
		return closeError(res, err)
	}

	closed, err := s.repo.CloseAuction(ctx, auction.AuctionID, winner, now)
	if err != nil {
		return closeError(res, err)
	}
	if !closed {
		res.Outcome = OutcomeSkipped
		utils.Info("auction already closed by another run", map[string]any{"auction_id": auction.AuctionID})
		return res
	}

	auction.Status = model.AuctionStatusEnded
	auction.EndedAt = &now
	if winner == nil {
		res.Outcome = OutcomeNoBids
		s.sendNotification("auction_unsold", auction.AuctionID, s.notify.AuctionUnsold(ctx, auction))
		utils.Info("auction ended without bids", map[string]any{"auction_id": auction.AuctionID})
		return res
	}

	auction.WinnerID = &winner.UserID
	auction.WinningBid = decimal.NewNullDecimal(winner.Amount)
	res.Outcome = OutcomeWon
	res.WinnerID = winner.UserID
	res.Amount = winner.Amount

	s.sendNotification("auction_won", auction.AuctionID, s.notify.AuctionWon(ctx, auction, winner.Amount))
	s.sendNotification("auction_sold", auction.AuctionID, s.notify.AuctionSold(ctx, auction, winner.Amount))

	utils.Info("auction ended with winner", map[string]any{
		"auction_id": auction.AuctionID,
		"winner_id":  winner.UserID,
		"amount":     winner.Amount.String(),
	})
	return res
}

func closeError(res CloseResult, err error) CloseResult {
	res.Outcome = OutcomeError
	res.Error = err.Error()
	utils.Error("failed to close auction", map[string]any{"auction_id": res.AuctionID, "error": err.Error()})
	return res
}

// ChargeWinners charges the winner of every ended auction that has no payment record yet.
// The processor status is stored as-is. Missing customer data or a decline is reported in that
// auction's result and the run moves on.
func (s *Service) ChargeWinners(ctx context.Context) ([]ChargeResult, error) {
	auctions, err := s.repo.ListUnsettledAuctions(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	results := make([]ChargeResult, 0, len(auctions))
	for _, auction := range auctions {
		res := s.chargeAuction(ctx, auction)
		label := res.Status
		if label == "" {
			label = OutcomeError
		}
		metrics.Charges.WithLabelValues(label).Inc()
		results = append(results, res)
	}

	utils.Info("charge run finished", map[string]any{"auctions": len(auctions)})
	return results, nil
}

func (s *Service) chargeAuction(ctx context.Context, auction model.Auction) ChargeResult {
	res := ChargeResult{AuctionID: auction.AuctionID}
	if auction.WinnerID == nil || !auction.WinningBid.Valid {
		return chargeError(res, fmt.Errorf("auction %s has no recorded winning bid", auction.AuctionID))
	}
	res.UserID = *auction.WinnerID
	res.AmountCents = ToCents(auction.WinningBid.Decimal)

	// the winner hears about every failure except a ledger write after a real charge
	fail := func(err error) ChargeResult {
		s.sendNotification("payment_failed", auction.AuctionID, s.notify.PaymentOutcome(ctx, auction, false, err.Error()))
		return chargeError(res, err)
	}
	// failures that leave no ledger row keep the auction in the next run; notify on the first only
	failUnrecorded := func(err error) ChargeResult {
		first, markErr := s.repo.MarkSettlementError(ctx, auction.AuctionID, s.now())
		if markErr != nil {
			utils.Warn("failed to mark settlement error", map[string]any{
				"auction_id": auction.AuctionID,
				"error":      markErr.Error(),
			})
		}
		if !first {
			return chargeError(res, err)
		}
		return fail(err)
	}

	customer, err := s.repo.GetCustomer(ctx, res.UserID)
	if err != nil {
		return failUnrecorded(err)
	}
	if customer.PaymentMethodID == nil || *customer.PaymentMethodID == "" {
		return failUnrecorded(fmt.Errorf("user %s: %w", res.UserID, auctionerrors.ErrMissingPaymentMethod))
	}

	charge, chargeErr := s.processor.ChargeOffSession(ctx, payments.ChargeRequest{
		AuctionID:       auction.AuctionID,
		UserID:          res.UserID,
		CustomerID:      customer.StripeCustomerID,
		PaymentMethodID: *customer.PaymentMethodID,
		AmountCents:     res.AmountCents,
		Currency:        s.currency,
		Description:     fmt.Sprintf("Winning bid for %s", auction.Title),
	})
	res.PaymentIntentID = charge.PaymentIntentID
	res.Status = charge.Status
	if chargeErr != nil && charge.PaymentIntentID == "" {
		return failUnrecorded(chargeErr)
	}

	record := &model.PaymentRecord{
		PaymentID:       utils.GenerateID(),
		UserID:          res.UserID,
		AuctionID:       auction.AuctionID,
		AmountCents:     res.AmountCents,
		Currency:        s.currency,
		PaymentIntentID: charge.PaymentIntentID,
		Status:          charge.Status,
	}
	if chargeErr != nil {
		if record.Status == "" || record.Status == model.PaymentStatusSucceeded {
			record.Status = model.PaymentStatusFailed
		}
		record.ErrorMessage = chargeErr.Error()
		res.Status = record.Status
	}
	if err := s.repo.CreatePayment(ctx, record); err != nil {
		utils.Error("processor charge made but payment record not written", map[string]any{
			"auction_id":        auction.AuctionID,
			"payment_intent_id": charge.PaymentIntentID,
			"error":             err.Error(),
		})
		return chargeError(res, err)
	}
	if chargeErr != nil {
		return fail(chargeErr)
	}

	if record.Status == model.PaymentStatusSucceeded {
		s.sendNotification("payment_succeeded", auction.AuctionID, s.notify.PaymentOutcome(ctx, auction, true, record.Status))
	}

	res.Outcome = OutcomeCharged
	utils.Info("winner charged", map[string]any{
		"auction_id":        auction.AuctionID,
		"user_id":           res.UserID,
		"amount_cents":      res.AmountCents,
		"payment_intent_id": res.PaymentIntentID,
		"status":            res.Status,
	})
	return res
}

func chargeError(res ChargeResult, err error) ChargeResult {
	res.Outcome = OutcomeError
	res.Error = err.Error()
	utils.Error("failed to charge auction winner", map[string]any{
		"auction_id": res.AuctionID,
		"user_id":    res.UserID,
		"error":      err.Error(),
	})
	return res
}

// sendNotification logs notification failures; they never change a settlement outcome.
func (s *Service) sendNotification(kind, auctionID string, err error) {
	if err != nil {
		utils.Warn("failed to send notification", map[string]any{
			"kind":       kind,
			"auction_id": auctionID,
			"error":      err.Error(),
		})
	}
}

// ToCents converts a major-unit amount to minor units, truncating fractions of a cent.
func ToCents(amount decimal.Decimal) int64 {
	return amount.Shift(2).Truncate(0).IntPart()
}
