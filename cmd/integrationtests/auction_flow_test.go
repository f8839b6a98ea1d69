package integrationtests

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/payments"
	"auction-marketplace/internal/settlement"
	"auction-marketplace/services/helpers"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type closeSummary struct {
	Processed int                      `json:"processed"`
	Results   []settlement.CloseResult `json:"results"`
}

type chargeSummary struct {
	Processed int                       `json:"processed"`
	Results   []settlement.ChargeResult `json:"results"`
}

func TestAuctionLifecycle(t *testing.T) {
	app := SetupTestApp(t)
	auction := app.CreateActiveAuction(t, "seller", "Oak desk", 100)
	buyerX, buyerY := app.Token(t, "buyerX"), app.Token(t, "buyerY")

	// bids: X 100, Y 150, X 120 (too low), X 200, Y 175 (too low)
	bids := []struct {
		token      string
		amount     float64
		wantStatus int
	}{
		{token: buyerX, amount: 100, wantStatus: http.StatusCreated},
		{token: buyerY, amount: 150, wantStatus: http.StatusCreated},
		{token: buyerX, amount: 120, wantStatus: http.StatusConflict},
		{token: buyerX, amount: 200, wantStatus: http.StatusCreated},
		{token: buyerY, amount: 175, wantStatus: http.StatusConflict},
	}
	for _, b := range bids {
		_, w := app.ExecuteRequest(t, http.MethodPost, "/bids", b.token, helpers.PlaceBidRequest{
			AuctionID: auction.AuctionID,
			Amount:    b.amount,
		})
		require.Equal(t, b.wantStatus, w.Code, w.Body.String())
	}

	env, w := app.ExecuteRequest(t, http.MethodGet, "/auctions/"+auction.AuctionID+"/bids", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history []helpers.BidResponse
	DecodeData(t, env, &history)
	require.Len(t, history, 3)

	env, w = app.ExecuteRequest(t, http.MethodGet, "/auctions/"+auction.AuctionID+"/winning", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var leading helpers.BidResponse
	DecodeData(t, env, &leading)
	require.Equal(t, "buyerX", leading.UserID)
	require.Equal(t, 200.0, leading.Amount)

	// my bids: X leads, Y is outbid
	env, w = app.ExecuteRequest(t, http.MethodGet, "/me/bids", buyerY, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mine model.MyBids
	DecodeData(t, env, &mine)
	require.Empty(t, mine.Active)
	require.Len(t, mine.Outbid, 1)
	require.True(t, mine.Outbid[0].Amount.Equal(decimal.NewFromInt(150)))

	env, _ = app.ExecuteRequest(t, http.MethodGet, "/me/bids", buyerX, nil)
	DecodeData(t, env, &mine)
	require.Len(t, mine.Active, 1)
	require.Empty(t, mine.Outbid)
	require.True(t, mine.Active[0].Amount.Equal(decimal.NewFromInt(200)))

	// buyerX hears about being outbid by Y, buyerY about being outbid by X
	env, _ = app.ExecuteRequest(t, http.MethodGet, "/me/notifications?unread=true", buyerY, nil)
	var notes []model.Notification
	DecodeData(t, env, &notes)
	require.Len(t, notes, 1)
	require.Equal(t, model.NotificationOutbid, notes[0].Type)

	// the winner saves a card
	app.Processor.EXPECT().CreateCustomer(gomock.Any(), "buyerX", "buyerX@example.com").Return("cus_x", nil)
	app.Processor.EXPECT().AttachPaymentMethod(gomock.Any(), "pm_x", "cus_x").Return(nil)
	_, w = app.ExecuteRequest(t, http.MethodPost, "/payments/payment-method", buyerX, helpers.PaymentMethodRequest{PaymentMethodID: "pm_x"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// settlement requires the scheduler secret
	_, w = app.ExecuteRequest(t, http.MethodPost, "/settlement/close", buyerX, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// nothing has ended yet
	env, w = app.ExecuteRequest(t, http.MethodPost, "/settlement/close", testCronSecret, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var closed closeSummary
	DecodeData(t, env, &closed)
	require.Zero(t, closed.Processed)

	app.ExpireAuction(t, auction.AuctionID)

	env, w = app.ExecuteRequest(t, http.MethodPost, "/settlement/close", testCronSecret, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	DecodeData(t, env, &closed)
	require.Equal(t, 1, closed.Processed)
	require.Equal(t, settlement.OutcomeWon, closed.Results[0].Outcome)
	require.Equal(t, "buyerX", closed.Results[0].WinnerID)

	// bidding after the close is rejected
	_, w = app.ExecuteRequest(t, http.MethodPost, "/bids", buyerY, helpers.PlaceBidRequest{AuctionID: auction.AuctionID, Amount: 500})
	require.Equal(t, http.StatusConflict, w.Code)

	// a second close run finds nothing
	env, _ = app.ExecuteRequest(t, http.MethodPost, "/settlement/close", testCronSecret, nil)
	DecodeData(t, env, &closed)
	require.Zero(t, closed.Processed)

	app.Processor.EXPECT().ChargeOffSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, req payments.ChargeRequest) (payments.ChargeResult, error) {
			require.Equal(t, int64(20000), req.AmountCents)
			require.Equal(t, "cus_x", req.CustomerID)
			require.Equal(t, "pm_x", req.PaymentMethodID)
			return payments.ChargeResult{PaymentIntentID: "pi_1", Status: model.PaymentStatusSucceeded}, nil
		})

	env, w = app.ExecuteRequest(t, http.MethodPost, "/settlement/charge", testCronSecret, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var charged chargeSummary
	DecodeData(t, env, &charged)
	require.Equal(t, 1, charged.Processed)
	require.Equal(t, settlement.OutcomeCharged, charged.Results[0].Outcome)
	require.Equal(t, "pi_1", charged.Results[0].PaymentIntentID)

	// charged auctions are not charged twice
	env, _ = app.ExecuteRequest(t, http.MethodPost, "/settlement/charge", testCronSecret, nil)
	DecodeData(t, env, &charged)
	require.Zero(t, charged.Processed)

	env, _ = app.ExecuteRequest(t, http.MethodGet, "/auctions/"+auction.AuctionID, "", nil)
	var ended model.Auction
	DecodeData(t, env, &ended)
	require.Equal(t, model.AuctionStatusEnded, ended.Status)
	require.NotNil(t, ended.WinnerID)
	require.Equal(t, "buyerX", *ended.WinnerID)

	env, _ = app.ExecuteRequest(t, http.MethodGet, "/me/notifications", buyerX, nil)
	DecodeData(t, env, &notes)
	kinds := map[model.NotificationType]bool{}
	for _, n := range notes {
		kinds[n.Type] = true
	}
	require.True(t, kinds[model.NotificationAuctionWon])
	require.True(t, kinds[model.NotificationPaymentSucceeded])

	env, _ = app.ExecuteRequest(t, http.MethodGet, "/me/notifications", app.Token(t, "seller"), nil)
	DecodeData(t, env, &notes)
	require.Len(t, notes, 1)
	require.Equal(t, model.NotificationAuctionSold, notes[0].Type)

	// the buyer reviews the seller once
	review := helpers.ReviewRequest{RevieweeID: "seller", AuctionID: auction.AuctionID, Rating: 5, Comment: "great"}
	_, w = app.ExecuteRequest(t, http.MethodPost, "/reviews", buyerX, review)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	_, w = app.ExecuteRequest(t, http.MethodPost, "/reviews", buyerX, review)
	require.Equal(t, http.StatusConflict, w.Code)

	env, _ = app.ExecuteRequest(t, http.MethodGet, "/users/seller/reviews", "", nil)
	var summary model.ReviewSummary
	DecodeData(t, env, &summary)
	require.Equal(t, 1, summary.Count)
	require.InDelta(t, 5.0, summary.AverageRating, 0.0001)
}

func TestAuctionWithoutBids(t *testing.T) {
	app := SetupTestApp(t)
	auction := app.CreateActiveAuction(t, "seller", "Lamp", 10)
	app.ExpireAuction(t, auction.AuctionID)

	env, w := app.ExecuteRequest(t, http.MethodPost, "/settlement/close", testCronSecret, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var closed closeSummary
	DecodeData(t, env, &closed)
	require.Equal(t, 1, closed.Processed)
	require.Equal(t, settlement.OutcomeNoBids, closed.Results[0].Outcome)

	env, w = app.ExecuteRequest(t, http.MethodGet, "/auctions/"+auction.AuctionID+"/winning", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// nothing to charge, so the processor is never called
	env, _ = app.ExecuteRequest(t, http.MethodPost, "/settlement/charge", testCronSecret, nil)
	var charged chargeSummary
	DecodeData(t, env, &charged)
	require.Zero(t, charged.Processed)
}

func TestChargeWithoutPaymentMethod(t *testing.T) {
	app := SetupTestApp(t)
	auction := app.CreateActiveAuction(t, "seller", "Rug", 40)

	_, w := app.ExecuteRequest(t, http.MethodPost, "/bids", app.Token(t, "buyer"), helpers.PlaceBidRequest{AuctionID: auction.AuctionID, Amount: 45.5})
	require.Equal(t, http.StatusCreated, w.Code)
	app.ExpireAuction(t, auction.AuctionID)

	_, w = app.ExecuteRequest(t, http.MethodPost, "/settlement/close", testCronSecret, nil)
	require.Equal(t, http.StatusOK, w.Code)

	env, w := app.ExecuteRequest(t, http.MethodPost, "/settlement/charge", testCronSecret, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var charged chargeSummary
	DecodeData(t, env, &charged)
	require.Equal(t, 1, charged.Processed)
	require.Equal(t, settlement.OutcomeError, charged.Results[0].Outcome)
	require.Equal(t, int64(4550), charged.Results[0].AmountCents)

	// the auction is retried on the next run but the winner is told only once
	env, w = app.ExecuteRequest(t, http.MethodPost, "/settlement/charge", testCronSecret, nil)
	require.Equal(t, http.StatusOK, w.Code)
	DecodeData(t, env, &charged)
	require.Equal(t, 1, charged.Processed)
	require.Equal(t, settlement.OutcomeError, charged.Results[0].Outcome)

	env, _ = app.ExecuteRequest(t, http.MethodGet, "/me/notifications", app.Token(t, "buyer"), nil)
	var notes []model.Notification
	DecodeData(t, env, &notes)
	failed := 0
	for _, n := range notes {
		if n.Type == model.NotificationPaymentFailed {
			failed++
		}
	}
	require.Equal(t, 1, failed)
}

func TestBidRules(t *testing.T) {
	app := SetupTestApp(t)
	auction := app.CreateActiveAuction(t, "seller", "Vase", 50)

	tests := []struct {
		name       string
		token      string
		body       any
		wantStatus int
	}{
		{name: "no_session", body: helpers.PlaceBidRequest{AuctionID: auction.AuctionID, Amount: 60}, wantStatus: http.StatusUnauthorized},
		{name: "own_auction", token: app.Token(t, "seller"), body: helpers.PlaceBidRequest{AuctionID: auction.AuctionID, Amount: 60}, wantStatus: http.StatusForbidden},
		{name: "below_start", token: app.Token(t, "b1"), body: helpers.PlaceBidRequest{AuctionID: auction.AuctionID, Amount: 49.99}, wantStatus: http.StatusConflict},
		{name: "unknown_auction", token: app.Token(t, "b1"), body: helpers.PlaceBidRequest{AuctionID: "missing", Amount: 60}, wantStatus: http.StatusNotFound},
		{name: "invalid_json", token: app.Token(t, "b1"), body: []byte(`{auction_id: 'x'}`), wantStatus: http.StatusBadRequest},
		{name: "negative_amount", token: app.Token(t, "b1"), body: helpers.PlaceBidRequest{AuctionID: auction.AuctionID, Amount: -5}, wantStatus: http.StatusBadRequest},
		{name: "at_start", token: app.Token(t, "b1"), body: helpers.PlaceBidRequest{AuctionID: auction.AuctionID, Amount: 50}, wantStatus: http.StatusCreated},
		{name: "equal_to_current", token: app.Token(t, "b2"), body: helpers.PlaceBidRequest{AuctionID: auction.AuctionID, Amount: 50}, wantStatus: http.StatusConflict},
	}

	// sequential: later cases depend on the bids placed by earlier ones
	for _, tt := range tests {
		_, w := app.ExecuteRequest(t, http.MethodPost, "/bids", tt.token, tt.body)
		require.Equal(t, tt.wantStatus, w.Code, tt.name+": "+w.Body.String())
	}
}

func TestWatchlistAndNotifications(t *testing.T) {
	app := SetupTestApp(t)
	auction := app.CreateActiveAuction(t, "seller", "Clock", 20)
	token := app.Token(t, "watcher")

	_, w := app.ExecuteRequest(t, http.MethodPost, "/me/watchlist", token, helpers.WatchlistRequest{AuctionID: auction.AuctionID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	_, w = app.ExecuteRequest(t, http.MethodPost, "/me/watchlist", token, helpers.WatchlistRequest{AuctionID: auction.AuctionID})
	require.Equal(t, http.StatusConflict, w.Code)
	_, w = app.ExecuteRequest(t, http.MethodPost, "/me/watchlist", token, helpers.WatchlistRequest{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	_, w = app.ExecuteRequest(t, http.MethodPost, "/me/watchlist", token, helpers.WatchlistRequest{AuctionItemID: "legacy-item"})
	require.Equal(t, http.StatusCreated, w.Code)

	env, _ := app.ExecuteRequest(t, http.MethodGet, "/me/watchlist", token, nil)
	var entries []model.WatchlistEntry
	DecodeData(t, env, &entries)
	require.Len(t, entries, 2)

	_, w = app.ExecuteRequest(t, http.MethodDelete, "/me/watchlist/"+auction.AuctionID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, w = app.ExecuteRequest(t, http.MethodDelete, "/me/watchlist/"+auction.AuctionID, token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// two outbid notifications for the watcher
	_, w = app.ExecuteRequest(t, http.MethodPost, "/bids", token, helpers.PlaceBidRequest{AuctionID: auction.AuctionID, Amount: 20})
	require.Equal(t, http.StatusCreated, w.Code)
	_, w = app.ExecuteRequest(t, http.MethodPost, "/bids", app.Token(t, "rival"), helpers.PlaceBidRequest{AuctionID: auction.AuctionID, Amount: 25})
	require.Equal(t, http.StatusCreated, w.Code)
	_, w = app.ExecuteRequest(t, http.MethodPost, "/bids", token, helpers.PlaceBidRequest{AuctionID: auction.AuctionID, Amount: 30})
	require.Equal(t, http.StatusCreated, w.Code)
	_, w = app.ExecuteRequest(t, http.MethodPost, "/bids", app.Token(t, "rival"), helpers.PlaceBidRequest{AuctionID: auction.AuctionID, Amount: 35})
	require.Equal(t, http.StatusCreated, w.Code)

	env, _ = app.ExecuteRequest(t, http.MethodGet, "/me/notifications?unread=true", token, nil)
	var notes []model.Notification
	DecodeData(t, env, &notes)
	require.Len(t, notes, 2)

	_, w = app.ExecuteRequest(t, http.MethodPost, "/me/notifications/"+notes[0].NotificationID+"/read", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	// another user's notification is invisible
	_, w = app.ExecuteRequest(t, http.MethodPost, "/me/notifications/"+notes[1].NotificationID+"/read", app.Token(t, "rival"), nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	_, w = app.ExecuteRequest(t, http.MethodPost, "/me/notifications/read-all", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	env, _ = app.ExecuteRequest(t, http.MethodGet, "/me/notifications?unread=true", token, nil)
	DecodeData(t, env, &notes)
	require.Empty(t, notes)
}

func TestSellerControls(t *testing.T) {
	app := SetupTestApp(t)
	seller := app.Token(t, "seller")
	auction := app.CreateActiveAuction(t, "seller", "Mirror", 30)

	_, w := app.ExecuteRequest(t, http.MethodPost, "/auctions/"+auction.AuctionID+"/cancel", app.Token(t, "other"), nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	_, w = app.ExecuteRequest(t, http.MethodPost, "/auctions/"+auction.AuctionID+"/publish", seller, nil)
	require.Equal(t, http.StatusConflict, w.Code)

	_, w = app.ExecuteRequest(t, http.MethodPost, "/bids", app.Token(t, "buyer"), helpers.PlaceBidRequest{AuctionID: auction.AuctionID, Amount: 30})
	require.Equal(t, http.StatusCreated, w.Code)

	_, w = app.ExecuteRequest(t, http.MethodPost, "/auctions/"+auction.AuctionID+"/cancel", seller, nil)
	require.Equal(t, http.StatusConflict, w.Code)

	env, w := app.ExecuteRequest(t, http.MethodGet, "/auctions?status=active", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []model.Auction
	DecodeData(t, env, &listed)
	require.Len(t, listed, 1)

	_, w = app.ExecuteRequest(t, http.MethodGet, "/auctions?status=bogus", "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	env, w = app.ExecuteRequest(t, http.MethodPost, "/ai/description", seller, helpers.DescribeRequest{Title: "Mirror"})
	require.Equal(t, http.StatusOK, w.Code)
	var described helpers.DescribeResponse
	DecodeData(t, env, &described)
	require.Equal(t, "A fine Mirror.", described.Description)

	_, w = app.ExecuteRequest(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestPaymentSetupAndWebhook(t *testing.T) {
	app := SetupTestApp(t)
	buyer := app.Token(t, "buyer")

	app.Processor.EXPECT().CreateCustomer(gomock.Any(), "buyer", "buyer@example.com").Return("cus_b", nil)
	app.Processor.EXPECT().CreateSetupIntent(gomock.Any(), "cus_b").Return("seti_secret", nil)

	env, w := app.ExecuteRequest(t, http.MethodPost, "/payments/setup-intent", buyer, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var setup helpers.SetupIntentResponse
	DecodeData(t, env, &setup)
	require.Equal(t, "seti_secret", setup.ClientSecret)

	_, w = app.ExecuteRequest(t, http.MethodPost, "/payments/payment-method", buyer, map[string]any{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	require.NoError(t, app.DB.Create(&model.PaymentRecord{
		PaymentID:       "pay1",
		UserID:          "buyer",
		AuctionID:       "a1",
		AmountCents:     1000,
		Currency:        "usd",
		PaymentIntentID: "pi_9",
		Status:          "processing",
	}).Error)

	app.Processor.EXPECT().ParseWebhook([]byte(`{"id":"evt_1"}`), "t=1,v1=sig").Return(payments.WebhookEvent{
		ID:              "evt_1",
		Type:            payments.EventPaymentIntentSucceeded,
		PaymentIntentID: "pi_9",
		Status:          model.PaymentStatusSucceeded,
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewReader([]byte(`{"id":"evt_1"}`)))
	req.Header.Set("Stripe-Signature", "t=1,v1=sig")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"received":true}`, rec.Body.String())

	var stored model.PaymentRecord
	require.NoError(t, app.DB.Where("auction_id = ?", "a1").First(&stored).Error)
	require.Equal(t, model.PaymentStatusSucceeded, stored.Status)

	app.Processor.EXPECT().ParseWebhook(gomock.Any(), "").Return(payments.WebhookEvent{}, auctionerrors.ErrInvalidSignature)
	_, w = app.ExecuteRequest(t, http.MethodPost, "/payments/webhook", "", []byte(`{}`))
	require.Equal(t, http.StatusBadRequest, w.Code)
}
