package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	auctions "auction-marketplace/internal/auctionService"
	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/auth"
	bidding "auction-marketplace/internal/biddingService"
	"auction-marketplace/internal/database"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/notifier"
	"auction-marketplace/internal/payments"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/reviews"
	"auction-marketplace/internal/server"
	"auction-marketplace/internal/settlement"
	"auction-marketplace/internal/watchlist"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	testJWTSecret  = "integration-jwt-secret"
	testCronSecret = "integration-cron-secret"
)

// TestApp is a full router over an in-memory SQLite database with a mocked payment processor.
type TestApp struct {
	Router    *gin.Engine
	DB        *gorm.DB
	Processor *payments.MockProcessor
	verifier  *auth.Verifier
}

type stubDescriber struct{}

func (stubDescriber) Describe(_ context.Context, image, title string) (string, error) {
	if image == "" && title == "" {
		return "", auctionerrors.ErrInvalidPrompt
	}
	return "A fine " + title + ".", nil
}

// SetupTestApp wires every real service the way main does, except for the processor and describer.
func SetupTestApp(t *testing.T) *TestApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenMemory(utils.GenerateID())
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	repo := repository.NewGormRepo(db)
	notify := notifier.New(repo)
	processor := payments.NewMockProcessor(gomock.NewController(t))
	verifier := auth.NewVerifier(testJWTSecret)

	router := server.SetupRouter(server.Dependencies{
		Auctions:       auctions.NewAuctionService(repo),
		Bidding:        bidding.NewBiddingService(repo, notify),
		Settlement:     settlement.NewService(repo, processor, notify, "usd"),
		Watchlist:      watchlist.NewService(repo),
		Notifications:  notify,
		Reviews:        reviews.NewService(repo),
		Payments:       payments.NewService(repo, processor),
		Describer:      stubDescriber{},
		Verifier:       verifier,
		CronSecret:     testCronSecret,
		AllowedOrigins: []string{"http://localhost:3000"},
	})

	return &TestApp{Router: router, DB: db, Processor: processor, verifier: verifier}
}

// Token returns a session token for userID.
func (a *TestApp) Token(t *testing.T, userID string) string {
	t.Helper()
	token, err := a.verifier.IssueToken(userID, userID+"@example.com", time.Hour)
	require.NoError(t, err)
	return token
}

// Envelope is the JSON shape every handler responds with.
type Envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// ExecuteRequest sends body (marshalled unless already []byte) with an optional bearer token.
func (a *TestApp) ExecuteRequest(t *testing.T, method, url, token string, body any) (Envelope, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	var env Envelope
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return env, w
}

// DecodeData unmarshals the envelope's data into out.
func DecodeData(t *testing.T, env Envelope, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out))
}

// CreateActiveAuction creates and publishes an auction owned by sellerID.
func (a *TestApp) CreateActiveAuction(t *testing.T, sellerID, title string, startingPrice float64) model.Auction {
	t.Helper()
	token := a.Token(t, sellerID)

	env, w := a.ExecuteRequest(t, http.MethodPost, "/auctions", token, map[string]any{
		"title":          title,
		"starting_price": startingPrice,
		"end_date":       time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var auction model.Auction
	DecodeData(t, env, &auction)
	require.Equal(t, model.AuctionStatusDraft, auction.Status)

	env, w = a.ExecuteRequest(t, http.MethodPost, "/auctions/"+auction.AuctionID+"/publish", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	DecodeData(t, env, &auction)
	require.Equal(t, model.AuctionStatusActive, auction.Status)
	return auction
}

// ExpireAuction moves an auction's end date into the past, keeping its bids before the close.
func (a *TestApp) ExpireAuction(t *testing.T, auctionID string) {
	t.Helper()
	var bids []model.Bid
	require.NoError(t, a.DB.Where("auction_id = ?", auctionID).Find(&bids).Error)
	for _, bid := range bids {
		require.NoError(t, a.DB.Model(&model.Bid{}).
			Where("id = ?", bid.BidID).
			Update("created_at", bid.CreatedAt.Add(-time.Hour)).Error)
	}
	require.NoError(t, a.DB.Model(&model.Auction{}).
		Where("id = ?", auctionID).
		Update("end_date", time.Now().UTC().Add(-time.Minute)).Error)
}
