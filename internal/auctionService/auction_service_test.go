package auctions

import (
	"context"
	"errors"
	"testing"
	"time"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*AuctionService, *repository.MockAuctionDB) {
	t.Helper()
	repo := repository.NewMockAuctionDB(gomock.NewController(t))
	svc := NewAuctionService(repo)
	svc.now = func() time.Time { return testNow }
	return svc, repo
}

func TestAuctionService_CreateAuction(t *testing.T) {
	t.Parallel()

	valid := CreateAuctionInput{
		Title:         "  Walnut chair ",
		Description:   "solid wood",
		StartingPrice: decimal.RequireFromString("19.999"),
		EndDate:       testNow.Add(48 * time.Hour),
	}

	tests := []struct {
		name          string
		sellerID      string
		mutate        func(in *CreateAuctionInput)
		expectStore   bool
		storeErr      error
		expectedError error
	}{
		{name: "valid", sellerID: "s1", expectStore: true},
		{name: "missing_seller", expectedError: auctionerrors.ErrInvalidAuction},
		{name: "blank_title", sellerID: "s1", mutate: func(in *CreateAuctionInput) { in.Title = "   " }, expectedError: auctionerrors.ErrInvalidAuction},
		{name: "zero_price", sellerID: "s1", mutate: func(in *CreateAuctionInput) { in.StartingPrice = decimal.Zero }, expectedError: auctionerrors.ErrInvalidAuction},
		{name: "past_end", sellerID: "s1", mutate: func(in *CreateAuctionInput) { in.EndDate = testNow.Add(-time.Minute) }, expectedError: auctionerrors.ErrInvalidAuction},
		{name: "store_error", sellerID: "s1", expectStore: true, storeErr: errors.New("db down")},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newTestService(t)

			in := valid
			if tc.mutate != nil {
				tc.mutate(&in)
			}
			if tc.expectStore {
				repo.EXPECT().CreateAuction(gomock.Any(), gomock.Any()).Return(tc.storeErr)
			}

			auction, err := svc.CreateAuction(context.Background(), tc.sellerID, in)
			switch {
			case tc.expectedError != nil:
				require.ErrorIs(t, err, tc.expectedError)
			case tc.storeErr != nil:
				require.ErrorContains(t, err, "db down")
			default:
				require.NoError(t, err)
				require.Equal(t, "Walnut chair", auction.Title)
				require.Equal(t, models.AuctionStatusDraft, auction.Status)
				require.True(t, auction.StartingPrice.Equal(decimal.NewFromInt(20)))
				require.Equal(t, "s1", auction.CreatedBy)
				require.NotEmpty(t, auction.AuctionID)
			}
		})
	}
}

func TestAuctionService_PublishAuction(t *testing.T) {
	t.Parallel()

	draft := models.Auction{
		AuctionID: "a1",
		CreatedBy: "s1",
		Status:    models.AuctionStatusDraft,
		EndDate:   testNow.Add(time.Hour),
	}
	openable := []models.AuctionStatus{models.AuctionStatusDraft, models.AuctionStatusUpcoming}

	t.Run("opens_draft", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetAuction(gomock.Any(), "a1").Return(draft, nil)
		repo.EXPECT().UpdateAuctionStatus(gomock.Any(), "a1", openable, models.AuctionStatusActive).Return(true, nil)

		auction, err := svc.PublishAuction(context.Background(), "s1", "a1")
		require.NoError(t, err)
		require.Equal(t, models.AuctionStatusActive, auction.Status)
	})

	t.Run("not_owner", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetAuction(gomock.Any(), "a1").Return(draft, nil)

		_, err := svc.PublishAuction(context.Background(), "intruder", "a1")
		require.ErrorIs(t, err, auctionerrors.ErrNotAuctionOwner)
	})

	t.Run("already_active", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		active := draft
		active.Status = models.AuctionStatusActive
		repo.EXPECT().GetAuction(gomock.Any(), "a1").Return(active, nil)
		repo.EXPECT().UpdateAuctionStatus(gomock.Any(), "a1", openable, models.AuctionStatusActive).Return(false, nil)

		_, err := svc.PublishAuction(context.Background(), "s1", "a1")
		require.ErrorIs(t, err, auctionerrors.ErrInvalidTransition)
	})

	t.Run("end_date_passed", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		stale := draft
		stale.EndDate = testNow.Add(-time.Hour)
		repo.EXPECT().GetAuction(gomock.Any(), "a1").Return(stale, nil)

		_, err := svc.PublishAuction(context.Background(), "s1", "a1")
		require.ErrorIs(t, err, auctionerrors.ErrInvalidTransition)
	})

	t.Run("not_found", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetAuction(gomock.Any(), "missing").Return(models.Auction{}, auctionerrors.ErrAuctionNotFound)

		_, err := svc.PublishAuction(context.Background(), "s1", "missing")
		require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)
	})
}

func TestAuctionService_CancelAuction(t *testing.T) {
	t.Parallel()

	active := models.Auction{
		AuctionID: "a1",
		CreatedBy: "s1",
		Status:    models.AuctionStatusActive,
		EndDate:   testNow.Add(time.Hour),
	}

	t.Run("no_bids", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetAuction(gomock.Any(), "a1").Return(active, nil)
		repo.EXPECT().CountBids(gomock.Any(), "a1").Return(int64(0), nil)
		repo.EXPECT().UpdateAuctionStatus(gomock.Any(), "a1", gomock.Any(), models.AuctionStatusCancelled).Return(true, nil)

		auction, err := svc.CancelAuction(context.Background(), "s1", "a1")
		require.NoError(t, err)
		require.Equal(t, models.AuctionStatusCancelled, auction.Status)
	})

	t.Run("has_bids", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetAuction(gomock.Any(), "a1").Return(active, nil)
		repo.EXPECT().CountBids(gomock.Any(), "a1").Return(int64(2), nil)

		_, err := svc.CancelAuction(context.Background(), "s1", "a1")
		require.ErrorIs(t, err, auctionerrors.ErrAuctionHasBids)
	})

	t.Run("already_ended", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		ended := active
		ended.Status = models.AuctionStatusEnded
		repo.EXPECT().GetAuction(gomock.Any(), "a1").Return(ended, nil)
		repo.EXPECT().CountBids(gomock.Any(), "a1").Return(int64(0), nil)
		repo.EXPECT().UpdateAuctionStatus(gomock.Any(), "a1", gomock.Any(), models.AuctionStatusCancelled).Return(false, nil)

		_, err := svc.CancelAuction(context.Background(), "s1", "a1")
		require.ErrorIs(t, err, auctionerrors.ErrInvalidTransition)
	})
}

func TestAuctionService_ListAuctions(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(t)

	repo.EXPECT().ListAuctions(gomock.Any(), models.AuctionStatusActive).Return([]models.Auction{{AuctionID: "a1"}}, nil)
	out, err := svc.ListAuctions(context.Background(), models.AuctionStatusActive)
	require.NoError(t, err)
	require.Len(t, out, 1)

	_, err = svc.ListAuctions(context.Background(), "bogus")
	require.ErrorIs(t, err, auctionerrors.ErrInvalidAuction)
}
