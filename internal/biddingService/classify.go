package bidding

import (
	"sort"

	"auction-marketplace/internal/models"
)

// ClassifyBids keeps the user's highest bid on each auction and marks it active when it is
// at least the auction's current price, outbid otherwise. The current price is the larger
// of current_bid and starting_price, or starting_price alone before the first bid.
// Both lists are ordered by end date, soonest first.
func ClassifyBids(rows []models.UserAuctionBid) models.MyBids {
	best := make(map[string]models.UserAuctionBid, len(rows))
	for _, row := range rows {
		cur, ok := best[row.AuctionID]
		if !ok || row.Amount.GreaterThan(cur.Amount) ||
			(row.Amount.Equal(cur.Amount) && row.CreatedAt.Before(cur.CreatedAt)) {
			best[row.AuctionID] = row
		}
	}

	out := models.MyBids{Active: []models.MyBid{}, Outbid: []models.MyBid{}}
	for _, row := range best {
		threshold := row.StartingPrice
		if row.CurrentBid.Valid && row.CurrentBid.Decimal.GreaterThan(threshold) {
			threshold = row.CurrentBid.Decimal
		}

		bid := models.MyBid{
			AuctionID:     row.AuctionID,
			Title:         row.Title,
			AuctionStatus: row.Status,
			EndDate:       row.EndDate,
			StartingPrice: row.StartingPrice,
			CurrentBid:    row.CurrentBid,
			BidID:         row.BidID,
			Amount:        row.Amount,
			PlacedAt:      row.CreatedAt,
		}
		if row.Amount.GreaterThanOrEqual(threshold) {
			bid.Standing = models.BidStandingActive
			out.Active = append(out.Active, bid)
		} else {
			bid.Standing = models.BidStandingOutbid
			out.Outbid = append(out.Outbid, bid)
		}
	}

	sortByEndDate(out.Active)
	sortByEndDate(out.Outbid)
	return out
}

func sortByEndDate(bids []models.MyBid) {
	sort.Slice(bids, func(i, j int) bool {
		if !bids[i].EndDate.Equal(bids[j].EndDate) {
			return bids[i].EndDate.Before(bids[j].EndDate)
		}
		return bids[i].AuctionID < bids[j].AuctionID
	})
}
