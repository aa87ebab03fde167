package auctionapi

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/butterflymarket/auction-sdk-go/core/logging"
	"github.com/butterflymarket/auction-sdk-go/core/types"
	"github.com/butterflymarket/auction-sdk-go/core/util"
)

// ParseSnapshot validates a raw ledger field set and its bid history into an
// immutable Snapshot. Field-level problems fail with ErrorMalformedSnapshot.
// Violations the contract itself is supposed to enforce (amount-monotonic bid
// history, highest bid at or above the start price) are logged as warnings
// but do not block display, since the ledger is the source of truth.
func ParseSnapshot(raw types.RawSnapshot, rawBids []types.RawBid) (*types.Snapshot, error) {
	auctionID, err := util.NewEthereumAddressFromString(raw.AuctionAddress)
	if err != nil {
		return nil, errors.Wrapf(types.ErrorMalformedSnapshot, "auction address: %s", err)
	}
	owner, err := util.NewEthereumAddressFromString(raw.Owner)
	if err != nil {
		return nil, errors.Wrapf(types.ErrorMalformedSnapshot, "owner: %s", err)
	}
	if raw.TokenID < 0 {
		return nil, errors.Wrapf(types.ErrorMalformedSnapshot, "token id %d", raw.TokenID)
	}
	if raw.EndTime <= 0 {
		return nil, errors.Wrapf(types.ErrorMalformedSnapshot, "end time %d", raw.EndTime)
	}
	if _, err := ResolvePhase(types.StateCode(raw.StateCode)); err != nil {
		return nil, errors.Wrapf(types.ErrorMalformedSnapshot, "state code %d", raw.StateCode)
	}

	startPrice, err := util.ToDisplay(raw.StartPrice)
	if err != nil {
		return nil, errors.Wrapf(types.ErrorMalformedSnapshot, "start price: %s", err)
	}
	minIncrement, err := util.ToDisplay(raw.MinIncrement)
	if err != nil {
		return nil, errors.Wrapf(types.ErrorMalformedSnapshot, "min increment: %s", err)
	}
	directBuyPrice, err := util.ToDisplay(raw.DirectBuyPrice)
	if err != nil {
		return nil, errors.Wrapf(types.ErrorMalformedSnapshot, "direct buy price: %s", err)
	}

	bids := make([]types.Bid, 0, len(rawBids))
	for i, rawBid := range rawBids {
		bidder, err := util.NewEthereumAddressFromString(rawBid.Bidder)
		if err != nil {
			return nil, errors.Wrapf(types.ErrorMalformedSnapshot, "bid %d bidder: %s", i, err)
		}
		amount, err := util.ToDisplay(rawBid.Amount)
		if err != nil {
			return nil, errors.Wrapf(types.ErrorMalformedSnapshot, "bid %d amount: %s", i, err)
		}
		bids = append(bids, types.Bid{Bidder: bidder, Amount: amount})
	}

	snapshot := &types.Snapshot{
		AuctionID:      auctionID,
		TokenID:        raw.TokenID,
		Owner:          owner,
		StartPrice:     startPrice,
		MinIncrement:   minIncrement,
		DirectBuyPrice: directBuyPrice,
		EndTime:        raw.EndTime,
		StateCode:      types.StateCode(raw.StateCode),
		Bids:           bids,
	}
	assertBidInvariants(snapshot, raw)

	return snapshot, nil
}

// assertBidInvariants cross-checks properties the contract enforces on-chain.
func assertBidInvariants(snapshot *types.Snapshot, raw types.RawSnapshot) {
	for i := 1; i < len(snapshot.Bids); i++ {
		if snapshot.Bids[i].Amount.Cmp(snapshot.Bids[i-1].Amount) < 0 {
			logging.Logger.Warn("bid history is not amount-monotonic",
				zap.String("auction", snapshot.AuctionID.Address()),
				zap.Int("position", i))
			break
		}
	}

	highest := snapshot.HighestBid()
	if highest == nil {
		return
	}
	if highest.Amount.Cmp(snapshot.StartPrice) < 0 {
		logging.Logger.Warn("highest bid below start price",
			zap.String("auction", snapshot.AuctionID.Address()),
			zap.String("highest", highest.Amount.String()),
			zap.String("start_price", snapshot.StartPrice.String()))
	}
	if raw.HighestBid != nil {
		reported, err := util.ToDisplay(raw.HighestBid)
		if err == nil && reported.Cmp(highest.Amount) != 0 {
			logging.Logger.Warn("reported highest bid disagrees with bid history",
				zap.String("auction", snapshot.AuctionID.Address()),
				zap.String("reported", reported.String()),
				zap.String("derived", highest.Amount.String()))
		}
	}
}
