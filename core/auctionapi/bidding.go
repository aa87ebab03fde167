package auctionapi

import (
	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"

	"github.com/butterflymarket/auction-sdk-go/core/types"
	"github.com/butterflymarket/auction-sdk-go/core/util"
)

// MinimumAcceptableBid returns the floor a new bid must reach:
// max(startPrice, highestBid + minIncrement).
func MinimumAcceptableBid(snapshot *types.Snapshot) (*apd.Decimal, error) {
	floor := new(apd.Decimal).Set(snapshot.StartPrice)
	if highest := snapshot.HighestBid(); highest != nil {
		raised := new(apd.Decimal)
		if _, err := util.AmountContext.Add(raised, highest.Amount, snapshot.MinIncrement); err != nil {
			return nil, errors.Wrap(err, "raise bid floor")
		}
		if raised.Cmp(floor) > 0 {
			floor = raised
		}
	}
	return floor, nil
}

// ValidateBidAmount rejects amounts below the minimum acceptable bid with
// ErrorBidTooLow. It is called before any ledger submission so a doomed bid
// never costs an external call.
func ValidateBidAmount(snapshot *types.Snapshot, amount *apd.Decimal) error {
	floor, err := MinimumAcceptableBid(snapshot)
	if err != nil {
		return errors.WithStack(err)
	}
	if amount.Cmp(floor) < 0 {
		return errors.Wrapf(types.ErrorBidTooLow, "bid %s below minimum %s", amount, floor)
	}
	return nil
}
