package auctionapi

import (
	"testing"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/require"

	"github.com/butterflymarket/auction-sdk-go/core/types"
	"github.com/butterflymarket/auction-sdk-go/core/util"
)

var (
	ownerHex   = "0x2fe89bc41db8a357de7757f4d2d9e185ad2c58f1"
	bidderXHex = "0x1000000000000000000000000000000000000001"
	bidderYHex = "0x1000000000000000000000000000000000000002"
	auctionHex = "0x9000000000000000000000000000000000000009"
)

func mustAddress(t *testing.T, s string) util.EthereumAddress {
	t.Helper()
	addr, err := util.NewEthereumAddressFromString(s)
	require.NoError(t, err)
	return addr
}

func mustDecimal(t *testing.T, s string) *apd.Decimal {
	t.Helper()
	d, _, err := apd.NewFromString(s)
	require.NoError(t, err)
	return d
}

// testSnapshot builds an open auction owned by ownerHex with
// startPrice=1.0 and minIncrement=0.1, ending an hour from now.
func testSnapshot(t *testing.T, state types.StateCode, bids ...types.Bid) *types.Snapshot {
	t.Helper()
	return &types.Snapshot{
		AuctionID:      mustAddress(t, auctionHex),
		TokenID:        7,
		Owner:          mustAddress(t, ownerHex),
		StartPrice:     mustDecimal(t, "1.0"),
		MinIncrement:   mustDecimal(t, "0.1"),
		DirectBuyPrice: mustDecimal(t, "5.0"),
		EndTime:        time.Now().Add(time.Hour).Unix(),
		StateCode:      state,
		Bids:           bids,
	}
}

func bid(t *testing.T, bidder string, amount string) types.Bid {
	t.Helper()
	return types.Bid{Bidder: mustAddress(t, bidder), Amount: mustDecimal(t, amount)}
}
