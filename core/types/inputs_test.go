package types

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/butterflymarket/auction-sdk-go/core/util"
)

func TestSubmitIntentInput_Validate(t *testing.T) {
	auctionID := mustAddress(t, "0x2000000000000000000000000000000000000001")

	tests := []struct {
		name    string
		input   SubmitIntentInput
		wantErr string
	}{
		{
			name:  "valid bid",
			input: SubmitIntentInput{AuctionID: auctionID, Kind: ActionPlaceBid, Amount: mustDecimal(t, "1.5")},
		},
		{
			name:  "valid withdraw",
			input: SubmitIntentInput{AuctionID: auctionID, Kind: ActionWithdrawToken},
		},
		{
			name:    "missing auction id",
			input:   SubmitIntentInput{Kind: ActionPlaceBid, Amount: mustDecimal(t, "1.5")},
			wantErr: "auction_id is required",
		},
		{
			name:    "unknown kind",
			input:   SubmitIntentInput{AuctionID: auctionID, Kind: "transmute"},
			wantErr: "kind must be one of",
		},
		{
			name:    "bid without amount",
			input:   SubmitIntentInput{AuctionID: auctionID, Kind: ActionPlaceBid},
			wantErr: "amount is required",
		},
		{
			name:    "bid with zero amount",
			input:   SubmitIntentInput{AuctionID: auctionID, Kind: ActionPlaceBid, Amount: mustDecimal(t, "0")},
			wantErr: "amount must be a positive finite decimal",
		},
		{
			name:    "bid with negative amount",
			input:   SubmitIntentInput{AuctionID: auctionID, Kind: ActionPlaceBid, Amount: mustDecimal(t, "-2")},
			wantErr: "amount must be a positive finite decimal",
		},
		{
			name:    "amount on non-bid action",
			input:   SubmitIntentInput{AuctionID: auctionID, Kind: ActionCancelAuction, Amount: mustDecimal(t, "1")},
			wantErr: "amount is only valid for place_bid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestCreateAuctionInput_Validate(t *testing.T) {
	valid := CreateAuctionInput{
		TokenID:         3,
		StartPrice:      mustDecimal(t, "1.0"),
		MinIncrement:    mustDecimal(t, "0.1"),
		DirectBuyPrice:  mustDecimal(t, "5.0"),
		DurationMinutes: 60,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(*CreateAuctionInput)
		wantErr string
	}{
		{
			name:    "negative token id",
			mutate:  func(c *CreateAuctionInput) { c.TokenID = -1 },
			wantErr: "token_id must be non-negative",
		},
		{
			name:    "zero duration",
			mutate:  func(c *CreateAuctionInput) { c.DurationMinutes = 0 },
			wantErr: "duration_minutes must be positive",
		},
		{
			name:    "missing start price",
			mutate:  func(c *CreateAuctionInput) { c.StartPrice = nil },
			wantErr: "start_price is required",
		},
		{
			name:    "missing min increment",
			mutate:  func(c *CreateAuctionInput) { c.MinIncrement = nil },
			wantErr: "min_increment is required",
		},
		{
			name:    "missing direct buy price",
			mutate:  func(c *CreateAuctionInput) { c.DirectBuyPrice = nil },
			wantErr: "direct_buy_price is required",
		},
		{
			name:    "direct buy below start price",
			mutate:  func(c *CreateAuctionInput) { c.DirectBuyPrice = mustDecimal(t, "0.5") },
			wantErr: "direct_buy_price must not be below start_price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			err := input.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestListAuctionsInput_Validate(t *testing.T) {
	require.NoError(t, (&ListAuctionsInput{}).Validate())
	require.NoError(t, (&ListAuctionsInput{Limit: util.Ptr(10), Offset: util.Ptr(0)}).Validate())

	err := (&ListAuctionsInput{Limit: util.Ptr(0)}).Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "limit must be positive")

	err = (&ListAuctionsInput{Offset: util.Ptr(-1)}).Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "offset must be non-negative")
}
