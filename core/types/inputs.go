package types

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/butterflymarket/auction-sdk-go/core/util"
)

// SubmitIntentInput contains parameters for submitting a user intent against
// one auction.
type SubmitIntentInput struct {
	AuctionID util.EthereumAddress
	Kind      ActionKind
	Amount    *apd.Decimal // required for ActionPlaceBid, forbidden otherwise
}

var validActionKinds = map[ActionKind]bool{
	ActionPlaceBid:      true,
	ActionCancelAuction: true,
	ActionWithdrawFunds: true,
	ActionWithdrawToken: true,
}

// Validate checks if SubmitIntentInput is valid
func (s *SubmitIntentInput) Validate() error {
	if s.AuctionID.IsZero() {
		return fmt.Errorf("auction_id is required")
	}
	if !validActionKinds[s.Kind] {
		return fmt.Errorf("kind must be one of: place_bid, cancel_auction, withdraw_funds, withdraw_token, got %q", s.Kind)
	}
	if s.Kind == ActionPlaceBid {
		if s.Amount == nil {
			return fmt.Errorf("amount is required for place_bid")
		}
		if s.Amount.Form != apd.Finite || s.Amount.Negative || s.Amount.IsZero() {
			return fmt.Errorf("amount must be a positive finite decimal, got %s", s.Amount)
		}
	} else if s.Amount != nil {
		return fmt.Errorf("amount is only valid for place_bid")
	}
	return nil
}

// CreateAuctionInput contains parameters for creating a new auction. All five
// fields are required; the duration is given in minutes and converted to
// seconds for the contract.
type CreateAuctionInput struct {
	TokenID         int64
	StartPrice      *apd.Decimal
	MinIncrement    *apd.Decimal
	DirectBuyPrice  *apd.Decimal
	DurationMinutes int64
}

// Validate checks if CreateAuctionInput is valid
func (c *CreateAuctionInput) Validate() error {
	if c.TokenID < 0 {
		return fmt.Errorf("token_id must be non-negative, got %d", c.TokenID)
	}
	if c.DurationMinutes <= 0 {
		return fmt.Errorf("duration_minutes must be positive, got %d", c.DurationMinutes)
	}
	for name, amount := range map[string]*apd.Decimal{
		"start_price":      c.StartPrice,
		"min_increment":    c.MinIncrement,
		"direct_buy_price": c.DirectBuyPrice,
	} {
		if amount == nil {
			return fmt.Errorf("%s is required", name)
		}
		if amount.Form != apd.Finite || amount.Negative {
			return fmt.Errorf("%s must be a non-negative finite decimal, got %s", name, amount)
		}
	}
	if c.DirectBuyPrice.Cmp(c.StartPrice) < 0 {
		return fmt.Errorf("direct_buy_price must not be below start_price")
	}
	return nil
}

// ListAuctionsInput contains optional pagination for listing auctions.
type ListAuctionsInput struct {
	Limit  *int // max results, default all
	Offset *int // skip N results, default 0
}

// Validate checks if ListAuctionsInput is valid
func (l *ListAuctionsInput) Validate() error {
	if l.Limit != nil && *l.Limit < 1 {
		return fmt.Errorf("limit must be positive, got %d", *l.Limit)
	}
	if l.Offset != nil && *l.Offset < 0 {
		return fmt.Errorf("offset must be non-negative, got %d", *l.Offset)
	}
	return nil
}
