package types

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/butterflymarket/auction-sdk-go/core/util"
)

// StateCode is the authoritative auction state as stored on the ledger.
// It is set only by the auction contract; the client never invents one.
type StateCode int64

const (
	StateCodeOpen      StateCode = 0
	StateCodeCancelled StateCode = 1
	StateCodeEnded     StateCode = 2
	StateCodeDirectBuy StateCode = 3
)

// Phase is the canonical lifecycle phase derived 1:1 from the state code.
type Phase string

const (
	PhaseOpen      Phase = "Open"
	PhaseCancelled Phase = "Cancelled"
	PhaseEnded     Phase = "Ended"
	PhaseDirectBuy Phase = "Direct Buy"
)

// Ended reports whether the auction has concluded with a result, either by
// running out of time or by a direct buy.
func (p Phase) Ended() bool {
	return p == PhaseEnded || p == PhaseDirectBuy
}

// ActionKind enumerates the user intents an auction contract accepts.
type ActionKind string

const (
	ActionPlaceBid      ActionKind = "place_bid"
	ActionCancelAuction ActionKind = "cancel_auction"
	ActionWithdrawFunds ActionKind = "withdraw_funds"
	ActionWithdrawToken ActionKind = "withdraw_token"
)

// Bid is one entry of an auction's bid history.
type Bid struct {
	Bidder util.EthereumAddress
	Amount *apd.Decimal
}

// Snapshot is the client's validated, point-in-time copy of one auction's
// on-chain fields plus its bid history. Snapshots are immutable: a refresh
// replaces the whole value, never patches fields.
type Snapshot struct {
	AuctionID      util.EthereumAddress
	TokenID        int64
	Owner          util.EthereumAddress
	StartPrice     *apd.Decimal
	MinIncrement   *apd.Decimal
	DirectBuyPrice *apd.Decimal
	EndTime        int64 // unix seconds
	StateCode      StateCode

	// Bids is append-only and ordered by submission time. The contract
	// enforces that amounts are monotonically non-decreasing, so the last
	// element is the highest bid.
	Bids []Bid
}

// HighestBid returns the last element of the ordered bid history, or nil if
// there are no bids. The lookup is positional, not by amount equality, so two
// bids tying in amount cannot make the winner ambiguous.
func (s *Snapshot) HighestBid() *Bid {
	if len(s.Bids) == 0 {
		return nil
	}
	return &s.Bids[len(s.Bids)-1]
}

// IsHighestBidder reports whether the given identity placed the current
// highest bid.
func (s *Snapshot) IsHighestBidder(identity util.EthereumAddress) bool {
	highest := s.HighestBid()
	return highest != nil && highest.Bidder.Equal(identity)
}

// RawSnapshot is the unvalidated per-auction field set as returned by the
// ledger's bulk info call. Amounts are smallest-unit integers.
type RawSnapshot struct {
	AuctionAddress string
	TokenID        int64
	Owner          string
	StartPrice     *big.Int
	MinIncrement   *big.Int
	DirectBuyPrice *big.Int
	HighestBid     *big.Int // reported by the contract, cross-checked against bid history
	EndTime        int64
	StateCode      int64
}

// RawBid is one unvalidated bid history entry as returned by the ledger.
type RawBid struct {
	Bidder string
	Amount *big.Int
}
