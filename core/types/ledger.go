package types

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/butterflymarket/auction-sdk-go/core/util"
)

// IntentDescriptor describes one state-changing call against a single auction
// contract. Transaction construction, gas estimation and signing are the
// ledger collaborator's job; the core only describes the intent.
type IntentDescriptor struct {
	AuctionAddress string
	Kind           ActionKind
	RawAmount      *big.Int // wei attached to the call; nil unless Kind is ActionPlaceBid
}

// CreateAuctionRequest carries the raw arguments of the manager contract's
// createAuction call.
type CreateAuctionRequest struct {
	DurationSeconds int64
	MinIncrement    *big.Int
	DirectBuyPrice  *big.Int
	StartPrice      *big.Int
	TokenID         int64
}

// Ledger is the external blockchain/wallet collaborator. All methods are
// blocking requests against the chain; implementations must honor context
// cancellation. The SDK treats every returned field set as unvalidated input.
type Ledger interface {
	// FetchAuctionAddresses returns the addresses of all auctions known to
	// the manager contract, in creation order.
	FetchAuctionAddresses(ctx context.Context) ([]string, error)
	// FetchAuctionInfo returns the raw field sets for the given auctions,
	// in the same order as the input.
	FetchAuctionInfo(ctx context.Context, addresses []string) ([]RawSnapshot, error)
	// FetchBidHistory returns the ordered bid history of one auction.
	FetchBidHistory(ctx context.Context, auctionAddress string) ([]RawBid, error)

	// SubmitTransaction transmits an intent and returns its transaction hash.
	SubmitTransaction(ctx context.Context, intent IntentDescriptor) (common.Hash, error)
	// AwaitConfirmation blocks until the transaction is mined, polling at
	// the given interval, and returns an error if it reverted.
	AwaitConfirmation(ctx context.Context, txHash common.Hash, interval time.Duration) error

	// CurrentIdentity returns the wallet's active account.
	CurrentIdentity(ctx context.Context) (util.EthereumAddress, error)
	// ProbeOwner returns the owner of the given token id. It fails when the
	// token id does not exist; callers use that failure to detect the end of
	// the supply.
	ProbeOwner(ctx context.Context, tokenID int64) (util.EthereumAddress, error)

	// ApproveTokenTransfer approves the manager contract to transfer the
	// given token, a prerequisite of CreateAuction.
	ApproveTokenTransfer(ctx context.Context, tokenID int64) (common.Hash, error)
	// CreateAuction deploys a new auction through the manager contract.
	CreateAuction(ctx context.Context, request CreateAuctionRequest) (common.Hash, error)
}
