package types

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/butterflymarket/auction-sdk-go/core/util"
)

// Client is the surface the presentation layer consumes. State-changing
// intents flow through SubmitIntent and are settled by AwaitReconciliation;
// everything else is read-only derivation over fetched snapshots.
type Client interface {
	// RefreshAuctions refetches the whole collection from the ledger and
	// replaces it wholesale.
	RefreshAuctions(ctx context.Context) ([]Snapshot, error)
	// ListAuctions refreshes and returns the collection in the ledger's
	// creation order, optionally windowed by the input's limit and offset.
	ListAuctions(ctx context.Context, input ListAuctionsInput) ([]Snapshot, error)
	// SelectAuction narrows to one auction and attaches its live bid history.
	SelectAuction(ctx context.Context, auctionID util.EthereumAddress) (*Snapshot, error)
	// GetViewState derives the phase, permissions and countdown for one
	// auction as seen by the client's identity right now.
	GetViewState(auctionID util.EthereumAddress) (ViewState, error)

	// SubmitIntent validates and transmits a user intent, returning the
	// optimistic pending action tracking it.
	SubmitIntent(ctx context.Context, input SubmitIntentInput) (*PendingAction, error)
	// AwaitReconciliation waits for the auction's in-flight action to
	// confirm, refetches the authoritative snapshot and reconciles.
	AwaitReconciliation(ctx context.Context, auctionID util.EthereumAddress) (*ReconciliationResult, error)

	// DiscoverOwnedTokens probes sequential token ids for ones owned by the
	// given identity.
	DiscoverOwnedTokens(ctx context.Context, owner util.EthereumAddress) ([]int64, error)
	// CreateAuction approves the token transfer and deploys a new auction.
	CreateAuction(ctx context.Context, input CreateAuctionInput) (common.Hash, error)

	// Identity returns the viewer identity the client derives permissions for.
	Identity() util.EthereumAddress
}
