package types

import "github.com/pkg/errors"

// Error taxonomy. Everything here is recoverable: operations return failure
// without leaving a Snapshot or PendingAction half-updated, and the caller
// decides whether to retry. Ledger failures are surfaced verbatim and never
// retried automatically, since silently retrying a financial transaction is
// unsafe.
var (
	// ErrorMalformedSnapshot marks a raw field set that failed validation.
	ErrorMalformedSnapshot = errors.New("malformed auction snapshot")
	// ErrorUnknownStateCode marks a state code outside the known enum.
	// The ledger should never emit one.
	ErrorUnknownStateCode = errors.New("unknown auction state code")
	// ErrorPermissionDenied marks an intent that is not in the viewer's
	// legal action set. Rejected before any external call.
	ErrorPermissionDenied = errors.New("action not permitted for viewer")
	// ErrorBidTooLow marks a bid below the minimum acceptable amount.
	// Rejected before any external call.
	ErrorBidTooLow = errors.New("bid below minimum acceptable amount")
	// ErrorActionInProgress marks a second intent submitted while one is
	// still in flight for the same auction. The caller may retry after the
	// current action resolves.
	ErrorActionInProgress = errors.New("another action is in flight for this auction")
	// ErrorNoPendingAction marks a reconciliation request for an auction
	// with nothing in flight.
	ErrorNoPendingAction = errors.New("no pending action for this auction")
	// ErrorAuctionNotFound marks an auction id absent from the last
	// fetched collection.
	ErrorAuctionNotFound = errors.New("auction not found in fetched collection")
)
