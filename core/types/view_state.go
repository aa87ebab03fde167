package types

import (
	"github.com/cockroachdb/apd/v3"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/butterflymarket/auction-sdk-go/core/util"
)

// ViewState is the derived, never-persisted projection the presentation layer
// consumes. It is always rebuilt from a Snapshot, the viewer identity and the
// current wall-clock time; none of its fields are stored independently.
type ViewState struct {
	Phase           Phase
	IsOwner         bool
	IsHighestBidder bool
	LegalActions    []ActionKind

	// TimeRemainingSeconds is a display-only countdown. Phase is never
	// inferred from it; only the ledger's state code is authoritative.
	TimeRemainingSeconds int64
}

// AllowsAction reports whether the given action is in the legal set.
func (v ViewState) AllowsAction(kind ActionKind) bool {
	for _, a := range v.LegalActions {
		if a == kind {
			return true
		}
	}
	return false
}

// PendingStatus tracks an optimistic local action through its lifecycle.
type PendingStatus string

const (
	PendingStatusSubmitting PendingStatus = "submitting"
	PendingStatusConfirmed  PendingStatus = "confirmed"
	PendingStatusFailed     PendingStatus = "failed"
)

// PendingAction is a locally tracked, unconfirmed user intent awaiting ledger
// confirmation. It is created on submit and discarded on reconciliation or
// explicit failure; it is never merged into a Snapshot.
type PendingAction struct {
	ID              uuid.UUID
	AuctionID       util.EthereumAddress
	Kind            ActionKind
	SubmittedAmount *apd.Decimal // nil unless Kind is ActionPlaceBid
	TxHash          common.Hash
	Status          PendingStatus
}

// ReconciliationResult is the outcome of merging a pending action with the
// next authoritative snapshot. Snapshot and View originate entirely from the
// fresh ledger data, never from the pending action.
type ReconciliationResult struct {
	Action   *PendingAction
	Snapshot *Snapshot
	View     ViewState
}
