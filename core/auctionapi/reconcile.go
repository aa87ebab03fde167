package auctionapi

import (
	"time"

	"github.com/pkg/errors"

	"github.com/butterflymarket/auction-sdk-go/core/types"
	"github.com/butterflymarket/auction-sdk-go/core/util"
)

// Reconcile settles a confirmed pending action against the next authoritative
// snapshot. The fresh snapshot always wins: no field of the pending action is
// merged into it, which eliminates drift between optimistic and authoritative
// state. The pending action is marked confirmed and should be discarded by
// the caller after this returns.
func Reconcile(pending *types.PendingAction, fresh *types.Snapshot, viewer util.EthereumAddress, now time.Time) (*types.ReconciliationResult, error) {
	view, err := DeriveViewState(fresh, viewer, now)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	pending.Status = types.PendingStatusConfirmed
	return &types.ReconciliationResult{
		Action:   pending,
		Snapshot: fresh,
		View:     view,
	}, nil
}
