package auctionapi

import (
	"time"

	"github.com/pkg/errors"

	"github.com/butterflymarket/auction-sdk-go/core/types"
	"github.com/butterflymarket/auction-sdk-go/core/util"
)

// LegalActions returns the set of actions the viewer may currently take.
// Each rule is evaluated independently; an action is legal iff its own
// predicate holds:
//
//   - PlaceBid: auction open and viewer is not the owner
//   - CancelAuction: auction open, viewer is the owner, no bids yet
//   - WithdrawFunds: auction concluded, viewer is the owner, at least one bid
//   - WithdrawToken: auction concluded and either nobody bid and the viewer
//     is the owner, or the viewer placed the highest bid
//
// The highest bidder is resolved positionally from the ordered bid history,
// so equal-amount bids cannot make the result ambiguous.
func LegalActions(snapshot *types.Snapshot, phase types.Phase, viewer util.EthereumAddress) []types.ActionKind {
	isOwner := snapshot.Owner.Equal(viewer)
	hasBids := len(snapshot.Bids) > 0

	var actions []types.ActionKind
	if phase == types.PhaseOpen && !isOwner {
		actions = append(actions, types.ActionPlaceBid)
	}
	if phase == types.PhaseOpen && isOwner && !hasBids {
		actions = append(actions, types.ActionCancelAuction)
	}
	if phase.Ended() && isOwner && hasBids {
		actions = append(actions, types.ActionWithdrawFunds)
	}
	if phase.Ended() && ((!hasBids && isOwner) || snapshot.IsHighestBidder(viewer)) {
		actions = append(actions, types.ActionWithdrawToken)
	}
	return actions
}

// DeriveViewState rebuilds the full view state from a snapshot, the viewer
// identity and the current wall-clock time. It is pure and idempotent: the
// same inputs always yield the same result, so it is safe to re-derive from a
// newer snapshot at any time.
func DeriveViewState(snapshot *types.Snapshot, viewer util.EthereumAddress, now time.Time) (types.ViewState, error) {
	phase, err := ResolvePhase(snapshot.StateCode)
	if err != nil {
		return types.ViewState{}, errors.WithStack(err)
	}

	remaining := snapshot.EndTime - now.Unix()
	if remaining < 0 || phase != types.PhaseOpen {
		remaining = 0
	}

	return types.ViewState{
		Phase:                phase,
		IsOwner:              snapshot.Owner.Equal(viewer),
		IsHighestBidder:      snapshot.IsHighestBidder(viewer),
		LegalActions:         LegalActions(snapshot, phase, viewer),
		TimeRemainingSeconds: remaining,
	}, nil
}
