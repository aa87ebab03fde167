package auctionapi

import (
	"github.com/pkg/errors"

	"github.com/butterflymarket/auction-sdk-go/core/types"
)

// ResolvePhase maps the ledger's authoritative state code to the canonical
// lifecycle phase. The mapping is 1:1 and no transition is ever computed
// client-side: block time and client time can diverge, so the client must
// never claim an auction ended before the ledger says so. Transitions happen
// only via ledger confirmation of a submitted action.
func ResolvePhase(code types.StateCode) (types.Phase, error) {
	switch code {
	case types.StateCodeOpen:
		return types.PhaseOpen, nil
	case types.StateCodeCancelled:
		return types.PhaseCancelled, nil
	case types.StateCodeEnded:
		return types.PhaseEnded, nil
	case types.StateCodeDirectBuy:
		return types.PhaseDirectBuy, nil
	default:
		return "", errors.Wrapf(types.ErrorUnknownStateCode, "state code %d", code)
	}
}
