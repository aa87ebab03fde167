package aucclient

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/butterflymarket/auction-sdk-go/core/util"
)

// DiscoverOwnedTokens probes sequential token ids from zero until the
// ownership oracle reports an out-of-range failure, collecting the ids owned
// by the given identity.
//
// This is a linear probe bounded by the total supply. It does not scale and
// is kept deliberately: it matches what the ledger offers, and it must not be
// silently upgraded unless the collaborator exposes an indexed lookup.
func (c *Client) DiscoverOwnedTokens(ctx context.Context, owner util.EthereumAddress) ([]int64, error) {
	var owned []int64
	for tokenID := int64(0); ; tokenID++ {
		tokenOwner, err := c.Ledger.ProbeOwner(ctx, tokenID)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, errors.WithStack(ctxErr)
			}
			// the oracle fails on the first id past the supply
			c.logger.Debug("token probe ended",
				zap.Int64("token_id", tokenID),
				zap.Int("owned", len(owned)))
			return owned, nil
		}
		if tokenOwner.Equal(owner) {
			owned = append(owned, tokenID)
		}
	}
}
