package aucclient

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/butterflymarket/auction-sdk-go/core/types"
	"github.com/butterflymarket/auction-sdk-go/core/util"
)

// CreateAuction runs the two-step creation flow: approve the manager contract
// for the token, wait for the approval to mine, then submit the creation
// itself and wait again. It returns the hash of the creation transaction.
func (c *Client) CreateAuction(ctx context.Context, input types.CreateAuctionInput) (common.Hash, error) {
	if err := input.Validate(); err != nil {
		return common.Hash{}, errors.WithStack(err)
	}

	startPrice, err := util.ToRaw(input.StartPrice)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "start price")
	}
	minIncrement, err := util.ToRaw(input.MinIncrement)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "min increment")
	}
	directBuyPrice, err := util.ToRaw(input.DirectBuyPrice)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "direct buy price")
	}

	approveHash, err := c.Ledger.ApproveTokenTransfer(ctx, input.TokenID)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "approve token transfer")
	}
	if err := c.Ledger.AwaitConfirmation(ctx, approveHash, c.confirmationInterval); err != nil {
		return common.Hash{}, errors.Wrap(err, "confirm token approval")
	}

	createHash, err := c.Ledger.CreateAuction(ctx, types.CreateAuctionRequest{
		DurationSeconds: input.DurationMinutes * 60,
		MinIncrement:    minIncrement,
		DirectBuyPrice:  directBuyPrice,
		StartPrice:      startPrice,
		TokenID:         input.TokenID,
	})
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "create auction")
	}
	if err := c.Ledger.AwaitConfirmation(ctx, createHash, c.confirmationInterval); err != nil {
		return common.Hash{}, errors.Wrap(err, "confirm auction creation")
	}

	c.logger.Info("auction created",
		zap.Int64("token_id", input.TokenID),
		zap.String("tx", createHash.Hex()))
	return createHash, nil
}
