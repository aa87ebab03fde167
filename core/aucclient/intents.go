package aucclient

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/butterflymarket/auction-sdk-go/core/auctionapi"
	"github.com/butterflymarket/auction-sdk-go/core/types"
	"github.com/butterflymarket/auction-sdk-go/core/util"
)

// SubmitIntent validates a user intent against the current snapshot and, if
// it passes, transmits it through the ledger. Validation failures
// (ErrorPermissionDenied, ErrorBidTooLow) reject the intent before any
// external call. At most one action per auction may be in flight; a second
// submission fails with ErrorActionInProgress instead of racing.
func (c *Client) SubmitIntent(ctx context.Context, input types.SubmitIntentInput) (*types.PendingAction, error) {
	if err := input.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	c.mu.Lock()
	snapshot, ok := c.snapshots[input.AuctionID]
	if !ok {
		c.mu.Unlock()
		return nil, errors.Wrapf(types.ErrorAuctionNotFound, "auction %s", input.AuctionID.Address())
	}
	if existing := c.pending[input.AuctionID]; existing != nil && existing.Status == types.PendingStatusSubmitting {
		c.mu.Unlock()
		return nil, errors.Wrapf(types.ErrorActionInProgress, "%s still submitting", existing.Kind)
	}

	view, err := auctionapi.DeriveViewState(snapshot, c.identity, time.Now())
	if err != nil {
		c.mu.Unlock()
		return nil, errors.WithStack(err)
	}
	if !view.AllowsAction(input.Kind) {
		c.mu.Unlock()
		return nil, errors.Wrapf(types.ErrorPermissionDenied, "%s in phase %s", input.Kind, view.Phase)
	}

	var rawAmount *big.Int
	if input.Kind == types.ActionPlaceBid {
		if err := auctionapi.ValidateBidAmount(snapshot, input.Amount); err != nil {
			c.mu.Unlock()
			return nil, err
		}
		rawAmount, err = util.ToRaw(input.Amount)
		if err != nil {
			c.mu.Unlock()
			return nil, errors.WithStack(err)
		}
	}

	pending := &types.PendingAction{
		ID:              uuid.New(),
		AuctionID:       input.AuctionID,
		Kind:            input.Kind,
		SubmittedAmount: input.Amount,
		Status:          types.PendingStatusSubmitting,
	}
	c.pending[input.AuctionID] = pending
	c.mu.Unlock()

	txHash, err := c.Ledger.SubmitTransaction(ctx, types.IntentDescriptor{
		AuctionAddress: input.AuctionID.Address(),
		Kind:           input.Kind,
		RawAmount:      rawAmount,
	})
	if err != nil {
		c.failPending(pending)
		return nil, errors.Wrapf(err, "submit %s", input.Kind)
	}

	c.mu.Lock()
	pending.TxHash = txHash
	c.mu.Unlock()

	c.logger.Info("intent submitted",
		zap.String("auction", input.AuctionID.Address()),
		zap.String("kind", string(input.Kind)),
		zap.String("tx", txHash.Hex()))
	return pending, nil
}

// AwaitReconciliation waits for the auction's in-flight action to confirm,
// refetches the authoritative snapshot and reconciles the pending action
// against it. The snapshot is always wholesale-replaced; on failure the
// pending action is marked failed and the stored snapshot is left untouched.
func (c *Client) AwaitReconciliation(ctx context.Context, auctionID util.EthereumAddress) (*types.ReconciliationResult, error) {
	c.mu.Lock()
	pending := c.pending[auctionID]
	var txHash common.Hash
	if pending != nil {
		txHash = pending.TxHash
	}
	c.mu.Unlock()
	if pending == nil {
		return nil, errors.Wrapf(types.ErrorNoPendingAction, "auction %s", auctionID.Address())
	}

	if err := c.Ledger.AwaitConfirmation(ctx, txHash, c.confirmationInterval); err != nil {
		c.failPending(pending)
		return nil, errors.Wrapf(err, "confirm %s", pending.Kind)
	}

	fresh, err := c.refetchSnapshot(ctx, auctionID)
	if err != nil {
		// The transaction confirmed; the guard must not stay held because
		// the refetch failed. The next refresh converges the snapshot.
		c.resolvePending(auctionID, pending, types.PendingStatusConfirmed)
		return nil, errors.Wrap(err, "refetch after confirmation")
	}

	result, err := auctionapi.Reconcile(pending, fresh, c.identity, time.Now())
	if err != nil {
		c.resolvePending(auctionID, pending, types.PendingStatusConfirmed)
		return nil, errors.WithStack(err)
	}

	c.resolvePending(auctionID, pending, types.PendingStatusConfirmed)
	return result, nil
}

// failPending marks the action failed and releases the single-flight guard
// without touching the snapshot.
func (c *Client) failPending(pending *types.PendingAction) {
	c.resolvePending(pending.AuctionID, pending, types.PendingStatusFailed)
}

func (c *Client) resolvePending(auctionID util.EthereumAddress, pending *types.PendingAction, status types.PendingStatus) {
	c.mu.Lock()
	pending.Status = status
	if c.pending[auctionID] == pending {
		delete(c.pending, auctionID)
	}
	c.mu.Unlock()
}
