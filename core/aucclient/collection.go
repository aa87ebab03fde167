package aucclient

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/butterflymarket/auction-sdk-go/core/auctionapi"
	"github.com/butterflymarket/auction-sdk-go/core/types"
	"github.com/butterflymarket/auction-sdk-go/core/util"
)

// RefreshAuctions refetches the whole collection and replaces it wholesale.
// Bid histories are fetched per auction so the highest bid is always derived
// from the ordered history; that costs one ledger call per auction, which is
// acceptable for the small collections this client targets.
//
// A malformed field set is skipped with a warning rather than failing the
// whole refresh: the ledger is the source of truth and one bad row should not
// blank the display.
func (c *Client) RefreshAuctions(ctx context.Context) ([]types.Snapshot, error) {
	addresses, err := c.Ledger.FetchAuctionAddresses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetch auction addresses")
	}
	raws, err := c.Ledger.FetchAuctionInfo(ctx, addresses)
	if err != nil {
		return nil, errors.Wrap(err, "fetch auction info")
	}
	if len(raws) != len(addresses) {
		return nil, errors.Errorf("ledger returned %d field sets for %d addresses", len(raws), len(addresses))
	}

	order := make([]util.EthereumAddress, 0, len(raws))
	snapshots := make(map[util.EthereumAddress]*types.Snapshot, len(raws))
	list := make([]types.Snapshot, 0, len(raws))
	for i, raw := range raws {
		if raw.AuctionAddress == "" {
			raw.AuctionAddress = addresses[i]
		}
		bids, err := c.Ledger.FetchBidHistory(ctx, addresses[i])
		if err != nil {
			return nil, errors.Wrapf(err, "fetch bid history for %s", addresses[i])
		}
		snapshot, err := auctionapi.ParseSnapshot(raw, bids)
		if err != nil {
			c.logger.Warn("skipping malformed auction snapshot",
				zap.String("address", addresses[i]), zap.Error(err))
			continue
		}
		order = append(order, snapshot.AuctionID)
		snapshots[snapshot.AuctionID] = snapshot
		list = append(list, *snapshot)
	}

	// A closed view cancels its context; the fetched result is then
	// discarded instead of stored.
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	c.mu.Lock()
	c.order = order
	c.snapshots = snapshots
	c.mu.Unlock()

	c.logger.Debug("auction collection refreshed",
		zap.Strings("auctions", util.EthereumAddressesToStrings(order)))
	return list, nil
}

// ListAuctions refreshes and returns the collection in the ledger's creation
// order, optionally windowed by the input's limit and offset.
func (c *Client) ListAuctions(ctx context.Context, input types.ListAuctionsInput) ([]types.Snapshot, error) {
	if err := input.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	list, err := c.RefreshAuctions(ctx)
	if err != nil {
		return nil, err
	}

	offset := 0
	if input.Offset != nil {
		offset = *input.Offset
	}
	if offset >= len(list) {
		return nil, nil
	}
	list = list[offset:]
	if input.Limit != nil && *input.Limit < len(list) {
		list = list[:*input.Limit]
	}
	return list, nil
}

// SelectAuction narrows to one auction from the last fetched collection and
// attaches its live bid history. It fails with ErrorAuctionNotFound if the id
// was not part of that collection.
func (c *Client) SelectAuction(ctx context.Context, auctionID util.EthereumAddress) (*types.Snapshot, error) {
	c.mu.Lock()
	_, ok := c.snapshots[auctionID]
	c.mu.Unlock()
	if !ok {
		return nil, errors.Wrapf(types.ErrorAuctionNotFound, "auction %s", auctionID.Address())
	}
	return c.refetchSnapshot(ctx, auctionID)
}

// refetchSnapshot fetches fresh info and bid history for one auction,
// replaces the stored snapshot wholesale and returns the new one.
func (c *Client) refetchSnapshot(ctx context.Context, auctionID util.EthereumAddress) (*types.Snapshot, error) {
	address := auctionID.Address()
	raws, err := c.Ledger.FetchAuctionInfo(ctx, []string{address})
	if err != nil {
		return nil, errors.Wrapf(err, "fetch auction info for %s", address)
	}
	if len(raws) == 0 {
		return nil, errors.Wrapf(types.ErrorAuctionNotFound, "auction %s", address)
	}
	raw := raws[0]
	if raw.AuctionAddress == "" {
		raw.AuctionAddress = address
	}

	bids, err := c.Ledger.FetchBidHistory(ctx, address)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch bid history for %s", address)
	}
	snapshot, err := auctionapi.ParseSnapshot(raw, bids)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	c.mu.Lock()
	c.snapshots[auctionID] = snapshot
	c.mu.Unlock()
	return snapshot, nil
}

// GetViewState derives the phase, permissions and countdown for one auction
// as seen by the client's identity right now. The derivation is pure, so
// calling it again with an unchanged snapshot yields the same result.
func (c *Client) GetViewState(auctionID util.EthereumAddress) (types.ViewState, error) {
	c.mu.Lock()
	snapshot, ok := c.snapshots[auctionID]
	c.mu.Unlock()
	if !ok {
		return types.ViewState{}, errors.Wrapf(types.ErrorAuctionNotFound, "auction %s", auctionID.Address())
	}

	view, err := auctionapi.DeriveViewState(snapshot, c.identity, time.Now())
	if err != nil {
		return types.ViewState{}, errors.WithStack(err)
	}
	return view, nil
}
