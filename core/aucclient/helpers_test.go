package aucclient

import (
	"context"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/butterflymarket/auction-sdk-go/core/types"
	"github.com/butterflymarket/auction-sdk-go/core/util"
)

var (
	ownerHex    = "0x2fe89bc41db8a357de7757f4d2d9e185ad2c58f1"
	bidderXHex  = "0x1000000000000000000000000000000000000001"
	bidderYHex  = "0x1000000000000000000000000000000000000002"
	auctionAHex = "0x9000000000000000000000000000000000000009"
	auctionBHex = "0x900000000000000000000000000000000000000a"
)

func mustAddress(t *testing.T, s string) util.EthereumAddress {
	t.Helper()
	addr, err := util.NewEthereumAddressFromString(s)
	require.NoError(t, err)
	return addr
}

func mustDecimal(t *testing.T, s string) *apd.Decimal {
	t.Helper()
	d, _, err := apd.NewFromString(s)
	require.NoError(t, err)
	return d
}

func wei(t *testing.T, display string) *big.Int {
	t.Helper()
	raw, err := util.ToRaw(mustDecimal(t, display))
	require.NoError(t, err)
	return raw
}

// mockLedger is a scriptable in-memory Ledger. Tests mutate its fields to
// stage chain state and inspect the call counters afterwards.
type mockLedger struct {
	mu sync.Mutex

	identity  util.EthereumAddress
	addresses []string
	infos     map[string]types.RawSnapshot
	bids      map[string][]types.RawBid
	owners    []util.EthereumAddress

	submitErr  error
	confirmErr error

	// when set, SubmitTransaction closes submitStarted and then blocks
	// until submitRelease is closed
	submitStarted chan struct{}
	submitRelease chan struct{}

	submitCalls   int
	confirmCalls  int
	approveCalls  int
	createCalls   int
	lastIntent    types.IntentDescriptor
	lastCreate    types.CreateAuctionRequest
	confirmedHash common.Hash
}

var _ types.Ledger = (*mockLedger)(nil)

func (m *mockLedger) FetchAuctionAddresses(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.addresses...), nil
}

func (m *mockLedger) FetchAuctionInfo(ctx context.Context, addresses []string) ([]types.RawSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raws := make([]types.RawSnapshot, 0, len(addresses))
	for _, address := range addresses {
		raw, ok := m.infos[address]
		if !ok {
			return nil, errors.Errorf("unknown auction %s", address)
		}
		raws = append(raws, raw)
	}
	return raws, nil
}

func (m *mockLedger) FetchBidHistory(ctx context.Context, auctionAddress string) ([]types.RawBid, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]types.RawBid(nil), m.bids[auctionAddress]...), nil
}

func (m *mockLedger) SubmitTransaction(ctx context.Context, intent types.IntentDescriptor) (common.Hash, error) {
	m.mu.Lock()
	m.submitCalls++
	m.lastIntent = intent
	err := m.submitErr
	started, release := m.submitStarted, m.submitRelease
	m.mu.Unlock()

	if started != nil {
		close(started)
	}
	if release != nil {
		<-release
	}
	if err != nil {
		return common.Hash{}, err
	}
	return common.HexToHash("0xf1"), nil
}

func (m *mockLedger) AwaitConfirmation(ctx context.Context, txHash common.Hash, interval time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.confirmCalls++
	m.confirmedHash = txHash
	return m.confirmErr
}

func (m *mockLedger) CurrentIdentity(ctx context.Context) (util.EthereumAddress, error) {
	if m.identity.IsZero() {
		return util.EthereumAddress{}, errors.New("no wallet connected")
	}
	return m.identity, nil
}

func (m *mockLedger) ProbeOwner(ctx context.Context, tokenID int64) (util.EthereumAddress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if tokenID < 0 || tokenID >= int64(len(m.owners)) {
		return util.EthereumAddress{}, errors.Errorf("token %d does not exist", tokenID)
	}
	return m.owners[tokenID], nil
}

func (m *mockLedger) ApproveTokenTransfer(ctx context.Context, tokenID int64) (common.Hash, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.approveCalls++
	return common.HexToHash("0xa1"), nil
}

func (m *mockLedger) CreateAuction(ctx context.Context, request types.CreateAuctionRequest) (common.Hash, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls++
	m.lastCreate = request
	return common.HexToHash("0xc1"), nil
}

// rawInfo stages an open auction owned by ownerHex with startPrice=1.0,
// minIncrement=0.1 and directBuy=5.0, ending an hour from now.
func rawInfo(t *testing.T, address string, state types.StateCode) types.RawSnapshot {
	t.Helper()
	return types.RawSnapshot{
		AuctionAddress: address,
		TokenID:        7,
		Owner:          ownerHex,
		StartPrice:     wei(t, "1.0"),
		MinIncrement:   wei(t, "0.1"),
		DirectBuyPrice: wei(t, "5.0"),
		EndTime:        time.Now().Add(time.Hour).Unix(),
		StateCode:      int64(state),
	}
}

// newTestLedger stages two open auctions, A with one bid of 1.0 by bidderY
// and B without bids. The wallet identity is bidderX.
func newTestLedger(t *testing.T) *mockLedger {
	t.Helper()
	return &mockLedger{
		identity:  mustAddress(t, bidderXHex),
		addresses: []string{auctionAHex, auctionBHex},
		infos: map[string]types.RawSnapshot{
			auctionAHex: rawInfo(t, auctionAHex, types.StateCodeOpen),
			auctionBHex: rawInfo(t, auctionBHex, types.StateCodeOpen),
		},
		bids: map[string][]types.RawBid{
			auctionAHex: {{Bidder: bidderYHex, Amount: wei(t, "1.0")}},
		},
	}
}

func newTestClient(t *testing.T, ledger *mockLedger, options ...Option) *Client {
	t.Helper()
	client, err := NewClient(context.Background(), ledger, options...)
	require.NoError(t, err)
	return client
}
