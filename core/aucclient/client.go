package aucclient

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/butterflymarket/auction-sdk-go/core/types"
	"github.com/butterflymarket/auction-sdk-go/core/util"
)

const defaultConfirmationInterval = time.Second

// Client coordinates the auction collection on top of an external ledger
// collaborator: it fetches snapshots, derives view state for the configured
// identity, gates and transmits user intents, and reconciles confirmations.
//
// All derived state is recomputed from immutable snapshots; the only mutable
// state is the collection itself and the per-auction pending-action guard,
// both protected by one mutex.
type Client struct {
	Ledger types.Ledger `validate:"required"`

	logger               *zap.Logger
	confirmationInterval time.Duration
	identity             util.EthereumAddress

	mu        sync.Mutex
	order     []util.EthereumAddress
	snapshots map[util.EthereumAddress]*types.Snapshot
	pending   map[util.EthereumAddress]*types.PendingAction
}

var _ types.Client = (*Client)(nil)

type Option func(*Client)

func NewClient(ctx context.Context, ledger types.Ledger, options ...Option) (*Client, error) {
	c := &Client{
		Ledger:               ledger,
		logger:               zap.NewNop(),
		confirmationInterval: defaultConfirmationInterval,
		snapshots:            make(map[util.EthereumAddress]*types.Snapshot),
		pending:              make(map[util.EthereumAddress]*types.PendingAction),
	}
	for _, option := range options {
		option(c)
	}

	// Validate the client
	if err := c.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	if c.identity.IsZero() {
		identity, err := c.Ledger.CurrentIdentity(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "resolve current identity")
		}
		c.identity = identity
	}

	return c, nil
}

func (c *Client) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithIdentity fixes the viewer identity instead of resolving it from the
// ledger's wallet at construction.
func WithIdentity(identity util.EthereumAddress) Option {
	return func(c *Client) {
		c.identity = identity
	}
}

func WithConfirmationInterval(interval time.Duration) Option {
	return func(c *Client) {
		c.confirmationInterval = interval
	}
}

func (c *Client) Identity() util.EthereumAddress {
	return c.identity
}
