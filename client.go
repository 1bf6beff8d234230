package aionapi

import (
	"context"
	"fmt"

	"github.com/aionnetwork/aionapi/block"
	"github.com/aionnetwork/aionapi/web3"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type (
	// Client is a block API client of Aion node.
	Client struct {
		Config

		client *rpc.Client
	}

	// Chain is an interface for block queries.
	Chain interface {
		// BlockNumber returns height of the latest block.
		BlockNumber(ctx context.Context) (uint64, error)
		// GetBlockByNumber returns block with the specified height.
		GetBlockByNumber(ctx context.Context, number uint64) (*block.Block, error)
		// GetBlockByHash returns block with the specified hash.
		GetBlockByHash(ctx context.Context, hash util.Uint256) (*block.Block, error)
	}
)

const (
	methodBlockNumber      = "eth_blockNumber"
	methodGetBlockByNumber = "eth_getBlockByNumber"
	methodGetBlockByHash   = "eth_getBlockByHash"
)

// ErrBlockNotFound is returned when node has no requested block.
var ErrBlockNotFound = errors.New("block not found")

var _ Chain = (*Client)(nil)

// New returns new Client instance with provided options. Unless
// RPCClient is given, it dials Endpoint.
func New(options ...Option) (*Client, error) {
	cfg := defaultConfig()

	for _, option := range options {
		option(cfg)
	}

	if err := checkConfig(cfg); err != nil {
		return nil, err
	}

	c := cfg.RPCClient
	if c == nil {
		var err error

		c, err = rpc.DialContext(context.Background(), cfg.Endpoint)
		if err != nil {
			return nil, errors.Wrapf(err, "can't dial %s", cfg.Endpoint)
		}
	}

	return &Client{
		Config: *cfg,
		client: c,
	}, nil
}

// Close closes underlying connection.
func (c *Client) Close() {
	c.client.Close()
}

// BlockNumber implements Chain interface.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	var n hexutil.Uint64

	if err := c.call(ctx, &n, methodBlockNumber); err != nil {
		return 0, err
	}

	return uint64(n), nil
}

// GetBlockByNumber implements Chain interface.
func (c *Client) GetBlockByNumber(ctx context.Context, number uint64) (*block.Block, error) {
	return c.getBlock(ctx, methodGetBlockByNumber, hexutil.Uint64(number))
}

// GetBlockByHash implements Chain interface.
func (c *Client) GetBlockByHash(ctx context.Context, hash util.Uint256) (*block.Block, error) {
	return c.getBlock(ctx, methodGetBlockByHash, common.Hash(hash))
}

// getBlock requests a block by id which is either a number or a hash.
func (c *Client) getBlock(ctx context.Context, method string, id fmt.Stringer) (*block.Block, error) {
	var res *web3.BlockResult

	// only transaction hashes are requested
	if err := c.call(ctx, &res, method, id, false); err != nil {
		return nil, err
	}

	if res == nil {
		return nil, errors.Wrapf(ErrBlockNotFound, "%s(%s)", method, id)
	}

	b, err := res.ToBlock()
	if err != nil {
		c.Logger.Warn("invalid block received",
			zap.String("method", method),
			zap.Stringer("block", id),
			zap.Error(err))

		return nil, errors.Wrapf(err, "%s", method)
	}

	c.Logger.Debug("received block",
		zap.Int64("height", b.Number()),
		zap.Int("txs", len(b.TxHashes())))

	return b, nil
}

func (c *Client) call(ctx context.Context, result any, method string, args ...any) error {
	if c.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	c.Logger.Debug("calling node", zap.String("method", method))

	if err := c.client.CallContext(ctx, result, method, args...); err != nil {
		return errors.Wrapf(err, "%s failed", method)
	}

	return nil
}
