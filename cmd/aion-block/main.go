package main

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aionnetwork/aionapi"
	"github.com/aionnetwork/aionapi/block"
	"github.com/aionnetwork/aionapi/crypto"
	"github.com/aionnetwork/aionapi/web3"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	nodebug  = flag.Bool("nodebug", false, "disable debug logging")
	endpoint = flag.String("endpoint", "http://127.0.0.1:8545", "Aion node JSON-RPC endpoint")
	number   = flag.Uint64("number", 0, "block number")
	hash     = flag.String("hash", "", "block hash (takes precedence over -number)")
	latest   = flag.Bool("latest", false, "fetch the latest block")
	timeout  = flag.Duration("timeout", time.Second*10, "timeout of a single call")
	pubkey   = flag.String("pubkey", "", "print account address of the hex-encoded ed25519 public key and exit")
)

// query selects a block: hash takes precedence over latest, latest over number.
type query struct {
	hash   string
	latest bool
	number uint64
}

func main() {
	flag.Parse()

	logger := initLogger()
	defer func() { _ = logger.Sync() }()

	if *pubkey != "" {
		a, err := accountAddress(*pubkey)
		if err != nil {
			logger.Error("can't derive address", zap.Error(err))
			os.Exit(1)
		}

		fmt.Println(a.String())

		return
	}

	ctx, cancel := initContext()
	defer cancel()

	if err := run(ctx, logger); err != nil {
		logger.Error("can't fetch block", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *zap.Logger) error {
	c, err := aionapi.New(
		aionapi.WithEndpoint(*endpoint),
		aionapi.WithTimeout(*timeout),
		aionapi.WithLogger(log))
	if err != nil {
		return err
	}
	defer c.Close()

	b, err := fetch(ctx, c, query{hash: *hash, latest: *latest, number: *number})
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(web3.NewBlockResult(b), "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(data))

	return nil
}

func fetch(ctx context.Context, c aionapi.Chain, q query) (*block.Block, error) {
	switch {
	case q.hash != "":
		h, err := util.Uint256DecodeStringBE(strings.TrimPrefix(q.hash, "0x"))
		if err != nil {
			return nil, errors.Wrap(err, "invalid -hash")
		}

		return c.GetBlockByHash(ctx, h)
	case q.latest:
		n, err := c.BlockNumber(ctx)
		if err != nil {
			return nil, err
		}

		return c.GetBlockByNumber(ctx, n)
	default:
		return c.GetBlockByNumber(ctx, q.number)
	}
}

func accountAddress(s string) (crypto.Address, error) {
	key, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return crypto.Address{}, errors.Wrap(err, "invalid -pubkey")
	}
	if len(key) != ed25519.PublicKeySize {
		return crypto.Address{}, errors.Errorf("invalid -pubkey: expected %d bytes, got %d", ed25519.PublicKeySize, len(key))
	}

	return crypto.AddressFromPublicKey(key), nil
}

// initLogger initializes new logger.
func initLogger() *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)

	if *nodebug {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("can't init logger")
	}

	return logger
}

// initContext creates new context which will be cancelled by Ctrl+C.
func initContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
