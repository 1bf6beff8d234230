package aionapi

import (
	"time"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Config contains Client parameters.
type Config struct {
	// Logger
	Logger *zap.Logger
	// Endpoint is an address of Aion node JSON-RPC server,
	// e.g. http://127.0.0.1:8545. It is ignored if RPCClient is set.
	Endpoint string
	// Timeout limits every single call. Zero means no limit
	// besides the one of the context passed.
	Timeout time.Duration
	// RPCClient is an already connected client to use instead of dialing Endpoint.
	RPCClient *rpc.Client
}

// Option is a generic Client option.
type Option = func(cfg *Config)

const defaultTimeout = time.Second * 10

func defaultConfig() *Config {
	// fields which are left empty must be provided by the caller
	return &Config{
		Logger:  zap.NewNop(),
		Timeout: defaultTimeout,
	}
}

func checkConfig(cfg *Config) error {
	if cfg.Logger == nil {
		return errors.New("Logger is nil")
	} else if cfg.Endpoint == "" && cfg.RPCClient == nil {
		return errors.New("Endpoint is empty")
	} else if cfg.Timeout < 0 {
		return errors.Errorf("negative Timeout: %s", cfg.Timeout)
	}

	return nil
}

// WithLogger sets Logger.
func WithLogger(log *zap.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = log
	}
}

// WithEndpoint sets Endpoint.
func WithEndpoint(url string) Option {
	return func(cfg *Config) {
		cfg.Endpoint = url
	}
}

// WithTimeout sets Timeout.
func WithTimeout(d time.Duration) Option {
	return func(cfg *Config) {
		cfg.Timeout = d
	}
}

// WithRPCClient sets RPCClient.
func WithRPCClient(c *rpc.Client) Option {
	return func(cfg *Config) {
		cfg.RPCClient = c
	}
}
