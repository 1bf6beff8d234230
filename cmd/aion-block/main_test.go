package main

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/aionnetwork/aionapi/block"
	"github.com/aionnetwork/aionapi/crypto"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// fakeChain records which Chain method was called and with what argument.
type fakeChain struct {
	height    uint64
	heightErr error

	called string
	number uint64
	hash   util.Uint256
}

func (c *fakeChain) BlockNumber(context.Context) (uint64, error) {
	return c.height, c.heightErr
}

func (c *fakeChain) GetBlockByNumber(_ context.Context, number uint64) (*block.Block, error) {
	c.called = "number"
	c.number = number
	return nil, nil
}

func (c *fakeChain) GetBlockByHash(_ context.Context, hash util.Uint256) (*block.Block, error) {
	c.called = "hash"
	c.hash = hash
	return nil, nil
}

func TestFetch(t *testing.T) {
	const typed = "0x0102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f20"

	var want util.Uint256
	for i := range want {
		want[i] = byte(i + 1)
	}

	testCases := []struct {
		name   string
		q      query
		called string
		number uint64
	}{
		{"number", query{number: 7}, "number", 7},
		{"zero number", query{}, "number", 0},
		{"latest", query{latest: true}, "number", 42},
		{"latest beats number", query{latest: true, number: 7}, "number", 42},
		{"hash", query{hash: typed}, "hash", 0},
		{"hash beats latest and number", query{hash: typed, latest: true, number: 7}, "hash", 0},
		{"hash without prefix", query{hash: strings.TrimPrefix(typed, "0x")}, "hash", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := &fakeChain{height: 42}

			_, err := fetch(context.Background(), c, tc.q)
			require.NoError(t, err)
			require.Equal(t, tc.called, c.called)

			if tc.called == "hash" {
				require.Equal(t, want, c.hash)
				require.EqualValues(t, 0x01, c.hash[0])
				require.Equal(t, strings.TrimPrefix(typed, "0x"), c.hash.StringBE())
			} else {
				require.Equal(t, tc.number, c.number)
			}
		})
	}

	t.Run("invalid hash", func(t *testing.T) {
		c := new(fakeChain)

		_, err := fetch(context.Background(), c, query{hash: "0x0102"})
		require.ErrorContains(t, err, "invalid -hash")
		require.Empty(t, c.called)
	})

	t.Run("height error", func(t *testing.T) {
		c := &fakeChain{heightErr: errors.New("connection refused")}

		_, err := fetch(context.Background(), c, query{latest: true})
		require.ErrorContains(t, err, "connection refused")
		require.Empty(t, c.called)
	})
}

func TestAccountAddress(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	for _, s := range []string{hex.EncodeToString(pub), "0x" + hex.EncodeToString(pub)} {
		a, err := accountAddress(s)
		require.NoError(t, err)
		require.Equal(t, crypto.AddressFromPublicKey(pub), a)
		require.True(t, a.IsAccount())
	}

	t.Run("not hex", func(t *testing.T) {
		_, err := accountAddress("zz")
		require.ErrorContains(t, err, "invalid -pubkey")
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := accountAddress(hex.EncodeToString(pub[:31]))
		require.ErrorContains(t, err, "expected 32 bytes, got 31")
	})
}
