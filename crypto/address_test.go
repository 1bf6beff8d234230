package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

func TestAddressDecodeString(t *testing.T) {
	const s = "a0c0cc973a306d31320fe72cad62afaa799d076bbd2d1f2ff0f5e6a8f5c0f1e2"

	t.Run("plain hex", func(t *testing.T) {
		a, err := AddressDecodeString(s)
		require.NoError(t, err)
		require.Equal(t, s, a.String())
		require.True(t, a.IsAccount())
	})

	t.Run("0x prefix", func(t *testing.T) {
		a, err := AddressDecodeString("0x" + s)
		require.NoError(t, err)
		require.Equal(t, s, a.String())
	})

	t.Run("bad length", func(t *testing.T) {
		_, err := AddressDecodeString(s[:62])
		require.ErrorIs(t, err, ErrInvalidAddress)
	})

	t.Run("bad hex", func(t *testing.T) {
		_, err := AddressDecodeString(strings.Repeat("zz", AddressSize))
		require.ErrorIs(t, err, ErrInvalidAddress)
	})
}

func TestAddressFromPublicKey(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	a := AddressFromPublicKey(pub)
	require.True(t, a.IsAccount())
	require.Equal(t, a, AddressFromPublicKey(pub))

	h := blake2b.Sum256(pub)
	require.Equal(t, h[1:], a[1:])

	other, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	require.NotEqual(t, a, AddressFromPublicKey(other))
}
