package crypto

import (
	"crypto/ed25519"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

const (
	// AddressSize is the length of Aion account address in bytes.
	AddressSize = 32

	// AccountPrefix is the first byte of every address derived
	// from an ed25519 public key.
	AccountPrefix byte = 0xa0
)

// Address is an Aion account address.
type Address [AddressSize]byte

// ErrInvalidAddress is returned when a string can't be parsed as an address.
var ErrInvalidAddress = errors.New("invalid address")

// String implements fmt.Stringer interface.
func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// IsAccount returns true iff a carries the account prefix.
func (a Address) IsAccount() bool {
	return a[0] == AccountPrefix
}

// AddressDecodeString parses hex-encoded address, 0x prefix is optional.
func AddressDecodeString(s string) (Address, error) {
	var a Address

	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) != AddressSize*2 {
		return a, errors.Wrapf(ErrInvalidAddress, "expected %d hex characters, got %d", AddressSize*2, len(s))
	}

	if _, err := hex.Decode(a[:], []byte(s)); err != nil {
		return a, errors.Wrap(ErrInvalidAddress, err.Error())
	}

	return a, nil
}

// AddressFromPublicKey returns account address of the ed25519 key: blake2b-256
// of the key with the first byte replaced by AccountPrefix.
func AddressFromPublicKey(pub ed25519.PublicKey) Address {
	a := Address(blake2b.Sum256(pub))
	a[0] = AccountPrefix

	return a
}
