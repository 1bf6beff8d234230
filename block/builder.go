package block

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"slices"
	"strings"

	"github.com/aionnetwork/aionapi/crypto"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/pkg/errors"
)

// Builder stages Block fields. Setters never fail, all checks are
// performed by Build. A Builder is not safe for concurrent use.
type Builder struct {
	number      int64
	timestamp   int64
	nrgConsumed int64
	nrgLimit    int64
	size        int32

	bloom     []byte
	extraData []byte
	solution  []byte
	txHashes  []util.Uint256

	nonce           *big.Int
	difficulty      *big.Int
	totalDifficulty *big.Int

	// Fixed-size values are tracked via pointers so that
	// the zero value can be told apart from an unset one.
	parentHash    *util.Uint256
	miner         *crypto.Address
	stateRoot     *util.Uint256
	txTrieRoot    *util.Uint256
	receiptTxRoot *util.Uint256
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return new(Builder)
}

// Number sets block height.
func (b *Builder) Number(n int64) *Builder {
	b.number = n
	return b
}

// Timestamp sets block timestamp in seconds.
func (b *Builder) Timestamp(ts int64) *Builder {
	b.timestamp = ts
	return b
}

// NrgConsumed sets consumed energy.
func (b *Builder) NrgConsumed(nrg int64) *Builder {
	b.nrgConsumed = nrg
	return b
}

// NrgLimit sets energy limit.
func (b *Builder) NrgLimit(nrg int64) *Builder {
	b.nrgLimit = nrg
	return b
}

// Bloom sets logs bloom. nil leaves the field unset.
func (b *Builder) Bloom(bloom []byte) *Builder {
	b.bloom = bloom
	return b
}

// ExtraData sets extra data. nil leaves the field unset.
func (b *Builder) ExtraData(data []byte) *Builder {
	b.extraData = data
	return b
}

// Solution sets PoW solution. nil leaves the field unset.
func (b *Builder) Solution(sol []byte) *Builder {
	b.solution = sol
	return b
}

// TxHashes sets transaction hashes. nil leaves the field unset, an empty
// slice is a valid value.
func (b *Builder) TxHashes(hs []util.Uint256) *Builder {
	b.txHashes = hs
	return b
}

// ParentHash sets previous block hash.
func (b *Builder) ParentHash(h util.Uint256) *Builder {
	b.parentHash = &h
	return b
}

// Nonce sets block nonce.
func (b *Builder) Nonce(n *big.Int) *Builder {
	b.nonce = n
	return b
}

// Difficulty sets block difficulty.
func (b *Builder) Difficulty(d *big.Int) *Builder {
	b.difficulty = d
	return b
}

// TotalDifficulty sets total chain difficulty.
func (b *Builder) TotalDifficulty(td *big.Int) *Builder {
	b.totalDifficulty = td
	return b
}

// Miner sets miner address.
func (b *Builder) Miner(a crypto.Address) *Builder {
	b.miner = &a
	return b
}

// StateRoot sets state trie root.
func (b *Builder) StateRoot(h util.Uint256) *Builder {
	b.stateRoot = &h
	return b
}

// TxTrieRoot sets transaction trie root.
func (b *Builder) TxTrieRoot(h util.Uint256) *Builder {
	b.txTrieRoot = &h
	return b
}

// ReceiptTxRoot sets receipt trie root.
func (b *Builder) ReceiptTxRoot(h util.Uint256) *Builder {
	b.receiptTxRoot = &h
	return b
}

// Size sets serialized block size.
func (b *Builder) Size(s int32) *Builder {
	b.size = s
	return b
}

// Build checks staged values and returns a new Block. It fails with an
// error matching ErrMissingField if any of the required fields is unset
// and with ErrInvalidRange if any of the numeric fields is negative.
// Presence is checked first.
func (b *Builder) Build() (*Block, error) {
	if err := b.checkPresence(); err != nil {
		return nil, err
	}

	if b.number < 0 || b.timestamp < 0 || b.nrgConsumed < 0 || b.nrgLimit < 0 || b.size < 0 {
		return nil, errors.Wrapf(ErrInvalidRange, "Block#%d Time#%d NrgConsumed#%d NrgLimit#%d size#%d",
			b.number, b.timestamp, b.nrgConsumed, b.nrgLimit, b.size)
	}

	return &Block{
		number:          b.number,
		timestamp:       b.timestamp,
		nrgConsumed:     b.nrgConsumed,
		nrgLimit:        b.nrgLimit,
		bloom:           bytes.Clone(b.bloom),
		extraData:       bytes.Clone(b.extraData),
		solution:        bytes.Clone(b.solution),
		txHashes:        slices.Clone(b.txHashes),
		parentHash:      *b.parentHash,
		nonce:           new(big.Int).Set(b.nonce),
		difficulty:      new(big.Int).Set(b.difficulty),
		totalDifficulty: new(big.Int).Set(b.totalDifficulty),
		miner:           *b.miner,
		stateRoot:       *b.stateRoot,
		txTrieRoot:      *b.txTrieRoot,
		receiptTxRoot:   *b.receiptTxRoot,
		size:            b.size,
	}, nil
}

func (b *Builder) checkPresence() error {
	fields := []fieldValue{
		{"bloom", b.bloom != nil, func() string { return hexBytes(b.bloom) }},
		{"extraData", b.extraData != nil, func() string { return hexBytes(b.extraData) }},
		{"solution", b.solution != nil, func() string { return hexBytes(b.solution) }},
		{"txHash", b.txHashes != nil, func() string { return hashList(b.txHashes) }},
		{"parentHash", b.parentHash != nil, func() string { return b.parentHash.StringBE() }},
		{"nonce", b.nonce != nil, func() string { return b.nonce.String() }},
		{"difficulty", b.difficulty != nil, func() string { return b.difficulty.String() }},
		{"totalDifficulty", b.totalDifficulty != nil, func() string { return b.totalDifficulty.String() }},
		{"minerAddress", b.miner != nil, func() string { return b.miner.String() }},
		{"stateRoot", b.stateRoot != nil, func() string { return b.stateRoot.StringBE() }},
		{"txTrieRoot", b.txTrieRoot != nil, func() string { return b.txTrieRoot.StringBE() }},
		{"receiptTxRoot", b.receiptTxRoot != nil, func() string { return b.receiptTxRoot.StringBE() }},
	}

	for _, f := range fields {
		if !f.isSet {
			return errors.WithStack(newMissingFieldsError(fields))
		}
	}

	return nil
}

func hexBytes(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

func hashList(hs []util.Uint256) string {
	ss := make([]string, len(hs))
	for i := range hs {
		ss[i] = hs[i].StringBE()
	}

	return "[" + strings.Join(ss, " ") + "]"
}
