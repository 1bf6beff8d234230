package block

import (
	"bytes"
	"math/big"
	"slices"

	"github.com/aionnetwork/aionapi/crypto"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Block is a read-only snapshot of a block as returned by the chain API
// (getBlockByNumber, getBlockByHash). It can only be obtained from
// Builder.Build or from one of the decoders that call it, so every
// instance satisfies the builder's checks. Slices and big integers
// are copied on the way in and on the way out, so a Block can be
// shared between goroutines without locking.
type Block struct {
	number          int64
	timestamp       int64
	nrgConsumed     int64
	nrgLimit        int64
	bloom           []byte
	extraData       []byte
	solution        []byte
	txHashes        []util.Uint256
	parentHash      util.Uint256
	nonce           *big.Int
	difficulty      *big.Int
	totalDifficulty *big.Int
	miner           crypto.Address
	stateRoot       util.Uint256
	txTrieRoot      util.Uint256
	receiptTxRoot   util.Uint256
	size            int32
}

// Number returns block height.
func (b *Block) Number() int64 {
	return b.number
}

// Timestamp returns block timestamp in seconds since epoch.
func (b *Block) Timestamp() int64 {
	return b.timestamp
}

// NrgConsumed returns the amount of energy used by block transactions.
func (b *Block) NrgConsumed() int64 {
	return b.nrgConsumed
}

// NrgLimit returns block energy limit.
func (b *Block) NrgLimit() int64 {
	return b.nrgLimit
}

// Bloom returns logs bloom filter.
func (b *Block) Bloom() []byte {
	return bytes.Clone(b.bloom)
}

// ExtraData returns block extra data.
func (b *Block) ExtraData() []byte {
	return bytes.Clone(b.extraData)
}

// Solution returns PoW solution.
func (b *Block) Solution() []byte {
	return bytes.Clone(b.solution)
}

// TxHashes returns hashes of block transactions. The result is never nil
// but may be empty.
func (b *Block) TxHashes() []util.Uint256 {
	return slices.Clone(b.txHashes)
}

// ParentHash returns previous block hash.
func (b *Block) ParentHash() util.Uint256 {
	return b.parentHash
}

// Nonce returns block nonce.
func (b *Block) Nonce() *big.Int {
	return new(big.Int).Set(b.nonce)
}

// Difficulty returns block difficulty.
func (b *Block) Difficulty() *big.Int {
	return new(big.Int).Set(b.difficulty)
}

// TotalDifficulty returns total chain difficulty up to and including this block.
func (b *Block) TotalDifficulty() *big.Int {
	return new(big.Int).Set(b.totalDifficulty)
}

// Miner returns the address of the account that mined the block.
func (b *Block) Miner() crypto.Address {
	return b.miner
}

// StateRoot returns state trie root.
func (b *Block) StateRoot() util.Uint256 {
	return b.stateRoot
}

// TxTrieRoot returns transaction trie root.
func (b *Block) TxTrieRoot() util.Uint256 {
	return b.txTrieRoot
}

// ReceiptTxRoot returns receipt trie root.
func (b *Block) ReceiptTxRoot() util.Uint256 {
	return b.receiptTxRoot
}

// Size returns serialized block size in bytes.
func (b *Block) Size() int32 {
	return b.size
}
