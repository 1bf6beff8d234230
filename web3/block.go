package web3

import (
	"math"
	"math/big"

	"github.com/aionnetwork/aionapi/block"
	"github.com/aionnetwork/aionapi/crypto"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/pkg/errors"
)

// ErrQuantityRange is returned when a quantity doesn't fit the
// corresponding Block field.
var ErrQuantityRange = errors.New("quantity out of range")

// BlockResult is a block object returned by eth_getBlockByNumber and
// eth_getBlockByHash of Aion node with transaction hashes only.
// Absent reference fields are left nil, absent quantities are zero.
type BlockResult struct {
	Number           hexutil.Uint64 `json:"number"`
	Timestamp        hexutil.Uint64 `json:"timestamp"`
	NrgUsed          hexutil.Uint64 `json:"nrgUsed"`
	NrgLimit         hexutil.Uint64 `json:"nrgLimit"`
	Size             hexutil.Uint64 `json:"size"`
	LogsBloom        hexutil.Bytes  `json:"logsBloom"`
	ExtraData        hexutil.Bytes  `json:"extraData"`
	Solution         hexutil.Bytes  `json:"solution"`
	Transactions     []common.Hash  `json:"transactions"`
	ParentHash       *common.Hash   `json:"parentHash"`
	Nonce            *hexutil.Big   `json:"nonce"`
	Difficulty       *hexutil.Big   `json:"difficulty"`
	TotalDifficulty  *hexutil.Big   `json:"totalDifficulty"`
	Miner            *common.Hash   `json:"miner"`
	StateRoot        *common.Hash   `json:"stateRoot"`
	TransactionsRoot *common.Hash   `json:"transactionsRoot"`
	ReceiptsRoot     *common.Hash   `json:"receiptsRoot"`
}

// NewBlockResult returns JSON representation of b.
func NewBlockResult(b *block.Block) *BlockResult {
	hs := b.TxHashes()
	txs := make([]common.Hash, len(hs))
	for i := range hs {
		txs[i] = common.Hash(hs[i])
	}

	return &BlockResult{
		Number:           hexutil.Uint64(b.Number()),
		Timestamp:        hexutil.Uint64(b.Timestamp()),
		NrgUsed:          hexutil.Uint64(b.NrgConsumed()),
		NrgLimit:         hexutil.Uint64(b.NrgLimit()),
		Size:             hexutil.Uint64(b.Size()),
		LogsBloom:        b.Bloom(),
		ExtraData:        b.ExtraData(),
		Solution:         b.Solution(),
		Transactions:     txs,
		ParentHash:       hashPtr(b.ParentHash()),
		Nonce:            (*hexutil.Big)(b.Nonce()),
		Difficulty:       (*hexutil.Big)(b.Difficulty()),
		TotalDifficulty:  (*hexutil.Big)(b.TotalDifficulty()),
		Miner:            addressPtr(b.Miner()),
		StateRoot:        hashPtr(b.StateRoot()),
		TransactionsRoot: hashPtr(b.TxTrieRoot()),
		ReceiptsRoot:     hashPtr(b.ReceiptTxRoot()),
	}
}

// ToBlock converts r to a Block. Quantities exceeding the width of the
// Block fields are rejected with ErrQuantityRange, everything else is
// checked by block.Builder.
func (r *BlockResult) ToBlock() (*block.Block, error) {
	number, err := toInt64("number", r.Number)
	if err != nil {
		return nil, err
	}
	ts, err := toInt64("timestamp", r.Timestamp)
	if err != nil {
		return nil, err
	}
	used, err := toInt64("nrgUsed", r.NrgUsed)
	if err != nil {
		return nil, err
	}
	limit, err := toInt64("nrgLimit", r.NrgLimit)
	if err != nil {
		return nil, err
	}
	if r.Size > math.MaxInt32 {
		return nil, errors.Wrapf(ErrQuantityRange, "size: %d", uint64(r.Size))
	}

	b := block.NewBuilder().
		Number(number).
		Timestamp(ts).
		NrgConsumed(used).
		NrgLimit(limit).
		Size(int32(r.Size)).
		Bloom(r.LogsBloom).
		ExtraData(r.ExtraData).
		Solution(r.Solution).
		Nonce(toBig(r.Nonce)).
		Difficulty(toBig(r.Difficulty)).
		TotalDifficulty(toBig(r.TotalDifficulty))

	if r.Transactions != nil {
		hs := make([]util.Uint256, len(r.Transactions))
		for i := range r.Transactions {
			hs[i] = util.Uint256(r.Transactions[i])
		}
		b.TxHashes(hs)
	}
	if r.ParentHash != nil {
		b.ParentHash(util.Uint256(*r.ParentHash))
	}
	if r.Miner != nil {
		b.Miner(crypto.Address(*r.Miner))
	}
	if r.StateRoot != nil {
		b.StateRoot(util.Uint256(*r.StateRoot))
	}
	if r.TransactionsRoot != nil {
		b.TxTrieRoot(util.Uint256(*r.TransactionsRoot))
	}
	if r.ReceiptsRoot != nil {
		b.ReceiptTxRoot(util.Uint256(*r.ReceiptsRoot))
	}

	return b.Build()
}

func toInt64(field string, v hexutil.Uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, errors.Wrapf(ErrQuantityRange, "%s: %d", field, uint64(v))
	}

	return int64(v), nil
}

func toBig(v *hexutil.Big) *big.Int {
	if v == nil {
		return nil
	}

	return v.ToInt()
}

func hashPtr(h util.Uint256) *common.Hash {
	ch := common.Hash(h)
	return &ch
}

func addressPtr(a crypto.Address) *common.Hash {
	ch := common.Hash(a)
	return &ch
}
