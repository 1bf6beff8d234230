package block

import (
	"github.com/aionnetwork/aionapi/crypto"
	"github.com/nspcc-dev/neo-go/pkg/encoding/bigint"
	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/pkg/errors"
)

// EncodeBinary writes b to w. All integers are little-endian, big
// integers use two's complement encoding.
func EncodeBinary(w *io.BinWriter, b *Block) {
	w.WriteU64LE(uint64(b.number))
	w.WriteU64LE(uint64(b.timestamp))
	w.WriteU64LE(uint64(b.nrgConsumed))
	w.WriteU64LE(uint64(b.nrgLimit))
	w.WriteU32LE(uint32(b.size))

	w.WriteVarBytes(b.bloom)
	w.WriteVarBytes(b.extraData)
	w.WriteVarBytes(b.solution)

	w.WriteVarUint(uint64(len(b.txHashes)))
	for i := range b.txHashes {
		b.txHashes[i].EncodeBinary(w)
	}

	b.parentHash.EncodeBinary(w)
	w.WriteVarBytes(bigint.ToBytes(b.nonce))
	w.WriteVarBytes(bigint.ToBytes(b.difficulty))
	w.WriteVarBytes(bigint.ToBytes(b.totalDifficulty))
	w.WriteBytes(b.miner[:])
	b.stateRoot.EncodeBinary(w)
	b.txTrieRoot.EncodeBinary(w)
	b.receiptTxRoot.EncodeBinary(w)
}

// DecodeBinary reads a Block written by EncodeBinary. Decoded values
// go through Builder.Build, any failure is stored in r.Err and nil
// is returned.
func DecodeBinary(r *io.BinReader) *Block {
	bb := NewBuilder().
		Number(int64(r.ReadU64LE())).
		Timestamp(int64(r.ReadU64LE())).
		NrgConsumed(int64(r.ReadU64LE())).
		NrgLimit(int64(r.ReadU64LE())).
		Size(int32(r.ReadU32LE())).
		Bloom(r.ReadVarBytes()).
		ExtraData(r.ReadVarBytes()).
		Solution(r.ReadVarBytes())

	n := r.ReadVarUint()
	if n > io.MaxArraySize {
		r.Err = errors.Errorf("too many transaction hashes: %d", n)
		return nil
	}

	hs := make([]util.Uint256, n)
	for i := range hs {
		hs[i].DecodeBinary(r)
	}
	bb.TxHashes(hs)

	var parent, state, txRoot, receiptRoot util.Uint256

	parent.DecodeBinary(r)
	bb.Nonce(bigint.FromBytes(r.ReadVarBytes()))
	bb.Difficulty(bigint.FromBytes(r.ReadVarBytes()))
	bb.TotalDifficulty(bigint.FromBytes(r.ReadVarBytes()))

	var miner crypto.Address
	r.ReadBytes(miner[:])

	state.DecodeBinary(r)
	txRoot.DecodeBinary(r)
	receiptRoot.DecodeBinary(r)

	if r.Err != nil {
		return nil
	}

	b, err := bb.ParentHash(parent).
		Miner(miner).
		StateRoot(state).
		TxTrieRoot(txRoot).
		ReceiptTxRoot(receiptRoot).
		Build()
	if err != nil {
		r.Err = err
		return nil
	}

	return b
}

// Bytes returns binary representation of b.
func Bytes(b *Block) ([]byte, error) {
	w := io.NewBufBinWriter()
	EncodeBinary(w.BinWriter, b)
	if w.Err != nil {
		return nil, w.Err
	}

	return w.Bytes(), nil
}

// FromBytes decodes a Block from data.
func FromBytes(data []byte) (*Block, error) {
	r := io.NewBinReaderFromBuf(data)
	b := DecodeBinary(r)
	if r.Err != nil {
		return nil, errors.Wrap(r.Err, "can't decode block")
	}

	return b, nil
}
