// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/ids"
)

type BaseTx struct {
	// BlockID is the ID of a recently accepted block. A transaction is only
	// executable while that block is inside the lookback window.
	BlockID ids.ID `serialize:"true" json:"blockId"`

	// Magic is the network the transaction was signed for.
	Magic uint64 `serialize:"true" json:"magic"`
}

func (b *BaseTx) GetBlockID() ids.ID {
	return b.BlockID
}

func (b *BaseTx) SetBlockID(bid ids.ID) {
	b.BlockID = bid
}

func (b *BaseTx) GetMagic() uint64 {
	return b.Magic
}

func (b *BaseTx) SetMagic(magic uint64) {
	b.Magic = magic
}

func (b *BaseTx) ExecuteBase(g *Genesis) error {
	if b.BlockID == ids.Empty {
		return ErrInvalidBlockID
	}
	if b.Magic != g.Magic {
		return ErrInvalidMagic
	}
	return nil
}

func (b *BaseTx) Copy() *BaseTx {
	blockID := ids.ID{}
	copy(blockID[:], b.BlockID[:])
	return &BaseTx{
		BlockID: blockID,
		Magic:   b.Magic,
	}
}
