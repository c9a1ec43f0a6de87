// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/ids"
)

type UnsignedTransaction interface {
	Copy() UnsignedTransaction
	GetBlockID() ids.ID
	GetMagic() uint64
	SetBlockID(ids.ID)
	SetMagic(uint64)

	ExecuteBase(*Genesis) error
	Execute(*TransactionContext) error

	Activity() *Activity
}
