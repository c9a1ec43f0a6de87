// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/ids"
)

// Context is the replay protection window seen by a block's transactions.
type Context struct {
	RecentBlockIDs ids.Set
	RecentTxIDs    ids.Set
}
