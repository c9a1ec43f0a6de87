// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database/versiondb"
	"github.com/ava-labs/avalanchego/ids"
	log "github.com/inconshreveable/log15"
)

// BuildBlock packs mempool transactions, oldest first, on top of
// [preferred]. Transactions that fail execution are reported to
// [vm.Dropped] and left out of the block.
func BuildBlock(vm VM, preferred ids.ID) (*StatelessBlock, error) {
	log.Debug("attempting block building")

	nextTime := vm.Now().Unix()
	parent, err := vm.GetStatelessBlock(preferred)
	if err != nil {
		log.Debug("block building failed: couldn't get parent", "err", err)
		return nil, err
	}
	if nextTime < parent.Tmstmp {
		nextTime = parent.Tmstmp
	}
	context, err := vm.ExecutionContext(nextTime, parent)
	if err != nil {
		log.Debug("block building failed: couldn't get execution context", "err", err)
		return nil, err
	}
	b := NewBlock(vm, parent, nextTime)

	// Select new transactions
	parentDB, err := parent.onAccept()
	if err != nil {
		log.Debug("block building failed: couldn't get parent db", "err", err)
		return nil, err
	}
	g := vm.Genesis()
	mempool := vm.Mempool()
	mempool.Prune(context.RecentBlockIDs) // clean out invalid txs
	vdb := versiondb.New(parentDB)
	b.Txs = []*Transaction{}
	for uint64(len(b.Txs)) < g.MaxBlockTxs && mempool.Len() > 0 {
		next := mempool.PopMin()
		if next == nil {
			break
		}
		// Verify that changes pass
		tvdb := versiondb.New(vdb)
		if err := next.Execute(g, tvdb, b, context); err != nil {
			log.Debug("skipping tx: failed verification", "txId", next.ID(), "err", err)
			tvdb.Abort()
			vm.Dropped(next, err)
			continue
		}
		if err := tvdb.Commit(); err != nil {
			return nil, err
		}
		b.Txs = append(b.Txs, next)

		// Later txs in this block must not replay earlier ones
		context.RecentTxIDs.Add(next.ID())
	}
	vdb.Abort()

	// Compute block hash and marshaled representation
	if err := b.init(); err != nil {
		return nil, err
	}

	// Verify block to ensure it is formed correctly
	if _, _, err := b.verify(); err != nil {
		log.Debug("block building failed: failed verification", "err", err)
		return nil, err
	}
	return b, nil
}
