// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/inheritancevm/chain"
)

func (vm *VM) Genesis() *chain.Genesis {
	return vm.genesis
}

func (vm *VM) State() database.Database {
	return vm.db
}

func (vm *VM) Mempool() chain.Mempool {
	return vm.mempool
}

func (vm *VM) Now() time.Time {
	return vm.clock()
}

func (vm *VM) Verified(b *chain.StatelessBlock) {
	vm.verifiedBlocks[b.ID()] = b
	for _, tx := range b.Txs {
		_ = vm.mempool.Remove(tx.ID())
	}
	log.Debug("verified block", "id", b.ID(), "parent", b.Prnt)
}

func (vm *VM) Rejected(b *chain.StatelessBlock) {
	delete(vm.verifiedBlocks, b.ID())
	for _, tx := range b.Txs {
		vm.mempool.Add(tx)
	}
	log.Debug("rejected block", "id", b.ID())
}

func (vm *VM) Accepted(b *chain.StatelessBlock) {
	vm.blocks.Put(b.ID(), b)
	delete(vm.verifiedBlocks, b.ID())
	vm.lastAccepted = b
	for _, tx := range b.Txs {
		vm.txResults.Put(tx.ID(), &TxResult{Accepted: true})
		vm.addActivity(tx.Activity(b.Tmstmp))
	}
	log.Debug("accepted block", "blkID", b.ID(), "height", b.Hght, "txs", len(b.Txs))
}

func (vm *VM) Dropped(tx *chain.Transaction, err error) {
	vm.txResults.Put(tx.ID(), &TxResult{Failed: true, Error: err.Error()})
	log.Debug("dropped tx", "txId", tx.ID(), "err", err)
}

func (vm *VM) ExecutionContext(currTime int64, lastBlock *chain.StatelessBlock) (*chain.Context, error) {
	recentBlockIDs := ids.Set{}
	recentTxIDs := ids.Set{}
	err := vm.lookback(currTime, lastBlock.ID(), func(b *chain.StatelessBlock) (bool, error) {
		recentBlockIDs.Add(b.ID())
		for _, tx := range b.StatefulBlock.Txs {
			recentTxIDs.Add(tx.ID())
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &chain.Context{
		RecentBlockIDs: recentBlockIDs,
		RecentTxIDs:    recentTxIDs,
	}, nil
}
