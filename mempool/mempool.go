// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mempool

import (
	"fmt"
	"sync"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/google/btree"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/inheritancevm/chain"
)

var _ chain.Mempool = &Mempool{}

var _ btree.Item = &txEntry{}

// txEntry orders transactions by arrival.
type txEntry struct {
	seq uint64
	tx  *chain.Transaction
}

func (e *txEntry) Less(item btree.Item) bool {
	itemTyped, ok := item.(*txEntry)
	if !ok {
		panic(fmt.Errorf("unexpected item found in index %T", item))
	}
	return e.seq < itemTyped.seq
}

type Mempool struct {
	mu sync.Mutex

	maxSize int
	nextSeq uint64
	txs     map[ids.ID]*txEntry
	tree    *btree.BTree

	// Pending is signalled (without blocking) whenever a tx is added.
	Pending chan struct{}
}

// New creates a new [Mempool]. [maxSize] must be > 0 or else the
// implementation may panic.
func New(maxSize int) *Mempool {
	return &Mempool{
		maxSize: maxSize,
		txs:     make(map[ids.ID]*txEntry),
		tree:    btree.New(16),
		Pending: make(chan struct{}, 1),
	}
}

// Add queues [tx] behind everything already pending. It returns false if the
// tx is already queued or the mempool is full.
func (th *Mempool) Add(tx *chain.Transaction) bool {
	th.mu.Lock()
	defer th.mu.Unlock()

	txID := tx.ID()
	if _, ok := th.txs[txID]; ok {
		return false
	}
	if len(th.txs) >= th.maxSize {
		log.Debug("mempool full; dropping tx", "txId", txID, "size", len(th.txs))
		return false
	}
	entry := &txEntry{seq: th.nextSeq, tx: tx}
	th.nextSeq++
	th.txs[txID] = entry
	th.tree.ReplaceOrInsert(entry)

	select {
	case th.Pending <- struct{}{}:
	default:
	}
	return true
}

// PopMin removes and returns the oldest tx, or nil if the mempool is empty.
func (th *Mempool) PopMin() *chain.Transaction {
	th.mu.Lock()
	defer th.mu.Unlock()

	item := th.tree.DeleteMin()
	if item == nil {
		return nil
	}
	entry, ok := item.(*txEntry)
	if !ok {
		panic(fmt.Errorf("unexpected item found in index %T", item))
	}
	delete(th.txs, entry.tx.ID())
	return entry.tx
}

// PeekMin returns the oldest tx without removing it.
func (th *Mempool) PeekMin() *chain.Transaction {
	th.mu.Lock()
	defer th.mu.Unlock()

	item := th.tree.Min()
	if item == nil {
		return nil
	}
	return item.(*txEntry).tx
}

func (th *Mempool) Remove(id ids.ID) *chain.Transaction {
	th.mu.Lock()
	defer th.mu.Unlock()

	return th.remove(id)
}

func (th *Mempool) remove(id ids.ID) *chain.Transaction {
	entry, ok := th.txs[id]
	if !ok {
		return nil
	}
	th.tree.Delete(entry)
	delete(th.txs, id)
	return entry.tx
}

// Prune removes all transactions that are not found in "validHashes".
func (th *Mempool) Prune(validHashes ids.Set) {
	th.mu.Lock()
	defer th.mu.Unlock()

	toRemove := ids.NewSet(len(th.txs))
	for txID, entry := range th.txs {
		if !validHashes.Contains(entry.tx.GetBlockID()) {
			toRemove.Add(txID)
		}
	}
	for txID := range toRemove {
		th.remove(txID)
	}
	if toRemove.Len() > 0 {
		log.Debug("pruned stale txs", "count", toRemove.Len())
	}
}

func (th *Mempool) Len() int {
	th.mu.Lock()
	defer th.mu.Unlock()

	return len(th.txs)
}

func (th *Mempool) Has(id ids.ID) bool {
	th.mu.Lock()
	defer th.mu.Unlock()

	_, ok := th.txs[id]
	return ok
}
