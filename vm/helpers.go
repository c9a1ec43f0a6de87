// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/inheritancevm/chain"
)

func (vm *VM) lookback(currTime int64, lastID ids.ID, f func(b *chain.StatelessBlock) (bool, error)) error {
	curr, err := vm.GetStatelessBlock(lastID)
	if err != nil {
		return err
	}
	// Include at least parent block in the window, regardless of how old
	for curr != nil && (currTime-curr.Tmstmp <= vm.genesis.LookbackWindow || curr.ID() == lastID) {
		if cont, err := f(curr); !cont || err != nil {
			return err
		}
		if curr.Hght == 0 /* genesis */ {
			return nil
		}
		b, err := vm.GetStatelessBlock(curr.Prnt)
		if err != nil {
			return err
		}
		curr = b
	}
	return nil
}

func (vm *VM) addActivity(a *chain.Activity) {
	vm.activityCacheLock.Lock()
	defer vm.activityCacheLock.Unlock()

	size := uint64(len(vm.activityCache))
	vm.activityCache[vm.activityCacheCursor%size] = a
	vm.activityCacheCursor++
}

// RecentActivity returns the cached activity, most recent first.
func (vm *VM) RecentActivity() []*chain.Activity {
	vm.activityCacheLock.RLock()
	defer vm.activityCacheLock.RUnlock()

	size := uint64(len(vm.activityCache))
	if size == 0 || vm.activityCacheCursor == 0 {
		return []*chain.Activity{}
	}

	acts := []*chain.Activity{}
	start := uint64(0)
	if vm.activityCacheCursor > size {
		start = vm.activityCacheCursor - size
	}
	for k := vm.activityCacheCursor; k > start; k-- {
		item := vm.activityCache[(k-1)%size]
		if item == nil {
			break
		}
		acts = append(acts, item)
	}
	return acts
}

// TxResult returns what became of [txID]. Results that fell out of the cache
// are recovered from storage for accepted txs only.
func (vm *VM) TxResult(txID ids.ID) (*TxResult, error) {
	if r, ok := vm.txResults.Get(txID); ok {
		return r.(*TxResult), nil
	}

	vm.ctxLock.Lock()
	defer vm.ctxLock.Unlock()

	has, err := chain.HasTransaction(vm.db, txID)
	if err != nil {
		return nil, err
	}
	return &TxResult{Accepted: has}, nil
}

// requireLive fails reads once the instance TTL has lapsed at the current
// ledger sequence. Callers hold [ctxLock].
func (vm *VM) requireLive() error {
	archived, err := chain.IsArchived(vm.db, vm.sequence())
	if err != nil {
		return err
	}
	if archived {
		return chain.ErrInstanceArchived
	}
	return nil
}

func (vm *VM) sequence() uint64 {
	return vm.genesis.Sequence(vm.clock().Unix())
}

// ViewInheritance reads the record for [owner] as a read-only query.
func (vm *VM) ViewInheritance(owner common.Address) (*chain.Inheritance, bool, error) {
	vm.ctxLock.Lock()
	defer vm.ctxLock.Unlock()

	if err := vm.requireLive(); err != nil {
		return nil, false, err
	}
	_, exists, err := chain.GetInheritance(vm.db, owner)
	if err != nil {
		return nil, false, err
	}
	i, err := chain.ViewInheritance(vm.db, owner)
	return i, exists, err
}

func (vm *VM) TotalInheritances() (uint64, error) {
	vm.ctxLock.Lock()
	defer vm.ctxLock.Unlock()

	if err := vm.requireLive(); err != nil {
		return 0, err
	}
	return chain.GetTotalInheritances(vm.db)
}

// InstanceInfo is the TTL state of the ledger's instance storage.
type InstanceInfo struct {
	LiveUntil uint64 `serialize:"true" json:"liveUntil"`
	Archived  bool   `serialize:"true" json:"archived"`
	Sequence  uint64 `serialize:"true" json:"sequence"`
}

// Instance reports the TTL state as seen at the current ledger sequence.
func (vm *VM) Instance() (*InstanceInfo, error) {
	vm.ctxLock.Lock()
	defer vm.ctxLock.Unlock()

	seq := vm.sequence()
	liveUntil, _, err := chain.GetLiveUntil(vm.db)
	if err != nil {
		return nil, err
	}
	archived, err := chain.IsArchived(vm.db, seq)
	if err != nil {
		return nil, err
	}
	return &InstanceInfo{
		LiveUntil: liveUntil,
		Archived:  archived,
		Sequence:  seq,
	}, nil
}

func (vm *VM) LastAccepted() ids.ID {
	vm.ctxLock.Lock()
	defer vm.ctxLock.Unlock()

	return vm.lastAccepted.ID()
}
