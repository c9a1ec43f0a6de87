// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"sync"
	"time"

	log "github.com/inconshreveable/log15"
)

type BlockBuilder interface {
	Build()
	HandleGenerateBlock()
}

var (
	_ BlockBuilder = (*TimeBuilder)(nil)
	_ BlockBuilder = (*ManualBuilder)(nil)
)

// buildingBlkStatus denotes the current status of the VM in block production.
type buildingBlkStatus uint8

const (
	dontBuild buildingBlkStatus = iota
	mayBuild
	building
)

// TimeBuilder builds a block [BuildInterval] after transactions arrive, and
// keeps building at that pace while the mempool is non-empty.
type TimeBuilder struct {
	vm *VM

	// [l] must be held when accessing [status]
	l sync.Mutex

	// status signals the phase of block building the VM is currently in.
	// [dontBuild] indicates there's no need to build a block.
	// [mayBuild] indicates a build is scheduled.
	// [building] indicates a block is being built.
	status buildingBlkStatus

	timer *time.Timer

	stop      chan struct{}
	doneBuild chan struct{}
}

func (vm *VM) NewTimeBuilder() *TimeBuilder {
	t := time.NewTimer(vm.config.BuildInterval)
	if !t.Stop() {
		<-t.C
	}
	return &TimeBuilder{
		vm:        vm,
		status:    dontBuild,
		timer:     t,
		stop:      vm.stop,
		doneBuild: vm.doneBuild,
	}
}

// signalTxsReady schedules a build if one has not already been scheduled
// from an earlier notification.
func (b *TimeBuilder) signalTxsReady() {
	b.l.Lock()
	defer b.l.Unlock()

	if b.status != dontBuild {
		return
	}
	b.status = mayBuild
	b.timer.Reset(b.vm.config.BuildInterval)
}

// HandleGenerateBlock should be called immediately after [BuildBlock].
// If we still need to build a block immediately after building, another
// build is scheduled in [BuildInterval].
func (b *TimeBuilder) HandleGenerateBlock() {
	b.l.Lock()
	defer b.l.Unlock()

	if b.needToBuild() {
		b.status = mayBuild
		b.timer.Reset(b.vm.config.BuildInterval)
	} else {
		b.status = dontBuild
	}
}

// needToBuild returns true if there are outstanding transactions to be issued
// into a block.
func (b *TimeBuilder) needToBuild() bool {
	return b.vm.mempool.Len() > 0
}

func (b *TimeBuilder) markBuilding() bool {
	b.l.Lock()
	defer b.l.Unlock()

	if b.status != mayBuild {
		return false
	}
	b.status = building
	return true
}

func (b *TimeBuilder) Build() {
	log.Debug("starting build loops")
	defer close(b.doneBuild)
	defer b.timer.Stop()

	for {
		select {
		case <-b.vm.mempool.Pending:
			b.signalTxsReady()
		case <-b.timer.C:
			if !b.markBuilding() {
				continue
			}
			blk, err := b.vm.BuildBlock()
			switch {
			case err == nil:
				log.Debug("produced block", "id", blk.ID(), "txs", len(blk.Txs))
			case errNoTxs(err):
				log.Debug("no block produced", "err", err)
			default:
				log.Warn("block building failed", "err", err)
			}
			b.HandleGenerateBlock()
		case <-b.stop:
			return
		}
	}
}

// ManualBuilder never builds on its own; blocks are produced by calling
// [VM.BuildBlock] directly.
type ManualBuilder struct {
	vm        *VM
	doneBuild chan struct{}
}

func (vm *VM) NewManualBuilder() *ManualBuilder {
	return &ManualBuilder{
		vm:        vm,
		doneBuild: vm.doneBuild,
	}
}

func (b *ManualBuilder) Build() {
	close(b.doneBuild)
}

func (b *ManualBuilder) HandleGenerateBlock() {}
