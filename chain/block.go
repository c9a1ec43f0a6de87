// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/versiondb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/snow/choices"
	"github.com/ava-labs/avalanchego/utils/hashing"
	log "github.com/inconshreveable/log15"
)

const (
	futureBound = 10 * time.Second
)

type StatefulBlock struct {
	Prnt   ids.ID         `serialize:"true" json:"parent"`
	Tmstmp int64          `serialize:"true" json:"timestamp"`
	Hght   uint64         `serialize:"true" json:"height"`
	Txs    []*Transaction `serialize:"true" json:"txs"`
}

// Stateless is defined separately from "Block"
// in case external packages needs use the stateful block
// without mocking VM or parent block
type StatelessBlock struct {
	*StatefulBlock `serialize:"true" json:"block"`

	id    ids.ID
	st    choices.Status
	t     time.Time
	bytes []byte

	vm         VM
	children   []*StatelessBlock
	onAcceptDB *versiondb.Database
}

func NewBlock(vm VM, parent *StatelessBlock, tmstp int64) *StatelessBlock {
	return &StatelessBlock{
		StatefulBlock: &StatefulBlock{
			Tmstmp: tmstp,
			Prnt:   parent.ID(),
			Hght:   parent.Height() + 1,
		},
		vm: vm,
		st: choices.Processing,
	}
}

// NewGenesisBlock is the height 0 block every chain is rooted at.
func NewGenesisBlock(vm VM, tmstp int64) (*StatelessBlock, error) {
	blk := &StatelessBlock{
		StatefulBlock: &StatefulBlock{
			Tmstmp: tmstp,
			Txs:    []*Transaction{},
		},
		vm: vm,
		st: choices.Accepted,
	}
	if err := blk.init(); err != nil {
		return nil, err
	}
	return blk, nil
}

func ParseBlock(
	source []byte,
	status choices.Status,
	vm VM,
) (*StatelessBlock, error) {
	blk := new(StatefulBlock)
	if _, err := Unmarshal(source, blk); err != nil {
		return nil, err
	}
	return ParseStatefulBlock(blk, source, status, vm)
}

func ParseStatefulBlock(
	blk *StatefulBlock,
	source []byte,
	status choices.Status,
	vm VM,
) (*StatelessBlock, error) {
	if source == nil {
		b, err := Marshal(blk)
		if err != nil {
			return nil, err
		}
		source = b
	}
	b := &StatelessBlock{
		StatefulBlock: blk,
		t:             time.Unix(blk.Tmstmp, 0),
		bytes:         source,
		st:            status,
		vm:            vm,
	}
	id, err := ids.ToID(hashing.ComputeHash256(b.bytes))
	if err != nil {
		return nil, err
	}
	b.id = id
	for _, tx := range blk.Txs {
		if err := tx.Init(); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *StatelessBlock) init() error {
	bytes, err := Marshal(b.StatefulBlock)
	if err != nil {
		return err
	}
	b.bytes = bytes

	id, err := ids.ToID(hashing.ComputeHash256(b.bytes))
	if err != nil {
		return err
	}
	b.id = id
	b.t = time.Unix(b.StatefulBlock.Tmstmp, 0)
	for _, tx := range b.StatefulBlock.Txs {
		if err := tx.Init(); err != nil {
			return err
		}
	}
	return nil
}

func (b *StatelessBlock) ID() ids.ID { return b.id }

// verify checks the correctness of a block and then returns the
// *versiondb.Database computed during execution.
func (b *StatelessBlock) verify() (*StatelessBlock, *versiondb.Database, error) {
	g := b.vm.Genesis()
	parent, err := b.vm.GetStatelessBlock(b.Prnt)
	if err != nil {
		log.Debug("could not get parent", "id", b.Prnt)
		return nil, nil, err
	}
	if len(b.Txs) == 0 {
		return nil, nil, ErrNoTxs
	}
	if uint64(len(b.Txs)) > g.MaxBlockTxs {
		return nil, nil, fmt.Errorf("%w: %d > %d", ErrTooManyTxs, len(b.Txs), g.MaxBlockTxs)
	}
	if b.Timestamp().Unix() < parent.Timestamp().Unix() {
		return nil, nil, ErrTimestampTooEarly
	}
	if b.Timestamp().Unix() >= b.vm.Now().Add(futureBound).Unix() {
		return nil, nil, ErrTimestampTooLate
	}
	if b.Hght != parent.Hght+1 {
		return nil, nil, fmt.Errorf("%w: %d does not follow %d", ErrInvalidHeight, b.Hght, parent.Hght)
	}
	context, err := b.vm.ExecutionContext(b.Tmstmp, parent)
	if err != nil {
		return nil, nil, err
	}
	parentState, err := parent.onAccept()
	if err != nil {
		return nil, nil, err
	}
	onAcceptDB := versiondb.New(parentState)
	for _, tx := range b.Txs {
		if err := tx.Execute(g, onAcceptDB, b, context); err != nil {
			log.Debug("failed tx verification", "err", err)
			return nil, nil, err
		}
		context.RecentTxIDs.Add(tx.ID())
	}
	return parent, onAcceptDB, nil
}

func (b *StatelessBlock) Verify() error {
	parent, onAcceptDB, err := b.verify()
	if err != nil {
		log.Debug("failed verification", "err", err)
		return err
	}
	b.onAcceptDB = onAcceptDB

	// Set last accepted block and store
	if err := SetLastAccepted(b.onAcceptDB, b); err != nil {
		return err
	}

	parent.addChild(b)
	b.vm.Verified(b)
	return nil
}

func (b *StatelessBlock) Accept() error {
	if err := b.onAcceptDB.Commit(); err != nil {
		return err
	}
	for _, child := range b.children {
		child.onAcceptDB.SetDatabase(b.vm.State())
	}
	b.st = choices.Accepted
	b.vm.Accepted(b)
	return nil
}

func (b *StatelessBlock) Reject() error {
	b.st = choices.Rejected
	b.vm.Rejected(b)
	return nil
}

func (b *StatelessBlock) Status() choices.Status { return b.st }

func (b *StatelessBlock) Parent() ids.ID { return b.StatefulBlock.Prnt }

func (b *StatelessBlock) Bytes() []byte { return b.bytes }

func (b *StatelessBlock) Height() uint64 { return b.StatefulBlock.Hght }

func (b *StatelessBlock) Timestamp() time.Time { return b.t }

func (b *StatelessBlock) onAccept() (database.Database, error) {
	if b.st == choices.Accepted || b.Hght == 0 /* genesis */ {
		return b.vm.State(), nil
	}
	if b.onAcceptDB != nil {
		return b.onAcceptDB, nil
	}
	return nil, ErrParentBlockNotVerified
}

func (b *StatelessBlock) addChild(c *StatelessBlock) {
	b.children = append(b.children, c)
}
