// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package vm hosts the inheritance ledger: it owns the database, orders
// submitted transactions into blocks and serves the JSON-RPC API.
package vm

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/cache"
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/versiondb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/snow/choices"
	"github.com/ava-labs/avalanchego/utils/json"
	"github.com/gorilla/rpc/v2"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/inheritancevm/chain"
	"github.com/ava-labs/inheritancevm/mempool"
	"github.com/ava-labs/inheritancevm/version"
)

const (
	Name           = "inheritancevm"
	PublicEndpoint = "/public"
)

var _ chain.VM = &VM{}

type VM struct {
	// ctxLock serialises every read and write of chain state.
	ctxLock sync.Mutex

	db      database.Database
	config  Config
	genesis *chain.Genesis
	clock   func() time.Time

	mempool *mempool.Mempool

	// cache block objects to optimize "GetStatelessBlock"
	// only put when a block is accepted
	// key: block ID, value: *chain.StatelessBlock
	blocks *cache.LRU

	// Blocks verified but not yet accepted
	verifiedBlocks map[ids.ID]*chain.StatelessBlock

	// Outcome of recently included or dropped txs
	// key: tx ID, value: *TxResult
	txResults *cache.LRU

	// Recent activity, oldest overwritten first
	activityCacheLock   sync.RWMutex
	activityCache       []*chain.Activity
	activityCacheCursor uint64

	preferred    ids.ID
	lastAccepted *chain.StatelessBlock

	builder BlockBuilder

	stop        chan struct{}
	doneBuild   chan struct{}
	doneCompact chan struct{}
}

// TxResult is what became of a submitted transaction.
type TxResult struct {
	Accepted bool   `serialize:"true" json:"accepted"`
	Failed   bool   `serialize:"true" json:"failed"`
	Error    string `serialize:"true" json:"error,omitempty"`
}

// Initialize opens the ledger on [db], resuming from the last accepted block
// if there is one and writing a genesis block otherwise.
func (vm *VM) Initialize(
	db database.Database,
	genesisBytes []byte,
	configBytes []byte,
) error {
	log.Info("initializing inheritancevm", "version", version.Version)

	c, err := ParseConfig(configBytes)
	if err != nil {
		log.Error("failed to parse config", "err", err)
		return err
	}
	vm.config = c

	g, err := chain.ParseGenesis(genesisBytes)
	if err != nil {
		log.Error("failed to parse genesis", "err", err)
		return err
	}
	vm.genesis = g

	if vm.clock == nil {
		vm.clock = time.Now
	}
	vm.db = db
	vm.mempool = mempool.New(vm.config.MempoolSize)
	vm.blocks = &cache.LRU{Size: vm.config.BlockCacheSize}
	vm.verifiedBlocks = make(map[ids.ID]*chain.StatelessBlock)
	vm.txResults = &cache.LRU{Size: vm.config.TxResultCacheSize}
	vm.activityCache = make([]*chain.Activity, vm.config.ActivityCacheSize)

	has, err := chain.HasLastAccepted(vm.db)
	if err != nil {
		log.Error("could not determine if have last accepted")
		return err
	}
	if has {
		blkID, err := chain.GetLastAccepted(vm.db)
		if err != nil {
			log.Error("could not get last accepted", "err", err)
			return err
		}

		blk, err := vm.getBlock(blkID)
		if err != nil {
			log.Error("could not load last accepted", "err", err)
			return err
		}

		vm.preferred, vm.lastAccepted = blkID, blk
		log.Info("initialized inheritancevm from last accepted", "block", blkID, "height", blk.Hght)
	} else {
		genesisBlk, err := chain.NewGenesisBlock(vm, vm.clock().Unix())
		if err != nil {
			log.Error("unable to init genesis block", "err", err)
			return err
		}

		// Commit genesis block and the instance ttl atomically
		vdb := versiondb.New(vm.db)
		if _, err := chain.ExtendTTL(vdb, g.Sequence(genesisBlk.Tmstmp), g.TTLThreshold, g.TTLExtendTo); err != nil {
			return err
		}
		if err := chain.SetLastAccepted(vdb, genesisBlk); err != nil {
			log.Error("could not set genesis as last accepted", "err", err)
			return err
		}
		if err := vdb.Commit(); err != nil {
			return err
		}

		gBlkID := genesisBlk.ID()
		vm.preferred, vm.lastAccepted = gBlkID, genesisBlk
		vm.blocks.Put(gBlkID, genesisBlk)
		log.Info("initialized inheritancevm from genesis", "block", gBlkID)
	}

	vm.stop = make(chan struct{})
	vm.doneBuild = make(chan struct{})
	vm.doneCompact = make(chan struct{})
	if vm.config.ManualBuild {
		vm.builder = vm.NewManualBuilder()
	} else {
		vm.builder = vm.NewTimeBuilder()
	}
	go vm.builder.Build()
	go vm.compact()
	return nil
}

// Shutdown stops the background loops and closes the database.
func (vm *VM) Shutdown() error {
	if vm.stop == nil {
		return nil
	}
	close(vm.stop)
	<-vm.doneBuild
	<-vm.doneCompact

	vm.ctxLock.Lock()
	defer vm.ctxLock.Unlock()
	if vm.db == nil {
		return nil
	}
	return vm.db.Close()
}

func (vm *VM) Version() (string, error) { return version.Version.String(), nil }

// CreateHandlers returns the JSON-RPC handlers keyed by endpoint.
func (vm *VM) CreateHandlers() (map[string]http.Handler, error) {
	server := rpc.NewServer()
	server.RegisterCodec(json.NewCodec(), "application/json")
	server.RegisterCodec(json.NewCodec(), "application/json;charset=UTF-8")
	if err := server.RegisterService(&PublicService{vm: vm}, Name); err != nil {
		return nil, err
	}
	return map[string]http.Handler{
		PublicEndpoint: server,
	}, nil
}

// GetStatelessBlock returns the block with [blkID], from the verified set,
// the cache or the database in that order.
func (vm *VM) GetStatelessBlock(blkID ids.ID) (*chain.StatelessBlock, error) {
	// has the block been cached from previous "Accepted" call
	bi, exist := vm.blocks.Get(blkID)
	if exist {
		blk, ok := bi.(*chain.StatelessBlock)
		if !ok {
			return nil, fmt.Errorf("unexpected entry %T found in LRU cache, expected *chain.StatelessBlock", bi)
		}
		return blk, nil
	}

	// has the block been verified, not yet accepted
	if blk, exist := vm.verifiedBlocks[blkID]; exist {
		return blk, nil
	}

	return vm.getBlock(blkID)
}

func (vm *VM) getBlock(blkID ids.ID) (*chain.StatelessBlock, error) {
	bytes, err := chain.GetBlock(vm.db, blkID)
	if err != nil {
		return nil, err
	}
	blk, err := chain.ParseBlock(bytes, choices.Accepted, vm)
	if err != nil {
		return nil, err
	}
	vm.blocks.Put(blkID, blk)
	return blk, nil
}

// BuildBlock packs pending transactions into a block on top of the preferred
// block and accepts it.
func (vm *VM) BuildBlock() (*chain.StatelessBlock, error) {
	vm.ctxLock.Lock()
	defer vm.ctxLock.Unlock()

	return vm.buildBlock()
}

func (vm *VM) buildBlock() (*chain.StatelessBlock, error) {
	if vm.mempool.Len() == 0 {
		return nil, ErrNoPendingTx
	}
	blk, err := chain.BuildBlock(vm, vm.preferred)
	if err != nil {
		return nil, err
	}
	if err := blk.Verify(); err != nil {
		log.Warn("built block failed verification", "id", blk.ID(), "err", err)
		vm.Rejected(blk)
		return nil, err
	}
	if err := blk.Accept(); err != nil {
		return nil, err
	}
	vm.preferred = blk.ID()
	log.Debug("built block", "id", blk.ID(), "height", blk.Hght, "txs", len(blk.Txs))
	return blk, nil
}

// Submit pre-executes [txs] against the preferred state and queues the ones
// that pass.
func (vm *VM) Submit(txs ...*chain.Transaction) (errs []error) {
	vm.ctxLock.Lock()
	defer vm.ctxLock.Unlock()

	if vm.lastAccepted == nil {
		return []error{ErrNotInitialized}
	}

	// Shared between all txs
	blk, err := vm.GetStatelessBlock(vm.preferred)
	if err != nil {
		return []error{err}
	}
	now := vm.clock().Unix()
	if now < blk.Tmstmp {
		now = blk.Tmstmp
	}
	ctx, err := vm.ExecutionContext(now, blk)
	if err != nil {
		return []error{err}
	}
	vdb := versiondb.New(vm.db)
	defer vdb.Abort()

	for _, tx := range txs {
		if err := vm.admit(tx, blk, now, vdb, ctx); err != nil {
			log.Debug("rejected submitted tx", "txId", tx.ID(), "err", err)
			errs = append(errs, err)
			continue
		}
		ctx.RecentTxIDs.Add(tx.ID())
	}
	return errs
}

func (vm *VM) admit(
	tx *chain.Transaction,
	parent *chain.StatelessBlock,
	now int64,
	vdb *versiondb.Database,
	ctx *chain.Context,
) error {
	txID := tx.ID()
	if vm.mempool.Has(txID) {
		return chain.ErrDuplicateTx
	}
	has, err := chain.HasTransaction(vm.db, txID)
	if err != nil {
		return err
	}
	if has {
		return chain.ErrDuplicateTx
	}

	// Perform basic validity checks against the next block
	dummy := chain.NewBlock(vm, parent, now)
	tvdb := versiondb.New(vdb)
	if err := tx.Execute(vm.genesis, tvdb, dummy, ctx); err != nil {
		tvdb.Abort()
		return err
	}

	// Later txs in the batch only see the writes of txs that were queued
	if !vm.mempool.Add(tx) {
		tvdb.Abort()
		return fmt.Errorf("%w: %d pending", ErrMempoolFull, vm.mempool.Len())
	}
	return tvdb.Commit()
}

// errNoTxs reports whether a build attempt found nothing to include.
func errNoTxs(err error) bool {
	return errors.Is(err, ErrNoPendingTx) || errors.Is(err, chain.ErrNoTxs)
}
