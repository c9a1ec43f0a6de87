// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mempool_test

import (
	"crypto/ecdsa"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ava-labs/inheritancevm/chain"
	"github.com/ava-labs/inheritancevm/mempool"
)

func TestMempool(t *testing.T) {
	g := chain.DefaultGenesis()
	txm := mempool.New(3)
	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	blkID := ids.GenerateTestID()
	txs := make([]*chain.Transaction, 0, 4)
	for _, deadline := range []uint64{100, 200, 220, 250} {
		tx := createTestTx(t, g, priv, blkID, deadline)
		txs = append(txs, tx)
		added := txm.Add(tx)
		if deadline == 250 && added {
			t.Fatal("tx should be rejected when full")
		}
		if deadline != 250 && !added {
			t.Fatalf("tx %s was not added", tx.ID())
		}
	}
	if txm.Add(txs[0]) {
		t.Fatal("duplicate tx added")
	}
	if !txm.Has(txs[1].ID()) {
		t.Fatal("missing tx")
	}
	if length := txm.Len(); length != 3 {
		t.Fatalf("length expected 3, got %d", length)
	}
	select {
	case <-txm.Pending:
	default:
		t.Fatal("pending signal expected")
	}

	// Arrival order is preserved
	if tx := txm.PeekMin(); tx.ID() != txs[0].ID() {
		t.Fatalf("peek expected %s, got %s", txs[0].ID(), tx.ID())
	}
	for i := 0; i < 3; i++ {
		tx := txm.PopMin()
		if tx.ID() != txs[i].ID() {
			t.Fatalf("#%d: pop expected %s, got %s", i, txs[i].ID(), tx.ID())
		}
	}
	if tx := txm.PopMin(); tx != nil {
		t.Fatalf("unexpected tx %s", tx.ID())
	}
}

func TestMempoolPrune(t *testing.T) {
	g := chain.DefaultGenesis()
	txm := mempool.New(10)
	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	keep, stale := ids.GenerateTestID(), ids.GenerateTestID()
	kept := createTestTx(t, g, priv, keep, 10)
	for i, blkID := range []ids.ID{stale, keep, stale} {
		tx := kept
		if blkID == stale {
			tx = createTestTx(t, g, priv, blkID, uint64(i+100))
		}
		if !txm.Add(tx) {
			t.Fatalf("#%d: tx not added", i)
		}
	}
	valid := ids.NewSet(1)
	valid.Add(keep)
	txm.Prune(valid)
	if length := txm.Len(); length != 1 {
		t.Fatalf("length expected 1, got %d", length)
	}
	if tx := txm.PopMin(); tx.ID() != kept.ID() {
		t.Fatalf("unexpected tx %s", tx.ID())
	}
}

func createTestTx(t *testing.T, g *chain.Genesis, priv *ecdsa.PrivateKey, blkID ids.ID, deadline uint64) *chain.Transaction {
	t.Helper()

	owner := crypto.PubkeyToAddress(priv.PublicKey)
	utx := &chain.SetupTx{
		BaseTx:   &chain.BaseTx{BlockID: blkID, Magic: g.Magic},
		Owner:    owner,
		Heir:     owner,
		Deadline: deadline,
	}
	dh, err := chain.DigestHash(utx)
	if err != nil {
		t.Fatal(err)
	}
	sig, err := chain.Sign(dh, priv)
	if err != nil {
		t.Fatal(err)
	}
	tx := chain.NewTx(utx, sig)
	if err := tx.Init(); err != nil {
		t.Fatal(err)
	}
	return tx
}
