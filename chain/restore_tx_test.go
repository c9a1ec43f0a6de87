// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/common"
)

func TestRestoreTx(t *testing.T) {
	t.Parallel()

	owner := common.HexToAddress("0x000000000000000000000000000000000000a11c")
	heir := common.HexToAddress("0x0000000000000000000000000000000000000b0b")

	db := memdb.New()
	defer db.Close()

	g := DefaultGenesis()
	g.TTLThreshold = 5
	g.TTLExtendTo = 10

	setup := &SetupTx{BaseTx: &BaseTx{}, Owner: owner, Heir: heir, Deadline: 100}
	if err := setup.Execute(&TransactionContext{Genesis: g, Database: db, BlockTime: 1, Sequence: 1, Sender: owner}); err != nil {
		t.Fatal(err)
	}
	liveUntil, _, err := GetLiveUntil(db)
	if err != nil {
		t.Fatal(err)
	}
	if liveUntil != 11 {
		t.Fatalf("expected live until 11, got %d", liveUntil)
	}

	tt := []struct {
		tx     UnsignedTransaction
		seq    uint64
		sender common.Address
		err    error
	}{
		{ // still live
			tx:     &RestoreTx{BaseTx: &BaseTx{}},
			seq:    11,
			sender: heir,
			err:    ErrInstanceNotArchived,
		},
		{
			tx:     &ClaimTx{BaseTx: &BaseTx{}, Owner: owner, Heir: heir},
			seq:    12,
			sender: heir,
			err:    ErrInstanceArchived,
		},
		{
			tx:     &SetupTx{BaseTx: &BaseTx{}, Owner: owner, Heir: heir, Deadline: 200},
			seq:    12,
			sender: owner,
			err:    ErrInstanceArchived,
		},
		{ // anyone may restore
			tx:     &RestoreTx{BaseTx: &BaseTx{}},
			seq:    12,
			sender: heir,
		},
		{
			tx:     &ClaimTx{BaseTx: &BaseTx{}, Owner: owner, Heir: heir},
			seq:    13,
			sender: heir,
		},
	}
	for i, tv := range tt {
		tc := &TransactionContext{
			Genesis:   g,
			Database:  db,
			BlockTime: 150,
			Sequence:  tv.seq,
			Sender:    tv.sender,
		}
		err := tv.tx.Execute(tc)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: tx.Execute err expected %v, got %v", i, tv.err, err)
		}
	}

	// Archived data survives and is intact after restore
	i, err := ViewInheritance(db, owner)
	if err != nil {
		t.Fatal(err)
	}
	if !i.IsClaimed || i.Deadline != 100 {
		t.Fatalf("unexpected inheritance %+v", i)
	}
}
