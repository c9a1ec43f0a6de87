// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/common"
)

func TestClaimTx(t *testing.T) {
	t.Parallel()

	owner := common.HexToAddress("0x000000000000000000000000000000000000a11c")
	heir := common.HexToAddress("0x0000000000000000000000000000000000000b0b")
	stranger := common.HexToAddress("0x0000000000000000000000000000000000000eee")

	db := memdb.New()
	defer db.Close()

	g := DefaultGenesis()
	setup := &SetupTx{BaseTx: &BaseTx{}, Owner: owner, Heir: heir, AssetAmount: AmountFromInt64(1000), Deadline: 2000}
	if err := setup.Execute(&TransactionContext{Genesis: g, Database: db, BlockTime: 1000, Sequence: 1, Sender: owner}); err != nil {
		t.Fatal(err)
	}

	tt := []struct {
		tx        *ClaimTx
		blockTime uint64
		sender    common.Address
		err       error
	}{
		{ // heir did not sign
			tx:        &ClaimTx{BaseTx: &BaseTx{}, Owner: owner, Heir: heir},
			blockTime: 2000,
			sender:    stranger,
			err:       ErrUnauthorized,
		},
		{ // not the named heir
			tx:        &ClaimTx{BaseTx: &BaseTx{}, Owner: owner, Heir: stranger},
			blockTime: 2000,
			sender:    stranger,
			err:       ErrUnauthorizedHeir,
		},
		{ // no record reads as owner-as-heir
			tx:        &ClaimTx{BaseTx: &BaseTx{}, Owner: stranger, Heir: heir},
			blockTime: 2000,
			sender:    heir,
			err:       ErrUnauthorizedHeir,
		},
		{
			tx:        &ClaimTx{BaseTx: &BaseTx{}, Owner: owner, Heir: heir},
			blockTime: 1999,
			sender:    heir,
			err:       ErrDeadlineNotReached,
		},
		{ // claimable exactly at the deadline
			tx:        &ClaimTx{BaseTx: &BaseTx{}, Owner: owner, Heir: heir},
			blockTime: 2000,
			sender:    heir,
		},
		{
			tx:        &ClaimTx{BaseTx: &BaseTx{}, Owner: owner, Heir: heir},
			blockTime: 2001,
			sender:    heir,
			err:       ErrAlreadyClaimed,
		},
		{ // owner claiming its own unconfigured record
			tx:        &ClaimTx{BaseTx: &BaseTx{}, Owner: stranger, Heir: stranger},
			blockTime: 1,
			sender:    stranger,
		},
	}
	for i, tv := range tt {
		tc := &TransactionContext{
			Genesis:   g,
			Database:  db,
			BlockTime: tv.blockTime,
			Sequence:  uint64(i + 2),
			Sender:    tv.sender,
		}
		err := tv.tx.Execute(tc)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: tx.Execute err expected %v, got %v", i, tv.err, err)
		}
	}

	i, err := ViewInheritance(db, owner)
	if err != nil {
		t.Fatal(err)
	}
	if !i.IsClaimed {
		t.Fatal("inheritance should be claimed")
	}
	if i.AssetAmount.Big().Int64() != 1000 || i.Deadline != 2000 || i.Heir != heir {
		t.Fatalf("claim modified record fields %+v", i)
	}
	total, err := GetTotalInheritances(db)
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 {
		t.Fatalf("claims must not change the total, got %d", total)
	}
}
