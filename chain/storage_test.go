// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
)

func TestRecordKey(t *testing.T) {
	t.Parallel()

	owner := common.HexToAddress("0x000000000000000000000000000000000000a11c")
	tt := []struct {
		owner     common.Address
		recordKey []byte
	}{
		{
			owner:     owner,
			recordKey: append([]byte{recordPrefix, ByteDelimiter}, owner[:]...),
		},
	}
	for i, tv := range tt {
		vv := RecordKey(tv.owner)
		if !bytes.Equal(tv.recordKey, vv) {
			t.Fatalf("#%d: value expected %q, got %q", i, tv.recordKey, vv)
		}
		extracted, err := ExtractRecordKey(vv)
		if err != nil {
			t.Fatal(err)
		}
		if extracted != tv.owner {
			t.Fatalf("#%d: owner expected %s, got %s", i, tv.owner, extracted)
		}
	}
	if _, err := ExtractRecordKey(PrefixTxKey(ids.GenerateTestID())); !errors.Is(err, ErrInvalidKeyFormat) {
		t.Fatalf("unexpected error %v, expected %v", err, ErrInvalidKeyFormat)
	}
}

func TestPrefixTxKey(t *testing.T) {
	t.Parallel()

	id := ids.GenerateTestID()
	tt := []struct {
		txID  ids.ID
		txKey []byte
	}{
		{
			txID:  id,
			txKey: append([]byte{txPrefix, ByteDelimiter}, id[:]...),
		},
	}
	for i, tv := range tt {
		vv := PrefixTxKey(tv.txID)
		if !bytes.Equal(tv.txKey, vv) {
			t.Fatalf("#%d: value expected %q, got %q", i, tv.txKey, vv)
		}
	}
}

func TestPrefixBlockKey(t *testing.T) {
	t.Parallel()

	id := ids.GenerateTestID()
	tt := []struct {
		blkID    ids.ID
		blockKey []byte
	}{
		{
			blkID:    id,
			blockKey: append([]byte{blockPrefix, ByteDelimiter}, id[:]...),
		},
	}
	for i, tv := range tt {
		vv := PrefixBlockKey(tv.blkID)
		if !bytes.Equal(tv.blockKey, vv) {
			t.Fatalf("#%d: value expected %q, got %q", i, tv.blockKey, vv)
		}
	}
}

func TestPutAndViewInheritance(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	owner := common.HexToAddress("0x000000000000000000000000000000000000a11c")
	heir := common.HexToAddress("0x0000000000000000000000000000000000000b0b")

	// expect the empty record for an unknown owner
	if _, exists, err := GetInheritance(db, owner); exists || err != nil {
		t.Fatalf("unexpected exists %v, err %v", exists, err)
	}
	i, err := ViewInheritance(db, owner)
	if err != nil {
		t.Fatal(err)
	}
	if i.Owner != owner || i.Heir != owner || i.Deadline != 0 || i.IsClaimed || i.AssetAmount.Big().Sign() != 0 {
		t.Fatalf("unexpected empty inheritance %+v", i)
	}

	if err := PutInheritance(db, &Inheritance{
		Owner:       owner,
		Heir:        heir,
		AssetAmount: AmountFromInt64(42),
		Deadline:    7,
	}); err != nil {
		t.Fatal(err)
	}
	i, err = ViewInheritance(db, owner)
	if err != nil {
		t.Fatal(err)
	}
	if i.Heir != heir || i.Deadline != 7 || i.AssetAmount.String() != "42" {
		t.Fatalf("unexpected inheritance %+v", i)
	}
	if total, err := GetTotalInheritances(db); total != 0 || err != nil {
		t.Fatalf("unexpected total %d, err %v", total, err)
	}
	for want := uint64(1); want <= 3; want++ {
		got, err := incrementTotalInheritances(db)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("expected total %d, got %d", want, got)
		}
	}
}

func TestExtendTTL(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	tt := []struct {
		seq       uint64
		liveUntil uint64
		archived  bool
	}{
		{seq: 0, liveUntil: 10_000},
		{seq: 0, liveUntil: 10_000}, // 10000 remaining
		{seq: 1, liveUntil: 10_001},
		{seq: 5_000, liveUntil: 15_000},
		{seq: 15_000, liveUntil: 25_000},
		{seq: 25_001, liveUntil: 35_001, archived: true},
	}
	for i, tv := range tt {
		archived, err := IsArchived(db, tv.seq)
		if err != nil {
			t.Fatal(err)
		}
		if archived != tv.archived {
			t.Fatalf("#%d: archived expected %v, got %v", i, tv.archived, archived)
		}
		liveUntil, err := ExtendTTL(db, tv.seq, 10_000, 10_000)
		if err != nil {
			t.Fatal(err)
		}
		if liveUntil != tv.liveUntil {
			t.Fatalf("#%d: live until expected %d, got %d", i, tv.liveUntil, liveUntil)
		}
	}
}

func TestLastAccepted(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	if has, err := HasLastAccepted(db); has || err != nil {
		t.Fatalf("unexpected has %v, err %v", has, err)
	}
	blk := &StatelessBlock{StatefulBlock: &StatefulBlock{Tmstmp: 1, Txs: []*Transaction{}}}
	if err := blk.init(); err != nil {
		t.Fatal(err)
	}
	if err := SetLastAccepted(db, blk); err != nil {
		t.Fatal(err)
	}
	id, err := GetLastAccepted(db)
	if err != nil {
		t.Fatal(err)
	}
	if id != blk.ID() {
		t.Fatalf("expected %s, got %s", blk.ID(), id)
	}
	b, err := GetBlock(db, id)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, blk.Bytes()) {
		t.Fatal("unexpected block bytes")
	}
}
