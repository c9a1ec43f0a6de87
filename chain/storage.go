// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/binary"
	"errors"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	log "github.com/inconshreveable/log15"
)

// 0x0/ (inheritance records)
//   -> [owner] => inheritance
// 0x1/ (instance singletons)
//   -> totalInheritances => uint64
//   -> liveUntil => uint64 (ledger sequence)
// 0x2/ (tx hashes)
// 0x3/ (block hashes)

const (
	recordPrefix   = 0x0
	instancePrefix = 0x1
	txPrefix       = 0x2
	blockPrefix    = 0x3

	ByteDelimiter byte = '/'
)

var (
	lastAccepted = []byte("last_accepted")

	totalInheritancesKey = InstanceKey([]byte("totalInheritances"))
	liveUntilKey         = InstanceKey([]byte("liveUntil"))

	// CompactablePrefixes are the prefixes that see steady churn.
	CompactablePrefixes = []byte{recordPrefix, instancePrefix, txPrefix, blockPrefix}
)

// [recordPrefix] + [delimiter] + [owner]
func RecordKey(owner common.Address) (k []byte) {
	k = make([]byte, 2+common.AddressLength)
	k[0] = recordPrefix
	k[1] = ByteDelimiter
	copy(k[2:], owner[:])
	return k
}

// [instancePrefix] + [delimiter] + [name]
func InstanceKey(name []byte) (k []byte) {
	k = make([]byte, 2+len(name))
	k[0] = instancePrefix
	k[1] = ByteDelimiter
	copy(k[2:], name)
	return k
}

// [txPrefix] + [delimiter] + [txID]
func PrefixTxKey(txID ids.ID) (k []byte) {
	k = make([]byte, 2+len(txID))
	k[0] = txPrefix
	k[1] = ByteDelimiter
	copy(k[2:], txID[:])
	return k
}

// [blockPrefix] + [delimiter] + [blockID]
func PrefixBlockKey(blockID ids.ID) (k []byte) {
	k = make([]byte, 2+len(blockID))
	k[0] = blockPrefix
	k[1] = ByteDelimiter
	copy(k[2:], blockID[:])
	return k
}

func CompactablePrefixKey(pfx byte) []byte {
	return []byte{pfx, ByteDelimiter}
}

// ExtractRecordKey returns the owner of a record key.
func ExtractRecordKey(k []byte) (common.Address, error) {
	if len(k) != 2+common.AddressLength || k[0] != recordPrefix || k[1] != ByteDelimiter {
		return common.Address{}, ErrInvalidKeyFormat
	}
	return common.BytesToAddress(k[2:]), nil
}

// GetInheritance returns the record stored for [owner] and whether one exists.
func GetInheritance(db database.KeyValueReader, owner common.Address) (*Inheritance, bool, error) {
	v, err := db.Get(RecordKey(owner))
	if errors.Is(err, database.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var i Inheritance
	if _, err := Unmarshal(v, &i); err != nil {
		return nil, false, err
	}
	return &i, true, nil
}

// ViewInheritance returns the record stored for [owner], or the empty record
// (heir == owner, zero amount, zero deadline, unclaimed) if there is none.
func ViewInheritance(db database.KeyValueReader, owner common.Address) (*Inheritance, error) {
	i, exists, err := GetInheritance(db, owner)
	if err != nil {
		return nil, err
	}
	if !exists {
		return emptyInheritance(owner), nil
	}
	return i, nil
}

// PutInheritance overwrites whatever record [i.Owner] had.
func PutInheritance(db database.KeyValueWriter, i *Inheritance) error {
	b, err := Marshal(i)
	if err != nil {
		return err
	}
	return db.Put(RecordKey(i.Owner), b)
}

func GetTotalInheritances(db database.KeyValueReader) (uint64, error) {
	total, _, err := getUint64(db, totalInheritancesKey)
	return total, err
}

func incrementTotalInheritances(db database.KeyValueReaderWriter) (uint64, error) {
	total, err := GetTotalInheritances(db)
	if err != nil {
		return 0, err
	}
	total++
	return total, putUint64(db, totalInheritancesKey, total)
}

// GetLiveUntil returns the last ledger sequence at which instance storage is
// live. Instances that were never written have no TTL.
func GetLiveUntil(db database.KeyValueReader) (uint64, bool, error) {
	return getUint64(db, liveUntilKey)
}

// IsArchived reports whether the instance TTL lapsed before [seq].
func IsArchived(db database.KeyValueReader, seq uint64) (bool, error) {
	liveUntil, has, err := GetLiveUntil(db)
	if err != nil {
		return false, err
	}
	return has && liveUntil < seq, nil
}

// ExtendTTL bumps the instance TTL to [extendTo] ledgers past [seq] if
// fewer than [threshold] ledgers remain, and returns the resulting live-until
// sequence.
func ExtendTTL(db database.KeyValueReaderWriter, seq uint64, threshold uint64, extendTo uint64) (uint64, error) {
	liveUntil, has, err := GetLiveUntil(db)
	if err != nil {
		return 0, err
	}
	if has && liveUntil >= seq && liveUntil-seq >= threshold {
		return liveUntil, nil
	}
	next := seq + extendTo
	if err := putUint64(db, liveUntilKey, next); err != nil {
		return 0, err
	}
	log.Debug("extended instance ttl", "seq", seq, "from", liveUntil, "to", next)
	return next, nil
}

func getUint64(db database.KeyValueReader, k []byte) (uint64, bool, error) {
	v, err := db.Get(k)
	if errors.Is(err, database.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if len(v) != 8 {
		return 0, false, ErrInvalidKeyFormat
	}
	return binary.BigEndian.Uint64(v), true, nil
}

func putUint64(db database.KeyValueWriter, k []byte, v uint64) error {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return db.Put(k, b)
}

func SetTransaction(db database.KeyValueWriter, tx *Transaction) error {
	return db.Put(PrefixTxKey(tx.ID()), nil)
}

func HasTransaction(db database.KeyValueReader, txID ids.ID) (bool, error) {
	return db.Has(PrefixTxKey(txID))
}

func SetLastAccepted(db database.KeyValueWriter, block *StatelessBlock) error {
	bid := block.ID()
	if err := db.Put(lastAccepted, bid[:]); err != nil {
		return err
	}
	return db.Put(PrefixBlockKey(bid), block.Bytes())
}

func HasLastAccepted(db database.KeyValueReader) (bool, error) {
	return db.Has(lastAccepted)
}

func GetLastAccepted(db database.KeyValueReader) (ids.ID, error) {
	v, err := db.Get(lastAccepted)
	if errors.Is(err, database.ErrNotFound) {
		return ids.ID{}, nil
	}
	if err != nil {
		return ids.ID{}, err
	}
	return ids.ToID(v)
}

func GetBlock(db database.KeyValueReader, bid ids.ID) ([]byte, error) {
	return db.Get(PrefixBlockKey(bid))
}
