// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
)

// Authenticator proves that an identity authorized the current call.
type Authenticator interface {
	RequireAuth(identity common.Address) error
}

var _ Authenticator = &TransactionContext{}

// TransactionContext is what the host hands a transaction. [BlockTime] is the
// ledger clock in unix seconds and [Sequence] the ledger number TTLs are
// measured in.
type TransactionContext struct {
	Genesis   *Genesis
	Database  database.Database
	BlockTime uint64
	Sequence  uint64
	TxID      ids.ID
	Sender    common.Address
}

func (t *TransactionContext) RequireAuth(identity common.Address) error {
	if !bytes.Equal(identity[:], t.Sender[:]) {
		return fmt.Errorf("%w: %s did not authorize call from %s", ErrUnauthorized, identity, t.Sender)
	}
	return nil
}

func (t *TransactionContext) requireLive() error {
	archived, err := IsArchived(t.Database, t.Sequence)
	if err != nil {
		return err
	}
	if archived {
		return ErrInstanceArchived
	}
	return nil
}

func (t *TransactionContext) extendTTL() (uint64, error) {
	return ExtendTTL(t.Database, t.Sequence, t.Genesis.TTLThreshold, t.Genesis.TTLExtendTo)
}
