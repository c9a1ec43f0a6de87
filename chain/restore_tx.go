// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	log "github.com/inconshreveable/log15"
)

var _ UnsignedTransaction = &RestoreTx{}

// RestoreTx brings archived instance storage back to life. Anyone may send
// it; nothing but the TTL changes.
type RestoreTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`
}

func (r *RestoreTx) Execute(c *TransactionContext) error {
	archived, err := IsArchived(c.Database, c.Sequence)
	if err != nil {
		return err
	}
	if !archived {
		return ErrInstanceNotArchived
	}
	liveUntil, err := c.extendTTL()
	if err != nil {
		return err
	}
	log.Debug("restored instance storage", "sender", c.Sender, "liveUntil", liveUntil)
	return nil
}

func (r *RestoreTx) Copy() UnsignedTransaction {
	return &RestoreTx{
		BaseTx: r.BaseTx.Copy(),
	}
}

func (r *RestoreTx) Activity() *Activity {
	return &Activity{
		Typ: Restore,
	}
}
