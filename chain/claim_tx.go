// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	log "github.com/inconshreveable/log15"
)

var _ UnsignedTransaction = &ClaimTx{}

type ClaimTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	// Owner is whoever set up the inheritance.
	Owner common.Address `serialize:"true" json:"owner"`

	// Heir must be the sender and the heir on record.
	Heir common.Address `serialize:"true" json:"heir"`
}

func (cl *ClaimTx) Execute(c *TransactionContext) error {
	if err := c.RequireAuth(cl.Heir); err != nil {
		return err
	}
	if err := c.requireLive(); err != nil {
		return err
	}

	// An owner with no record reads as the empty record, so claims against
	// it fail the heir check below (unless the owner claims for itself).
	i, err := ViewInheritance(c.Database, cl.Owner)
	if err != nil {
		return err
	}
	if i.Heir != cl.Heir {
		log.Debug("unauthorized: not the designated heir", "owner", cl.Owner, "heir", cl.Heir)
		return fmt.Errorf("%w: %s is not the heir of %s", ErrUnauthorizedHeir, cl.Heir, cl.Owner)
	}
	if i.IsClaimed {
		log.Debug("inheritance already claimed", "owner", cl.Owner)
		return ErrAlreadyClaimed
	}
	if c.BlockTime < i.Deadline {
		log.Debug("deadline not reached yet", "owner", cl.Owner, "deadline", i.Deadline, "now", c.BlockTime)
		return fmt.Errorf("%w: %d remaining", ErrDeadlineNotReached, i.Deadline-c.BlockTime)
	}

	i.IsClaimed = true
	if err := PutInheritance(c.Database, i); err != nil {
		return err
	}
	if _, err := c.extendTTL(); err != nil {
		return err
	}
	log.Debug("inheritance claimed successfully by heir", "owner", cl.Owner, "heir", cl.Heir)
	return nil
}

func (cl *ClaimTx) Copy() UnsignedTransaction {
	return &ClaimTx{
		BaseTx: cl.BaseTx.Copy(),
		Owner:  cl.Owner,
		Heir:   cl.Heir,
	}
}

func (cl *ClaimTx) Activity() *Activity {
	return &Activity{
		Typ:   Claim,
		Owner: cl.Owner.Hex(),
		Heir:  cl.Heir.Hex(),
	}
}
