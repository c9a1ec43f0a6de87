// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	log "github.com/inconshreveable/log15"
)

var _ UnsignedTransaction = &SetupTx{}

type SetupTx struct {
	*BaseTx `serialize:"true" json:"baseTx"`

	// Owner must be the sender.
	Owner common.Address `serialize:"true" json:"owner"`

	// Heir is the only identity that may claim once [Deadline] passes.
	Heir common.Address `serialize:"true" json:"heir"`

	AssetAmount Amount `serialize:"true" json:"assetAmount"`

	// Deadline is a unix timestamp (seconds) that must be in the future.
	Deadline uint64 `serialize:"true" json:"deadline"`
}

func (s *SetupTx) Execute(c *TransactionContext) error {
	if err := c.RequireAuth(s.Owner); err != nil {
		return err
	}
	if err := c.requireLive(); err != nil {
		return err
	}
	if s.Deadline <= c.BlockTime {
		log.Debug("deadline must be in the future", "owner", s.Owner, "deadline", s.Deadline, "now", c.BlockTime)
		return fmt.Errorf("%w: deadline %d is not after %d", ErrInvalidDeadline, s.Deadline, c.BlockTime)
	}

	// Any record already stored for the owner is replaced
	if err := PutInheritance(c.Database, &Inheritance{
		Owner:       s.Owner,
		Heir:        s.Heir,
		AssetAmount: s.AssetAmount,
		Deadline:    s.Deadline,
	}); err != nil {
		return err
	}
	total, err := incrementTotalInheritances(c.Database)
	if err != nil {
		return err
	}
	if _, err := c.extendTTL(); err != nil {
		return err
	}
	log.Debug("inheritance setup successfully for heir", "owner", s.Owner, "heir", s.Heir, "total", total)
	return nil
}

func (s *SetupTx) Copy() UnsignedTransaction {
	return &SetupTx{
		BaseTx:      s.BaseTx.Copy(),
		Owner:       s.Owner,
		Heir:        s.Heir,
		AssetAmount: s.AssetAmount,
		Deadline:    s.Deadline,
	}
}

func (s *SetupTx) Activity() *Activity {
	return &Activity{
		Typ:      Setup,
		Owner:    s.Owner.Hex(),
		Heir:     s.Heir.Hex(),
		Amount:   s.AssetAmount.String(),
		Deadline: s.Deadline,
	}
}
