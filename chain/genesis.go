// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/json"
	"fmt"
)

type Genesis struct {
	Magic uint64 `serialize:"true" json:"magic"`

	// A ledger closes every [LedgerSeconds]; the ledger sequence at time t is
	// t / LedgerSeconds.
	LedgerSeconds uint64 `serialize:"true" json:"ledgerSeconds"`

	// Instance TTL params, in ledgers. After every mutating write the
	// instance is extended to [TTLExtendTo] ledgers whenever fewer than
	// [TTLThreshold] remain.
	TTLThreshold uint64 `serialize:"true" json:"ttlThreshold"`
	TTLExtendTo  uint64 `serialize:"true" json:"ttlExtendTo"`

	// Tx params
	LookbackWindow int64 `serialize:"true" json:"lookbackWindow"` // seconds

	// Block params
	MaxBlockTxs uint64 `serialize:"true" json:"maxBlockTxs"`
}

func DefaultGenesis() *Genesis {
	return &Genesis{
		Magic: 1,

		LedgerSeconds: 5,

		TTLThreshold: 10_000,
		TTLExtendTo:  10_000,

		LookbackWindow: 60,

		MaxBlockTxs: 512,
	}
}

func (g *Genesis) Verify() error {
	if g.Magic == 0 {
		return ErrInvalidMagic
	}
	if g.LedgerSeconds == 0 {
		return ErrInvalidLedger
	}
	if g.TTLThreshold == 0 || g.TTLThreshold > g.TTLExtendTo {
		return ErrInvalidTTLWindow
	}
	if g.LookbackWindow <= 0 {
		return ErrInvalidLookback
	}
	if g.MaxBlockTxs == 0 {
		return ErrInvalidBlockLimit
	}
	return nil
}

// Sequence is the ledger sequence number in effect at [tmstmp].
func (g *Genesis) Sequence(tmstmp int64) uint64 {
	if tmstmp <= 0 {
		return 0
	}
	return uint64(tmstmp) / g.LedgerSeconds
}

// ParseGenesis decodes a JSON genesis. Empty input yields [DefaultGenesis].
func ParseGenesis(b []byte) (*Genesis, error) {
	g := DefaultGenesis()
	if len(b) > 0 {
		if err := json.Unmarshal(b, g); err != nil {
			return nil, fmt.Errorf("%w: unable to parse genesis", err)
		}
	}
	if err := g.Verify(); err != nil {
		return nil, err
	}
	return g, nil
}
