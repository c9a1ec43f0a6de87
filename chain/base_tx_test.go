// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
)

func TestBaseTx(t *testing.T) {
	t.Parallel()

	tt := []struct {
		tx  *BaseTx
		err error
	}{
		{
			tx: &BaseTx{BlockID: ids.GenerateTestID(), Magic: 1},
		},
		{
			tx:  &BaseTx{BlockID: ids.GenerateTestID()},
			err: ErrInvalidMagic,
		},
		{
			tx:  &BaseTx{BlockID: ids.GenerateTestID(), Magic: 2},
			err: ErrInvalidMagic,
		},
		{
			tx:  &BaseTx{Magic: 1},
			err: ErrInvalidBlockID,
		},
	}
	g := DefaultGenesis()
	for i, tv := range tt {
		err := tv.tx.ExecuteBase(g)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: tx.Execute err expected %v, got %v", i, tv.err, err)
		}
	}
}
