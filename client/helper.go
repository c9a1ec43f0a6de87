// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/fatih/color"

	"github.com/ava-labs/inheritancevm/chain"
)

// Signs and issues the transaction.
func SignIssueRawTx(
	ctx context.Context,
	cli Client,
	utx chain.UnsignedTransaction,
	priv *ecdsa.PrivateKey,
	opts ...OpOption,
) (txID ids.ID, err error) {
	ret := &Op{}
	ret.applyOpts(opts)

	g, err := cli.Genesis()
	if err != nil {
		return ids.Empty, err
	}

	la, err := cli.Accepted()
	if err != nil {
		return ids.Empty, err
	}

	utx.SetBlockID(la)
	utx.SetMagic(g.Magic)

	dh, err := chain.DigestHash(utx)
	if err != nil {
		return ids.Empty, err
	}

	sig, err := chain.Sign(dh, priv)
	if err != nil {
		return ids.Empty, err
	}

	tx := chain.NewTx(utx, sig)
	if err := tx.Init(); err != nil {
		return ids.Empty, err
	}

	color.Yellow("issuing tx %s (sender=%s, blkID=%s)", tx.ID(), tx.Sender(), utx.GetBlockID())
	txID, err = cli.IssueRawTx(tx.Bytes())
	if err != nil {
		return ids.Empty, err
	}

	if ret.pollTx {
		color.Green("issued transaction %s (now polling)", txID)
		r, err := cli.PollTx(ctx, txID)
		if err != nil {
			return ids.Empty, err
		}
		if r.Failed {
			color.Red("transaction %s failed: %s", txID, r.Error)
			return ids.Empty, fmt.Errorf("%w: %s", ErrTxFailed, r.Error)
		}
		color.Green("transaction %s confirmed", txID)
	}

	if ret.owner != nil {
		i, exists, err := cli.Inheritance(*ret.owner)
		if err != nil {
			color.Red("cannot get inheritance %v", err)
			return ids.Empty, err
		}
		PPInheritance(i, exists)
	}

	return txID, nil
}

// PPInheritance pretty prints an inheritance record.
func PPInheritance(i *chain.Inheritance, exists bool) {
	if !exists {
		color.Yellow("no inheritance set up for %s", i.Owner)
		return
	}
	deadline := time.Unix(int64(i.Deadline), 0)
	color.Blue(
		"owner=%s heir=%s amount=%s deadline=%v claimed=%t",
		i.Owner, i.Heir, i.AssetAmount, deadline, i.IsClaimed,
	)
	if !i.IsClaimed {
		if remaining := time.Until(deadline); remaining > 0 {
			color.Blue("claimable in %v", remaining.Round(time.Second))
		} else {
			color.Blue("claimable now")
		}
	}
}

// PPActivity pretty prints recent activity.
func PPActivity(a []*chain.Activity) error {
	if len(a) == 0 {
		color.Yellow("no recent activity")
		return nil
	}
	for _, item := range a {
		t := time.Unix(item.Tmstmp, 0)
		switch item.Typ {
		case chain.Setup:
			color.Yellow(
				"%s [%s] %s owner=%s heir=%s amount=%s deadline=%d (tx=%s)",
				t, item.Typ, item.Sender, item.Owner, item.Heir, item.Amount, item.Deadline, item.TxID,
			)
		case chain.Claim:
			color.Yellow(
				"%s [%s] %s owner=%s heir=%s (tx=%s)",
				t, item.Typ, item.Sender, item.Owner, item.Heir, item.TxID,
			)
		case chain.Restore:
			color.Yellow("%s [%s] %s (tx=%s)", t, item.Typ, item.Sender, item.TxID)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownActivity, item.Typ)
		}
	}
	return nil
}
