// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/inheritancevm/chain"
	"github.com/ava-labs/inheritancevm/client"
)

var restoreCmd = &cobra.Command{
	Use:   "restore [options]",
	Short: "Restores archived instance storage",
	RunE:  restoreFunc,
}

func restoreFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("expected exactly 0 arguments, got %d", len(args))
	}
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}
	cli := client.New(uri, requestTimeout)

	utx := &chain.RestoreTx{BaseTx: &chain.BaseTx{}}
	if _, err := client.SignIssueRawTx(context.Background(), cli, utx, priv, client.WithPollTx()); err != nil {
		return err
	}
	info, err := cli.Instance()
	if err != nil {
		return err
	}
	color.Cyan("instance live until ledger %d", info.LiveUntil)
	return nil
}
