// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"

	"github.com/ava-labs/inheritancevm/chain"
	"github.com/ava-labs/inheritancevm/client"
)

var setupCmd = &cobra.Command{
	Use:   "setup [options] <heir> <amount> <deadline>",
	Short: "Sets up an inheritance for the key owner",
	Long: `
Records that <heir> may claim <amount> once <deadline> passes.
<deadline> is a unix timestamp or a duration from now prefixed with "+".
Any inheritance previously set up by the same owner is replaced.
A negative <amount> must follow "--" so it is not read as a flag.

$ inheritance-cli setup 0x0000000000000000000000000000000000000b0b 1000 +720h
<<COMMENT
success
COMMENT

$ inheritance-cli setup -- 0x0000000000000000000000000000000000000b0b -5 +720h
<<COMMENT
success
COMMENT

`,
	RunE: setupFunc,
}

func setupFunc(cmd *cobra.Command, args []string) error {
	heir, amount, deadline, err := parseSetupArgs(args)
	if err != nil {
		return err
	}

	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}
	owner := crypto.PubkeyToAddress(priv.PublicKey)
	cli := client.New(uri, requestTimeout)

	utx := &chain.SetupTx{
		BaseTx:      &chain.BaseTx{},
		Owner:       owner,
		Heir:        heir,
		AssetAmount: amount,
		Deadline:    deadline,
	}
	opts := []client.OpOption{client.WithPollTx(), client.WithInfo(owner)}
	_, err = client.SignIssueRawTx(context.Background(), cli, utx, priv, opts...)
	return err
}

func parseSetupArgs(args []string) (heir common.Address, amount chain.Amount, deadline uint64, err error) {
	if len(args) != 3 {
		return heir, amount, deadline, fmt.Errorf("expected exactly 3 arguments, got %d", len(args))
	}
	heir, err = parseAddress(args[0])
	if err != nil {
		return heir, amount, deadline, err
	}
	amount, err = chain.ParseAmount(args[1])
	if err != nil {
		return heir, amount, deadline, err
	}
	deadline, err = parseDeadline(args[2])
	return heir, amount, deadline, err
}
