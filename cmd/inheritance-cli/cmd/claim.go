// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"

	"github.com/ava-labs/inheritancevm/chain"
	"github.com/ava-labs/inheritancevm/client"
)

var claimCmd = &cobra.Command{
	Use:   "claim [options] <owner>",
	Short: "Claims the inheritance <owner> set up for the key owner",
	Long: `
Claims the inheritance of <owner>. The key must belong to the heir on
record and the deadline must have passed. An inheritance can be claimed
once.

$ inheritance-cli claim 0x000000000000000000000000000000000000a11c --private-key-file=.heir-key
<<COMMENT
success
COMMENT

`,
	RunE: claimFunc,
}

func claimFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	owner, err := parseAddress(args[0])
	if err != nil {
		return err
	}

	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return err
	}
	cli := client.New(uri, requestTimeout)

	utx := &chain.ClaimTx{
		BaseTx: &chain.BaseTx{},
		Owner:  owner,
		Heir:   crypto.PubkeyToAddress(priv.PublicKey),
	}
	opts := []client.OpOption{client.WithPollTx(), client.WithInfo(owner)}
	_, err = client.SignIssueRawTx(context.Background(), cli, utx, priv, opts...)
	return err
}
