// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/inheritancevm/client"
)

var viewCmd = &cobra.Command{
	Use:   "view [options] [owner]",
	Short: "Reads the inheritance of [owner] (defaults to the key owner)",
	RunE:  viewFunc,
}

func viewFunc(cmd *cobra.Command, args []string) error {
	var owner common.Address
	switch len(args) {
	case 0:
		priv, err := crypto.LoadECDSA(privateKeyFile)
		if err != nil {
			return err
		}
		owner = crypto.PubkeyToAddress(priv.PublicKey)
	case 1:
		o, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		owner = o
	default:
		return fmt.Errorf("expected at most 1 argument, got %d", len(args))
	}

	cli := client.New(uri, requestTimeout)
	i, exists, err := cli.Inheritance(owner)
	if err != nil {
		return err
	}
	client.PPInheritance(i, exists)
	return nil
}

var totalCmd = &cobra.Command{
	Use:   "total [options]",
	Short: "Prints the number of inheritances set up so far",
	RunE:  totalFunc,
}

func totalFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("expected exactly 0 arguments, got %d", len(args))
	}
	cli := client.New(uri, requestTimeout)
	total, err := cli.TotalInheritances()
	if err != nil {
		return err
	}
	color.Cyan("total inheritances=%d", total)
	return nil
}

var instanceCmd = &cobra.Command{
	Use:   "instance [options]",
	Short: "Prints the instance storage TTL",
	RunE:  instanceFunc,
}

func instanceFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("expected exactly 0 arguments, got %d", len(args))
	}
	cli := client.New(uri, requestTimeout)
	info, err := cli.Instance()
	if err != nil {
		return err
	}
	if info.Archived {
		color.Red("instance archived at ledger %d (live until %d), run restore", info.Sequence, info.LiveUntil)
		return nil
	}
	color.Cyan("ledger=%d liveUntil=%d (%d remaining)", info.Sequence, info.LiveUntil, info.LiveUntil-info.Sequence)
	return nil
}
