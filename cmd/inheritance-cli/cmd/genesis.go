// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/inheritancevm/chain"
)

var (
	genesisFile string

	ledgerSeconds int64
	ttlThreshold  int64
	ttlExtendTo   int64

	magic uint64
)

func init() {
	genesisCmd.PersistentFlags().StringVar(
		&genesisFile,
		"genesis-file",
		filepath.Join(workDir, "genesis.json"),
		"genesis file path",
	)
	genesisCmd.PersistentFlags().Int64Var(
		&ledgerSeconds,
		"ledger-seconds",
		-1,
		"seconds per ledger",
	)
	genesisCmd.PersistentFlags().Int64Var(
		&ttlThreshold,
		"ttl-threshold",
		-1,
		"ledgers remaining below which writes extend the instance TTL",
	)
	genesisCmd.PersistentFlags().Int64Var(
		&ttlExtendTo,
		"ttl-extend-to",
		-1,
		"ledgers the instance TTL is extended to",
	)
}

var genesisCmd = &cobra.Command{
	Use:   "genesis [magic] [options]",
	Short: "Creates a new genesis in the default location",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("invalid args")
		}

		m, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}
		magic = m
		if magic == 0 {
			return chain.ErrInvalidMagic
		}

		return nil
	},
	RunE: genesisFunc,
}

func genesisFunc(cmd *cobra.Command, args []string) error {
	genesis := chain.DefaultGenesis()
	genesis.Magic = magic
	if ledgerSeconds >= 0 {
		genesis.LedgerSeconds = uint64(ledgerSeconds)
	}
	if ttlThreshold >= 0 {
		genesis.TTLThreshold = uint64(ttlThreshold)
	}
	if ttlExtendTo >= 0 {
		genesis.TTLExtendTo = uint64(ttlExtendTo)
	}
	if err := genesis.Verify(); err != nil {
		return err
	}

	b, err := json.Marshal(genesis)
	if err != nil {
		return err
	}
	if err := os.WriteFile(genesisFile, b, fsModeWrite); err != nil {
		return err
	}
	color.Green("created genesis and saved to %s", genesisFile)
	return nil
}
