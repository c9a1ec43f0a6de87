// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "inheritancevm" runs a single inheritance ledger node and serves its
// JSON-RPC API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava-labs/inheritancevm/cmd/inheritancevm/version"
)

var rootCmd = &cobra.Command{
	Use:        "inheritancevm",
	Short:      "InheritanceVM node",
	SuggestFor: []string{"inheritancevm", "inheritance-vm"},
	RunE:       runFunc,
}

func init() {
	cobra.EnablePrefixMatching = true
	cobra.OnInitialize(initConfig)
}

func init() {
	rootCmd.AddCommand(
		version.NewCommand(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "inheritancevm failed %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
