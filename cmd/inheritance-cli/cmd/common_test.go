// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestParseDeadline(t *testing.T) {
	t.Parallel()

	tt := []struct {
		s   string
		min uint64
		max uint64
		err bool
	}{
		{s: "1700000000", min: 1700000000, max: 1700000000},
		{s: "+1h", min: uint64(time.Now().Add(time.Hour).Unix()) - 1, max: uint64(time.Now().Add(time.Hour).Unix()) + 5},
		{s: "+soon", err: true},
		{s: "-5", err: true},
		{s: "+-9999999h", err: true},
		{s: "+-600000h", err: true},
	}
	for i, tv := range tt {
		d, err := parseDeadline(tv.s)
		if (err != nil) != tv.err {
			t.Fatalf("#%d: expected error %t, got %v", i, tv.err, err)
		}
		if tv.err {
			continue
		}
		if d < tv.min || d > tv.max {
			t.Fatalf("#%d: deadline %d not in [%d, %d]", i, d, tv.min, tv.max)
		}
	}
}

func TestParseAddress(t *testing.T) {
	t.Parallel()

	if _, err := parseAddress("0x0000000000000000000000000000000000000b0b"); err != nil {
		t.Fatal(err)
	}
	if _, err := parseAddress("bob"); err == nil {
		t.Fatal("expected error for non-hex address")
	}
}

func TestParseSetupArgsNegativeAmount(t *testing.T) {
	t.Parallel()

	heir := "0x0000000000000000000000000000000000000b0b"
	fs := pflag.NewFlagSet("setup", pflag.ContinueOnError)
	if err := fs.Parse([]string{heir, "-5", "+1h"}); err == nil {
		t.Fatal("expected -5 to be read as a flag")
	}

	fs = pflag.NewFlagSet("setup", pflag.ContinueOnError)
	if err := fs.Parse([]string{"--", heir, "-5", "+1h"}); err != nil {
		t.Fatal(err)
	}
	_, amount, _, err := parseSetupArgs(fs.Args())
	if err != nil {
		t.Fatal(err)
	}
	if amount.String() != "-5" {
		t.Fatalf("expected amount -5, got %s", amount)
	}

	if _, _, _, err := parseSetupArgs([]string{heir, "1"}); err == nil {
		t.Fatal("expected error for missing deadline")
	}
}
