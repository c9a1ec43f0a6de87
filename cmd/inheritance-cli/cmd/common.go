// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/inheritancevm/chain"
)

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%q is not a hex address", s)
	}
	return common.HexToAddress(s), nil
}

// parseDeadline accepts a unix timestamp or "+<duration>" relative to now.
func parseDeadline(s string) (uint64, error) {
	if strings.HasPrefix(s, "+") {
		d, err := time.ParseDuration(s[1:])
		if err != nil {
			return 0, err
		}
		t := time.Now().Add(d).Unix()
		if t < 0 {
			return 0, fmt.Errorf("%w: %s is before the epoch", chain.ErrInvalidDeadline, s)
		}
		return uint64(t), nil
	}
	return strconv.ParseUint(s, 10, 64)
}
