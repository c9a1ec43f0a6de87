// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

const (
	Setup   = "setup"
	Claim   = "claim"
	Restore = "restore"
)

type Activity struct {
	Tmstmp   int64  `serialize:"true" json:"timestamp"`
	TxID     string `serialize:"true" json:"txId"`
	Sender   string `serialize:"true" json:"sender"`
	Typ      string `serialize:"true" json:"type"`
	Owner    string `serialize:"true" json:"owner,omitempty"`
	Heir     string `serialize:"true" json:"heir,omitempty"`
	Amount   string `serialize:"true" json:"assetAmount,omitempty"`
	Deadline uint64 `serialize:"true" json:"deadline,omitempty"`
}
