// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package client implements "inheritancevm" client SDK.
package client

import (
	"context"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/rpc"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"

	"github.com/ava-labs/inheritancevm/chain"
	"github.com/ava-labs/inheritancevm/vm"
)

const pollInterval = time.Second

// Client defines inheritancevm client operations.
type Client interface {
	// Pings the VM.
	Ping() (bool, error)

	// Returns the VM genesis.
	Genesis() (*chain.Genesis, error)
	// Accepted fetches the ID of the last accepted block.
	Accepted() (ids.ID, error)

	// Issues the transaction and returns the transaction ID.
	IssueRawTx(d []byte) (ids.ID, error)
	// Returns what became of the transaction.
	TxStatus(txID ids.ID) (*vm.TxResult, error)
	// Polls the transaction until it is accepted or dropped.
	PollTx(ctx context.Context, txID ids.ID) (*vm.TxResult, error)

	// Returns the record stored for [owner]. Owners without a record come
	// back as the empty record with [exists] false.
	Inheritance(owner common.Address) (i *chain.Inheritance, exists bool, err error)
	// Returns the number of successful setups so far.
	TotalInheritances() (uint64, error)
	// Returns the instance storage TTL state.
	Instance() (*vm.InstanceInfo, error)
	// Returns recently accepted activity, newest first.
	RecentActivity() ([]*chain.Activity, error)
}

// New creates a new client object.
func New(uri string, reqTimeout time.Duration) Client {
	req := rpc.NewEndpointRequester(
		uri,
		vm.PublicEndpoint,
		vm.Name,
		reqTimeout,
	)
	return &client{req: req, poll: pollInterval}
}

type client struct {
	req  rpc.EndpointRequester
	poll time.Duration
}

func (cli *client) Ping() (bool, error) {
	resp := new(vm.PingReply)
	err := cli.req.SendRequest(
		"ping",
		nil,
		resp,
	)
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

func (cli *client) Genesis() (*chain.Genesis, error) {
	resp := new(vm.GenesisReply)
	err := cli.req.SendRequest(
		"genesis",
		nil,
		resp,
	)
	return resp.Genesis, err
}

func (cli *client) Accepted() (ids.ID, error) {
	resp := new(vm.LastAcceptedReply)
	if err := cli.req.SendRequest(
		"lastAccepted",
		nil,
		resp,
	); err != nil {
		color.Red("failed to get curr block %v", err)
		return ids.ID{}, err
	}
	return resp.BlockID, nil
}

func (cli *client) IssueRawTx(d []byte) (ids.ID, error) {
	resp := new(vm.IssueRawTxReply)
	if err := cli.req.SendRequest(
		"issueRawTx",
		&vm.IssueRawTxArgs{Tx: d},
		resp,
	); err != nil {
		return ids.Empty, err
	}
	return resp.TxID, nil
}

func (cli *client) TxStatus(txID ids.ID) (*vm.TxResult, error) {
	resp := new(vm.TxStatusReply)
	if err := cli.req.SendRequest(
		"txStatus",
		&vm.TxStatusArgs{TxID: txID},
		resp,
	); err != nil {
		return nil, err
	}
	if resp.TxResult == nil {
		return &vm.TxResult{}, nil
	}
	return resp.TxResult, nil
}

func (cli *client) PollTx(ctx context.Context, txID ids.ID) (*vm.TxResult, error) {
done:
	for ctx.Err() == nil {
		select {
		case <-time.After(cli.poll):
		case <-ctx.Done():
			break done
		}

		r, err := cli.TxStatus(txID)
		if err != nil {
			color.Red("polling transaction failed %v", err)
			continue
		}
		if r.Accepted || r.Failed {
			return r, nil
		}
	}
	return nil, ctx.Err()
}

func (cli *client) Inheritance(owner common.Address) (*chain.Inheritance, bool, error) {
	resp := new(vm.InheritanceReply)
	if err := cli.req.SendRequest(
		"inheritance",
		&vm.InheritanceArgs{Owner: owner},
		resp,
	); err != nil {
		return nil, false, err
	}
	return resp.Inheritance, resp.Exists, nil
}

func (cli *client) TotalInheritances() (uint64, error) {
	resp := new(vm.TotalInheritancesReply)
	if err := cli.req.SendRequest(
		"totalInheritances",
		nil,
		resp,
	); err != nil {
		return 0, err
	}
	return resp.Total, nil
}

func (cli *client) Instance() (*vm.InstanceInfo, error) {
	resp := new(vm.InstanceReply)
	if err := cli.req.SendRequest(
		"instance",
		nil,
		resp,
	); err != nil {
		return nil, err
	}
	return resp.InstanceInfo, nil
}

func (cli *client) RecentActivity() ([]*chain.Activity, error) {
	resp := new(vm.RecentActivityReply)
	if err := cli.req.SendRequest(
		"recentActivity",
		nil,
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Activity, nil
}

type Op struct {
	pollTx bool
	owner  *common.Address
}

type OpOption func(*Op)

func (op *Op) applyOpts(opts []OpOption) {
	for _, opt := range opts {
		opt(op)
	}
}

// "true" to poll transaction for its confirmation.
func WithPollTx() OpOption {
	return func(op *Op) { op.pollTx = true }
}

// Prints the record of [owner] once the transaction is issued.
func WithInfo(owner common.Address) OpOption {
	return func(op *Op) { op.owner = &owner }
}
