// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"fmt"
	"net/http"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/inheritancevm/chain"
)

type PublicService struct {
	vm *VM
}

type PingReply struct {
	Success bool `serialize:"true" json:"success"`
}

func (svc *PublicService) Ping(_ *http.Request, _ *struct{}, reply *PingReply) (err error) {
	log.Info("ping")
	reply.Success = true
	return nil
}

type GenesisReply struct {
	Genesis *chain.Genesis `serialize:"true" json:"genesis"`
}

func (svc *PublicService) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) (err error) {
	reply.Genesis = svc.vm.Genesis()
	return nil
}

type LastAcceptedReply struct {
	BlockID ids.ID `serialize:"true" json:"blockId"`
}

func (svc *PublicService) LastAccepted(_ *http.Request, _ *struct{}, reply *LastAcceptedReply) error {
	reply.BlockID = svc.vm.LastAccepted()
	return nil
}

type IssueRawTxArgs struct {
	Tx []byte `serialize:"true" json:"tx"`
}

type IssueRawTxReply struct {
	TxID    ids.ID `serialize:"true" json:"txId"`
	Success bool   `serialize:"true" json:"success"`
}

func (svc *PublicService) IssueRawTx(_ *http.Request, args *IssueRawTxArgs, reply *IssueRawTxReply) error {
	if len(args.Tx) == 0 {
		return ErrInvalidEmptyTx
	}
	tx := new(chain.Transaction)
	if _, err := chain.Unmarshal(args.Tx, tx); err != nil {
		return err
	}

	// otherwise, unexported tx.id field is empty
	if err := tx.Init(); err != nil {
		reply.Success = false
		return err
	}
	reply.TxID = tx.ID()

	errs := svc.vm.Submit(tx)
	reply.Success = len(errs) == 0
	if reply.Success {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	return fmt.Errorf("%v", errs)
}

type TxStatusArgs struct {
	TxID ids.ID `serialize:"true" json:"txId"`
}

type TxStatusReply struct {
	*TxResult
}

func (svc *PublicService) TxStatus(_ *http.Request, args *TxStatusArgs, reply *TxStatusReply) error {
	r, err := svc.vm.TxResult(args.TxID)
	if err != nil {
		return err
	}
	reply.TxResult = r
	return nil
}

type InheritanceArgs struct {
	Owner common.Address `serialize:"true" json:"owner"`
}

type InheritanceReply struct {
	Exists      bool               `serialize:"true" json:"exists"`
	Inheritance *chain.Inheritance `serialize:"true" json:"inheritance"`
}

func (svc *PublicService) Inheritance(_ *http.Request, args *InheritanceArgs, reply *InheritanceReply) error {
	i, exists, err := svc.vm.ViewInheritance(args.Owner)
	if err != nil {
		return err
	}
	reply.Exists = exists
	reply.Inheritance = i
	return nil
}

type TotalInheritancesReply struct {
	Total uint64 `serialize:"true" json:"total"`
}

func (svc *PublicService) TotalInheritances(_ *http.Request, _ *struct{}, reply *TotalInheritancesReply) error {
	total, err := svc.vm.TotalInheritances()
	if err != nil {
		return err
	}
	reply.Total = total
	return nil
}

type InstanceReply struct {
	*InstanceInfo
}

func (svc *PublicService) Instance(_ *http.Request, _ *struct{}, reply *InstanceReply) error {
	info, err := svc.vm.Instance()
	if err != nil {
		return err
	}
	reply.InstanceInfo = info
	return nil
}

type RecentActivityReply struct {
	Activity []*chain.Activity `serialize:"true" json:"activity"`
}

func (svc *PublicService) RecentActivity(_ *http.Request, _ *struct{}, reply *RecentActivityReply) error {
	reply.Activity = svc.vm.RecentActivity()
	return nil
}
