// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/memecanon/address"
	"github.com/bitmark-inc/memecanon/chain"
	"github.com/bitmark-inc/memecanon/fault"
	"github.com/bitmark-inc/memecanon/ledger"
	"github.com/bitmark-inc/memecanon/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100

	// largest single airdrop
	maximumAirdrop = 1000000000000
)

// Counter - source of the active connection count
type Counter interface {
	Active() uint64
}

// Node - type for RPC calls
type Node struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Start     time.Time
	Version   string
	Chain     string
	ProgramId address.Address
	Ledger    ledger.Handle
	counter   Counter
}

// New - create the node service
func New(log *logger.L, chainName string, programId address.Address, l ledger.Handle, start time.Time, version string, counter Counter) *Node {
	return &Node{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:     start,
		Version:   version,
		Chain:     chainName,
		ProgramId: programId,
		Ledger:    l,
		counter:   counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain     string          `json:"chain"`
	ProgramId address.Address `json:"programId"`
	RPCs      uint64          `json:"rpcs"`
	Version   string          `json:"version"`
	Uptime    string          `json:"uptime"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = node.Chain
	reply.ProgramId = node.ProgramId
	reply.RPCs = node.counter.Active()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}

// ---

// BalanceArguments - account to query
type BalanceArguments struct {
	Address address.Address `json:"address"`
}

// BalanceReply - spendable lamports
type BalanceReply struct {
	Balance uint64 `json:"balance,string"`
}

// Balance - lamports available to fund registrations
func (node *Node) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	reply.Balance = node.Ledger.Balance(arguments.Address)
	return nil
}

// ---

// AirdropArguments - account to fund
type AirdropArguments struct {
	Address  address.Address `json:"address"`
	Lamports uint64          `json:"lamports,string"`
}

// AirdropReply - balance after funding
type AirdropReply struct {
	Balance uint64 `json:"balance,string"`
}

// Airdrop - fund an account, only on test chains
func (node *Node) Airdrop(arguments *AirdropArguments, reply *AirdropReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if !chain.AirdropAllowed(node.Chain) {
		return fault.ErrNotAvailableOnChain
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	if 0 == arguments.Lamports || arguments.Lamports > maximumAirdrop {
		return fault.ErrInvalidLamports
	}

	balance, err := node.Ledger.Airdrop(arguments.Address, arguments.Lamports)
	if nil != err {
		return err
	}

	node.Log.Infof("airdrop: %d  to: %s", arguments.Lamports, arguments.Address)
	reply.Balance = balance
	return nil
}
