// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/memecanon/address"
	"github.com/bitmark-inc/memecanon/rpc/node"
)

// Info - request status from memecanond
func (client *Client) Info() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.call("Node.Info", &node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Balance - lamports held by an address
func (client *Client) Balance(a address.Address) (uint64, error) {
	arguments := node.BalanceArguments{
		Address: a,
	}
	var reply node.BalanceReply
	if err := client.call("Node.Balance", &arguments, &reply); nil != err {
		return 0, err
	}
	return reply.Balance, nil
}

// Airdrop - fund an address on a test chain
func (client *Client) Airdrop(a address.Address, lamports uint64) (uint64, error) {
	arguments := node.AirdropArguments{
		Address:  a,
		Lamports: lamports,
	}
	var reply node.AirdropReply
	if err := client.call("Node.Airdrop", &arguments, &reply); nil != err {
		return 0, err
	}
	return reply.Balance, nil
}
