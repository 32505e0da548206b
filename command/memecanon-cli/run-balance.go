// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/memecanon/address"
)

type balanceResult struct {
	Address  address.Address `json:"address"`
	Lamports uint64          `json:"lamports"`
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := ownerAddress(c, m, c.String("owner"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	balance, err := client.Balance(owner)
	if nil != err {
		return err
	}

	return printJson(m.w, balanceResult{
		Address:  owner,
		Lamports: balance,
	})
}

func runAirdrop(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := ownerAddress(c, m, c.String("owner"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	balance, err := client.Airdrop(owner, c.Uint64("lamports"))
	if nil != err {
		return err
	}

	return printJson(m.w, balanceResult{
		Address:  owner,
		Lamports: balance,
	})
}
