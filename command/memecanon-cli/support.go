// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/memecanon/account"
	"github.com/bitmark-inc/memecanon/address"
	"github.com/bitmark-inc/memecanon/command/memecanon-cli/rpccalls"
)

// the identity selected by the global flag or the configured default
func identityName(c *cli.Context, m *metadata) (string, error) {
	name := c.GlobalString("identity")
	if "" == name {
		name = m.config.DefaultIdentity
	}
	return checkName(name)
}

// an owner may be a configured identity name or a base58 address
func ownerAddress(c *cli.Context, m *metadata, owner string) (address.Address, error) {
	if "" == owner {
		name, err := identityName(c, m)
		if nil != err {
			return address.Zero, err
		}
		owner = name
	}
	if _, ok := m.config.Identities[owner]; ok {
		return m.config.Address(owner)
	}
	return address.FromBase58(owner)
}

// decrypt the signing key of the selected identity
func signingKey(c *cli.Context, m *metadata) (*account.KeyPair, error) {
	name, err := identityName(c, m)
	if nil != err {
		return nil, err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptPassword()
		if nil != err {
			return nil, err
		}
	}

	return m.config.KeyPair(password, name)
}

func connect(m *metadata) (*rpccalls.Client, error) {
	connect, err := checkConnect(m.config.Connect)
	if nil != err {
		return nil, err
	}
	return rpccalls.NewClient(connect, m.verbose, m.e)
}
