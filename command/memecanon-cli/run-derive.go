// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/memecanon/address"
	"github.com/bitmark-inc/memecanon/memerecord"
	"github.com/bitmark-inc/memecanon/registry"
)

type deriveResult struct {
	Fingerprint memerecord.Digest `json:"fingerprint"`
	Address     address.Address   `json:"address"`
	Bump        uint8             `json:"bump"`
}

// derivation is deterministic so no node connection is required
func runDerive(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fingerprint, err := checkFingerprint(c.String("fingerprint"))
	if nil != err {
		return err
	}

	a, bump, err := address.FindProgramAddress(memerecord.Seeds(fingerprint), registry.ProgramId)
	if nil != err {
		return err
	}

	return printJson(m.w, deriveResult{
		Fingerprint: fingerprint,
		Address:     a,
		Bump:        bump,
	})
}
