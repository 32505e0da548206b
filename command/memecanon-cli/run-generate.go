// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/memecanon/account"
)

type generatedKeyPair struct {
	Address    string `json:"address"`
	Seed       string `json:"seed"`
	PrivateKey string `json:"privateKey"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keyPair, err := account.NewKeyPair(rand.Reader)
	if nil != err {
		return err
	}

	return printJson(m.w, generatedKeyPair{
		Address:    keyPair.Address().String(),
		Seed:       hex.EncodeToString(keyPair.PrivateKey[:account.SeedSize]),
		PrivateKey: hex.EncodeToString(keyPair.PrivateKey),
	})
}
