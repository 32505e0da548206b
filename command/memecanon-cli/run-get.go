// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/memecanon/address"
	"github.com/bitmark-inc/memecanon/rpc/memes"
)

func runGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fingerprint := c.String("fingerprint")
	target := c.String("address")
	if ("" == fingerprint) == ("" == target) {
		return ErrSelectOne
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	var reply *memes.GetReply
	if "" != fingerprint {
		fp, err := checkFingerprint(fingerprint)
		if nil != err {
			return err
		}
		reply, err = client.GetByFingerprint(fp)
		if nil != err {
			return err
		}
	} else {
		a, err := address.FromBase58(target)
		if nil != err {
			return err
		}
		reply, err = client.GetByAddress(a)
		if nil != err {
			return err
		}
	}

	return printJson(m.w, reply)
}
