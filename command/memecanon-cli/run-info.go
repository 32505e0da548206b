// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli"
)

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.Info()
	if nil != err {
		return err
	}

	return printJson(m.w, info)
}

func runPing(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count < 1 {
		count = 1
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	for i := 0; i < count; i += 1 {
		start := time.Now()
		info, err := client.Info()
		if nil != err {
			return err
		}
		fmt.Fprintf(m.w, "%s (%s): seq=%d time=%s\n", m.config.Connect, info.Version, i, time.Since(start))
	}
	return nil
}
