// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/memecanon/instruction"
	"github.com/bitmark-inc/memecanon/memerecord"
)

func runRegister(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	args, err := registerArguments(c)
	if nil != err {
		return err
	}

	// reject oversized text before asking for a password
	err = memerecord.ValidateFields(args.Verdict, args.ExternalRef, args.MetadataURI)
	if nil != err {
		return err
	}

	keyPair, err := signingKey(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.Info()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "program: %s\n", info.ProgramId)
		fmt.Fprintf(m.e, "submitter: %s\n", keyPair.Address())
	}

	reply, err := client.Register(keyPair, info.ProgramId, args)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func registerArguments(c *cli.Context) (*instruction.RegisterMeme, error) {
	memeHash, err := checkFingerprint(c.String("meme"))
	if nil != err {
		return nil, err
	}
	imageHash, err := checkFingerprint(c.String("image"))
	if nil != err {
		return nil, err
	}
	textHash, err := checkFingerprint(c.String("text"))
	if nil != err {
		return nil, err
	}
	verdict, err := checkVerdict(c.String("verdict"))
	if nil != err {
		return nil, err
	}

	return &instruction.RegisterMeme{
		MemeHash:    memeHash,
		ImageHash:   imageHash,
		TextHash:    textHash,
		Verdict:     verdict,
		CanonScore:  uint32(c.Uint("score")),
		ExternalRef: c.String("external-ref"),
		MetadataURI: c.String("metadata-uri"),
	}, nil
}
