// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/memecanon/account"
	"github.com/bitmark-inc/memecanon/address"
	"github.com/bitmark-inc/memecanon/instruction"
	"github.com/bitmark-inc/memecanon/memerecord"
	"github.com/bitmark-inc/memecanon/registry"
	"github.com/bitmark-inc/memecanon/rpc/memes"
	"github.com/bitmark-inc/memecanon/transaction"
)

// Submit - send a signed transaction for execution
func (client *Client) Submit(packed transaction.Packed) (*memes.SubmitReply, error) {
	arguments := memes.SubmitArguments{
		Transaction: packed,
	}
	var reply memes.SubmitReply
	if err := client.call("Memes.Submit", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetByFingerprint - fetch the record registered for a fingerprint
func (client *Client) GetByFingerprint(fingerprint memerecord.Digest) (*memes.GetReply, error) {
	return client.get(&memes.GetArguments{Fingerprint: &fingerprint})
}

// GetByAddress - fetch the record stored at an address
func (client *Client) GetByAddress(a address.Address) (*memes.GetReply, error) {
	return client.get(&memes.GetArguments{Address: &a})
}

func (client *Client) get(arguments *memes.GetArguments) (*memes.GetReply, error) {
	var reply memes.GetReply
	if err := client.call("Memes.Get", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Derive - ask the node for the record address of a fingerprint
func (client *Client) Derive(fingerprint memerecord.Digest) (*memes.DeriveReply, error) {
	arguments := memes.DeriveArguments{
		Fingerprint: fingerprint,
	}
	var reply memes.DeriveReply
	if err := client.call("Memes.Derive", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Register - build, sign and submit a register_meme transaction
//
// the record address is derived locally against the program id the
// node reports
func (client *Client) Register(submitter *account.KeyPair, programId address.Address, args *instruction.RegisterMeme) (*memes.SubmitReply, error) {
	target, _, err := address.FindProgramAddress(memerecord.Seeds(args.MemeHash), programId)
	if nil != err {
		return nil, err
	}

	tx := &transaction.Transaction{
		ProgramId: programId,
		Accounts:  []address.Address{target, submitter.Address(), registry.SystemProgramId},
		Data:      args.Pack(),
	}
	tx.Sign(submitter)

	packed, err := tx.Pack()
	if nil != err {
		return nil, err
	}
	return client.Submit(packed)
}
