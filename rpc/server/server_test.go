// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/memecanon/address"
	"github.com/bitmark-inc/memecanon/chain"
	"github.com/bitmark-inc/memecanon/fault"
	"github.com/bitmark-inc/memecanon/fixtures"
	"github.com/bitmark-inc/memecanon/instruction"
	"github.com/bitmark-inc/memecanon/ledger"
	"github.com/bitmark-inc/memecanon/registry"
	"github.com/bitmark-inc/memecanon/rpc/listeners"
	"github.com/bitmark-inc/memecanon/rpc/memes"
	"github.com/bitmark-inc/memecanon/rpc/node"
	"github.com/bitmark-inc/memecanon/rpc/server"
	"github.com/bitmark-inc/memecanon/storage"
	"github.com/bitmark-inc/memecanon/transaction"
)

// serve a single connection over a local pipe
func connect(t *testing.T, s *rpc.Server) *rpc.Client {
	serverSide, clientSide := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverSide))
	return jsonrpc.NewClient(clientSide)
}

func TestServerRoundTrip(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	directory := fixtures.SetupTestStorage(t)
	defer fixtures.TeardownTestStorage(directory)

	l := ledger.New(storage.Pool.Accounts, storage.Pool.Balances)
	p := registry.New(registry.ProgramId, l)
	s := server.Create(logger.New(fixtures.LogCategory), "0.1", chain.Local, p, l, listeners.NewConnections(10))

	client := connect(t, s)
	defer client.Close()

	var info node.InfoReply
	err := client.Call("Node.Info", &node.InfoArguments{}, &info)
	assert.Nil(t, err, "info")
	assert.Equal(t, chain.Local, info.Chain, "chain")
	assert.Equal(t, registry.ProgramId, info.ProgramId, "program id")
	assert.Equal(t, "0.1", info.Version, "version")

	submitter := fixtures.KeyPair(t, 0x61)
	var airdrop node.AirdropReply
	err = client.Call("Node.Airdrop", &node.AirdropArguments{Address: submitter.Address(), Lamports: 5000000}, &airdrop)
	assert.Nil(t, err, "airdrop")
	assert.Equal(t, uint64(5000000), airdrop.Balance, "airdrop balance")

	args := &instruction.RegisterMeme{
		MemeHash:    fixtures.Digest(0x62),
		ImageHash:   fixtures.Digest(0x63),
		TextHash:    fixtures.Digest(0x64),
		Verdict:     "authentic",
		CanonScore:  80,
		ExternalRef: "ref",
		MetadataURI: "ipfs://meta",
	}

	var derived memes.DeriveReply
	err = client.Call("Memes.Derive", &memes.DeriveArguments{Fingerprint: args.MemeHash}, &derived)
	assert.Nil(t, err, "derive")

	expected, bump, _ := p.Derive(args.MemeHash)
	assert.Equal(t, expected, derived.Address, "derived address")
	assert.Equal(t, bump, derived.Bump, "derived bump")

	tx := &transaction.Transaction{
		ProgramId: registry.ProgramId,
		Accounts:  []address.Address{derived.Address, submitter.Address(), registry.SystemProgramId},
		Data:      args.Pack(),
	}
	tx.Sign(submitter)
	packed, err := tx.Pack()
	assert.Nil(t, err, "pack")

	var submitted memes.SubmitReply
	err = client.Call("Memes.Submit", &memes.SubmitArguments{Transaction: packed}, &submitted)
	assert.Nil(t, err, "submit")
	assert.Equal(t, expected, *submitted.Address, "submitted address")

	var got memes.GetReply
	err = client.Call("Memes.Get", &memes.GetArguments{Address: &expected}, &got)
	assert.Nil(t, err, "get")
	assert.Equal(t, args.MemeHash, got.Record.MemeHash, "meme hash")
	assert.Equal(t, args.TextHash, got.Record.TextHash, "text hash")
	assert.Equal(t, "authentic", got.Record.Verdict, "verdict")
	assert.Equal(t, bump, got.Record.Bump, "bump")
	assert.True(t, got.Verified, "verified")

	err = client.Call("Memes.Submit", &memes.SubmitArguments{Transaction: packed}, &memes.SubmitReply{})
	assert.NotNil(t, err, "duplicate")
	assert.Equal(t, fault.ErrAlreadyRegistered.Error(), err.Error(), "duplicate message")
}
