// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package memes

import (
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/memecanon/address"
	"github.com/bitmark-inc/memecanon/fault"
	"github.com/bitmark-inc/memecanon/memerecord"
	"github.com/bitmark-inc/memecanon/registry"
	"github.com/bitmark-inc/memecanon/rpc/ratelimit"
	"github.com/bitmark-inc/memecanon/transaction"
)

const (
	rateLimitMemes = 200
	rateBurstMemes = 100

	recordExpiry  = 30 * time.Minute
	cleanupPeriod = time.Hour
)

// Registry - program operations used by the service
type Registry interface {
	Derive(memerecord.Digest) (address.Address, uint8, error)
	Get(address.Address) (*memerecord.MemeRecord, error)
	Process(*transaction.Transaction) (*registry.Receipt, error)
	Verify(address.Address, memerecord.Digest, uint8) bool
}

// Memes - type for RPC calls
type Memes struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry Registry

	// records never change once created
	records *cache.Cache
}

// New - create the memes service
func New(log *logger.L, r Registry) *Memes {
	return &Memes{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitMemes, rateBurstMemes),
		Registry: r,
		records:  cache.New(recordExpiry, cleanupPeriod),
	}
}

// ---

// SubmitArguments - a packed and signed transaction
type SubmitArguments struct {
	Transaction transaction.Packed `json:"transaction"`
}

// SubmitReply - result of executing the transaction
type SubmitReply struct {
	TxId        transaction.Id   `json:"txId"`
	Instruction string           `json:"instruction"`
	Address     *address.Address `json:"address,omitempty"`
	Bump        *uint8           `json:"bump,omitempty"`
}

// Submit - execute a signed transaction
func (memes *Memes) Submit(arguments *SubmitArguments, reply *SubmitReply) error {
	if err := ratelimit.Limit(memes.Limiter); nil != err {
		return err
	}

	if nil == arguments || 0 == len(arguments.Transaction) {
		return fault.ErrMissingParameters
	}

	tx, n, err := arguments.Transaction.Unpack()
	if nil != err {
		return err
	}
	if n != len(arguments.Transaction) {
		return fault.ErrTrailingTransactionData
	}

	txId := arguments.Transaction.MakeId()
	memes.Log.Infof("submit: %s", txId)

	receipt, err := memes.Registry.Process(tx)
	if nil != err {
		memes.Log.Debugf("submit: %s  error: %s", txId, err)
		return err
	}

	reply.TxId = txId
	reply.Instruction = receipt.Instruction
	reply.Address = receipt.Address
	reply.Bump = receipt.Bump
	return nil
}

// ---

// GetArguments - select a record by fingerprint or by address
type GetArguments struct {
	Fingerprint *memerecord.Digest `json:"fingerprint,omitempty"`
	Address     *address.Address   `json:"address,omitempty"`
}

// GetReply - a stored record
type GetReply struct {
	Address  address.Address       `json:"address"`
	Record   *memerecord.MemeRecord `json:"record"`
	Verified bool                  `json:"verified"`
}

// Get - read a registered record
func (memes *Memes) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(memes.Limiter); nil != err {
		return err
	}

	if nil == arguments || (nil == arguments.Fingerprint) == (nil == arguments.Address) {
		return fault.ErrMissingParameters
	}

	var target address.Address
	if nil != arguments.Fingerprint {
		a, _, err := memes.Registry.Derive(*arguments.Fingerprint)
		if nil != err {
			return err
		}
		target = a
	} else {
		target = *arguments.Address
	}

	record, err := memes.record(target)
	if nil != err {
		return err
	}

	reply.Address = target
	reply.Record = record
	reply.Verified = memes.Registry.Verify(target, record.MemeHash, record.Bump)
	return nil
}

func (memes *Memes) record(target address.Address) (*memerecord.MemeRecord, error) {
	key := target.String()
	if item, found := memes.records.Get(key); found {
		return item.(*memerecord.MemeRecord), nil
	}

	record, err := memes.Registry.Get(target)
	if nil != err {
		return nil, err
	}
	memes.records.SetDefault(key, record)
	return record, nil
}

// ---

// DeriveArguments - a content fingerprint
type DeriveArguments struct {
	Fingerprint memerecord.Digest `json:"fingerprint"`
}

// DeriveReply - the canonical address of the fingerprint
type DeriveReply struct {
	Address address.Address `json:"address"`
	Bump    uint8           `json:"bump"`
}

// Derive - compute the record address for a fingerprint
func (memes *Memes) Derive(arguments *DeriveArguments, reply *DeriveReply) error {
	if err := ratelimit.Limit(memes.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	a, bump, err := memes.Registry.Derive(arguments.Fingerprint)
	if nil != err {
		return err
	}
	reply.Address = a
	reply.Bump = bump
	return nil
}
