// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the keyed account space that programs store data in
//
// An account is created exactly once: CreateAccount checks that the
// address is free, debits the rent from the payer and stores the data
// in one atomic batch while holding the ledger lock, so two callers
// racing for the same address cannot both succeed.
package ledger

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/memecanon/address"
	"github.com/bitmark-inc/memecanon/fault"
	"github.com/bitmark-inc/memecanon/storage"
)

// rent parameters
const (
	AccountStorageOverhead = 128
	LamportsPerByteYear    = 3480
	ExemptionThreshold     = 2
)

// Account - a stored ledger account
type Account struct {
	Lamports uint64          `json:"lamports"`
	Owner    address.Address `json:"owner"`
	Data     []byte          `json:"data"`
}

// Handle - operations on the ledger
type Handle interface {
	Account(address.Address) (*Account, error)
	Airdrop(address.Address, uint64) (uint64, error)
	Balance(address.Address) uint64
	CreateAccount(payer address.Address, target address.Address, owner address.Address, data []byte) error
}

// L - ledger backed by the storage pools
type L struct {
	sync.Mutex
	log      *logger.L
	accounts *storage.PoolHandle
	balances *storage.PoolHandle
}

// MinimumBalance - lamports required to keep an account of the given
// data size rent exempt
func MinimumBalance(space int) uint64 {
	return uint64(AccountStorageOverhead+space) * LamportsPerByteYear * ExemptionThreshold
}

// New - create a ledger over the account and balance pools
func New(accounts *storage.PoolHandle, balances *storage.PoolHandle) *L {
	return &L{
		log:      logger.New("ledger"),
		accounts: accounts,
		balances: balances,
	}
}

// Account - fetch an account
func (l *L) Account(target address.Address) (*Account, error) {
	packed := l.accounts.Get(target[:])
	if nil == packed {
		return nil, fault.ErrAccountNotFound
	}
	if len(packed) < 8+address.Length {
		logger.Panicf("ledger: truncated account: %s  data: %x", target, packed)
	}

	a := &Account{
		Lamports: binary.BigEndian.Uint64(packed[:8]),
		Data:     packed[8+address.Length:],
	}
	copy(a.Owner[:], packed[8:])
	return a, nil
}

// Balance - spendable lamports of a signing account
func (l *L) Balance(payer address.Address) uint64 {
	balance, _ := l.balances.GetN(payer[:])
	return balance
}

// Airdrop - add lamports to a balance, returns the new balance
func (l *L) Airdrop(payer address.Address, lamports uint64) (uint64, error) {
	l.Lock()
	defer l.Unlock()

	balance, _ := l.balances.GetN(payer[:])
	if 0 == lamports || balance+lamports < balance {
		return balance, fault.ErrInvalidLamports
	}
	balance += lamports

	batch := storage.NewBatch()
	batch.PutN(l.balances, payer[:], balance)
	if err := batch.Commit(); nil != err {
		return 0, err
	}

	l.log.Infof("airdrop: %d to: %s  balance: %d", lamports, payer, balance)
	return balance, nil
}

// CreateAccount - create a new account only if none exists at target
//
// the payer is debited the rent exempt minimum for the data size, and
// that amount becomes the lamports of the new account
func (l *L) CreateAccount(payer address.Address, target address.Address, owner address.Address, data []byte) error {
	rent := MinimumBalance(len(data))

	l.Lock()
	defer l.Unlock()

	if l.accounts.Has(target[:]) {
		l.log.Debugf("create: %s  already in use", target)
		return fault.ErrAccountAlreadyInUse
	}

	balance, _ := l.balances.GetN(payer[:])
	if balance < rent {
		l.log.Debugf("create: %s  payer: %s  balance: %d < rent: %d", target, payer, balance, rent)
		return fault.ErrInsufficientFunds
	}

	packed := make([]byte, 8, 8+address.Length+len(data))
	binary.BigEndian.PutUint64(packed, rent)
	packed = append(packed, owner[:]...)
	packed = append(packed, data...)

	batch := storage.NewBatch()
	batch.PutN(l.balances, payer[:], balance-rent)
	batch.Put(l.accounts, target[:], packed)
	if err := batch.Commit(); nil != err {
		l.log.Errorf("create: %s  commit error: %s", target, err)
		return err
	}

	l.log.Infof("created: %s  owner: %s  space: %d  rent: %d", target, owner, len(data), rent)
	return nil
}
