// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/memecanon/account"
	"github.com/bitmark-inc/memecanon/address"
	"github.com/bitmark-inc/memecanon/fault"
	"github.com/bitmark-inc/memecanon/fixtures"
	"github.com/bitmark-inc/memecanon/instruction"
	"github.com/bitmark-inc/memecanon/ledger"
	"github.com/bitmark-inc/memecanon/memerecord"
	"github.com/bitmark-inc/memecanon/registry"
	"github.com/bitmark-inc/memecanon/registry/mocks"
	"github.com/bitmark-inc/memecanon/storage"
	"github.com/bitmark-inc/memecanon/transaction"
)

const (
	funding      = 1000000000
	externalRef  = "Ca1bKkqrHx3tqGJy9GAWt4U6X2BxNKd2o5p7pmUPpump"
	metadataURI  = "ipfs://QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"
	firstVerdict = "authentic"
)

func setupTestProgram(t *testing.T) (*registry.Program, *ledger.L, string) {
	fixtures.SetupTestLogger()
	directory := fixtures.SetupTestStorage(t)
	l := ledger.New(storage.Pool.Accounts, storage.Pool.Balances)
	return registry.New(registry.ProgramId, l), l, directory
}

func teardownTestProgram(directory string) {
	fixtures.TeardownTestStorage(directory)
	fixtures.TeardownTestLogger()
}

func scenarioArguments() *instruction.RegisterMeme {
	return &instruction.RegisterMeme{
		MemeHash:    fixtures.Digest(0x11),
		ImageHash:   fixtures.Digest(0x22),
		TextHash:    fixtures.Digest(0x33),
		Verdict:     firstVerdict,
		CanonScore:  95,
		ExternalRef: externalRef,
		MetadataURI: metadataURI,
	}
}

func registerTransaction(t *testing.T, p *registry.Program, submitter *account.KeyPair, args *instruction.RegisterMeme) *transaction.Transaction {
	target, _, err := p.Derive(args.MemeHash)
	assert.Nil(t, err, "derive")

	tx := &transaction.Transaction{
		ProgramId: p.Id(),
		Accounts:  []address.Address{target, submitter.Address(), registry.SystemProgramId},
		Data:      args.Pack(),
	}
	tx.Sign(submitter)
	return tx
}

func TestRegisterScenario(t *testing.T) {
	p, l, directory := setupTestProgram(t)
	defer teardownTestProgram(directory)

	submitter := fixtures.KeyPair(t, 0x01)
	_, err := l.Airdrop(submitter.Address(), funding)
	assert.Nil(t, err, "airdrop")

	args := scenarioArguments()
	receipt, err := p.Process(registerTransaction(t, p, submitter, args))
	assert.Nil(t, err, "register")
	assert.Equal(t, "register_meme", receipt.Instruction, "instruction name")

	expectedAddress, expectedBump, err := p.Derive(args.MemeHash)
	assert.Nil(t, err, "derive")
	assert.Equal(t, expectedAddress, *receipt.Address, "receipt address")
	assert.Equal(t, expectedBump, *receipt.Bump, "receipt bump")
	assert.True(t, p.Verify(expectedAddress, args.MemeHash, expectedBump), "verify")

	record, err := p.Get(expectedAddress)
	assert.Nil(t, err, "get")
	assert.Equal(t, &memerecord.MemeRecord{
		MemeHash:    args.MemeHash,
		ImageHash:   args.ImageHash,
		TextHash:    args.TextHash,
		Verdict:     firstVerdict,
		CanonScore:  95,
		ExternalRef: externalRef,
		MetadataURI: metadataURI,
		Bump:        expectedBump,
	}, record, "record")

	rent := ledger.MinimumBalance(memerecord.Space)
	assert.Equal(t, uint64(funding)-rent, l.Balance(submitter.Address()), "payer debited")

	stored, err := l.Account(expectedAddress)
	assert.Nil(t, err, "account")
	assert.Equal(t, rent, stored.Lamports, "account lamports")
	assert.Equal(t, registry.ProgramId, stored.Owner, "account owner")
	assert.Equal(t, memerecord.Space, len(stored.Data), "account space")

	// second registration of the same fingerprint
	args.Verdict = "fake"
	args.CanonScore = 1
	_, err = p.Process(registerTransaction(t, p, submitter, args))
	assert.Equal(t, fault.ErrAlreadyRegistered, err, "duplicate")

	a, record, err := p.GetByFingerprint(args.MemeHash)
	assert.Nil(t, err, "get by fingerprint")
	assert.Equal(t, expectedAddress, a, "address")
	assert.Equal(t, firstVerdict, record.Verdict, "verdict unchanged")
	assert.Equal(t, uint32(95), record.CanonScore, "score unchanged")
	assert.Equal(t, uint64(funding)-rent, l.Balance(submitter.Address()), "no second debit")
}

func TestRegisterDistinctFingerprints(t *testing.T) {
	p, l, directory := setupTestProgram(t)
	defer teardownTestProgram(directory)

	submitter := fixtures.KeyPair(t, 0x02)
	_, err := l.Airdrop(submitter.Address(), funding)
	assert.Nil(t, err, "airdrop")

	seen := make(map[address.Address]struct{})
	for i := byte(1); i <= 5; i += 1 {
		args := scenarioArguments()
		args.MemeHash = fixtures.Digest(i)
		receipt, err := p.Process(registerTransaction(t, p, submitter, args))
		assert.Nil(t, err, "register: %d", i)
		_, duplicate := seen[*receipt.Address]
		assert.False(t, duplicate, "address collision: %d", i)
		seen[*receipt.Address] = struct{}{}
	}
}

func TestRegisterFieldTooLarge(t *testing.T) {
	p, l, directory := setupTestProgram(t)
	defer teardownTestProgram(directory)

	submitter := fixtures.KeyPair(t, 0x03)
	_, err := l.Airdrop(submitter.Address(), funding)
	assert.Nil(t, err, "airdrop")

	args := scenarioArguments()
	args.Verdict = strings.Repeat("v", memerecord.MaximumVerdictLength+1)
	_, err = p.Process(registerTransaction(t, p, submitter, args))
	assert.Equal(t, fault.ErrFieldTooLarge, err, "verdict over budget")

	// each string within its own limit, combined over the record space
	args = scenarioArguments()
	args.Verdict = strings.Repeat("v", 100)
	args.ExternalRef = strings.Repeat("r", 50)
	args.MetadataURI = strings.Repeat("m", 50)
	_, err = p.Process(registerTransaction(t, p, submitter, args))
	assert.Equal(t, fault.ErrFieldTooLarge, err, "combined over budget")

	target, _, _ := p.Derive(args.MemeHash)
	_, err = l.Account(target)
	assert.Equal(t, fault.ErrAccountNotFound, err, "no account created")
	assert.Equal(t, uint64(funding), l.Balance(submitter.Address()), "balance untouched")
}

func TestRegisterUnauthorizedSigner(t *testing.T) {
	p, l, directory := setupTestProgram(t)
	defer teardownTestProgram(directory)

	submitter := fixtures.KeyPair(t, 0x04)
	_, err := l.Airdrop(submitter.Address(), funding)
	assert.Nil(t, err, "airdrop")

	args := scenarioArguments()
	tx := registerTransaction(t, p, submitter, args)
	tx.Signatures = nil

	_, err = p.Process(tx)
	assert.Equal(t, fault.ErrUnauthorizedSigner, err, "unsigned")

	// a signer that is not the submitter
	other := fixtures.KeyPair(t, 0x05)
	tx.Accounts = append(tx.Accounts, other.Address())
	tx.Sign(other)
	_, err = p.Process(tx)
	assert.Equal(t, fault.ErrUnauthorizedSigner, err, "wrong signer")

	target, _, _ := p.Derive(args.MemeHash)
	_, err = l.Account(target)
	assert.Equal(t, fault.ErrAccountNotFound, err, "no account created")
}

func TestRegisterForgedSignature(t *testing.T) {
	p, l, directory := setupTestProgram(t)
	defer teardownTestProgram(directory)

	submitter := fixtures.KeyPair(t, 0x06)
	_, err := l.Airdrop(submitter.Address(), funding)
	assert.Nil(t, err, "airdrop")

	args := scenarioArguments()
	tx := registerTransaction(t, p, submitter, args)
	tx.Data[len(tx.Data)-1] ^= 0xff

	_, err = p.Process(tx)
	assert.Equal(t, fault.ErrUnauthorizedSigner, err, "tampered message")
	assert.Equal(t, uint64(funding), l.Balance(submitter.Address()), "balance untouched")
}

func TestRegisterImpersonatedSubmitter(t *testing.T) {
	p, l, directory := setupTestProgram(t)
	defer teardownTestProgram(directory)

	victim := fixtures.KeyPair(t, 0x0b)
	_, err := l.Airdrop(victim.Address(), funding)
	assert.Nil(t, err, "airdrop")

	// declare the victim as submitter but sign with another key
	intruder := fixtures.KeyPair(t, 0x0c)
	args := scenarioArguments()
	tx := registerTransaction(t, p, intruder, args)
	tx.Accounts[instruction.RegisterSubmitterAccount] = victim.Address()

	_, err = p.Process(tx)
	assert.Equal(t, fault.ErrUnauthorizedSigner, err, "impersonated submitter")

	target, _, _ := p.Derive(args.MemeHash)
	_, err = l.Account(target)
	assert.Equal(t, fault.ErrAccountNotFound, err, "no account created")
	assert.Equal(t, uint64(funding), l.Balance(victim.Address()), "victim not charged")
}

func TestRegisterInvalidSystemProgram(t *testing.T) {
	p, l, directory := setupTestProgram(t)
	defer teardownTestProgram(directory)

	submitter := fixtures.KeyPair(t, 0x0d)
	_, err := l.Airdrop(submitter.Address(), funding)
	assert.Nil(t, err, "airdrop")

	args := scenarioArguments()
	target, _, err := p.Derive(args.MemeHash)
	assert.Nil(t, err, "derive")

	tx := &transaction.Transaction{
		ProgramId: p.Id(),
		Accounts:  []address.Address{target, submitter.Address(), p.Id()},
		Data:      args.Pack(),
	}
	tx.Sign(submitter)

	_, err = p.Process(tx)
	assert.Equal(t, fault.ErrInvalidSystemProgram, err, "system program")
	assert.True(t, fault.IsErrInvalid(err), "error class")

	_, err = l.Account(target)
	assert.Equal(t, fault.ErrAccountNotFound, err, "no account created")
}

func TestRegisterAddressMismatch(t *testing.T) {
	p, l, directory := setupTestProgram(t)
	defer teardownTestProgram(directory)

	submitter := fixtures.KeyPair(t, 0x07)
	_, err := l.Airdrop(submitter.Address(), funding)
	assert.Nil(t, err, "airdrop")

	args := scenarioArguments()
	wrong, _, err := p.Derive(fixtures.Digest(0x99))
	assert.Nil(t, err, "derive")

	tx := &transaction.Transaction{
		ProgramId: p.Id(),
		Accounts:  []address.Address{wrong, submitter.Address(), registry.SystemProgramId},
		Data:      args.Pack(),
	}
	tx.Sign(submitter)

	_, err = p.Process(tx)
	assert.Equal(t, fault.ErrAddressMismatch, err, "mismatch")

	_, err = l.Account(wrong)
	assert.Equal(t, fault.ErrAccountNotFound, err, "no account created")
}

func TestRegisterInsufficientFunds(t *testing.T) {
	p, l, directory := setupTestProgram(t)
	defer teardownTestProgram(directory)

	submitter := fixtures.KeyPair(t, 0x08)
	_, err := l.Airdrop(submitter.Address(), ledger.MinimumBalance(memerecord.Space)-1)
	assert.Nil(t, err, "airdrop")

	_, err = p.Process(registerTransaction(t, p, submitter, scenarioArguments()))
	assert.Equal(t, fault.ErrInsufficientFunds, err, "insufficient")
}

func TestRegisterWrongProgram(t *testing.T) {
	p, _, directory := setupTestProgram(t)
	defer teardownTestProgram(directory)

	submitter := fixtures.KeyPair(t, 0x09)
	tx := registerTransaction(t, p, submitter, scenarioArguments())
	tx.ProgramId = submitter.Address()

	_, err := p.Process(tx)
	assert.Equal(t, fault.ErrInvalidProgramId, err, "program id")
}

func TestRegisterNotEnoughAccounts(t *testing.T) {
	p, _, directory := setupTestProgram(t)
	defer teardownTestProgram(directory)

	submitter := fixtures.KeyPair(t, 0x0a)
	ctx := &registry.Context{
		ProgramId: p.Id(),
		Accounts:  []address.Address{submitter.Address()},
		Signers:   map[address.Address]struct{}{submitter.Address(): {}},
	}
	_, _, err := p.RegisterMeme(ctx, scenarioArguments())
	assert.Equal(t, fault.ErrNotEnoughAccounts, err, "accounts")
}

func TestRegisterConcurrentDuplicates(t *testing.T) {
	p, l, directory := setupTestProgram(t)
	defer teardownTestProgram(directory)

	const workers = 8

	submitters := make([]*account.KeyPair, workers)
	for i := range submitters {
		submitters[i] = fixtures.KeyPair(t, byte(0x20+i))
		_, err := l.Airdrop(submitters[i].Address(), funding)
		assert.Nil(t, err, "airdrop: %d", i)
	}

	transactions := make([]*transaction.Transaction, workers)
	for i := range transactions {
		args := scenarioArguments()
		args.CanonScore = uint32(i)
		transactions[i] = registerTransaction(t, p, submitters[i], args)
	}

	errs := make([]error, workers)
	wg := sync.WaitGroup{}
	for i := range transactions {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = p.Process(transactions[i])
		}(i)
	}
	wg.Wait()

	winner := -1
	for i, err := range errs {
		if nil == err {
			assert.Equal(t, -1, winner, "more than one success")
			winner = i
			continue
		}
		assert.Equal(t, fault.ErrAlreadyRegistered, err, "loser: %d", i)
	}
	assert.NotEqual(t, -1, winner, "no success")

	_, record, err := p.GetByFingerprint(fixtures.Digest(0x11))
	assert.Nil(t, err, "get")
	assert.Equal(t, uint32(winner), record.CanonScore, "winning record stored")
}

func TestInitialise(t *testing.T) {
	p, _, directory := setupTestProgram(t)
	defer teardownTestProgram(directory)

	tx := &transaction.Transaction{
		ProgramId: p.Id(),
		Data:      instruction.Initialise{}.Pack(),
	}
	receipt, err := p.Process(tx)
	assert.Nil(t, err, "initialise")
	assert.Equal(t, "initialize", receipt.Instruction, "name")
	assert.Nil(t, receipt.Address, "no address")
}

func TestInsufficientFundsPassThrough(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockHandle(ctl)
	p := registry.New(registry.ProgramId, m)

	submitter := fixtures.KeyPair(t, 0x0b)
	args := scenarioArguments()
	target, _, err := p.Derive(args.MemeHash)
	assert.Nil(t, err, "derive")

	m.EXPECT().CreateAccount(submitter.Address(), target, registry.ProgramId, gomock.Any()).Return(fault.ErrInsufficientFunds).Times(1)

	_, err = p.Process(registerTransaction(t, p, submitter, args))
	assert.Equal(t, fault.ErrInsufficientFunds, err, "passthrough")
}

func TestFieldBudgetBeforeLedger(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// no expectations: any ledger call fails the test
	m := mocks.NewMockHandle(ctl)
	p := registry.New(registry.ProgramId, m)

	args := scenarioArguments()
	args.MetadataURI = strings.Repeat("u", memerecord.MaximumMetadataURILength+1)
	_, err := p.Process(registerTransaction(t, p, fixtures.KeyPair(t, 0x0c), args))
	assert.Equal(t, fault.ErrFieldTooLarge, err, "budget")
}

func TestGetForeignAccount(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockHandle(ctl)
	p := registry.New(registry.ProgramId, m)

	target := fixtures.KeyPair(t, 0x0d).Address()
	m.EXPECT().Account(target).Return(&ledger.Account{Owner: target}, nil).Times(1)

	_, err := p.Get(target)
	assert.Equal(t, fault.ErrInvalidRecord, err, "foreign owner")
}
