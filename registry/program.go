// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the meme canon program
//
// Each content fingerprint maps to exactly one program derived address.
// Registration creates the account at that address holding the packed
// record; the ledger refuses to create an account twice, so the first
// registration of a fingerprint is final.
package registry

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/memecanon/address"
	"github.com/bitmark-inc/memecanon/fault"
	"github.com/bitmark-inc/memecanon/instruction"
	"github.com/bitmark-inc/memecanon/ledger"
	"github.com/bitmark-inc/memecanon/memerecord"
	"github.com/bitmark-inc/memecanon/transaction"
)

// well known program identities
var (
	ProgramId       = mustAddress("EWDGViEZrieLvQ544usdPVLazkaUdaVhBPAqoEG3HA7b")
	SystemProgramId = address.Zero
)

// Context - the accounts and verified signers of one instruction
type Context struct {
	ProgramId address.Address
	Accounts  []address.Address
	Signers   map[address.Address]struct{}
}

// Receipt - result of a processed transaction
type Receipt struct {
	Instruction string           `json:"instruction"`
	Address     *address.Address `json:"address,omitempty"`
	Bump        *uint8           `json:"bump,omitempty"`
}

// Program - the registry bound to a ledger
type Program struct {
	log      *logger.L
	greeting *logger.L
	id       address.Address
	ledger   ledger.Handle
}

// New - create a program instance
func New(id address.Address, l ledger.Handle) *Program {
	return &Program{
		log:      logger.New("registry"),
		greeting: logger.New("program"),
		id:       id,
		ledger:   l,
	}
}

// Id - the program identity
func (p *Program) Id() address.Address {
	return p.id
}

// Derive - canonical address and bump for a fingerprint
func (p *Program) Derive(fingerprint memerecord.Digest) (address.Address, uint8, error) {
	return address.FindProgramAddress(memerecord.Seeds(fingerprint), p.id)
}

// Verify - check an address against a fingerprint and stored bump
func (p *Program) Verify(a address.Address, fingerprint memerecord.Digest, bump uint8) bool {
	return address.Verify(a, memerecord.Seeds(fingerprint), bump, p.id)
}

// Process - verify a transaction and execute its instruction
func (p *Program) Process(tx *transaction.Transaction) (*Receipt, error) {
	if tx.ProgramId != p.id {
		return nil, fault.ErrInvalidProgramId
	}

	signers := tx.Signers()

	ins, err := instruction.Unpack(tx.Data)
	if nil != err {
		return nil, err
	}

	ctx := &Context{
		ProgramId: tx.ProgramId,
		Accounts:  tx.Accounts,
		Signers:   signers,
	}

	receipt := &Receipt{
		Instruction: ins.Name(),
	}

	switch args := ins.(type) {
	case instruction.Initialise:
		err = p.Initialise(ctx)

	case *instruction.RegisterMeme:
		a, bump, e := p.RegisterMeme(ctx, args)
		if nil == e {
			receipt.Address = &a
			receipt.Bump = &bump
		}
		err = e

	default:
		err = fault.ErrUnknownInstruction
	}

	if nil != err {
		return nil, err
	}
	return receipt, nil
}

// Initialise - log the program identity, nothing else
func (p *Program) Initialise(ctx *Context) error {
	p.greeting.Infof("greetings from: %s", ctx.ProgramId)
	return nil
}

// RegisterMeme - create the record account for a fingerprint
//
// returns the record address and its bump
func (p *Program) RegisterMeme(ctx *Context, args *instruction.RegisterMeme) (address.Address, uint8, error) {
	if len(ctx.Accounts) < instruction.RegisterMemeAccountCount {
		return address.Zero, 0, fault.ErrNotEnoughAccounts
	}
	if ctx.Accounts[instruction.RegisterSystemAccount] != SystemProgramId {
		return address.Zero, 0, fault.ErrInvalidSystemProgram
	}

	submitter := ctx.Accounts[instruction.RegisterSubmitterAccount]
	if _, ok := ctx.Signers[submitter]; !ok {
		p.log.Debugf("register: %s  submitter: %s did not sign", args.MemeHash, submitter)
		return address.Zero, 0, fault.ErrUnauthorizedSigner
	}

	err := memerecord.ValidateFields(args.Verdict, args.ExternalRef, args.MetadataURI)
	if nil != err {
		return address.Zero, 0, err
	}

	target, bump, err := p.Derive(args.MemeHash)
	if nil != err {
		p.log.Errorf("register: %s  derive error: %s", args.MemeHash, err)
		return address.Zero, 0, err
	}
	if ctx.Accounts[instruction.RegisterMemeAccount] != target {
		return address.Zero, 0, fault.ErrAddressMismatch
	}

	record := &memerecord.MemeRecord{
		MemeHash:    args.MemeHash,
		ImageHash:   args.ImageHash,
		TextHash:    args.TextHash,
		Verdict:     args.Verdict,
		CanonScore:  args.CanonScore,
		ExternalRef: args.ExternalRef,
		MetadataURI: args.MetadataURI,
		Bump:        bump,
	}
	packed, err := record.Pack()
	if nil != err {
		return address.Zero, 0, err
	}

	err = p.ledger.CreateAccount(submitter, target, p.id, packed)
	if fault.ErrAccountAlreadyInUse == err {
		p.log.Infof("register: %s  already registered at: %s", args.MemeHash, target)
		return address.Zero, 0, fault.ErrAlreadyRegistered
	}
	if nil != err {
		p.log.Warnf("register: %s  create error: %s", args.MemeHash, err)
		return address.Zero, 0, err
	}

	p.log.Infof("registered: %s  address: %s  bump: %d  verdict: %q  score: %d", args.MemeHash, target, bump, args.Verdict, args.CanonScore)
	return target, bump, nil
}

// Get - read the record stored at an address
func (p *Program) Get(target address.Address) (*memerecord.MemeRecord, error) {
	a, err := p.ledger.Account(target)
	if nil != err {
		return nil, err
	}
	if a.Owner != p.id {
		return nil, fault.ErrInvalidRecord
	}
	return memerecord.Unpack(a.Data)
}

// GetByFingerprint - derive the address of a fingerprint and read its record
func (p *Program) GetByFingerprint(fingerprint memerecord.Digest) (address.Address, *memerecord.MemeRecord, error) {
	target, _, err := p.Derive(fingerprint)
	if nil != err {
		return address.Zero, nil, err
	}
	record, err := p.Get(target)
	if nil != err {
		return address.Zero, nil, err
	}
	return target, record, nil
}

func mustAddress(s string) address.Address {
	a, err := address.FromBase58(s)
	if nil != err {
		logger.Panicf("registry: invalid built in address: %q  error: %s", s, err)
	}
	return a
}
