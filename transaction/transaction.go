// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - signed transactions carrying one program
// instruction
//
// Packed form:
//
//   Varint64(tag)
//   program id                        32 bytes
//   Varint64(account count) ++ accounts (32 bytes each)
//   Varint64(data length)   ++ instruction data
//   ---- end of signed message ----
//   Varint64(signature count) ++ [signer (32 bytes) ++ signature (64 bytes)]
package transaction

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/memecanon/account"
	"github.com/bitmark-inc/memecanon/address"
	"github.com/bitmark-inc/memecanon/fault"
	"github.com/bitmark-inc/memecanon/util"
)

// TagType - type code for transactions
type TagType uint64

// enumerate the possible transaction record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	InstructionTag = TagType(iota)

	// this item must be last
	InvalidTag = TagType(iota)
)

// limits
const (
	MaximumAccounts        = 16
	MaximumDataLength      = 1024
	maximumPackedSignature = MaximumAccounts
)

// Packed - packed records are just a byte slice
type Packed []byte

// Id - a transaction digest
type Id [32]byte

// Signed - one signature over the message
type Signed struct {
	Signer    address.Address   `json:"signer"`
	Signature account.Signature `json:"signature"`
}

// Transaction - an instruction for a program plus its signatures
type Transaction struct {
	ProgramId  address.Address   `json:"programId"`
	Accounts   []address.Address `json:"accounts"`
	Data       []byte            `json:"data"`
	Signatures []Signed          `json:"signatures"`
}

// Message - the bytes covered by the signatures
func (tx *Transaction) Message() []byte {
	message := util.ToVarint64(uint64(InstructionTag))
	message = append(message, tx.ProgramId[:]...)
	message = util.AppendVarint64(message, uint64(len(tx.Accounts)))
	for _, a := range tx.Accounts {
		message = append(message, a[:]...)
	}
	message = util.AppendVarint64(message, uint64(len(tx.Data)))
	return append(message, tx.Data...)
}

// Sign - add a signature from a key pair
func (tx *Transaction) Sign(keyPair *account.KeyPair) {
	tx.Signatures = append(tx.Signatures, Signed{
		Signer:    keyPair.Address(),
		Signature: keyPair.Sign(tx.Message()),
	})
}

// Signers - the set of accounts whose signatures verify
//
// a signature counts only if its signer is one of the transaction
// accounts and it verifies against the current message, anything else
// is ignored so the instruction decides which signers it requires
func (tx *Transaction) Signers() map[address.Address]struct{} {
	message := tx.Message()
	signers := make(map[address.Address]struct{}, len(tx.Signatures))

	for _, s := range tx.Signatures {
		if !tx.hasAccount(s.Signer) {
			continue
		}
		if err := account.CheckSignature(s.Signer, message, s.Signature); nil != err {
			continue
		}
		signers[s.Signer] = struct{}{}
	}
	return signers
}

func (tx *Transaction) hasAccount(a address.Address) bool {
	for _, item := range tx.Accounts {
		if item == a {
			return true
		}
	}
	return false
}

// Pack - produce the wire form
func (tx *Transaction) Pack() (Packed, error) {
	if len(tx.Accounts) > MaximumAccounts {
		return nil, fault.ErrTooManyAccounts
	}
	if len(tx.Data) > MaximumDataLength {
		return nil, fault.ErrDataTooLong
	}
	if len(tx.Signatures) > maximumPackedSignature {
		return nil, fault.ErrTooManySignatures
	}

	buffer := Packed(tx.Message())
	buffer = util.AppendVarint64(buffer, uint64(len(tx.Signatures)))
	for _, s := range tx.Signatures {
		if account.SignatureSize != len(s.Signature) {
			return nil, fault.ErrSignatureTooShort
		}
		buffer = append(buffer, s.Signer[:]...)
		buffer = append(buffer, s.Signature...)
	}
	return buffer, nil
}

// MakeId - digest of the packed transaction
func (record Packed) MakeId() Id {
	return Id(sha3.Sum256(record))
}

// Unpack - turn a byte slice into a transaction
//
// returns the number of bytes consumed
func (record Packed) Unpack() (*Transaction, int, error) {

	tag, n := util.ClippedVarint64(record, 1, 8192)
	if 0 == n {
		return nil, 0, fault.ErrTruncatedTransaction
	}

	if InstructionTag != TagType(tag) {
		return nil, 0, fault.ErrUnknownTransactionTag
	}

	tx := &Transaction{}

	// program
	if n+address.Length > len(record) {
		return nil, 0, fault.ErrTruncatedTransaction
	}
	copy(tx.ProgramId[:], record[n:])
	n += address.Length

	// accounts
	accountCount, accountCountLength := util.FromVarint64(record[n:])
	if 0 == accountCountLength {
		return nil, 0, fault.ErrTruncatedTransaction
	}
	if accountCount > MaximumAccounts {
		return nil, 0, fault.ErrTooManyAccounts
	}
	n += accountCountLength
	if n+int(accountCount)*address.Length > len(record) {
		return nil, 0, fault.ErrTruncatedTransaction
	}
	tx.Accounts = make([]address.Address, accountCount)
	for i := range tx.Accounts {
		copy(tx.Accounts[i][:], record[n:])
		n += address.Length
	}

	// instruction data
	dataLength, dataLengthLength := util.FromVarint64(record[n:])
	if 0 == dataLengthLength {
		return nil, 0, fault.ErrTruncatedTransaction
	}
	if dataLength > MaximumDataLength {
		return nil, 0, fault.ErrDataTooLong
	}
	n += dataLengthLength
	if n+int(dataLength) > len(record) {
		return nil, 0, fault.ErrTruncatedTransaction
	}
	tx.Data = make([]byte, dataLength)
	copy(tx.Data, record[n:])
	n += int(dataLength)

	// signatures
	signatureCount, signatureCountLength := util.FromVarint64(record[n:])
	if 0 == signatureCountLength {
		return nil, 0, fault.ErrTruncatedTransaction
	}
	if signatureCount > maximumPackedSignature {
		return nil, 0, fault.ErrTooManySignatures
	}
	n += signatureCountLength

	const signedLength = address.Length + account.SignatureSize
	if n+int(signatureCount)*signedLength > len(record) {
		return nil, 0, fault.ErrTruncatedTransaction
	}
	tx.Signatures = make([]Signed, signatureCount)
	for i := range tx.Signatures {
		copy(tx.Signatures[i].Signer[:], record[n:])
		n += address.Length
		signature := make(account.Signature, account.SignatureSize)
		copy(signature, record[n:])
		tx.Signatures[i].Signature = signature
		n += account.SignatureSize
	}

	return tx, n, nil
}

// String - hex form of the id
func (id Id) String() string {
	return hex.EncodeToString(id[:])
}

// MarshalText - convert id to hex for JSON
func (id Id) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert hex to an id
func (id *Id) UnmarshalText(s []byte) error {
	if hex.EncodedLen(len(id)) != len(s) {
		return fault.ErrInvalidTransactionId
	}
	_, err := hex.Decode(id[:], s)
	return err
}

// MarshalText - convert a packed transaction to hex for JSON
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	buffer := make([]byte, size)
	hex.Encode(buffer, record)
	return buffer, nil
}

// UnmarshalText - convert hex to a packed transaction
func (record *Packed) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	*record = buffer[:byteCount]
	return nil
}
