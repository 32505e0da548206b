// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"bytes"

	"github.com/bitmark-inc/memecanon/fault"
	"github.com/bitmark-inc/memecanon/util"
)

// Length - number of bytes in an address
const Length = 32

// Address - a 32 byte ledger address
type Address [Length]byte

// Zero - the all zero address, also the system program id
var Zero Address

// FromBytes - convert a byte slice to an address
func FromBytes(buffer []byte) (Address, error) {
	a := Address{}
	if Length != len(buffer) {
		return a, fault.ErrInvalidAddress
	}
	copy(a[:], buffer)
	return a, nil
}

// FromBase58 - decode a base58 address
func FromBase58(s string) (Address, error) {
	buffer, err := util.FromBase58(s)
	if nil != err {
		return Address{}, fault.ErrInvalidAddress
	}
	return FromBytes(buffer)
}

// Bytes - the address as a byte slice
func (a Address) Bytes() []byte {
	return a[:]
}

// String - base58 text for fmt %s
func (a Address) String() string {
	return util.ToBase58(a[:])
}

// GoString - for fmt %#v
func (a Address) GoString() string {
	return "<address:" + a.String() + ">"
}

// Equal - compare two addresses
func (a Address) Equal(b Address) bool {
	return bytes.Equal(a[:], b[:])
}

// MarshalText - convert address to base58 for JSON
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert base58 text to address
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}
