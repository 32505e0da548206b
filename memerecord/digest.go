// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package memerecord

import (
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/memecanon/fault"
)

// DigestLength - bytes in a fingerprint
const DigestLength = 32

// Digest - a 32 byte fingerprint of a meme, its image or its text
type Digest [DigestLength]byte

// DigestFromHex - decode 64 hex characters
func DigestFromHex(s string) (Digest, error) {
	d := Digest{}
	if hex.EncodedLen(DigestLength) != len(s) {
		return d, fault.ErrInvalidFingerprint
	}
	if _, err := hex.Decode(d[:], []byte(s)); nil != err {
		return d, fault.ErrInvalidFingerprint
	}
	return d, nil
}

// String - hex for fmt %s
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// GoString - for fmt %#v
func (d Digest) GoString() string {
	return "<digest:" + d.String() + ">"
}

// Scan - read hex digest for the fmt scan routines
func (d *Digest) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
	})
	if nil != err {
		return err
	}
	decoded, err := DigestFromHex(string(token))
	if nil != err {
		return err
	}
	*d = decoded
	return nil
}

// MarshalText - hex text for JSON
func (d Digest) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(DigestLength))
	hex.Encode(b, d[:])
	return b, nil
}

// UnmarshalText - hex text from JSON
func (d *Digest) UnmarshalText(s []byte) error {
	decoded, err := DigestFromHex(string(s))
	if nil != err {
		return err
	}
	*d = decoded
	return nil
}
