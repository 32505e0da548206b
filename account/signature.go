// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/memecanon/address"
	"github.com/bitmark-inc/memecanon/fault"
)

// SignatureSize - bytes in an ed25519 signature
const SignatureSize = ed25519.SignatureSize

// Signature - the type for a signature
type Signature []byte

// CheckSignature - verify that the account at an address signed a message
//
// program derived addresses are not on the curve so can never pass
func CheckSignature(signer address.Address, message []byte, signature Signature) error {
	if SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !address.IsOnCurve(signer) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(signer[:]), message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// convert a binary signature to hex string for use by the fmt package (for %s)
func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// convert a binary signature to hex string for use by the fmt package (for %#v)
func (signature Signature) GoString() string {
	return "<signature:" + hex.EncodeToString(signature) + ">"
}

// MarshalText - convert signature to text
func (signature Signature) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(signature))
	b := make([]byte, size)
	hex.Encode(b, signature)
	return b, nil
}

// UnmarshalText - convert text into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	sig := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(sig, s)
	if nil != err {
		return err
	}
	*signature = sig[:byteCount]
	return nil
}
