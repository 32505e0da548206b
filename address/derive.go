// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"crypto/sha256"

	"filippo.io/edwards25519"

	"github.com/bitmark-inc/memecanon/fault"
)

// limits on the seeds that may be hashed into a program address
const (
	MaximumSeeds      = 16
	MaximumSeedLength = 32
)

// appended to every program address hash input
const programDerivedMarker = "ProgramDerivedAddress"

// curve test used by derivation, replaced in tests
var onCurve = IsOnCurve

// IsOnCurve - true if the bytes decode to an ed25519 curve point
func IsOnCurve(a Address) bool {
	_, err := new(edwards25519.Point).SetBytes(a[:])
	return nil == err
}

// CreateProgramAddress - hash seeds into a program address
//
// the seeds must already include any bump byte
func CreateProgramAddress(seeds [][]byte, programId Address) (Address, error) {
	if len(seeds) > MaximumSeeds {
		return Address{}, fault.ErrMaxSeedLengthExceeded
	}

	h := sha256.New()
	for _, seed := range seeds {
		if len(seed) > MaximumSeedLength {
			return Address{}, fault.ErrMaxSeedLengthExceeded
		}
		h.Write(seed)
	}
	h.Write(programId[:])
	h.Write([]byte(programDerivedMarker))

	a := Address{}
	copy(a[:], h.Sum(nil))

	if onCurve(a) {
		return Address{}, fault.ErrInvalidSeeds
	}
	return a, nil
}

// FindProgramAddress - search for the first bump from 255 down to 0
// that yields a valid program address
func FindProgramAddress(seeds [][]byte, programId Address) (Address, uint8, error) {

	// one extra slot for the bump
	if len(seeds) >= MaximumSeeds {
		return Address{}, 0, fault.ErrMaxSeedLengthExceeded
	}

	bump := []byte{0}
	withBump := make([][]byte, len(seeds), len(seeds)+1)
	copy(withBump, seeds)
	withBump = append(withBump, bump)

	for b := 255; b >= 0; b -= 1 {
		bump[0] = uint8(b)
		a, err := CreateProgramAddress(withBump, programId)
		switch err {
		case nil:
			return a, uint8(b), nil
		case fault.ErrInvalidSeeds:
			// on curve: try next bump
		default:
			return Address{}, 0, err
		}
	}
	return Address{}, 0, fault.ErrAddressDerivationExhausted
}

// Verify - check that an address was derived from seeds and a stored bump
// without searching
func Verify(a Address, seeds [][]byte, bump uint8, programId Address) bool {
	withBump := make([][]byte, len(seeds), len(seeds)+1)
	copy(withBump, seeds)
	withBump = append(withBump, []byte{bump})

	derived, err := CreateProgramAddress(withBump, programId)
	if nil != err {
		return false
	}
	return derived.Equal(a)
}
