// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - ledger addresses and program address derivation
//
// An address is 32 bytes and is written in base58.  Two kinds share
// the same space:
//
//   account address  - an ed25519 public key, i.e. a point on the curve
//   program address  - SHA-256(seeds ++ program id ++ marker), which
//                      must NOT be a point on the curve so that no
//                      private key can ever sign for it
//
// A program address is found by appending a single "bump" byte to the
// seeds and trying the values 255, 254, … 0 until the hash falls off
// the curve.  The bump is stored alongside the data so that a reader
// can recompute the address with a single hash.
package address
