// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - ed25519 key pairs of the parties that sign
// transactions
//
// The account address is the raw 32 byte public key, so it lives in
// the same address space as program derived addresses but is always
// a point on the curve.
package account
