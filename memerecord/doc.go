// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package memerecord - the fixed layout record stored for each
// registered meme
//
// The account holding a record is allocated once with Space bytes and
// never resized.  Layout (all integers little endian):
//
//   offset  size  field
//        0     8  discriminator = SHA-256("account:MemeCanon")[:8]
//        8    32  meme hash (content fingerprint)
//       40    32  image hash
//       72    32  text hash
//      104     4  verdict length      ++ verdict bytes
//        …     4  canon score
//        …     4  external ref length ++ external ref bytes
//        …     4  metadata uri length ++ metadata uri bytes
//        …     1  bump
//        …     …  zero padding up to Space
//
// Each string is limited to 100 bytes and together they must fit in
// the space left after the fixed fields, i.e. 196 bytes.
package memerecord
