// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package memerecord

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/bitmark-inc/memecanon/fault"
)

// AppendUint32 - append a little endian u32
func AppendUint32(buffer []byte, value uint32) []byte {
	b := [4]byte{}
	binary.LittleEndian.PutUint32(b[:], value)
	return append(buffer, b[:]...)
}

// AppendString - append a u32 length prefix and the string bytes
func AppendString(buffer []byte, s string) []byte {
	buffer = AppendUint32(buffer, uint32(len(s)))
	return append(buffer, s...)
}

// Reader - sequential decoder of the same layout, the first error sticks
type Reader struct {
	buffer    []byte
	truncated error
	maximum   uint32
	err       error
}

// NewReader - decode buffer, reporting a short buffer as truncated and
// rejecting string lengths above maximum (zero for no limit)
func NewReader(buffer []byte, truncated error, maximum uint32) *Reader {
	return &Reader{
		buffer:    buffer,
		truncated: truncated,
		maximum:   maximum,
	}
}

// Err - the first error encountered
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) take(n uint64) []byte {
	if nil != r.err {
		return nil
	}
	if n > uint64(len(r.buffer)) {
		r.err = r.truncated
		return nil
	}
	b := r.buffer[:n]
	r.buffer = r.buffer[n:]
	return b
}

// Digest - read a raw 32 byte digest
func (r *Reader) Digest(d *Digest) {
	if b := r.take(DigestLength); nil != b {
		copy(d[:], b)
	}
}

// Uint32 - read a little endian u32
func (r *Reader) Uint32() uint32 {
	if b := r.take(4); nil != b {
		return binary.LittleEndian.Uint32(b)
	}
	return 0
}

// String - read a length prefixed UTF-8 string
func (r *Reader) String() string {
	n := r.Uint32()
	if nil == r.err && 0 != r.maximum && n > r.maximum {
		r.err = fault.ErrInvalidRecord
		return ""
	}
	b := r.take(uint64(n))
	if nil == b {
		return ""
	}
	if !utf8.Valid(b) {
		r.err = fault.ErrInvalidString
		return ""
	}
	return string(b)
}

// Byte - read a single byte
func (r *Reader) Byte() uint8 {
	if b := r.take(1); nil != b {
		return b[0]
	}
	return 0
}
