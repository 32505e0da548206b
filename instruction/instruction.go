// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction - encode and decode the instruction data of the
// registry program
//
// Data starts with an eight byte discriminator, the first eight bytes
// of SHA-256("global:" ++ snake case name), followed by the arguments:
// digests as raw 32 bytes, integers as little endian u32 and strings as
// a little endian u32 length followed by UTF-8 bytes.
package instruction

import (
	"bytes"
	"crypto/sha256"

	"github.com/bitmark-inc/memecanon/fault"
	"github.com/bitmark-inc/memecanon/memerecord"
)

// DiscriminatorLength - bytes of instruction selector
const DiscriminatorLength = 8

// Discriminator - instruction selector
type Discriminator [DiscriminatorLength]byte

// account positions of the register_meme instruction
const (
	RegisterMemeAccount      = 0
	RegisterSubmitterAccount = 1
	RegisterSystemAccount    = 2
	RegisterMemeAccountCount = 3
)

// the known instructions
var (
	InitialiseDiscriminator   = NewDiscriminator("initialize")
	RegisterMemeDiscriminator = NewDiscriminator("register_meme")
)

// NewDiscriminator - compute the selector for an instruction name
func NewDiscriminator(name string) Discriminator {
	h := sha256.Sum256([]byte("global:" + name))
	d := Discriminator{}
	copy(d[:], h[:DiscriminatorLength])
	return d
}

// Instruction - generic instruction interface
type Instruction interface {
	Name() string
	Pack() []byte
}

// Initialise - the bootstrap no-op
type Initialise struct{}

// RegisterMeme - arguments of a registration
type RegisterMeme struct {
	MemeHash    memerecord.Digest `json:"memeHash"`
	ImageHash   memerecord.Digest `json:"imageHash"`
	TextHash    memerecord.Digest `json:"textHash"`
	Verdict     string            `json:"verdict"`
	CanonScore  uint32            `json:"canonScore"`
	ExternalRef string            `json:"externalRef"`
	MetadataURI string            `json:"metadataUri"`
}

// Name - instruction name
func (Initialise) Name() string { return "initialize" }

// Name - instruction name
func (*RegisterMeme) Name() string { return "register_meme" }

// Pack - encode the bootstrap instruction
func (Initialise) Pack() []byte {
	return append([]byte{}, InitialiseDiscriminator[:]...)
}

// Pack - encode a registration
//
// field budgets are not checked here, the program enforces them
func (register *RegisterMeme) Pack() []byte {
	buffer := make([]byte, 0, DiscriminatorLength+3*memerecord.DigestLength+16+len(register.Verdict)+len(register.ExternalRef)+len(register.MetadataURI))
	buffer = append(buffer, RegisterMemeDiscriminator[:]...)
	buffer = append(buffer, register.MemeHash[:]...)
	buffer = append(buffer, register.ImageHash[:]...)
	buffer = append(buffer, register.TextHash[:]...)
	buffer = memerecord.AppendString(buffer, register.Verdict)
	buffer = memerecord.AppendUint32(buffer, register.CanonScore)
	buffer = memerecord.AppendString(buffer, register.ExternalRef)
	buffer = memerecord.AppendString(buffer, register.MetadataURI)
	return buffer
}

// Unpack - decode instruction data
func Unpack(data []byte) (Instruction, error) {
	if len(data) < DiscriminatorLength {
		return nil, fault.ErrTruncatedInstruction
	}

	selector := data[:DiscriminatorLength]
	arguments := data[DiscriminatorLength:]

	switch {
	case bytes.Equal(selector, InitialiseDiscriminator[:]):
		return Initialise{}, nil

	case bytes.Equal(selector, RegisterMemeDiscriminator[:]):
		r := memerecord.NewReader(arguments, fault.ErrTruncatedInstruction, 0)
		register := &RegisterMeme{}
		r.Digest(&register.MemeHash)
		r.Digest(&register.ImageHash)
		r.Digest(&register.TextHash)
		register.Verdict = r.String()
		register.CanonScore = r.Uint32()
		register.ExternalRef = r.String()
		register.MetadataURI = r.String()
		if nil != r.Err() {
			return nil, r.Err()
		}
		return register, nil

	default:
		return nil, fault.ErrUnknownInstruction
	}
}
