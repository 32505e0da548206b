// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package memerecord

import (
	"bytes"
	"crypto/sha256"
	"unicode/utf8"

	"github.com/bitmark-inc/memecanon/fault"
)

// budgets of the fixed size account
const (
	DiscriminatorLength = 8

	MaximumVerdictLength     = 100
	MaximumExternalRefLength = 100
	MaximumMetadataURILength = 100

	// 8 + 32 + 32 + 32 + 4 + 4 + 4 + 1 + 100 + 100
	Space = DiscriminatorLength + 3*DigestLength + 3*4 + 1 + 200

	// bytes used when all strings are empty
	fixedLength = DiscriminatorLength + 3*DigestLength + 4 + 4 + 4 + 4 + 1

	// combined string bytes that fit in Space
	MaximumStringBytes = Space - fixedLength
)

// Namespace - first seed of every record address
var Namespace = []byte("meme")

// Discriminator - identifies account data as a meme record
var Discriminator = accountDiscriminator("MemeCanon")

func accountDiscriminator(name string) [DiscriminatorLength]byte {
	h := sha256.Sum256([]byte("account:" + name))
	d := [DiscriminatorLength]byte{}
	copy(d[:], h[:DiscriminatorLength])
	return d
}

// MemeRecord - the data stored at the derived address of a meme hash
type MemeRecord struct {
	MemeHash    Digest `json:"memeHash"`
	ImageHash   Digest `json:"imageHash"`
	TextHash    Digest `json:"textHash"`
	Verdict     string `json:"verdict"`
	CanonScore  uint32 `json:"canonScore"`
	ExternalRef string `json:"externalRef"`
	MetadataURI string `json:"metadataUri"`
	Bump        uint8  `json:"bump"`
}

// Seeds - the seeds that derive the address of a record
func Seeds(memeHash Digest) [][]byte {
	return [][]byte{Namespace, memeHash[:]}
}

// ValidateFields - check the variable length fields against their budgets
func ValidateFields(verdict string, externalRef string, metadataURI string) error {
	if len(verdict) > MaximumVerdictLength ||
		len(externalRef) > MaximumExternalRefLength ||
		len(metadataURI) > MaximumMetadataURILength ||
		len(verdict)+len(externalRef)+len(metadataURI) > MaximumStringBytes {
		return fault.ErrFieldTooLarge
	}
	if !utf8.ValidString(verdict) || !utf8.ValidString(externalRef) || !utf8.ValidString(metadataURI) {
		return fault.ErrInvalidString
	}
	return nil
}

// Validate - check that the record can be packed
func (record *MemeRecord) Validate() error {
	return ValidateFields(record.Verdict, record.ExternalRef, record.MetadataURI)
}

// Pack - produce the complete Space byte account data
func (record *MemeRecord) Pack() ([]byte, error) {
	if err := record.Validate(); nil != err {
		return nil, err
	}

	buffer := make([]byte, 0, Space)
	buffer = append(buffer, Discriminator[:]...)
	buffer = append(buffer, record.MemeHash[:]...)
	buffer = append(buffer, record.ImageHash[:]...)
	buffer = append(buffer, record.TextHash[:]...)
	buffer = AppendString(buffer, record.Verdict)
	buffer = AppendUint32(buffer, record.CanonScore)
	buffer = AppendString(buffer, record.ExternalRef)
	buffer = AppendString(buffer, record.MetadataURI)
	buffer = append(buffer, record.Bump)

	// zero fill the unused tail
	return buffer[:Space], nil
}

// Unpack - decode account data
func Unpack(data []byte) (*MemeRecord, error) {
	if len(data) < DiscriminatorLength {
		return nil, fault.ErrTruncatedRecord
	}
	if !bytes.Equal(Discriminator[:], data[:DiscriminatorLength]) {
		return nil, fault.ErrInvalidRecord
	}

	r := NewReader(data[DiscriminatorLength:], fault.ErrTruncatedRecord, MaximumStringBytes)
	record := &MemeRecord{}
	r.Digest(&record.MemeHash)
	r.Digest(&record.ImageHash)
	r.Digest(&record.TextHash)
	record.Verdict = r.String()
	record.CanonScore = r.Uint32()
	record.ExternalRef = r.String()
	record.MetadataURI = r.String()
	record.Bump = r.Byte()

	if nil != r.Err() {
		return nil, r.Err()
	}
	return record, nil
}
