// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/memecanon/address"
	"github.com/bitmark-inc/memecanon/fault"
)

const programIdText = "EWDGViEZrieLvQ544usdPVLazkaUdaVhBPAqoEG3HA7b"

func programId(t *testing.T) address.Address {
	a, err := address.FromBase58(programIdText)
	if nil != err {
		t.Fatalf("program id decode error: %s", err)
	}
	return a
}

func TestBase58(t *testing.T) {
	a := programId(t)
	assert.Equal(t, programIdText, a.String(), "wrong base58 round trip")

	_, err := address.FromBase58("0OIl")
	assert.Equal(t, fault.ErrInvalidAddress, err, "invalid base58 digits accepted")

	_, err = address.FromBase58("3yZe7d")
	assert.Equal(t, fault.ErrInvalidAddress, err, "short address accepted")

	_, err = address.FromBytes(make([]byte, 31))
	assert.Equal(t, fault.ErrInvalidAddress, err, "31 bytes accepted")
}

func TestJSON(t *testing.T) {
	item := struct {
		Address address.Address `json:"address"`
	}{
		Address: programId(t),
	}

	buffer, err := json.Marshal(item)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `{"address":"`+programIdText+`"}`, string(buffer), "wrong JSON")

	item.Address = address.Zero
	err = json.Unmarshal(buffer, &item)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, programId(t), item.Address, "wrong unmarshalled address")
}

func TestPublicKeyIsOnCurve(t *testing.T) {
	for i := 0; i < 10; i += 1 {
		publicKey, _, err := ed25519.GenerateKey(rand.Reader)
		if nil != err {
			t.Fatalf("generate key error: %s", err)
		}
		a, _ := address.FromBytes(publicKey)
		assert.True(t, address.IsOnCurve(a), "%d: public key not on curve: %s", i, a)
	}
}

func TestFindProgramAddressIsDeterministic(t *testing.T) {
	pid := programId(t)
	fingerprint := bytes.Repeat([]byte{0x11}, 32)
	seeds := [][]byte{[]byte("meme"), fingerprint}

	a1, bump1, err := address.FindProgramAddress(seeds, pid)
	assert.Nil(t, err, "first derivation error")
	a2, bump2, err := address.FindProgramAddress(seeds, pid)
	assert.Nil(t, err, "second derivation error")

	assert.Equal(t, a1, a2, "address differs")
	assert.Equal(t, bump1, bump2, "bump differs")
	assert.False(t, address.IsOnCurve(a1), "program address on curve")

	assert.True(t, address.Verify(a1, seeds, bump1, pid), "stored bump does not verify")
	assert.False(t, address.Verify(a1, seeds, bump1-1, pid), "wrong bump verifies")
	assert.False(t, address.Verify(a1, seeds, bump1, address.Zero), "wrong program verifies")

	created, err := address.CreateProgramAddress(append(seeds, []byte{bump1}), pid)
	assert.Nil(t, err, "create with found bump error")
	assert.Equal(t, a1, created, "create with found bump differs")

	// the seed slice must not be modified by the search
	assert.Equal(t, 2, len(seeds), "seeds modified")
}

// published program address vectors of the host ledger
func TestCreateProgramAddressKnownAnswers(t *testing.T) {
	pid, err := address.FromBase58("BPFLoaderUpgradeab1e11111111111111111111111")
	assert.Nil(t, err, "loader program id")

	items := []struct {
		seeds    [][]byte
		expected string
	}{
		{
			seeds:    [][]byte{[]byte(""), {1}},
			expected: "BwqrghZA2htAcqq8dzP1WDAhTXYTYWj7CHxF5j7TDBAe",
		},
		{
			seeds:    [][]byte{[]byte("Talking"), []byte("Squirrels")},
			expected: "2fnQrngrQT4SeLcdToJAD96phoEjNL2man2kfRLCASVk",
		},
	}

	for i, item := range items {
		a, err := address.CreateProgramAddress(item.seeds, pid)
		assert.Nil(t, err, "%d: create error", i)
		assert.Equal(t, item.expected, a.String(), "%d: address", i)
	}
}

func TestDistinctSeedsDistinctAddresses(t *testing.T) {
	pid := programId(t)
	seen := make(map[address.Address]int)
	for i := 0; i < 64; i += 1 {
		fingerprint := bytes.Repeat([]byte{byte(i)}, 32)
		a, _, err := address.FindProgramAddress([][]byte{[]byte("meme"), fingerprint}, pid)
		if nil != err {
			t.Fatalf("%d: derivation error: %s", i, err)
		}
		if j, ok := seen[a]; ok {
			t.Fatalf("%d: address: %s collides with: %d", i, a, j)
		}
		seen[a] = i
	}
}

func TestSeedLimits(t *testing.T) {
	pid := programId(t)

	_, err := address.CreateProgramAddress([][]byte{make([]byte, 33)}, pid)
	assert.Equal(t, fault.ErrMaxSeedLengthExceeded, err, "long seed accepted")

	seeds := make([][]byte, address.MaximumSeeds)
	for i := range seeds {
		seeds[i] = []byte{byte(i)}
	}
	_, _, err = address.FindProgramAddress(seeds, pid)
	assert.Equal(t, fault.ErrMaxSeedLengthExceeded, err, "no room for bump seed")
}
