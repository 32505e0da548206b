// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"io"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/memecanon/address"
	"github.com/bitmark-inc/memecanon/fault"
)

// sizes of the key material
const (
	PublicKeySize  = ed25519.PublicKeySize
	PrivateKeySize = ed25519.PrivateKeySize
	SeedSize       = ed25519.SeedSize
)

// KeyPair - a signing key and its public half
type KeyPair struct {
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
}

// NewKeyPair - create a random key pair
func NewKeyPair(random io.Reader) (*KeyPair, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(random)
	if nil != err {
		return nil, err
	}
	return &KeyPair{
		PublicKey:  publicKey,
		PrivateKey: privateKey,
	}, nil
}

// KeyPairFromSeed - regenerate a key pair from its 32 byte seed
func KeyPairFromSeed(seed []byte) (*KeyPair, error) {
	if SeedSize != len(seed) {
		return nil, fault.ErrInvalidKeyLength
	}
	privateKey := ed25519.NewKeyFromSeed(seed)
	publicKey := make([]byte, PublicKeySize)
	copy(publicKey, privateKey[SeedSize:])

	return &KeyPair{
		PublicKey:  publicKey,
		PrivateKey: privateKey,
	}, nil
}

// KeyPairFromPrivateKey - accept a 64 byte private key, and check
// that its embedded public key matches the seed
func KeyPairFromPrivateKey(privateKey []byte) (*KeyPair, error) {
	if PrivateKeySize != len(privateKey) {
		return nil, fault.ErrInvalidKeyLength
	}
	keyPair, err := KeyPairFromSeed(privateKey[:SeedSize])
	if nil != err {
		return nil, err
	}
	if !bytes.Equal(keyPair.PrivateKey, privateKey) {
		return nil, fault.ErrInvalidPrivateKey
	}
	return keyPair, nil
}

// Address - the ledger address of this key pair
func (keyPair *KeyPair) Address() address.Address {
	a := address.Address{}
	copy(a[:], keyPair.PublicKey)
	return a
}

// Sign - sign a message
func (keyPair *KeyPair) Sign(message []byte) Signature {
	return ed25519.Sign(keyPair.PrivateKey, message)
}
