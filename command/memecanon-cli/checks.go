// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"
	"os"

	"github.com/bitmark-inc/memecanon/account"
	"github.com/bitmark-inc/memecanon/chain"
	"github.com/bitmark-inc/memecanon/fault"
	"github.com/bitmark-inc/memecanon/memerecord"
)

// command line errors - keep in alphabetic order
var (
	ErrRequiredConnect     = fault.InvalidError("connect is required")
	ErrRequiredDescription = fault.InvalidError("description is required")
	ErrRequiredFingerprint = fault.InvalidError("fingerprint is required")
	ErrRequiredIdentity    = fault.InvalidError("identity is required")
	ErrRequiredVerdict     = fault.InvalidError("verdict is required")
	ErrSelectOne           = fault.InvalidError("exactly one of fingerprint or address is required")
)

// default network is testing
func checkNetwork(network string) (string, error) {
	switch network {
	case "", "testing", "test":
		return chain.Testing, nil
	case "live", "production":
		return chain.Live, nil
	case "local", "regression":
		return chain.Local, nil
	default:
		return "", fault.ErrInvalidChain
	}
}

// identity is required, but not check the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}
	return name, nil
}

// connect is required
func checkConnect(connect string) (string, error) {
	if "" == connect {
		return "", ErrRequiredConnect
	}
	return connect, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}
	return description, nil
}

// key is optional, a fresh key is generated when absent
// otherwise 64 hex chars of seed or 128 hex chars of private key
func checkKey(key string) (*account.KeyPair, error) {
	if "" == key {
		return account.NewKeyPair(rand.Reader)
	}

	k, err := hex.DecodeString(key)
	if nil != err {
		return nil, fault.ErrInvalidPrivateKey
	}
	switch len(k) {
	case account.SeedSize:
		return account.KeyPairFromSeed(k)
	case account.PrivateKeySize:
		return account.KeyPairFromPrivateKey(k)
	default:
		return nil, fault.ErrInvalidKeyLength
	}
}

// fingerprint is required
func checkFingerprint(fingerprint string) (memerecord.Digest, error) {
	if "" == fingerprint {
		return memerecord.Digest{}, ErrRequiredFingerprint
	}
	return memerecord.DigestFromHex(fingerprint)
}

// verdict is required
func checkVerdict(verdict string) (string, error) {
	if "" == verdict {
		return "", ErrRequiredVerdict
	}
	return verdict, nil
}

// true if a directory, error if it does not exist
func checkFileExists(name string) (bool, error) {
	info, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return info.IsDir(), nil
}
