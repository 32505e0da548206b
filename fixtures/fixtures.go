// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - common setup for tests
package fixtures

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/memecanon/account"
	"github.com/bitmark-inc/memecanon/memerecord"
	"github.com/bitmark-inc/memecanon/storage"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// SetupTestLogger - start a logger writing to a local directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop the logger and remove its files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// SetupTestStorage - open a fresh database in a temporary directory
func SetupTestStorage(t *testing.T) string {
	directory, err := ioutil.TempDir("", "memecanon-test")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	err = storage.Initialise(filepath.Join(directory, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		os.RemoveAll(directory)
		t.Fatalf("storage initialise error: %s", err)
	}
	return directory
}

// TeardownTestStorage - close and remove the database
func TeardownTestStorage(directory string) {
	storage.Finalise()
	os.RemoveAll(directory)
}

// KeyPair - deterministic key pair
func KeyPair(t *testing.T, b byte) *account.KeyPair {
	k, err := account.KeyPairFromSeed(bytes.Repeat([]byte{b}, account.SeedSize))
	if nil != err {
		t.Fatalf("key pair error: %s", err)
	}
	return k
}

// Digest - a digest with every byte set to b
func Digest(b byte) memerecord.Digest {
	d := memerecord.Digest{}
	copy(d[:], bytes.Repeat([]byte{b}, memerecord.DigestLength))
	return d
}

// TLSConfig - server configuration with a fresh self-signed certificate
func TLSConfig(t *testing.T) *tls.Config {
	cert, key, err := certgen.NewTLSCertPair("memecanon test", time.Now().Add(time.Hour), false, []string{"127.0.0.1"})
	if nil != err {
		t.Fatalf("certificate error: %s", err)
	}
	keyPair, err := tls.X509KeyPair(cert, key)
	if nil != err {
		t.Fatalf("key pair error: %s", err)
	}
	return &tls.Config{
		Certificates: []tls.Certificate{keyPair},
	}
}
