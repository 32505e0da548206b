// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/memecanon/fault"
	"github.com/bitmark-inc/memecanon/storage"
)

// configure for testing
func setup(t *testing.T) string {
	directory, err := ioutil.TempDir("", "storage-test")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	err = storage.Initialise(filepath.Join(directory, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	return directory
}

// post test cleanup
func teardown(directory string) {
	storage.Finalise()
	os.RemoveAll(directory)
}

func TestBatchCommit(t *testing.T) {
	directory := setup(t)
	defer teardown(directory)

	key := []byte("key-one")

	assert.False(t, storage.Pool.TestData.Has(key), "key exists before write")
	assert.Nil(t, storage.Pool.TestData.Get(key), "value exists before write")

	batch := storage.NewBatch()
	batch.Put(storage.Pool.TestData, key, []byte("data-one"))
	batch.PutN(storage.Pool.Balances, key, 123456789)
	assert.Equal(t, 2, batch.Len(), "wrong batch length")

	// nothing visible until commit
	assert.False(t, storage.Pool.TestData.Has(key), "uncommitted write visible")

	err := batch.Commit()
	assert.Nil(t, err, "commit error")
	assert.Equal(t, 0, batch.Len(), "batch not reset")

	assert.True(t, storage.Pool.TestData.Has(key), "key missing after commit")
	assert.Equal(t, []byte("data-one"), storage.Pool.TestData.Get(key), "wrong value")

	n, found := storage.Pool.Balances.GetN(key)
	assert.True(t, found, "balance missing")
	assert.Equal(t, uint64(123456789), n, "wrong balance")

	// pools are separate tables
	assert.False(t, storage.Pool.Accounts.Has(key), "key leaked into another pool")
	_, found = storage.Pool.Accounts.GetN(key)
	assert.False(t, found, "balance leaked into another pool")
}

func TestDoubleInitialise(t *testing.T) {
	directory := setup(t)
	defer teardown(directory)

	err := storage.Initialise(filepath.Join(directory, "other.leveldb"), storage.ReadWrite)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise accepted")
}

func TestReadOnlyMissingDatabase(t *testing.T) {
	directory, err := ioutil.TempDir("", "storage-test")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	defer os.RemoveAll(directory)

	err = storage.Initialise(filepath.Join(directory, "missing.leveldb"), storage.ReadOnly)
	assert.NotNil(t, err, "read only open of missing database succeeded")

	// a failed open leaves storage usable for a later initialise
	err = storage.Initialise(filepath.Join(directory, "present.leveldb"), storage.ReadWrite)
	assert.Nil(t, err, "initialise after failure")
	storage.Finalise()
}

func TestPersistence(t *testing.T) {
	directory, err := ioutil.TempDir("", "storage-test")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	defer os.RemoveAll(directory)

	name := filepath.Join(directory, "persist.leveldb")
	err = storage.Initialise(name, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	batch := storage.NewBatch()
	batch.Put(storage.Pool.Accounts, []byte("account"), []byte("data"))
	assert.Nil(t, batch.Commit(), "commit error")
	storage.Finalise()

	err = storage.Initialise(name, storage.ReadOnly)
	if nil != err {
		t.Fatalf("storage reopen error: %s", err)
	}
	defer storage.Finalise()
	assert.Equal(t, []byte("data"), storage.Pool.Accounts.Get([]byte("account")), "data lost on reopen")
}
