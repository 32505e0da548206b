// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/memecanon/fault"
	"github.com/bitmark-inc/memecanon/fixtures"
	"github.com/bitmark-inc/memecanon/rpc/certificate"
)

func TestMakeSelfSignedAndGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	directory, err := ioutil.TempDir("", "certificate-test")
	assert.Nil(t, err, "temporary directory")
	defer os.RemoveAll(directory)

	certificateFile := filepath.Join(directory, "rpc.crt")
	keyFile := filepath.Join(directory, "rpc.key")

	err = certificate.MakeSelfSigned("test", certificateFile, keyFile, []string{"127.0.0.1"})
	assert.Nil(t, err, "make certificate")

	err = certificate.MakeSelfSigned("test", certificateFile, keyFile, nil)
	assert.Equal(t, fault.ErrCertificateFileAlreadyExists, err, "overwrite")

	cer, err := ioutil.ReadFile(certificateFile)
	assert.Nil(t, err, "read certificate")
	key, err := ioutil.ReadFile(keyFile)
	assert.Nil(t, err, "read key")

	tlsConfig, fingerprint, err := certificate.Get(logger.New(fixtures.LogCategory), "test", string(cer), string(key))
	assert.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair(cer, key)

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair, tlsConfig.Certificates[0], "wrong config")
}

func TestGetInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", "not a certificate", "not a key")
	assert.NotNil(t, err, "invalid pair")
}
