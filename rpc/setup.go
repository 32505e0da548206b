// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"io/ioutil"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/memecanon/fault"
	"github.com/bitmark-inc/memecanon/ledger"
	"github.com/bitmark-inc/memecanon/registry"
	"github.com/bitmark-inc/memecanon/rpc/certificate"
	"github.com/bitmark-inc/memecanon/rpc/listeners"
	"github.com/bitmark-inc/memecanon/rpc/server"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex

	log *logger.L

	listener    listeners.Listener
	connections *listeners.Connections

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the client RPC listeners
func Initialise(configuration *listeners.RPCConfiguration, version string, chainName string, program *registry.Program, l ledger.Handle) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	certificateData, err := ioutil.ReadFile(configuration.Certificate)
	if nil != err {
		log.Errorf("read certificate: %q  error: %s", configuration.Certificate, err)
		return err
	}
	keyData, err := ioutil.ReadFile(configuration.PrivateKey)
	if nil != err {
		log.Errorf("read private key: %q  error: %s", configuration.PrivateKey, err)
		return err
	}

	tlsConfig, fingerprint, err := certificate.Get(log, tlsName, string(certificateData), string(keyData))
	if nil != err {
		return err
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", tlsName, fingerprint)

	if configuration.MaximumConnections < 1 {
		log.Errorf("invalid %s maximum connection limit: %d", tlsName, configuration.MaximumConnections)
		return fault.ErrMissingParameters
	}
	connections := listeners.NewConnections(configuration.MaximumConnections)

	rpcListener, err := listeners.NewRPC(
		configuration,
		log,
		connections,
		server.Create(log, version, chainName, program, l, connections),
		tlsConfig,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		_ = rpcListener.Close()
		return err
	}

	globalData.listener = rpcListener
	globalData.connections = connections

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop accepting connections
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	err := globalData.listener.Close()

	// finally...
	globalData.listener = nil
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return err
}
