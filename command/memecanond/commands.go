// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/memecanon/address"
	"github.com/bitmark-inc/memecanon/chain"
	"github.com/bitmark-inc/memecanon/ledger"
	"github.com/bitmark-inc/memecanon/memerecord"
	"github.com/bitmark-inc/memecanon/registry"
	"github.com/bitmark-inc/memecanon/rpc/certificate"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
)

// setup command handler
//
// commands that run to create certificate files or compute addresses
// these commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.MakeSelfSigned("rpc", certificateFilename, privateKeyFilename, addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "derive", "d":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing fingerprint argument")
		}
		fingerprint, err := memerecord.DigestFromHex(arguments[0])
		if nil != err {
			exitwithstatus.Message("fingerprint: %q  error: %s", arguments[0], err)
		}
		a, bump, err := address.FindProgramAddress(memerecord.Seeds(fingerprint), registry.ProgramId)
		if nil != err {
			exitwithstatus.Message("derive error: %s", err)
		}
		fmt.Printf("address: %s\nbump: %d\n", a, bump)

	case "start", "run":
		return false // continue processing

	case "record", "r", "airdrop", "a":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  derive FINGERPRINT         (d)      - display the record address of a fingerprint\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  record FINGERPRINT         (r)      - dump a registered record as JSON\n")
		fmt.Printf("\n")

		fmt.Printf("  airdrop ADDRESS LAMPORTS   (a)      - fund an account on a test chain\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the ledger is open so these commands can read and/or change it
func processDataCommand(log *logger.L, arguments []string, options *Configuration, program *registry.Program, l ledger.Handle) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "record", "r":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing fingerprint argument")
		}
		fingerprint, err := memerecord.DigestFromHex(arguments[0])
		if nil != err {
			exitwithstatus.Message("fingerprint: %q  error: %s", arguments[0], err)
		}
		a, record, err := program.GetByFingerprint(fingerprint)
		if nil != err {
			exitwithstatus.Message("record: %s  error: %s", fingerprint, err)
		}
		s, err := json.MarshalIndent(struct {
			Address address.Address        `json:"address"`
			Record  *memerecord.MemeRecord `json:"record"`
		}{a, record}, "", "  ")
		if nil != err {
			exitwithstatus.Message("record JSON error: %s", err)
		}
		fmt.Printf("%s\n", s)

	case "airdrop", "a":
		if !chain.AirdropAllowed(options.Chain) {
			exitwithstatus.Message("error: airdrop not available on chain: %s", options.Chain)
		}
		if len(arguments) < 2 {
			exitwithstatus.Message("missing address or lamports argument")
		}
		a, err := address.FromBase58(arguments[0])
		if nil != err {
			exitwithstatus.Message("address: %q  error: %s", arguments[0], err)
		}
		lamports, err := strconv.ParseUint(arguments[1], 10, 64)
		if nil != err {
			exitwithstatus.Message("error in lamports: %s", err)
		}
		balance, err := l.Airdrop(a, lamports)
		if nil != err {
			exitwithstatus.Message("airdrop error: %s", err)
		}
		log.Infof("airdrop: %d to: %s", lamports, a)
		fmt.Printf("balance: %d\n", balance)

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

// get the directory from the first argument, default is current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
