// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Marketmesh Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/exitwithstatus"
	"golang.org/x/crypto/sha3"

	"github.com/marketmesh/marketd/fault"
)

const (
	rpcCertificateFilename = "rpc.crt"
	rpcPrivateKeyFilename  = "rpc.key"
)

// setup command handler
//
// commands that run to create the certificate files; these commands
// cannot access any internal database or states or the configuration
// file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "version":
		fmt.Println(version)

	default:
		switch command {
		case "help", "h", "?":
		default:
			fmt.Printf("error: no such command: %s\n", command)
		}
		fmt.Printf("usage: %s [--help | -h] [--verbose | -v] [--quiet | -q] [--version | -V] [--config-file=FILE | -c FILE] [command]\n", program)
		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                              (h)       - display this message\n\n")
		fmt.Printf("  version                                     - display program version\n\n")
		fmt.Printf("  gen-rpc-cert                      (rpc)     - create %q and %q in the current directory\n", rpcCertificateFilename, rpcPrivateKeyFilename)
		fmt.Printf("  gen-rpc-cert DIR [IPs...]                   - create certificate files in the specified directory\n")
		fmt.Printf("\n")
	}
	return true
}

// configuration command handler
//
// commands that run after the configuration file has been read
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := arguments[0]

	switch command {
	case "rpc-fingerprint":
		keyPair, err := tls.LoadX509KeyPair(options.ClientRPC.Certificate, options.ClientRPC.PrivateKey)
		if nil != err {
			fmt.Printf("load certificate: %q error: %s\n", options.ClientRPC.Certificate, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("rpc fingerprint: %x\n", sha3.Sum256(keyPair.Certificate[0]))

	default:
		return false
	}
	return true
}

// create a self-signed certificate
func makeSelfSignedCertificate(name string, certificateFileName string, privateKeyFileName string, override bool, extraHosts []string) error {

	if ensureFileExists(certificateFileName) {
		return fault.CertificateFileAlreadyExists
	}

	if ensureFileExists(privateKeyFileName) {
		return fault.KeyFileAlreadyExists
	}

	org := "marketd self signed cert for: " + name
	validUntil := time.Now().Add(10 * 365 * 24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, override, extraHosts)
	if nil != err {
		return err
	}

	if err = ioutil.WriteFile(certificateFileName, cert, 0666); nil != err {
		return err
	}

	if err = ioutil.WriteFile(privateKeyFileName, key, 0600); nil != err {
		os.Remove(certificateFileName)
		return err
	}

	return nil
}

// check if file exists
func ensureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// prepend a directory argument to a default file name
func getFilenameWithDirectory(arguments []string, name string) string {
	if 0 == len(arguments) || "" == arguments[0] {
		return name
	}
	return filepath.Join(arguments[0], name)
}
