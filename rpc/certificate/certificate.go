// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/weddingd/fault"
)

// how long a generated certificate remains valid
const validity = 10 * 365 * 24 * time.Hour

// Fingerprint - SHA3-256 of a DER certificate
type Fingerprint [32]byte

// Get - load a certificate and key file pair into a server TLS configuration
func Get(log *logger.L, name string, certificateFile string, keyFile string) (*tls.Config, Fingerprint, error) {
	keyPair, err := tls.LoadX509KeyPair(certificateFile, keyFile)
	if nil != err {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, Fingerprint{}, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	return tlsConfiguration, Compute(keyPair.Certificate[0]), nil
}

// Compute - the fingerprint of a DER certificate
//
// openssl x509 -outform DER -in weddingd-local-rpc.crt | sha3sum -a 256
func Compute(certificate []byte) Fingerprint {
	return sha3.Sum256(certificate)
}

// MakeSelfSigned - create a self-signed certificate and private key file
//
// neither file may already exist
func MakeSelfSigned(name string, certificateFile string, keyFile string, extraHosts []string) error {
	if exists(certificateFile) {
		return fault.ErrCertificateFileAlreadyExists
	}
	if exists(keyFile) {
		return fault.ErrKeyFileAlreadyExists
	}

	org := "weddingd self signed cert for: " + name
	validUntil := time.Now().Add(validity)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, false, extraHosts)
	if nil != err {
		return err
	}

	if err := os.WriteFile(certificateFile, cert, 0644); nil != err {
		return err
	}
	if err := os.WriteFile(keyFile, key, 0600); nil != err {
		_ = os.Remove(certificateFile)
		return err
	}
	return nil
}

func exists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}
