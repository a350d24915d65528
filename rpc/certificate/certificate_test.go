// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/weddingd/fault"
	"github.com/bitmark-inc/weddingd/fixtures"
	"github.com/bitmark-inc/weddingd/rpc/certificate"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestMakeAndGet(t *testing.T) {
	dir := t.TempDir()
	cer := filepath.Join(dir, "rpc.crt")
	key := filepath.Join(dir, "rpc.key")

	err := certificate.MakeSelfSigned("test", cer, key, []string{"127.0.0.1"})
	require.Nil(t, err, "make certificate")

	err = certificate.MakeSelfSigned("test", cer, key, nil)
	assert.Equal(t, fault.ErrCertificateFileAlreadyExists, err, "overwrote certificate")

	tlsConfig, fingerprint, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cer, key)
	require.Nil(t, err, "wrong Get")

	pair, err := tls.LoadX509KeyPair(cer, key)
	require.Nil(t, err, "load pair")
	assert.Equal(t, certificate.Compute(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair.Certificate, tlsConfig.Certificates[0].Certificate, "wrong config")
}

func TestGetMissingFiles(t *testing.T) {
	dir := t.TempDir()
	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", filepath.Join(dir, "x.crt"), filepath.Join(dir, "x.key"))
	assert.NotNil(t, err, "missing files accepted")
}
