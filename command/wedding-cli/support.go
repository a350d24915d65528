// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/weddingd/command/wedding-cli/configuration"
	"github.com/bitmark-inc/weddingd/command/wedding-cli/rpccalls"
	"github.com/bitmark-inc/weddingd/keypair"
)

// fetch the metadata prepared by the Before hook
func getMetadata(c *cli.Context) (*metadata, error) {
	m, ok := c.App.Metadata["config"].(*metadata)
	if !ok || nil == m.config {
		return nil, ErrUnconfiguredConfigFile
	}
	return m, nil
}

// the global identity flag or the configured default
func currentIdentity(c *cli.Context, config *configuration.Configuration) (string, error) {
	name := c.GlobalString("identity")
	if "" == name {
		name = config.DefaultIdentity
	}
	return checkName(name)
}

// decrypt the current identity
func currentSigner(c *cli.Context, m *metadata) (*keypair.KeyPair, error) {
	name, err := currentIdentity(c, m.config)
	if nil != err {
		return nil, err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
	}
	return promptAndCheckPassword(m.config, c.GlobalString("password"), name)
}

// connect to the first configured weddingd
func connect(m *metadata) (*rpccalls.Client, error) {
	if 0 == len(m.config.Connections) {
		return nil, ErrNoConnection
	}
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.config.Connections[0])
	}
	return rpccalls.NewClient(m.config.Connections[0], m.verbose, m.e)
}
