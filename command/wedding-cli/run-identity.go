// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/weddingd/chain"
	"github.com/bitmark-inc/weddingd/command/wedding-cli/configuration"
	"github.com/bitmark-inc/weddingd/keypair"
)

type generateReply struct {
	Seed    string `json:"seed"`
	Account string `json:"account"`
}

func runGenerate(c *cli.Context) error {

	network, err := checkNetwork(c.GlobalString("network"))
	if nil != err {
		return err
	}

	seed, err := keypair.NewSeed(chain.Live != network)
	if nil != err {
		return err
	}
	k, err := keypair.FromSeed(seed)
	if nil != err {
		return err
	}

	return printJson(c.App.Writer, generateReply{
		Seed:    seed,
		Account: k.Account.String(),
	})
}

// either an explicit seed or a freshly generated one
func selectSeed(seed string, generate bool, network string) (string, error) {
	if "" != seed {
		return checkSeed(seed, network)
	}
	if generate {
		return keypair.NewSeed(chain.Live != network)
	}
	return "", ErrRequiredSeedOrNew
}

func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	connect, err := checkConnect(c.String("connect"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	seed, err := selectSeed(c.String("seed"), c.Bool("new"), m.chain)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "config: %s\n", m.file)
		fmt.Fprintf(m.e, "chain: %s\n", m.chain)
		fmt.Fprintf(m.e, "connect: %s\n", connect)
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
	}

	// create the folder hierarchy for configuration if not existing
	configDir := path.Dir(m.file)
	d, err := checkFileExists(configDir)
	if nil != err {
		if err := os.MkdirAll(configDir, 0o750); nil != err {
			return err
		}
	} else if !d {
		return fmt.Errorf("path: %q is not a directory", configDir)
	}

	config := &configuration.Configuration{
		DefaultIdentity: name,
		Chain:           m.chain,
		Connections:     strings.Split(connect, ","),
		Identities:      make(map[string]configuration.Identity),
	}

	password, err := newPassword(c.GlobalString("password"))
	if nil != err {
		return err
	}

	err = config.AddIdentity(name, description, seed, password)
	if nil != err {
		return err
	}

	m.config = config
	m.save = true

	return nil
}

func runAdd(c *cli.Context) error {

	m, err := getMetadata(c)
	if nil != err {
		return err
	}

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	if acc := c.String("account"); "" != acc {
		err = m.config.AddReceiveOnlyIdentity(name, description, acc)
		if nil != err {
			return err
		}
		m.save = true
		return nil
	}

	seed, err := selectSeed(c.String("seed"), c.Bool("new"), m.chain)
	if nil != err {
		return err
	}

	password, err := newPassword(c.GlobalString("password"))
	if nil != err {
		return err
	}

	err = m.config.AddIdentity(name, description, seed, password)
	if nil != err {
		return err
	}
	m.save = true

	return nil
}

func runList(c *cli.Context) error {

	m, err := getMetadata(c)
	if nil != err {
		return err
	}

	identities := m.config.Identities

	names := make([]string, 0, len(identities))
	for name := range identities {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		flag := "--"
		if len(identities[name].Salt) > 0 {
			flag = "SK"
		}
		if name == m.config.DefaultIdentity {
			flag += "*"
		} else {
			flag += " "
		}
		fmt.Fprintf(m.w, "%s %-20s  %s  %q\n", flag, name, identities[name].Account, identities[name].Description)
	}

	return nil
}
