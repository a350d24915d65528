// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// wedding-cli manages local identities and drives weddingd over RPC
//
// identities are kept in $XDG_CONFIG_HOME/wedding-cli/<chain>-wedding-cli.json
// with seeds encrypted under a password.
//
//   wedding-cli -n local -i alice setup -c 127.0.0.1:2130 -d "Alice" -N
//   wedding-cli -n local -i bob add -d "Bob" -N
//   wedding-cli -n local airdrop
//   wedding-cli -n local setup-wedding -a alice -b bob
//   wedding-cli -n local setup-partner -o bob --name Alice --vows "always"
//   wedding-cli -n local answer -o bob --yes
//   wedding-cli -n local wedding -b bob
package main
