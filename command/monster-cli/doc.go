// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// monster-cli - issue, transfer and inspect monsters in a local ledger
//
// the Lua configuration file names the issuer account, the leveldb
// database, the identity file (names for accounts) and the key file
// (named private keys used for signing).
//
//   monster-cli -c monsters.conf generate -n alice
//   monster-cli -c monsters.conf issue -o alice -i images/dragon.png
//   monster-cli -c monsters.conf transfer -t <id> -f alice -r bob
//   monster-cli -c monsters.conf provenance -t <id>
//   monster-cli -c monsters.conf watch
package main
