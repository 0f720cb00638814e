// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package monster_test

import (
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/monsterchain/account"
	"github.com/bitmark-inc/monsterchain/fault"
	"github.com/bitmark-inc/monsterchain/monster"
)

func makeSecp256k1Owners(t *testing.T, seeds ...byte) []*account.PrivateKey {
	owners := make([]*account.PrivateKey, len(seeds))
	for i, seed := range seeds {
		owners[i] = makeKey(t, account.SECP256K1, seed)
	}
	return owners
}

// minimal DER integer
func derInteger(x *big.Int) []byte {
	b := x.Bytes()
	if 0 == len(b) || 0 != b[0]&0x80 {
		b = append([]byte{0x00}, b...)
	}
	return append([]byte{0x02, byte(len(b))}, b...)
}

// re-encode a DER signature (r, s) as (r, N-s)
func flipS(t *testing.T, signature account.Signature) account.Signature {
	if len(signature) < 8 || 0x30 != signature[0] || 0x02 != signature[2] {
		t.Fatalf("not a DER signature: %x", signature)
	}
	rLength := int(signature[3])
	r := new(big.Int).SetBytes(signature[4 : 4+rLength])
	sOffset := 4 + rLength
	sLength := int(signature[sOffset+1])
	s := new(big.Int).SetBytes(signature[sOffset+2 : sOffset+2+sLength])

	highS := new(big.Int).Sub(btcec.S256().Params().N, s)

	body := append(derInteger(r), derInteger(highS)...)
	return append([]byte{0x30, byte(len(body))}, body...)
}

func TestValidateTamperedSignatureSecp256k1(t *testing.T) {
	issuer := makeKey(t, account.SECP256K1, 0x70)
	owners := makeSecp256k1Owners(t, 0x71, 0x72, 0x73, 0x74)
	original := makeChain(t, issuer, owners)

	assert.Nil(t, monster.Validate(original, issuer.Account()), "untampered chain")

	for i := range original.Transfers {
		m := original.Copy()
		m.Transfers[i].Signature[5] ^= 0x01

		err := monster.Validate(m, issuer.Account())
		assert.Equal(t, i, fault.ChainIndex(err), "%d: flipped bit", i)
	}

	for i := range original.Transfers {
		m := original.Copy()
		m.Transfers[i].Signature = m.Transfers[i].Signature[:10]

		err := monster.Validate(m, issuer.Account())
		assert.Equal(t, i, fault.ChainIndex(err), "%d: truncated signature", i)
	}
}

func TestValidateHighSSignature(t *testing.T) {
	issuer := makeKey(t, account.SECP256K1, 0x60)
	owners := makeSecp256k1Owners(t, 0x61, 0x62)
	original := makeChain(t, issuer, owners)

	for i := range original.Transfers {
		m := original.Copy()
		m.Transfers[i].Signature = flipS(t, m.Transfers[i].Signature)
		assert.False(t, original.Transfers[i].Signature.Equal(m.Transfers[i].Signature), "%d: signature unchanged", i)

		err := monster.Validate(m, issuer.Account())
		if 0 == i {
			assertChainError(t, err, fault.ErrBadIssuance, 0)
		} else {
			assertChainError(t, err, fault.ErrBrokenLink, i)
		}
	}
}
