// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package monster

import (
	"github.com/bitmark-inc/monsterchain/account"
	"github.com/bitmark-inc/monsterchain/asset"
	"github.com/bitmark-inc/monsterchain/fault"
	"github.com/bitmark-inc/monsterchain/transferrecord"
)

// Monster - the asset record
//
// Transfers is append only and never empty after Issue.  Health and
// Damage are stored as given.
type Monster struct {
	Transfers []*transferrecord.Transfer `json:"transfers"`
	Health    int64                      `json:"health"`
	Damage    int64                      `json:"damage"`
	Image     asset.Reference            `json:"image"`
}

// Issue - create a monster owned by owner, signed by the issuer
func Issue(issuer account.Signer, owner *account.Account, health int64, damage int64, image asset.Reference) (*Monster, error) {
	if err := image.Validate(); nil != err {
		return nil, err
	}

	message, err := transferrecord.Encode(transferrecord.IssueMessage{
		Owner: owner,
	})
	if nil != err {
		return nil, err
	}

	signature, err := issuer.Sign(message)
	if nil != err {
		return nil, err
	}

	m := &Monster{
		Transfers: []*transferrecord.Transfer{
			{
				Signature: signature,
				Owner:     owner,
			},
		},
		Health: health,
		Damage: damage,
		Image:  image,
	}
	return m, nil
}

// Transfer - append a transfer to next signed by the current owner
//
// the signer is not checked against the tip: a wrong signer makes a
// chain that fails Validate at the new index
func (m *Monster) Transfer(current account.Signer, next *account.Account) error {
	tip := m.Tip()
	if nil == tip {
		return fault.ErrEmptyChain
	}

	message, err := transferrecord.Encode(transferrecord.LinkMessage{
		PreviousSignature: tip.Signature,
		NextOwner:         next,
	})
	if nil != err {
		return err
	}

	signature, err := current.Sign(message)
	if nil != err {
		return err
	}

	m.Transfers = append(m.Transfers, &transferrecord.Transfer{
		Signature: signature,
		Owner:     next,
	})
	return nil
}

// Tip - the last transfer, nil if there are none
func (m *Monster) Tip() *transferrecord.Transfer {
	if nil == m || 0 == len(m.Transfers) {
		return nil
	}
	return m.Transfers[len(m.Transfers)-1]
}

// Owner - the owner of the last transfer
//
// no validation is done; nil if there are no transfers
func (m *Monster) Owner() *account.Account {
	tip := m.Tip()
	if nil == tip {
		return nil
	}
	return tip.Owner
}

// Provenance - every owner in chain order, the first being the
// account the issuer issued to
func (m *Monster) Provenance() []*account.Account {
	if nil == m {
		return nil
	}
	owners := make([]*account.Account, len(m.Transfers))
	for i, t := range m.Transfers {
		owners[i] = t.Owner
	}
	return owners
}

// Copy - a deep copy that shares nothing with the original
func (m *Monster) Copy() *Monster {
	if nil == m {
		return nil
	}
	c := &Monster{
		Transfers: make([]*transferrecord.Transfer, len(m.Transfers)),
		Health:    m.Health,
		Damage:    m.Damage,
		Image:     m.Image,
	}
	for i, t := range m.Transfers {
		if nil == t {
			continue
		}
		c.Transfers[i] = &transferrecord.Transfer{
			Signature: append(account.Signature{}, t.Signature...),
			Owner:     copyAccount(t.Owner),
		}
	}
	return c
}

func copyAccount(a *account.Account) *account.Account {
	if nil == a || nil == a.AccountInterface {
		return a
	}
	c, err := account.AccountFromBytes(a.Bytes())
	if nil != err {
		return a
	}
	return c
}
