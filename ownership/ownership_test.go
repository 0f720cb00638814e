// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/monsterchain/account"
	"github.com/bitmark-inc/monsterchain/fixtures"
	"github.com/bitmark-inc/monsterchain/monster"
	"github.com/bitmark-inc/monsterchain/ownership"
	"github.com/bitmark-inc/monsterchain/ownership/mocks"
)

func TestCurrentOwner(t *testing.T) {
	issuer := fixtures.Issuer()
	alice := fixtures.Key(0x01)
	bob := fixtures.Key(0x02)

	m, err := monster.Issue(issuer, alice.Account(), 1, 2, "")
	if nil != err {
		t.Fatalf("issue error: %s", err)
	}
	assert.True(t, alice.Account().Equal(ownership.CurrentOwner(m)), "after issue")

	err = m.Transfer(alice, bob.Account())
	if nil != err {
		t.Fatalf("transfer error: %s", err)
	}
	assert.True(t, bob.Account().Equal(ownership.CurrentOwner(m)), "after transfer")

	// resolution does not validate
	m.Transfers[0].Signature[0] ^= 0xff
	assert.True(t, bob.Account().Equal(ownership.CurrentOwner(m)), "after tamper")

	assert.Nil(t, ownership.CurrentOwner(&monster.Monster{}), "empty")
}

func TestDescribe(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	alice := fixtures.Key(0x01).Account()
	bob := fixtures.Key(0x02).Account()

	directory := mocks.NewMockDirectory(ctl)
	directory.EXPECT().Name(alice).Return("Alice", true).Times(1)
	directory.EXPECT().Name(bob).Return("", false).Times(1)

	assert.Equal(t, "Alice", ownership.Describe(directory, alice), "known")
	assert.Equal(t, bob.String(), ownership.Describe(directory, bob), "unknown")
	assert.Equal(t, bob.String(), ownership.Describe(nil, bob), "no directory")
	assert.Equal(t, "<none>", ownership.Describe(directory, nil), "no owner")
	assert.Equal(t, "<none>", ownership.Describe(directory, &account.Account{}), "empty owner")
}

func TestHistory(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	issuer := fixtures.Issuer()
	alice := fixtures.Key(0x01)
	bob := fixtures.Key(0x02)

	m, err := monster.Issue(issuer, alice.Account(), 1, 2, "")
	if nil != err {
		t.Fatalf("issue error: %s", err)
	}
	err = m.Transfer(alice, bob.Account())
	if nil != err {
		t.Fatalf("transfer to bob error: %s", err)
	}
	err = m.Transfer(bob, issuer.Account())
	if nil != err {
		t.Fatalf("transfer to issuer error: %s", err)
	}

	directory := mocks.NewMockDirectory(ctl)
	gomock.InOrder(
		directory.EXPECT().Name(gomock.Any()).Return("Alice", true),
		directory.EXPECT().Name(gomock.Any()).Return("Bob", true),
		directory.EXPECT().Name(gomock.Any()).Return("", false),
	)

	history := ownership.History(directory, m)
	assert.Equal(t, []string{"Alice", "Bob", issuer.Account().String()}, history, "history")
}
