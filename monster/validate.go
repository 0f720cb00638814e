// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package monster

import (
	"github.com/bitmark-inc/monsterchain/account"
	"github.com/bitmark-inc/monsterchain/fault"
	"github.com/bitmark-inc/monsterchain/transferrecord"
)

// Validate - check every transfer of a monster against the issuer
//
// returns nil or a *fault.ChainError for the first transfer that
// does not verify
func Validate(m *Monster, issuer *account.Account) error {
	if nil == m {
		return fault.NewChainError(fault.ErrEmptyChain, 0, nil)
	}
	return ValidateTransfers(m.Transfers, issuer)
}

// ValidateTransfers - check a bare chain of transfers
//
// always runs from the first transfer, never trusting a prefix
func ValidateTransfers(transfers []*transferrecord.Transfer, issuer *account.Account) error {
	if 0 == len(transfers) {
		return fault.NewChainError(fault.ErrEmptyChain, 0, nil)
	}

	first := transfers[0]
	if nil == first {
		return fault.NewChainError(fault.ErrBadIssuance, 0, fault.ErrMissingOwner)
	}
	message, err := transferrecord.Encode(transferrecord.IssueMessage{
		Owner: first.Owner,
	})
	if nil != err {
		return fault.NewChainError(fault.ErrBadIssuance, 0, err)
	}
	if err := verify(issuer, message, first.Signature); nil != err {
		return fault.NewChainError(fault.ErrBadIssuance, 0, err)
	}

	for i := 1; i < len(transfers); i += 1 {
		previous := transfers[i-1]
		current := transfers[i]
		if nil == current {
			return fault.NewChainError(fault.ErrBrokenLink, i, fault.ErrMissingOwner)
		}

		message, err := transferrecord.Encode(transferrecord.LinkMessage{
			PreviousSignature: previous.Signature,
			NextOwner:         current.Owner,
		})
		if nil != err {
			return fault.NewChainError(fault.ErrBrokenLink, i, err)
		}

		// the previous owner must have authorised the handover
		if err := verify(previous.Owner, message, current.Signature); nil != err {
			return fault.NewChainError(fault.ErrBrokenLink, i, err)
		}
	}

	return nil
}

func verify(signer *account.Account, message []byte, signature account.Signature) error {
	if nil == signer || nil == signer.AccountInterface {
		return fault.ErrMissingOwner
	}
	return signer.CheckSignature(message, signature)
}
