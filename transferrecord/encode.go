// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transferrecord

import (
	"github.com/bitmark-inc/monsterchain/account"
	"github.com/bitmark-inc/monsterchain/fault"
	"github.com/bitmark-inc/monsterchain/util"
)

// Encode - canonical bytes of a message for signing and verification
//
// Layout: Varint64(version) Varint64(tag) then the fields in order,
// each prefixed by Varint64(length).  The whole message is consumed
// by the fields so no two distinct messages share an encoding.
//
//   issue: version | 1 | owner
//   link:  version | 2 | previous signature | next owner
func Encode(message Message) ([]byte, error) {
	switch m := message.(type) {

	case IssueMessage:
		if nil == m.Owner || nil == m.Owner.AccountInterface {
			return nil, fault.ErrMissingOwner
		}
		buffer := header(IssueMessageTag)
		return appendAccount(buffer, m.Owner), nil

	case *IssueMessage:
		if nil == m {
			return nil, fault.ErrUnsupportedMessage
		}
		return Encode(*m)

	case LinkMessage:
		if nil == m.NextOwner || nil == m.NextOwner.AccountInterface {
			return nil, fault.ErrMissingOwner
		}
		if len(m.PreviousSignature) > MaxSignatureLength {
			return nil, fault.ErrSignatureTooLong
		}
		buffer := header(LinkMessageTag)
		buffer = appendBytes(buffer, m.PreviousSignature)
		return appendAccount(buffer, m.NextOwner), nil

	case *LinkMessage:
		if nil == m {
			return nil, fault.ErrUnsupportedMessage
		}
		return Encode(*m)

	default:
		return nil, fault.ErrUnsupportedMessage
	}
}

// start a buffer with version and tag
func header(tag TagType) Packed {
	buffer := util.ToVarint64(encodingVersion)
	return util.AppendVarint64(buffer, uint64(tag))
}

// append a bytes to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer Packed, data []byte) Packed {
	buffer = util.AppendVarint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// append an account to a buffer
//
// the field is prefixed by Varint64(length)
func appendAccount(buffer Packed, address *account.Account) Packed {
	return appendBytes(buffer, address.Bytes())
}
