// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transferrecord

import (
	"github.com/bitmark-inc/monsterchain/account"
)

// TagType - type code for encoded records
type TagType uint64

// enumerate the possible record types
// this is encoded a Varint64 after the version at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// signed messages
	IssueMessageTag = TagType(iota) // first transfer, signed by the issuer
	LinkMessageTag  = TagType(iota) // later transfers, signed by the previous owner

	// storage
	TransferTag = TagType(iota) // a stored transfer

	// this item must be last
	InvalidTag = TagType(iota)
)

// encoding version, first byte of every encoded message or record
//
// bump this if the layout of any tag changes: old signatures would
// otherwise verify against a reinterpreted message
const encodingVersion = 1

// byte sizes for various fields
const (
	MaxSignatureLength = 128
	maxAccountLength   = 64
)

// Packed - packed records are just a byte slice
type Packed []byte

// Transfer - one link of a transfer chain
//
// the signature authorises handing the asset to Owner; what it signs
// depends on the transfer's position in the chain (see Message)
type Transfer struct {
	Signature account.Signature `json:"signature"` // hex
	Owner     *account.Account  `json:"owner"`     // base58: the new owner
}

// Message - the closed set of messages that can be signed
type Message interface {
	tag() TagType
}

// IssueMessage - what the issuer signs to create the first transfer
type IssueMessage struct {
	Owner *account.Account
}

// LinkMessage - what the current owner signs to hand over
//
// binding the previous signature, rather than just the previous
// owner, ties the transfer to one position of one chain
type LinkMessage struct {
	PreviousSignature account.Signature
	NextOwner         *account.Account
}

func (IssueMessage) tag() TagType { return IssueMessageTag }
func (LinkMessage) tag() TagType  { return LinkMessageTag }
