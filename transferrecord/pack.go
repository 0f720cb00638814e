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

// Pack - the stored form of a transfer
//
// Pack Varint64(version) Varint64(tag) followed by the signature and
// the owner, so signatures and keys round trip byte for byte
func (transfer *Transfer) Pack() (Packed, error) {
	if len(transfer.Signature) > MaxSignatureLength {
		return nil, fault.ErrSignatureTooLong
	}
	if nil == transfer.Owner || nil == transfer.Owner.AccountInterface {
		return nil, fault.ErrMissingOwner
	}

	buffer := header(TransferTag)
	buffer = appendBytes(buffer, transfer.Signature)
	return appendAccount(buffer, transfer.Owner), nil
}

// Unpack - turn the front of a byte slice into a transfer
//
// returns the transfer and the number of bytes consumed, so that a
// sequence of transfers can be read from one buffer
func (record Packed) Unpack() (*Transfer, int, error) {
	version, n := util.FromVarint64(record)
	if 0 == n {
		return nil, 0, fault.ErrNotTransferPack
	}
	if encodingVersion != version {
		return nil, 0, fault.ErrUnsupportedVersion
	}

	tag, tagLength := util.FromVarint64(record[n:])
	if 0 == tagLength {
		return nil, 0, fault.ErrNotTransferPack
	}
	n += tagLength
	if TransferTag != TagType(tag) {
		return nil, 0, fault.ErrUnknownRecordTag
	}

	signature, signatureLength, err := readBytes(record[n:], MaxSignatureLength)
	if nil != err {
		return nil, 0, err
	}
	n += signatureLength

	ownerBytes, ownerLength, err := readBytes(record[n:], maxAccountLength)
	if nil != err {
		return nil, 0, err
	}
	n += ownerLength

	owner, err := account.AccountFromBytes(ownerBytes)
	if nil != err {
		return nil, 0, err
	}

	transfer := &Transfer{
		Signature: account.Signature(signature),
		Owner:     owner,
	}
	return transfer, n, nil
}

// read a Varint64(length) prefixed field
//
// returns a copy of the field and the total bytes consumed
func readBytes(buffer []byte, maximum uint64) ([]byte, int, error) {
	length, n := util.BoundedVarint64(buffer, maximum)
	if 0 == n || len(buffer) < n+length {
		return nil, 0, fault.ErrNotTransferPack
	}
	data := make([]byte, length)
	copy(data, buffer[n:n+length])
	return data, n + length, nil
}
