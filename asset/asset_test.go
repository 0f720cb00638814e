// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/monsterchain/asset"
	"github.com/bitmark-inc/monsterchain/fault"
)

func TestReference(t *testing.T) {
	tests := []struct {
		s   string
		err error
	}{
		{"", nil},
		{"images/dragon.png", nil},
		{"https://example.com/monsters/3.png", nil},
		{strings.Repeat("x", asset.MaxReferenceLength), nil},
		{strings.Repeat("x", asset.MaxReferenceLength+1), fault.ErrReferenceTooLong},
		{"bad\xff\xfeutf8", fault.ErrInvalidReference},
	}

	for i, item := range tests {
		r, err := asset.NewReference(item.s)
		assert.Equal(t, item.err, err, "%d: error", i)
		if nil == item.err {
			assert.Equal(t, item.s, r.String(), "%d: string", i)
			assert.Equal(t, 0 == len(item.s), r.IsEmpty(), "%d: empty", i)
		} else {
			assert.True(t, r.IsEmpty(), "%d: reference on error", i)
		}
	}
}
