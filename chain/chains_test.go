// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/memecanon/chain"
)

func TestChains(t *testing.T) {
	tests := []struct {
		name    string
		valid   bool
		airdrop bool
	}{
		{chain.Live, true, false},
		{chain.Testing, true, true},
		{chain.Local, true, true},
		{"bitmark", false, false},
		{"LIVE", false, false},
		{"", false, false},
	}

	for i, item := range tests {
		assert.Equal(t, item.valid, chain.Valid(item.name), "%d: valid: %q", i, item.name)
		assert.Equal(t, item.airdrop, chain.AirdropAllowed(item.name), "%d: airdrop: %q", i, item.name)
	}
}
