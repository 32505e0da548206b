// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/memecanon/fault"
	"github.com/bitmark-inc/memecanon/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(100, 10)
	for i := 0; i < 10; i += 1 {
		assert.Nil(t, ratelimit.Limit(limiter), "request: %d", i)
	}
}

func TestLimitZeroBurst(t *testing.T) {
	limiter := rate.NewLimiter(100, 0)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.Limit(limiter), "no burst")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(100, 10)

	assert.Nil(t, ratelimit.LimitN(limiter, 5, 10), "in range")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 0, 10), "zero count")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 11, 10), "over maximum")
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.LimitN(limiter, 20, 100), "over burst")
}
