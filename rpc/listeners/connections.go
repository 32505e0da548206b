// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Connections - bounded count of active client connections
type Connections struct {
	slots  *semaphore.Weighted
	active uint64
}

// NewConnections - allow up to maximum simultaneous connections
func NewConnections(maximum int64) *Connections {
	return &Connections{
		slots: semaphore.NewWeighted(maximum),
	}
}

// Acquire - take a slot without waiting, false if none are free
func (c *Connections) Acquire() bool {
	if !c.slots.TryAcquire(1) {
		return false
	}
	atomic.AddUint64(&c.active, 1)
	return true
}

// Release - return a slot
func (c *Connections) Release() {
	atomic.AddUint64(&c.active, ^uint64(0))
	c.slots.Release(1)
}

// Active - number of connections being served
func (c *Connections) Active() uint64 {
	return atomic.LoadUint64(&c.active)
}
