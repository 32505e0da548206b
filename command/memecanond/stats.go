// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodically log the memory use of the node
type memstats struct {
	log *logger.L
}

func (state *memstats) Run(args interface{}, shutdown <-chan struct{}) {

	delay := args.(time.Duration)

loop:
	for {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		state.log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M  objects: %d  gc runs: %d",
			m.Alloc/mega, m.TotalAlloc/mega, m.Sys/mega, m.HeapObjects, m.NumGC)

		select {
		case <-shutdown:
			break loop
		case <-time.After(delay):
		}
	}
	state.log.Info("stopped")
}
