// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/clonemarkd/background"
)

type ticker struct {
	ticks    int64
	finished int32
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	interval := args.(time.Duration)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(interval):
			atomic.AddInt64(&state.ticks, 1)
		}
	}
	atomic.StoreInt32(&state.finished, 1)
}

func TestStartStop(t *testing.T) {
	p1 := &ticker{}
	p2 := &ticker{}

	bg := background.Start(background.Processes{p1, p2}, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	bg.Stop()

	assert.Equal(t, int32(1), atomic.LoadInt32(&p1.finished), "first process did not finish")
	assert.Equal(t, int32(1), atomic.LoadInt32(&p2.finished), "second process did not finish")
	assert.NotEqual(t, int64(0), atomic.LoadInt64(&p1.ticks), "first process never ran")
	assert.NotEqual(t, int64(0), atomic.LoadInt64(&p2.ticks), "second process never ran")

	// second stop must not panic on a closed channel
	bg.Stop()
}

func TestEmpty(t *testing.T) {
	bg := background.Start(nil, nil)
	bg.Stop()
}
