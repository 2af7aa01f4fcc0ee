// Copyright 2026 Seclink Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package kernelnet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoamDebounce(t *testing.T) {
	tn := newTestNet(t, func(cfg *Config) {
		cfg.WithoutEvents = true
	})

	// A burst within the delay window schedules exactly one notification.
	tn.fireRoam(true)
	tn.fireRoam(true)
	tn.clk.advance(50 * time.Millisecond)
	tn.fireRoam(false)
	assert.Equal(t, 1, tn.sched.pending())

	tn.sched.runAll()
	assert.Equal(t, []bool{true}, tn.calls.roamCalls())

	// After the window passed, the next change schedules again.
	tn.clk.advance(100 * time.Millisecond)
	tn.fireRoam(false)
	assert.Equal(t, 1, tn.sched.pending())
	tn.sched.runAll()
	assert.Equal(t, []bool{true, false}, tn.calls.roamCalls())
}

func TestRoamWindowBoundary(t *testing.T) {
	tn := newTestNet(t, func(cfg *Config) {
		cfg.WithoutEvents = true
	})

	tn.fireRoam(true)
	// Exactly at the end of the window the event is still absorbed.
	tn.clk.advance(tn.roamDelay)
	tn.fireRoam(true)
	assert.Equal(t, 1, tn.sched.pending())

	tn.clk.advance(time.Nanosecond)
	tn.fireRoam(true)
	assert.Equal(t, 2, tn.sched.pending())
}

func TestRoamSpacedEventsAllFire(t *testing.T) {
	tn := newTestNet(t, func(cfg *Config) {
		cfg.WithoutEvents = true
	})

	for i := 0; i < 3; i++ {
		tn.fireRoam(true)
		tn.clk.advance(150 * time.Millisecond)
	}
	assert.Equal(t, 3, tn.sched.pending())
	tn.sched.runAll()
	assert.Equal(t, []bool{true, true, true}, tn.calls.roamCalls())
}
