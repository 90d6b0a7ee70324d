// Copyright 2024 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package testclock has a Clock which only moves when told to.
package testclock

import (
	"context"
	"sync"
	"time"

	"github.com/verity-go/verity/common/clock"
)

// TestTimeUTC is an arbitrary time point in UTC for testing.
var TestTimeUTC = time.Date(1, time.February, 3, 4, 5, 6, 7, time.UTC)

// UseTime instantiates a TestClock and returns a Context that is configured to
// use that clock, as well as the instantiated clock.
func UseTime(ctx context.Context, now time.Time) (context.Context, TestClock) {
	tc := New(now)
	return clock.Set(ctx, tc), tc
}

// TestClock is a Clock interface with additional methods to help instrument it.
type TestClock interface {
	clock.Clock

	// Set sets the test clock's time.
	Set(time.Time)

	// Add advances the test clock's time.
	Add(time.Duration)

	// SetNowCallback installs a callback invoked, without the lock held, on
	// every call to Now. It may advance the clock.
	SetNowCallback(func(TestClock))
}

type testClock struct {
	sync.Mutex

	now      time.Time
	callback func(TestClock)
}

var _ TestClock = (*testClock)(nil)

// New returns a TestClock instance set at the specified time.
func New(now time.Time) TestClock {
	return &testClock{now: now}
}

func (c *testClock) Now() time.Time {
	c.Lock()
	cb := c.callback
	c.Unlock()

	if cb != nil {
		cb(c)
	}

	c.Lock()
	defer c.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.Lock()
	defer c.Unlock()

	c.setTimeLocked(t)
}

func (c *testClock) Add(d time.Duration) {
	c.Lock()
	defer c.Unlock()

	c.setTimeLocked(c.now.Add(d))
}

func (c *testClock) SetNowCallback(cb func(TestClock)) {
	c.Lock()
	defer c.Unlock()

	c.callback = cb
}

func (c *testClock) setTimeLocked(t time.Time) {
	if t.Before(c.now) {
		panic("Cannot go backwards in time. You're not Doc Brown.")
	}
	c.now = t
}
