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

// Package clock is an interface to system time, carried in a Context so that
// tests can substitute their own.
//
//	start := clock.Now(ctx)
//	...
//	elapsed := clock.Since(ctx, start)
package clock

import (
	"context"
	"time"
)

// Clock is an interface to system time.
type Clock interface {
	// Now returns the current time (see time.Now).
	Now() time.Time
}

var clockKey = "clock.Clock"

// Factory is a generator function that produces a Clock instance.
type Factory func(context.Context) Clock

// SetFactory creates a new Context using the supplied Clock factory.
func SetFactory(ctx context.Context, f Factory) context.Context {
	return context.WithValue(ctx, &clockKey, f)
}

// Set creates a new Context using the supplied Clock.
func Set(ctx context.Context, c Clock) context.Context {
	return SetFactory(ctx, func(context.Context) Clock { return c })
}

// Get returns the Clock set in the supplied Context, defaulting to
// GetSystemClock() if none is set.
func Get(ctx context.Context) (clock Clock) {
	if v := ctx.Value(&clockKey); v != nil {
		if f, ok := v.(Factory); ok {
			clock = f(ctx)
		}
	}
	if clock == nil {
		clock = GetSystemClock()
	}
	return
}

// Now calls Clock.Now on the Clock instance stored in the supplied Context.
func Now(ctx context.Context) time.Time {
	return Get(ctx).Now()
}

// Since is an equivalent of time.Since.
func Since(ctx context.Context, t time.Time) time.Duration {
	return Now(ctx).Sub(t)
}

type systemClock struct{}

var _ Clock = systemClock{}

// GetSystemClock returns an instance of a Clock whose method calls directly
// use Go's "time" library.
func GetSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
