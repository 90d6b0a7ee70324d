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

package fixture

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/verity-go/verity/common/clock"
	"github.com/verity-go/verity/common/logging"
	"github.com/verity-go/verity/common/runtime/paniccatcher"
	"github.com/verity-go/verity/common/testing/truth"
)

// Filter selects which fixtures and tests run.
type Filter struct {
	// Fixtures, if not empty, is the set of fixture names to run.
	Fixtures []string
	// Categories, if not empty, limits the run to tests in at least one of
	// these categories.
	Categories []string
}

func (f *Filter) matchFixture(name string) bool {
	if len(f.Fixtures) == 0 {
		return true
	}
	for _, n := range f.Fixtures {
		if n == name {
			return true
		}
	}
	return false
}

func (f *Filter) matchTest(t *Test) bool {
	if len(f.Categories) == 0 {
		return true
	}
	for _, c := range f.Categories {
		if t.HasCategory(c) {
			return true
		}
	}
	return false
}

// Runner runs fixtures.
//
// Times and durations come from the clock in the Run context.
type Runner struct {
	Filter Filter
}

// Run runs every selected test of `fixtures`, one at a time, and returns the
// report.
//
// If `ctx` is canceled, the remaining tests are reported as Ignored with the
// reason "canceled".
func (r *Runner) Run(ctx context.Context, fixtures ...*Fixture) *Report {
	report := &Report{
		RunID:   uuid.New(),
		Started: clock.Now(ctx),
	}
	logging.Infof(ctx, "Starting run %s", report.RunID)

	for _, f := range fixtures {
		if !r.Filter.matchFixture(f.Name) {
			continue
		}
		for _, t := range f.Tests {
			if !r.Filter.matchTest(t) {
				continue
			}
			res := r.runTest(ctx, f, t)
			fields := logging.Fields{"fixture": f.Name, "test": t.Name}
			logf := fields.Debugf
			if res.Outcome == Failed || res.Outcome == Errored {
				logf = fields.Warningf
			}
			logf(ctx, "%s (%s)", res.Outcome, res.Duration)
			report.Results = append(report.Results, res)
		}
	}

	report.Duration = clock.Since(ctx, report.Started)
	logging.Infof(ctx, "Finished run %s in %s", report.RunID, report.Duration)
	return report
}

func (r *Runner) runTest(ctx context.Context, f *Fixture, t *Test) *Result {
	res := &Result{
		Fixture:     f.Name,
		Test:        t.Name,
		Categories:  t.Categories,
		Description: t.Description,
	}

	switch {
	case ctx.Err() != nil:
		res.Outcome = Ignored
		res.IgnoreReason = "canceled"
		return res
	case t.Ignored:
		res.Outcome = Ignored
		res.IgnoreReason = t.IgnoreReason
		return res
	case t.err != nil:
		res.Outcome = Errored
		res.Log = []string{t.err.Error()}
		return res
	}

	tb := &testTB{}
	start := clock.Now(ctx)
	caught := execute(f, t, tb)
	res.Duration = clock.Since(ctx, start)
	res.Log = tb.logs()
	if caught != nil {
		res.Panic = &PanicInfo{
			Reason: fmt.Sprint(caught.Reason),
			Type:   reflect.TypeOf(caught.Reason).String(),
			Stack:  caught.Stack,
		}
	}
	res.Outcome = decide(t.ExpectedPanic, caught, tb.failed(), res)
	return res
}

// execute runs a single test in its own goroutine, so that FailNow can stop
// it with runtime.Goexit.
func execute(f *Fixture, t *Test, tb *testTB) (caught *paniccatcher.Panic) {
	done := make(chan struct{})
	go func() {
		defer close(done)

		var instance any
		defer func() {
			td, ok := instance.(TearDowner)
			if !ok {
				return
			}
			if p := paniccatcher.PCall(td.TearDown); p != nil {
				tb.Log(fmt.Sprintf("TearDown panicked: %v", p.Reason))
				if caught == nil {
					caught = p
				}
			}
		}()

		paniccatcher.Do(func() {
			instance = f.Factory()
			if instance == nil {
				panic("factory returned nil")
			}
			if b, ok := instance.(Binder); ok {
				b.Bind(tb)
			}
			if s, ok := instance.(SetUpper); ok {
				s.SetUp()
			}
			f.invoke(instance, t, tb)
		}, func(p *paniccatcher.Panic) {
			caught = p
		})
	}()
	<-done
	return
}

func decide(expected reflect.Type, caught *paniccatcher.Panic, failed bool, res *Result) Outcome {
	switch {
	case caught != nil && expected != nil:
		if !panicMatches(caught.Reason, expected) {
			res.Log = append(res.Log, fmt.Sprintf("Expected panic of type %s, got %T: %v", expected, caught.Reason, caught.Reason))
			return Failed
		}
		if failed {
			return Failed
		}
		return Passed
	case caught != nil:
		return Errored
	case expected != nil:
		res.Log = append(res.Log, fmt.Sprintf("Expected panic of type %s, but the test returned normally", expected))
		return Failed
	case failed:
		return Failed
	}
	return Passed
}

// testTB is the truth.TestingTB handed to a running test.
type testTB struct {
	mu        sync.Mutex
	lines     []string
	hasFailed bool
}

var _ truth.TestingTB = (*testTB)(nil)

func (*testTB) Helper() {}

func (t *testTB) Log(args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = append(t.lines, strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

func (t *testTB) Fail() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hasFailed = true
}

func (t *testTB) FailNow() {
	t.Fail()
	runtime.Goexit()
}

func (t *testTB) failed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hasFailed
}

func (t *testTB) logs() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.lines...)
}
