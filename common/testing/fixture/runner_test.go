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
	"sync/atomic"
	"testing"
	"time"

	"github.com/verity-go/verity/common/clock/testclock"
	"github.com/verity-go/verity/common/testing/truth"
	"github.com/verity-go/verity/common/testing/truth/assert"
	"github.com/verity-go/verity/common/testing/truth/check"
	"github.com/verity-go/verity/common/testing/truth/should"
)

var epoch = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func runDemo(t *testing.T, r *Runner) (*Report, int32) {
	t.Helper()
	f, counter := newDemo(t)
	ctx, _ := testclock.UseTime(context.Background(), epoch)
	return r.Run(ctx, f), counter.Load()
}

func TestRunner(t *testing.T) {
	t.Parallel()

	report, tornDown := runDemo(t, &Runner{})

	expected := map[string]Outcome{
		"BadSignature":   Errored,
		"Expected":       Passed,
		"Fail":           Failed,
		"FailNow":        Failed,
		"InterfacePanic": Passed,
		"NoPanic":        Failed,
		"Panic":          Errored,
		"Pass":           Passed,
		"Skipped":        Ignored,
		"WrongPanic":     Failed,
	}
	assert.That(t, len(report.Results), should.Equal(len(expected)))
	for name, outcome := range expected {
		res := report.Lookup("demo", name)
		assert.Loosely(t, res, should.NotBeNil)
		check.That(t, res.Outcome, should.Equal(outcome), truth.Explain("test %s", name))
	}

	// Every test which ran got torn down, even after FailNow or a panic.
	assert.That(t, tornDown, should.Equal[int32](8))

	t.Run("failure logs", func(t *testing.T) {
		fail := report.Lookup("demo", "Fail")
		assert.That(t, len(fail.Log), should.Equal(2))
		assert.That(t, fail.Log[0], should.ContainSubstring("check.That should.Equal[int] FAILED"))
		assert.That(t, fail.Log[1], should.ContainSubstring("should.Equal[string] FAILED"))

		failNow := report.Lookup("demo", "FailNow")
		assert.That(t, len(failNow.Log), should.Equal(1))
		assert.Loosely(t, failNow.Panic, should.BeNil)
	})

	t.Run("panics", func(t *testing.T) {
		p := report.Lookup("demo", "Panic").Panic
		assert.That(t, p.Reason, should.Equal("boom"))
		assert.That(t, p.Type, should.Equal("string"))
		assert.Loosely(t, p.Stack, should.NotBeEmpty)

		ip := report.Lookup("demo", "InterfacePanic").Panic
		assert.That(t, ip.Reason, should.ContainSubstring("integer divide by zero"))

		wrong := report.Lookup("demo", "WrongPanic")
		assert.That(t, wrong.Log[len(wrong.Log)-1], should.ContainSubstring(
			"Expected panic of type *runtime.TypeAssertionError, got string"))

		none := report.Lookup("demo", "NoPanic")
		assert.That(t, none.Log[len(none.Log)-1], should.ContainSubstring("returned normally"))
	})

	t.Run("ignored and malformed", func(t *testing.T) {
		skipped := report.Lookup("demo", "Skipped")
		assert.That(t, skipped.IgnoreReason, should.Equal("not today"))
		assert.Loosely(t, skipped.Panic, should.BeNil)

		bad := report.Lookup("demo", "BadSignature")
		assert.That(t, bad.Log[0], should.ContainSubstring("must take no arguments"))
	})

	assert.That(t, report.OK(), should.BeFalse)
	assert.That(t, report.Started, should.Match(epoch))
}

func TestRunnerDurations(t *testing.T) {
	t.Parallel()

	f, _ := newDemo(t)
	ctx, tc := testclock.UseTime(context.Background(), epoch)
	tc.SetNowCallback(func(c testclock.TestClock) { c.Add(time.Millisecond) })

	report := (&Runner{Filter: Filter{Categories: []string{"fast"}}}).Run(ctx, f)
	for _, res := range report.Results {
		assert.That(t, res.Duration, should.Equal(time.Millisecond))
	}
	assert.That(t, report.Started, should.Match(epoch.Add(time.Millisecond)))
	assert.That(t, report.Duration, should.Equal(5*time.Millisecond))
}

func TestRunnerFilter(t *testing.T) {
	t.Parallel()

	t.Run("category", func(t *testing.T) {
		report, _ := runDemo(t, &Runner{Filter: Filter{Categories: []string{"fast"}}})
		assert.That(t, len(report.Results), should.Equal(2))
		assert.That(t, report.Results[0].Test, should.Equal("NoPanic"))
		assert.That(t, report.Results[1].Test, should.Equal("Pass"))
		assert.That(t, report.Results[1].Categories, should.Match([]string{"fast"}))
	})

	t.Run("fixture", func(t *testing.T) {
		report, tornDown := runDemo(t, &Runner{Filter: Filter{Fixtures: []string{"other"}}})
		assert.That(t, len(report.Results), should.Equal(0))
		assert.That(t, tornDown, should.Equal[int32](0))
		assert.That(t, report.OK(), should.BeTrue)
	})
}

func TestRunnerCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f, counter := newDemo(t)
	report := (&Runner{}).Run(ctx, f)
	assert.That(t, counter.Load(), should.Equal[int32](0))
	for _, res := range report.Results {
		assert.That(t, res.Outcome, should.Equal(Ignored))
		assert.That(t, res.IgnoreReason, should.Equal("canceled"))
	}
}

type plainFixture struct{}

func (*plainFixture) TestOne() {}

// brittleFixture panics in TearDown after every test.
type brittleFixture struct{}

func (*brittleFixture) TearDown() { panic("teardown boom") }
func (*brittleFixture) TestBoom() { panic("test boom") }
func (*brittleFixture) TestQuiet() {}

func TestRunnerFactoryPanics(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	f, err := New("flaky", func() any {
		if calls.Add(1) > 1 {
			panic("factory boom")
		}
		return &plainFixture{}
	})
	assert.NoErr(t, err)

	report := (&Runner{}).Run(context.Background(), f)
	assert.That(t, len(report.Results), should.Equal(1))
	res := report.Results[0]
	assert.That(t, res.Outcome, should.Equal(Errored))
	assert.Loosely(t, res.Panic, should.NotBeNil)
	assert.That(t, res.Panic.Reason, should.Equal("factory boom"))
}

func TestRunnerTearDownPanics(t *testing.T) {
	t.Parallel()

	f, err := New("brittle", func() any { return &brittleFixture{} })
	assert.NoErr(t, err)
	report := (&Runner{}).Run(context.Background(), f)

	t.Run("after a panicking test", func(t *testing.T) {
		res := report.Lookup("brittle", "Boom")
		assert.That(t, res.Outcome, should.Equal(Errored))
		assert.That(t, res.Panic.Reason, should.Equal("test boom"))
		assert.That(t, res.Log, should.Contain("TearDown panicked: teardown boom"))
	})

	t.Run("after a passing test", func(t *testing.T) {
		res := report.Lookup("brittle", "Quiet")
		assert.That(t, res.Outcome, should.Equal(Errored))
		assert.That(t, res.Panic.Reason, should.Equal("teardown boom"))
		assert.That(t, res.Log, should.Contain("TearDown panicked: teardown boom"))
	})
}
