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

// Package test_helper provides a TestingTB which records failures instead of
// acting on them, for testing assertions that are meant to fail.
package test_helper

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/verity-go/verity/common/testing/truth"
)

// ExpectFailure records the Log, Fail and FailNow calls made by the
// assertions under test. Everything else, Helper included, goes to the
// embedded *testing.T.
//
// Finish every case with Check or CheckPassed.
type ExpectFailure struct {
	*testing.T

	logs    []string
	failed  bool
	stopped bool
}

var _ truth.TestingTB = (*ExpectFailure)(nil)

// NewExpectFailure wraps t.
func NewExpectFailure(t *testing.T) *ExpectFailure {
	return &ExpectFailure{T: t}
}

// Log records args joined by single spaces, like testing.T.Log.
func (e *ExpectFailure) Log(args ...any) {
	e.logs = append(e.logs, strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

// Logf records a formatted log line.
func (e *ExpectFailure) Logf(format string, args ...any) {
	e.logs = append(e.logs, fmt.Sprintf(format, args...))
}

// Fail marks the recorder as failed.
func (e *ExpectFailure) Fail() { e.failed = true }

// FailNow marks the recorder as failed and stopped. Unlike testing.T, the
// calling goroutine keeps running.
func (e *ExpectFailure) FailNow() { e.failed, e.stopped = true, true }

// Failed reports whether Fail or FailNow was called.
func (e *ExpectFailure) Failed() bool { return e.failed }

// FailedNow reports whether FailNow was called.
func (e *ExpectFailure) FailedNow() bool { return e.stopped }

// Logs returns a copy of the recorded log lines.
func (e *ExpectFailure) Logs() []string { return slices.Clone(e.logs) }

func (e *ExpectFailure) dump(header string) {
	e.T.Log(header)
	for _, l := range e.logs {
		e.T.Log(l)
	}
}

// Check stops the real test unless a failure was recorded and every msg is a
// substring of some recorded log line.
func (e *ExpectFailure) Check(msgs ...string) {
	e.Helper()

	ok := true
	if !e.failed {
		e.T.Log("ExpectFailure: neither Fail nor FailNow was called")
		ok = false
	}
	for _, msg := range msgs {
		found := slices.ContainsFunc(e.logs, func(l string) bool {
			return strings.Contains(l, msg)
		})
		if !found {
			e.T.Logf("ExpectFailure: no log line contains %q", msg)
			ok = false
		}
	}
	if !ok {
		e.dump("ExpectFailure: recorded logs:")
		e.T.FailNow()
	}
}

// CheckPassed stops the real test if a failure was recorded.
func (e *ExpectFailure) CheckPassed() {
	e.Helper()

	if e.failed {
		e.dump("ExpectFailure: unexpected failure, recorded logs:")
		e.T.FailNow()
	}
}
