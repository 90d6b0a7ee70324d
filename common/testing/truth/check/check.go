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

// Package check implements the non-fatal form of truth assertions.
//
// A failing check.That logs the failure, marks the test failed with Fail, and
// returns false so the caller may decide whether to continue.
package check

import (
	"github.com/verity-go/verity/common/testing/truth"
	"github.com/verity-go/verity/common/testing/truth/comparison"
)

// That will compare `actual` using `compare(actual)`.
//
// If this results in a failure.Summary, it will be reported with truth.Report,
// and the test will be failed with t.Fail().
//
// Example: `check.That(t, 10, should.Equal(20))`
//
// Returns `true` iff `compare(actual)` returned no failure (i.e. nil).
func That[T any](t truth.TestingTB, actual T, compare comparison.Func[T], opts ...truth.Option) bool {
	if summary := truth.ApplyAllOptions(compare(actual), opts); summary != nil {
		t.Helper()
		truth.Report(t, "check.That", summary)
		t.Fail()
		return false
	}
	return true
}

// Loosely will compare `actual` using `compare.CastCompare(actual)`.
//
// If this results in a failure.Summary, it will be reported with truth.Report,
// and the test will be failed with t.Fail().
//
// Returns `true` iff `compare.CastCompare(actual)` returned no failure.
func Loosely[T any](t truth.TestingTB, actual any, compare comparison.Func[T], opts ...truth.Option) bool {
	if summary := truth.ApplyAllOptions(compare.CastCompare(actual), opts); summary != nil {
		t.Helper()
		truth.Report(t, "check.Loosely", summary)
		t.Fail()
		return false
	}
	return true
}
