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

// Package expect gives test fixtures an inherited assertion syntax.
//
// Embed a Helper in a fixture struct and the fixture gains Expect and Check
// methods:
//
//	type MyFixture struct {
//	  expect.Helper
//	}
//
//	func (f *MyFixture) TestSomething() {
//	  f.Expect(7, should.BeGreaterThan(3))
//	}
//
// The fixture runner binds the Helper to the running test before each test
// method. In plain Go tests, use New.
package expect

import (
	"github.com/verity-go/verity/common/testing/truth"
	"github.com/verity-go/verity/common/testing/truth/comparison"
)

// Helper is embedded into fixtures to provide Expect and Check.
//
// The zero value is unbound; Expect and Check panic until Bind is called.
type Helper struct {
	tb truth.TestingTB
}

// New returns a Helper bound to `tb`.
func New(tb truth.TestingTB) *Helper {
	return &Helper{tb: tb}
}

// Bind attaches the Helper to the currently running test.
func (h *Helper) Bind(tb truth.TestingTB) {
	h.tb = tb
}

// TB returns the test the Helper is bound to, or nil.
func (h *Helper) TB() truth.TestingTB {
	return h.tb
}

func (h *Helper) bound() truth.TestingTB {
	if h.tb == nil {
		panic("expect.Helper: not bound to a test; embed it in a fixture or use expect.New")
	}
	return h.tb
}

// Expect compares `actual` using `compare` and stops the test if the
// comparison fails.
//
// `compare` is anything accepted by comparison.Erase: a comparison.Func[T]
// (e.g. `should.Equal(5)`) or a plain comparison function (e.g.
// `should.BeNil`). `actual` is converted losslessly to the comparison's type,
// so `f.Expect(int64(5), should.Equal(5))` passes.
func (h *Helper) Expect(actual any, compare any, opts ...truth.Option) {
	tb := h.bound()
	if summary := truth.ApplyAllOptions(comparison.Erase(compare).CastCompare(actual), opts); summary != nil {
		tb.Helper()
		truth.Report(tb, "Expect", summary)
		tb.FailNow()
	}
}

// Check is like Expect, but marks the test failed and continues.
//
// Returns true iff the comparison passed.
func (h *Helper) Check(actual any, compare any, opts ...truth.Option) bool {
	tb := h.bound()
	if summary := truth.ApplyAllOptions(comparison.Erase(compare).CastCompare(actual), opts); summary != nil {
		tb.Helper()
		truth.Report(tb, "Check", summary)
		tb.Fail()
		return false
	}
	return true
}
