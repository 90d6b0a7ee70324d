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

package expect

import (
	"testing"

	"github.com/verity-go/verity/common/testing/truth"
	"github.com/verity-go/verity/common/testing/truth/internal/test_helper"
	"github.com/verity-go/verity/common/testing/truth/should"
)

type demoFixture struct {
	Helper

	value int
}

func (f *demoFixture) TestValue() {
	f.Expect(f.value, should.BeGreaterThan(3))
	f.Expect(f.value, should.BeLessThan(10))
}

func TestExpect(t *testing.T) {
	t.Parallel()

	t.Run("pass", func(t *testing.T) {
		tb := test_helper.NewExpectFailure(t)
		h := New(tb)
		h.Expect(nil, should.BeNil)
		h.Expect(int64(5), should.Equal(5))
		h.Expect([]int{1, 2}, should.HaveUniqueItems[int])
		h.Expect("Hello", should.HavePrefix("He"))
		tb.CheckPassed()
	})

	t.Run("fail", func(t *testing.T) {
		tb := test_helper.NewExpectFailure(t)
		New(tb).Expect(12, should.Equal(13), truth.Explain("Expected Failure (Integer)"))
		if !tb.FailedNow() {
			t.Error("Expect did not call FailNow")
		}
		tb.Check("Expect should.Equal[int] FAILED", "Explanation: Expected Failure (Integer)")
	})

	t.Run("lossy conversion", func(t *testing.T) {
		tb := test_helper.NewExpectFailure(t)
		New(tb).Expect(10000, should.Equal(uint8(100)))
		tb.Check("builtin.LosslessConvertTo[uint8] FAILED")
	})

	t.Run("check continues", func(t *testing.T) {
		tb := test_helper.NewExpectFailure(t)
		h := New(tb)
		if h.Check(true, should.BeFalse) {
			t.Error("Check returned true for a failing comparison")
		}
		if tb.FailedNow() {
			t.Error("Check called FailNow")
		}
		tb.Check("Check should.BeFalse FAILED")
	})

	t.Run("embedded", func(t *testing.T) {
		tb := test_helper.NewExpectFailure(t)
		f := &demoFixture{value: 7}
		f.Bind(tb)
		f.TestValue()
		tb.CheckPassed()

		tb = test_helper.NewExpectFailure(t)
		f = &demoFixture{value: 11}
		f.Bind(tb)
		f.TestValue()
		tb.Check("should.BeLessThan[int] FAILED", "Actual: 11")
	})

	t.Run("unbound", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("unbound Helper did not panic")
			}
		}()
		var h Helper
		h.Expect(1, should.Equal(1))
	})
}
