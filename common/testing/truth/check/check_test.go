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

package check

import (
	"testing"

	"github.com/verity-go/verity/common/testing/truth/internal/test_helper"
	"github.com/verity-go/verity/common/testing/truth/should"
)

func TestThat(t *testing.T) {
	t.Parallel()

	t.Run("pass", func(t *testing.T) {
		tb := test_helper.NewExpectFailure(t)
		if !That(tb, "hello", should.HavePrefix("he")) {
			t.Error("check.That returned false for a passing comparison")
		}
		tb.CheckPassed()
	})

	t.Run("fail continues", func(t *testing.T) {
		tb := test_helper.NewExpectFailure(t)
		first := That(tb, 100, should.Equal(20))
		second := That(tb, 100, should.Equal(100))
		if first || !second {
			t.Errorf("unexpected results: %v, %v", first, second)
		}
		if tb.FailedNow() {
			t.Error("check.That called FailNow")
		}
		tb.Check("check.That should.Equal[int] FAILED", "Expected: 20")
		if n := len(tb.Logs()); n != 1 {
			t.Errorf("expected exactly one log call, got %d", n)
		}
	})
}

func TestLoosely(t *testing.T) {
	t.Parallel()

	tb := test_helper.NewExpectFailure(t)
	if Loosely(tb, 100, should.Equal("hello")) {
		t.Error("check.Loosely converted an int to a string")
	}
	tb.Check("check.Loosely builtin.LosslessConvertTo[string] FAILED")
}
