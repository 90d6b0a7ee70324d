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

package assert

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/verity-go/verity/common/testing/truth"
	"github.com/verity-go/verity/common/testing/truth/internal/test_helper"
	"github.com/verity-go/verity/common/testing/truth/should"
)

func TestThat(t *testing.T) {
	t.Parallel()

	t.Run("pass", func(t *testing.T) {
		tb := test_helper.NewExpectFailure(t)
		That(tb, 5, should.Equal(5))
		tb.CheckPassed()
	})

	t.Run("fail", func(t *testing.T) {
		tb := test_helper.NewExpectFailure(t)
		That(tb, 12, should.Equal(13), truth.Explain("Expected Failure (Integer)"))
		if !tb.FailedNow() {
			t.Error("assert.That did not call FailNow")
		}
		tb.Check("assert.That should.Equal[int] FAILED", "Explanation: Expected Failure (Integer)", "Actual: 12")
	})
}

func TestLoosely(t *testing.T) {
	t.Parallel()

	t.Run("lossless", func(t *testing.T) {
		tb := test_helper.NewExpectFailure(t)
		Loosely(tb, uint8(100), should.Equal(100))
		tb.CheckPassed()
	})

	t.Run("lossy", func(t *testing.T) {
		tb := test_helper.NewExpectFailure(t)
		Loosely(tb, 10000, should.Equal(uint8(100)))
		tb.Check("assert.Loosely builtin.LosslessConvertTo[uint8] FAILED")
	})
}

func TestErrHelpers(t *testing.T) {
	t.Parallel()

	t.Run("NoErr pass", func(t *testing.T) {
		tb := test_helper.NewExpectFailure(t)
		NoErr(tb, nil)
		tb.CheckPassed()
	})

	t.Run("NoErr fail", func(t *testing.T) {
		tb := test_helper.NewExpectFailure(t)
		NoErr(tb, errors.New("kaboom"))
		tb.Check("should.ErrLikeError FAILED", "kaboom")
	})

	t.Run("ErrIsLike", func(t *testing.T) {
		tb := test_helper.NewExpectFailure(t)
		ErrIsLike(tb, fmt.Errorf("wrapped: %w", io.EOF), io.EOF)
		ErrIsLike(tb, io.EOF, "EOF")
		tb.CheckPassed()
	})

	t.Run("ErrIsLike fail", func(t *testing.T) {
		tb := test_helper.NewExpectFailure(t)
		ErrIsLike(tb, nil, "EOF")
		tb.Check("should.ErrLikeString FAILED", "Actual is nil")
	})
}

func TestPanics(t *testing.T) {
	t.Parallel()

	t.Run("pass", func(t *testing.T) {
		tb := test_helper.NewExpectFailure(t)
		Panics(tb, func() { panic("boom") })
		tb.CheckPassed()
	})

	t.Run("fail", func(t *testing.T) {
		tb := test_helper.NewExpectFailure(t)
		Panics(tb, func() {}, truth.Explain("must reject nil"))
		if !tb.FailedNow() {
			t.Error("assert.Panics did not call FailNow")
		}
		tb.Check("assert.Panics should.Panic FAILED", "did not panic", "must reject nil")
	})
}
