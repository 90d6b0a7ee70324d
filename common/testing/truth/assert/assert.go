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

// Package assert implements the fatal form of truth assertions.
//
// Every function here reports a failure with truth.Report and then stops the
// test with FailNow. Package check has the non-fatal form.
//
//	assert.That(t, sum, should.Equal(5))
//	assert.Loosely(t, uint8(10), should.Equal(10))
//	assert.NoErr(t, err)
package assert

import (
	"github.com/verity-go/verity/common/testing/truth"
	"github.com/verity-go/verity/common/testing/truth/comparison"
	"github.com/verity-go/verity/common/testing/truth/failure"
	"github.com/verity-go/verity/common/testing/truth/should"
)

// stop reports s under `name` and ends the test. A nil s is a pass.
func stop(t truth.TestingTB, name string, s *failure.Summary, opts []truth.Option) {
	if s = truth.ApplyAllOptions(s, opts); s == nil {
		return
	}
	t.Helper()
	truth.Report(t, name, s)
	t.FailNow()
}

// That applies compare to actual and stops the test on failure.
func That[T any](t truth.TestingTB, actual T, compare comparison.Func[T], opts ...truth.Option) {
	t.Helper()
	stop(t, "assert.That", compare(actual), opts)
}

// Loosely is That for when actual's type differs from what compare takes.
//
// actual is converted with compare.CastCompare; a lossy conversion (say, 300
// into a uint8) is itself a failure.
func Loosely[T any](t truth.TestingTB, actual any, compare comparison.Func[T], opts ...truth.Option) {
	t.Helper()
	stop(t, "assert.Loosely", compare.CastCompare(actual), opts)
}

// NoErr stops the test if err is not nil.
func NoErr(t truth.TestingTB, err error, opts ...truth.Option) {
	if err == nil {
		return
	}
	t.Helper()
	stop(t, "assert.That", should.ErrLike(nil)(err), opts)
}

// ErrIsLike stops the test unless err matches target, which is either a
// substring of the error text or an error found with errors.Is.
func ErrIsLike(t truth.TestingTB, err error, target any, opts ...truth.Option) {
	t.Helper()
	stop(t, "assert.That", should.ErrLike(target)(err), opts)
}

// Panics stops the test unless fn panics.
func Panics(t truth.TestingTB, fn func(), opts ...truth.Option) {
	t.Helper()
	stop(t, "assert.Panics", should.Panic(fn), opts)
}
