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

// Package classic implements function-call style assertions, e.g.
//
//	classic.AreEqual(t, 5, value1+value2)
//	classic.Greater(t, 7, 3)
//
// Every assertion here is assert.That with the matching `should` comparison,
// so a classic assertion and its `should` form always agree. Like assert,
// a failing classic assertion stops the test.
//
// Argument order follows the classic convention: expected values come before
// the actual value.
package classic

import (
	"cmp"

	"github.com/verity-go/verity/common/testing/truth"
	"github.com/verity-go/verity/common/testing/truth/assert"
	"github.com/verity-go/verity/common/testing/truth/should"
)

// AreEqual asserts that `actual == expected`.
func AreEqual[T comparable](t truth.TestingTB, expected, actual T, opts ...truth.Option) {
	t.Helper()
	assert.That(t, actual, should.Equal(expected), opts...)
}

// AreNotEqual asserts that `actual != expected`.
func AreNotEqual[T comparable](t truth.TestingTB, expected, actual T, opts ...truth.Option) {
	t.Helper()
	assert.That(t, actual, should.NotEqual(expected), opts...)
}

// AreEqualWithin asserts that `actual` is within `tolerance` of `expected`.
func AreEqualWithin[T ~float32 | ~float64](t truth.TestingTB, expected, actual, tolerance T, opts ...truth.Option) {
	t.Helper()
	assert.That(t, actual, should.AlmostEqual(expected, tolerance), opts...)
}

// IsNull asserts that `actual` is nil.
func IsNull(t truth.TestingTB, actual any, opts ...truth.Option) {
	t.Helper()
	assert.That(t, actual, should.BeNil, opts...)
}

// IsNotNull asserts that `actual` is a non-nil pointer, slice, map, etc.
func IsNotNull(t truth.TestingTB, actual any, opts ...truth.Option) {
	t.Helper()
	assert.That(t, actual, should.NotBeNil, opts...)
}

// IsTrue asserts that `condition` holds.
func IsTrue(t truth.TestingTB, condition bool, opts ...truth.Option) {
	t.Helper()
	assert.That(t, condition, should.BeTrue, opts...)
}

// IsFalse asserts that `condition` does not hold.
func IsFalse(t truth.TestingTB, condition bool, opts ...truth.Option) {
	t.Helper()
	assert.That(t, condition, should.BeFalse, opts...)
}

// IsEmpty asserts that `actual` is an empty string, slice, array, map or
// channel.
func IsEmpty(t truth.TestingTB, actual any, opts ...truth.Option) {
	t.Helper()
	assert.That(t, actual, should.BeEmpty, opts...)
}

// IsNotEmpty is the inverse of IsEmpty.
func IsNotEmpty(t truth.TestingTB, actual any, opts ...truth.Option) {
	t.Helper()
	assert.That(t, actual, should.NotBeEmpty, opts...)
}

// Greater asserts that `arg1 > arg2`.
func Greater[T cmp.Ordered](t truth.TestingTB, arg1, arg2 T, opts ...truth.Option) {
	t.Helper()
	assert.That(t, arg1, should.BeGreaterThan(arg2), opts...)
}

// GreaterOrEqual asserts that `arg1 >= arg2`.
func GreaterOrEqual[T cmp.Ordered](t truth.TestingTB, arg1, arg2 T, opts ...truth.Option) {
	t.Helper()
	assert.That(t, arg1, should.BeGreaterThanOrEqual(arg2), opts...)
}

// Less asserts that `arg1 < arg2`.
func Less[T cmp.Ordered](t truth.TestingTB, arg1, arg2 T, opts ...truth.Option) {
	t.Helper()
	assert.That(t, arg1, should.BeLessThan(arg2), opts...)
}

// LessOrEqual asserts that `arg1 <= arg2`.
func LessOrEqual[T cmp.Ordered](t truth.TestingTB, arg1, arg2 T, opts ...truth.Option) {
	t.Helper()
	assert.That(t, arg1, should.BeLessThanOrEqual(arg2), opts...)
}

// IsInstanceOf asserts that `actual` holds a T (or implements T, if T is an
// interface type).
func IsInstanceOf[T any](t truth.TestingTB, actual any, opts ...truth.Option) {
	t.Helper()
	assert.That(t, actual, should.HaveType[T], opts...)
}

// Throws asserts that `fn` panics with a value of type E, and returns that
// value.
//
// Example:
//
//	err := classic.Throws[*runtime.TypeAssertionError](t, func() { _ = v.(string) })
func Throws[E any](t truth.TestingTB, fn func(), opts ...truth.Option) E {
	t.Helper()
	var caught E
	record := func() {
		defer func() {
			if r := recover(); r != nil {
				caught, _ = r.(E)
				panic(r)
			}
		}()
		fn()
	}
	assert.That(t, record, should.PanicOfType[E], opts...)
	return caught
}
