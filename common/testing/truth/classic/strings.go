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

package classic

import (
	"github.com/verity-go/verity/common/testing/truth"
	"github.com/verity-go/verity/common/testing/truth/assert"
	"github.com/verity-go/verity/common/testing/truth/should"
)

// StringContains asserts that `actual` contains `expected`.
func StringContains(t truth.TestingTB, expected, actual string, opts ...truth.Option) {
	t.Helper()
	assert.That(t, actual, should.ContainSubstring(expected), opts...)
}

// StartsWith asserts that `actual` starts with `expected`.
func StartsWith(t truth.TestingTB, expected, actual string, opts ...truth.Option) {
	t.Helper()
	assert.That(t, actual, should.HavePrefix(expected), opts...)
}

// EndsWith asserts that `actual` ends with `expected`.
func EndsWith(t truth.TestingTB, expected, actual string, opts ...truth.Option) {
	t.Helper()
	assert.That(t, actual, should.HaveSuffix(expected), opts...)
}

// IsMatch asserts that `actual` matches the regular expression `pattern`.
func IsMatch(t truth.TestingTB, pattern, actual string, opts ...truth.Option) {
	t.Helper()
	assert.That(t, actual, should.MatchRegexp(pattern), opts...)
}

// AreEqualIgnoringCase asserts that `actual` equals `expected` under Unicode
// case-folding.
func AreEqualIgnoringCase(t truth.TestingTB, expected, actual string, opts ...truth.Option) {
	t.Helper()
	assert.That(t, actual, should.EqualFold(expected), opts...)
}
