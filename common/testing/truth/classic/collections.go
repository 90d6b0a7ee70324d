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

// Contains asserts that `collection` contains `expected`.
func Contains[T comparable](t truth.TestingTB, expected T, collection []T, opts ...truth.Option) {
	t.Helper()
	assert.That(t, collection, should.Contain(expected), opts...)
}

// IsSubsetOf asserts that every item of `subset` is in `superset`.
func IsSubsetOf[T comparable](t truth.TestingTB, subset, superset []T, opts ...truth.Option) {
	t.Helper()
	assert.That(t, subset, should.BeSubsetOf(superset), opts...)
}

// AreEquivalent asserts that `actual` holds the same items as `expected`,
// in any order.
func AreEquivalent[T comparable](t truth.TestingTB, expected, actual []T, opts ...truth.Option) {
	t.Helper()
	assert.That(t, actual, should.BeEquivalentTo(expected), opts...)
}

// AllItemsAreUnique asserts that no item of `items` appears twice.
func AllItemsAreUnique[T comparable](t truth.TestingTB, items []T, opts ...truth.Option) {
	t.Helper()
	assert.That(t, items, should.HaveUniqueItems[T], opts...)
}
