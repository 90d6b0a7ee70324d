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

package should

import (
	"slices"

	"github.com/verity-go/verity/common/testing/truth/comparison"
	"github.com/verity-go/verity/common/testing/truth/failure"
)

// Contain returns a comparison.Func which checks that a slice contains
// `target`.
func Contain[T comparable](target T) comparison.Func[[]T] {
	const cmpName = "should.Contain"
	return func(actual []T) *failure.Summary {
		if slices.Contains(actual, target) {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName, target).
			Actual(actual).WarnIfLong().
			AddFindingf("Item", "%#v", target).
			Summary
	}
}

// NotContain returns a comparison.Func which checks that a slice does not
// contain `target`.
func NotContain[T comparable](target T) comparison.Func[[]T] {
	const cmpName = "should.NotContain"
	return func(actual []T) *failure.Summary {
		idx := slices.Index(actual, target)
		if idx < 0 {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName, target).
			Actual(actual).WarnIfLong().
			AddFindingf("Item", "%#v", target).
			AddFindingf("Found at index", "%d", idx).
			Summary
	}
}

// ContainKey returns a comparison.Func which checks that a map contains the
// key `key`.
func ContainKey[K comparable, V any](key K) comparison.Func[map[K]V] {
	const cmpName = "should.ContainKey"
	return func(actual map[K]V) *failure.Summary {
		if _, ok := actual[key]; ok {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName, key).
			Actual(actual).WarnIfLong().
			AddFindingf("Key", "%#v", key).
			Summary
	}
}

// BeIn returns a comparison.Func which checks that the actual value is a
// member of `collection`.
func BeIn[T comparable](collection ...T) comparison.Func[T] {
	const cmpName = "should.BeIn"
	return func(actual T) *failure.Summary {
		if slices.Contains(collection, actual) {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName, actual).
			Actual(actual).
			AddFindingf("Collection", "%#v", collection).WarnIfLong().
			Summary
	}
}

// NotBeIn returns a comparison.Func which checks that the actual value is not
// a member of `collection`.
func NotBeIn[T comparable](collection ...T) comparison.Func[T] {
	const cmpName = "should.NotBeIn"
	return func(actual T) *failure.Summary {
		if !slices.Contains(collection, actual) {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName, actual).
			Actual(actual).
			AddFindingf("Collection", "%#v", collection).WarnIfLong().
			Summary
	}
}
