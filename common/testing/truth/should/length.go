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
	"reflect"

	"github.com/verity-go/verity/common/testing/truth/comparison"
	"github.com/verity-go/verity/common/testing/truth/failure"
)

// lengthOf returns the length of strings, slices, arrays, maps and channels
// (or pointers to arrays).
func lengthOf(cmpName string, actual any) (int, *failure.Summary) {
	if actual == nil {
		return 0, comparison.NewSummaryBuilder(cmpName).
			Because("untyped nil has no length").
			Summary
	}
	v := reflect.ValueOf(actual)
	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return v.Len(), nil
	case reflect.Pointer:
		if v.Type().Elem().Kind() == reflect.Array {
			return v.Type().Elem().Len(), nil
		}
	}
	return 0, comparison.NewSummaryBuilder(cmpName).
		Because("`%T` has no length", actual).
		Summary
}

// BeEmpty implements comparison.Func[any] and asserts that `actual` is a
// string, slice, array, map or channel of length 0.
func BeEmpty(actual any) *failure.Summary {
	const cmpName = "should.BeEmpty"
	n, ret := lengthOf(cmpName, actual)
	if ret != nil || n == 0 {
		return ret
	}
	return comparison.NewSummaryBuilder(cmpName, actual).
		Because("Actual has length %d.", n).
		Actual(actual).WarnIfLong().
		Summary
}

// NotBeEmpty implements comparison.Func[any] and asserts that `actual` is a
// string, slice, array, map or channel of non-zero length.
func NotBeEmpty(actual any) *failure.Summary {
	const cmpName = "should.NotBeEmpty"
	n, ret := lengthOf(cmpName, actual)
	if ret != nil || n != 0 {
		return ret
	}
	return comparison.NewSummaryBuilder(cmpName, actual).
		Actual(actual).
		Summary
}

// HaveLength returns a comparison.Func which asserts that `actual` has length
// `expected`.
func HaveLength(expected int) comparison.Func[any] {
	const cmpName = "should.HaveLength"
	return func(actual any) *failure.Summary {
		n, ret := lengthOf(cmpName, actual)
		if ret != nil || n == expected {
			return ret
		}
		return comparison.NewSummaryBuilder(cmpName, actual).
			AddFindingf("Actual length", "%d", n).
			AddFindingf("Expected length", "%d", expected).
			Actual(actual).WarnIfLong().
			Summary
	}
}
