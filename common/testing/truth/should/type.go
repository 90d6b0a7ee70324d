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

// HaveType implements comparison.Func[any] and asserts that `actual` holds a
// T. If T is an interface type, `actual` must implement it.
//
// Example:
//
//	assert.That(t, any("x"), should.HaveType[string])
func HaveType[T any](actual any) *failure.Summary {
	if _, ok := actual.(T); ok {
		return nil
	}
	return comparison.NewSummaryBuilder("should.HaveType", reflect.TypeFor[T]()).
		AddFindingf("Actual type", "%T", actual).
		AddFindingf("Expected type", "%s", reflect.TypeFor[T]()).
		Summary
}

// NotHaveType is the inverse of HaveType.
func NotHaveType[T any](actual any) *failure.Summary {
	if _, ok := actual.(T); !ok {
		return nil
	}
	return comparison.NewSummaryBuilder("should.NotHaveType", reflect.TypeFor[T]()).
		AddFindingf("Actual type", "%T", actual).
		Summary
}
