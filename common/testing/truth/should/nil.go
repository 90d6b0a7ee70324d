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

// nilState classifies actual for the nil checks.
//
// A non-nil summary means actual is a kind which can never be nil, such as an
// int or a struct.
func nilState(cmpName string, actual any) (isNil bool, bad *failure.Summary) {
	if actual == nil {
		return true, nil
	}
	v := reflect.ValueOf(actual)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil(), nil
	}
	return false, comparison.NewSummaryBuilder(cmpName).
		Because("`%T` cannot be checked for nil", actual).
		Summary
}

// BeNil checks that actual is nil: an untyped nil, or a nil pointer, map,
// slice, channel, func or interface.
//
// Errors are routed through ErrLikeError(nil) so that a failure shows the
// error text. Values of kinds which cannot be nil always fail; use BeZero for
// those.
func BeNil(actual any) *failure.Summary {
	if err, ok := actual.(error); ok {
		return ErrLikeError(nil)(err)
	}

	const cmpName = "should.BeNil"
	isNil, bad := nilState(cmpName, actual)
	switch {
	case bad != nil:
		return bad
	case isNil:
		return nil
	}
	return comparison.NewSummaryBuilder(cmpName).Actual(actual).Summary
}

// NotBeNil is the inverse of BeNil. It also fails for kinds which cannot be
// nil.
func NotBeNil(actual any) *failure.Summary {
	const cmpName = "should.NotBeNil"
	isNil, bad := nilState(cmpName, actual)
	switch {
	case bad != nil:
		return bad
	case !isNil:
		return nil
	}
	return comparison.NewSummaryBuilder(cmpName).Summary
}

// BeZero checks that actual is the zero value of its type. An untyped nil
// counts as zero.
func BeZero(actual any) *failure.Summary {
	if actual == nil || reflect.ValueOf(actual).IsZero() {
		return nil
	}
	return comparison.NewSummaryBuilder("should.BeZero", actual).
		Actual(actual).
		Summary
}

// NotBeZero is the inverse of BeZero.
func NotBeZero(actual any) *failure.Summary {
	if actual != nil && !reflect.ValueOf(actual).IsZero() {
		return nil
	}
	return comparison.NewSummaryBuilder("should.NotBeZero", actual).Summary
}
