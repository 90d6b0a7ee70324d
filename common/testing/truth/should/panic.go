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
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/verity-go/verity/common/runtime/paniccatcher"
	"github.com/verity-go/verity/common/testing/truth/comparison"
	"github.com/verity-go/verity/common/testing/truth/failure"
)

// Panic implements comparison.Func[func()] and asserts that calling `fn`
// panics.
func Panic(fn func()) *failure.Summary {
	if paniccatcher.PCall(fn) != nil {
		return nil
	}
	return comparison.NewSummaryBuilder("should.Panic").
		Because("function did not panic").
		Summary
}

// NotPanic implements comparison.Func[func()] and asserts that calling `fn`
// does not panic.
func NotPanic(fn func()) *failure.Summary {
	caught := paniccatcher.PCall(fn)
	if caught == nil {
		return nil
	}
	return comparison.NewSummaryBuilder("should.NotPanic").
		Because("function panicked").
		AddFindingf("Reason", "%v", caught.Reason).
		AddFindingf("Stack", "%s", caught.Stack).WarnIfLong().
		Summary
}

// PanicLikeString returns a comparison.Func which asserts that `fn` panics
// with a string or error whose text contains `substring`.
//
// It fails when `fn` panics with anything that is NOT a string or an error.
func PanicLikeString(substring string) comparison.Func[func()] {
	const cmpName = "should.PanicLikeString"
	return func(fn func()) *failure.Summary {
		caught := paniccatcher.PCall(fn)
		if caught == nil {
			return comparison.NewSummaryBuilder(cmpName).
				Because("function did not panic").
				Summary
		}
		var str string
		switch v := caught.Reason.(type) {
		case string:
			str = v
		case error:
			str = v.Error()
		default:
			return comparison.NewSummaryBuilder(cmpName).
				Because("panic reason is neither error nor string").
				AddFindingf("Reason", "%T", caught.Reason).
				Summary
		}
		if strings.Contains(str, substring) {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName).
			Because("Actual is missing substring.").
			Actual(str).WarnIfLong().
			AddFindingf("Substring", "%q", substring).
			Summary
	}
}

// PanicLikeError returns a comparison.Func which asserts that `fn` panics with
// an error matching `target` via errors.Is.
func PanicLikeError(target error) comparison.Func[func()] {
	const cmpName = "should.PanicLikeError"
	return func(fn func()) *failure.Summary {
		if target == nil {
			return comparison.NewSummaryBuilder(cmpName).
				Because("nil as expected panic is not allowed; use runtime.PanicNilError instead").
				Summary
		}
		caught := paniccatcher.PCall(fn)
		if caught == nil {
			return comparison.NewSummaryBuilder(cmpName).
				Because("function did not panic").
				Summary
		}
		e, ok := caught.Reason.(error)
		if !ok {
			return comparison.NewSummaryBuilder(cmpName).
				Because("caught panic is not an error").
				AddFindingf("Reason", "%#v", caught.Reason).
				Expected(target).
				Summary
		}
		if !errors.Is(e, target) {
			return comparison.NewSummaryBuilder(cmpName).
				Because("error does not match target").
				Actual(e).
				Expected(target).
				Summary
		}
		return nil
	}
}

// PanicOfType implements comparison.Func[func()] and asserts that `fn` panics
// with a value assignable to E.
//
// Example:
//
//	assert.That(t, fn, should.PanicOfType[*runtime.TypeAssertionError])
func PanicOfType[E any](fn func()) *failure.Summary {
	const cmpName = "should.PanicOfType"
	typ := reflect.TypeFor[E]()
	caught := paniccatcher.PCall(fn)
	if caught == nil {
		return comparison.NewSummaryBuilder(cmpName, typ).
			Because("function did not panic").
			Summary
	}
	if _, ok := caught.Reason.(E); ok {
		return nil
	}
	return comparison.NewSummaryBuilder(cmpName, typ).
		Because("panic reason has the wrong type").
		AddFindingf("Actual type", "%T", caught.Reason).
		AddFindingf("Reason", "%s", fmt.Sprint(caught.Reason)).WarnIfLong().
		Summary
}
