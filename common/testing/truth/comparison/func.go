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

package comparison

import (
	"fmt"
	"reflect"
	"runtime"

	"github.com/verity-go/verity/common/testing/truth/failure"
)

// Func takes in a value-to-be-compared and returns a failure.Summary if the value
// does not meet the expectation of this comparison.Func.
//
// Example:
//
//	func BeTrue(value bool) *failure.Summary {
//	  if !value {
//	    return comparison.NewSummaryBuilder("should.BeTrue").Summary
//	  }
//	  return nil
//	}
//
// In this example, BeTrue is a comparison.Func.
type Func[T any] func(T) *failure.Summary

// Caster is implemented by every Func[T].
//
// It allows call sites which only know the actual value as `any` (e.g. the
// inherited Expect syntax, or property access) to still use a strongly typed
// comparison.
type Caster interface {
	CastCompare(actual any) *failure.Summary
}

var _ Caster = Func[int](nil)

// WithLineContext returns a transformed Func to add an "at" SourceContext with
// one frame containing the filename and line number of the frame calling
// WithLineContext, plus skipFrames[0] (if provided).
//
// Example:
//
//	check.That(t, something, should.Equal(100).WithLineContext())
//
// This is mostly useful in test helpers (which call t.Helper()), to record the
// location of the specific assertion inside of the helper alongside the
// location computed by the testing library.
func (cmp Func[T]) WithLineContext(skipFrames ...int) Func[T] {
	if len(skipFrames) > 1 {
		panic(fmt.Errorf(
			"comparison.Func.WithLineContext: skipFrames has more than one value: %v", skipFrames))
	}

	skip := 1
	if len(skipFrames) > 0 {
		skip = 1 + skipFrames[0]
	}
	_, filename, lineno, ok := runtime.Caller(skip)
	if !ok {
		return cmp
	}

	return func(actual T) *failure.Summary {
		ret := cmp(actual)
		if ret != nil {
			ret.SourceContext = append(ret.SourceContext, &failure.Stack{
				Name:   "at",
				Frames: []*failure.StackFrame{{Filename: filename, Lineno: int64(lineno)}},
			})
		}
		return ret
	}
}

// CastCompare converts `actual` to T and then applies this comparison to it.
//
// The conversion is lossless or not done at all: `uint8(100)` may be compared
// with a Func[int], but `10000` may not be compared with a Func[uint8]. A nil
// `actual` converts to the zero value of nillable T's (pointers, interfaces,
// slices, maps, channels and functions).
//
// If the conversion is not possible, this returns a Summary for
// "builtin.LosslessConvertTo[T]".
func (cmp Func[T]) CastCompare(actual any) *failure.Summary {
	if v, ok := actual.(T); ok {
		return cmp(v)
	}

	var zero T
	target := reflect.TypeOf(&zero).Elem()

	if actual == nil {
		if isNillable(target.Kind()) {
			return cmp(zero)
		}
		return castFailure[T](actual)
	}

	converted, ok := losslessConvert(reflect.ValueOf(actual), target)
	if !ok {
		return castFailure[T](actual)
	}
	return cmp(converted.Interface().(T))
}

func castFailure[T any](actual any) *failure.Summary {
	return castFailureTo(reflect.TypeFor[T](), actual)
}

func castFailureTo(target reflect.Type, actual any) *failure.Summary {
	return NewSummaryBuilder("builtin.LosslessConvertTo", target).
		Because("Unable to convert actual `%T` to `%s` without loss.", actual, target).
		Actual(actual).
		Summary
}

func isNillable(k reflect.Kind) bool {
	switch k {
	case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return true
	}
	return false
}

func isSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isNumeric(k reflect.Kind) bool {
	return isSigned(k) || isUnsigned(k) || isFloat(k)
}

func losslessConvert(v reflect.Value, to reflect.Type) (reflect.Value, bool) {
	from := v.Type()
	if !from.ConvertibleTo(to) {
		return reflect.Value{}, false
	}

	fromKind, toKind := from.Kind(), to.Kind()
	switch {
	case isNumeric(fromKind) && isNumeric(toKind):
		if isSigned(fromKind) && isUnsigned(toKind) && v.Int() < 0 {
			return reflect.Value{}, false
		}
		out := v.Convert(to)
		if isUnsigned(fromKind) && isSigned(toKind) && out.Int() < 0 {
			return reflect.Value{}, false
		}
		if !out.Convert(from).Equal(v) {
			return reflect.Value{}, false
		}
		return out, true

	case fromKind == toKind:
		// Named types sharing an underlying type, e.g. `type name string`.
		return v.Convert(to), true
	}

	return reflect.Value{}, false
}
