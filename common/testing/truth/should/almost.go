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
	"math"
	"reflect"

	"github.com/verity-go/verity/common/testing/truth/comparison"
	"github.com/verity-go/verity/common/testing/truth/failure"
)

type float interface {
	~float32 | ~float64
}

// machineEpsilon is FLT_EPSILON or DBL_EPSILON, depending on the size of T.
func machineEpsilon[T float]() T {
	var zero T
	if reflect.TypeOf(zero).Bits() == 32 {
		return T(math.Nextafter32(1, 2) - 1)
	}
	return T(math.Nextafter(1, 2) - 1)
}

func resolveEpsilon[T float](cmpName string, epsilon []T) (T, comparison.Func[T]) {
	switch {
	case len(epsilon) > 1:
		return 0, func(actual T) *failure.Summary {
			return comparison.NewSummaryBuilder(cmpName, actual).
				Because("%s: `epsilon` is a single optional value, got %d values", cmpName, len(epsilon)).
				Summary
		}
	case len(epsilon) == 1 && epsilon[0] < 0:
		return 0, func(actual T) *failure.Summary {
			return comparison.NewSummaryBuilder(cmpName, actual).
				Because("%s: `epsilon` is negative: %v", cmpName, epsilon[0]).
				Summary
		}
	case len(epsilon) == 1:
		return epsilon[0], nil
	}
	return machineEpsilon[T](), nil
}

func within[T float](actual, target, epsilon T) (delta T, ok bool) {
	delta = actual - target
	return delta, math.Abs(float64(delta)) <= float64(epsilon)
}

// AlmostEqual returns a comparison Func which checks if a floating point value
// is within `epsilon` of `target`.
//
// By default, `epsilon` is `math.Nextafter(1, 2) - 1` (or the 32 bit
// equivalent), i.e. the gap between 1 and the next representable value.
//
// You may optionally pass a (single, non-negative) explicit epsilon value.
// An epsilon of 0 requires exact equality.
func AlmostEqual[T float](target T, epsilon ...T) comparison.Func[T] {
	const cmpName = "should.AlmostEqual"
	ep, errFn := resolveEpsilon(cmpName, epsilon)
	if errFn != nil {
		return errFn
	}

	return func(actual T) *failure.Summary {
		delta, ok := within(actual, target, ep)
		if ok {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName, target).
			Because("Actual value was %g off of target.", delta).
			Actual(actual).
			AddFindingf("Expected", "%g ± %g", target, ep).
			Summary
	}
}

// NotAlmostEqual is the inverse of AlmostEqual.
func NotAlmostEqual[T float](target T, epsilon ...T) comparison.Func[T] {
	const cmpName = "should.NotAlmostEqual"
	ep, errFn := resolveEpsilon(cmpName, epsilon)
	if errFn != nil {
		return errFn
	}

	return func(actual T) *failure.Summary {
		if _, ok := within(actual, target, ep); !ok {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName, target).
			Actual(actual).
			AddFindingf("Expected", "outside %g ± %g", target, ep).
			Summary
	}
}
