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
	"cmp"

	"github.com/verity-go/verity/common/testing/truth/comparison"
	"github.com/verity-go/verity/common/testing/truth/failure"
)

func orderedCompare[T cmp.Ordered](cmpName string, target T, relation string, ok func(int) bool) comparison.Func[T] {
	return func(actual T) *failure.Summary {
		if ok(cmp.Compare(actual, target)) {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName, target).
			Because("Actual is not %s %v.", relation, target).
			Actual(actual).
			Summary
	}
}

// BeGreaterThan checks that `actual` > `lower`.
func BeGreaterThan[T cmp.Ordered](lower T) comparison.Func[T] {
	return orderedCompare("should.BeGreaterThan", lower, "greater than",
		func(c int) bool { return c > 0 })
}

// BeGreaterThanOrEqual checks that `actual` >= `lower`.
func BeGreaterThanOrEqual[T cmp.Ordered](lower T) comparison.Func[T] {
	return orderedCompare("should.BeGreaterThanOrEqual", lower, "greater than or equal to",
		func(c int) bool { return c >= 0 })
}

// BeLessThan checks that `actual` < `upper`.
func BeLessThan[T cmp.Ordered](upper T) comparison.Func[T] {
	return orderedCompare("should.BeLessThan", upper, "less than",
		func(c int) bool { return c < 0 })
}

// BeLessThanOrEqual checks that `actual` <= `upper`.
func BeLessThanOrEqual[T cmp.Ordered](upper T) comparison.Func[T] {
	return orderedCompare("should.BeLessThanOrEqual", upper, "less than or equal to",
		func(c int) bool { return c <= 0 })
}

func between[T cmp.Ordered](cmpName string, lower, upper T, inclusive bool) comparison.Func[T] {
	if cmp.Compare(lower, upper) > 0 {
		return func(actual T) *failure.Summary {
			return comparison.NewSummaryBuilder(cmpName, lower).
				Because("%s: `lower` (%v) is greater than `upper` (%v)", cmpName, lower, upper).
				Summary
		}
	}

	return func(actual T) *failure.Summary {
		lo, hi := cmp.Compare(actual, lower), cmp.Compare(actual, upper)
		if inclusive && lo >= 0 && hi <= 0 {
			return nil
		}
		if !inclusive && lo > 0 && hi < 0 {
			return nil
		}

		lb, rb := "(", ")"
		if inclusive {
			lb, rb = "[", "]"
		}
		return comparison.NewSummaryBuilder(cmpName, lower).
			Actual(actual).
			AddFindingf("Expected", "in %s%v, %v%s", lb, lower, upper, rb).
			Summary
	}
}

// BeBetween checks that `lower` < `actual` < `upper`.
func BeBetween[T cmp.Ordered](lower, upper T) comparison.Func[T] {
	return between("should.BeBetween", lower, upper, false)
}

// BeBetweenOrEqual checks that `lower` <= `actual` <= `upper`.
func BeBetweenOrEqual[T cmp.Ordered](lower, upper T) comparison.Func[T] {
	return between("should.BeBetweenOrEqual", lower, upper, true)
}
