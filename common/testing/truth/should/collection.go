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
	"github.com/verity-go/verity/common/testing/truth/comparison"
	"github.com/verity-go/verity/common/testing/truth/failure"
)

// counts builds a multiset of `items`.
//
// Items are map keys, so they compare with `==`. A float NaN never equals
// anything, itself included: every NaN is its own distinct item. This is why
// the set comparisons below treat NaN as never present.
func counts[T comparable](items []T) map[T]int {
	ret := make(map[T]int, len(items))
	for _, item := range items {
		ret[item]++
	}
	return ret
}

// missingFrom returns the items of `items` (in order, without repeats) which
// are not in `set`.
func missingFrom[T comparable](items []T, set map[T]int) []T {
	var ret []T
	seen := make(map[T]bool, len(items))
	for _, item := range items {
		if set[item] == 0 && !seen[item] {
			ret = append(ret, item)
		}
		seen[item] = true
	}
	return ret
}

// BeSubsetOf returns a comparison.Func which checks that every item of the
// actual slice also appears in `superset`.
//
// Multiplicity is ignored, i.e. this has set semantics.
func BeSubsetOf[T comparable](superset []T) comparison.Func[[]T] {
	const cmpName = "should.BeSubsetOf"
	super := counts(superset)
	return func(actual []T) *failure.Summary {
		missing := missingFrom(actual, super)
		if len(missing) == 0 {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName, superset).
			Actual(actual).WarnIfLong().
			AddFindingf("Superset", "%#v", superset).WarnIfLong().
			AddFindingf("Not in superset", "%#v", missing).
			Summary
	}
}

// BeSupersetOf returns a comparison.Func which checks that every item of
// `subset` also appears in the actual slice.
//
// Multiplicity is ignored, i.e. this has set semantics.
func BeSupersetOf[T comparable](subset []T) comparison.Func[[]T] {
	const cmpName = "should.BeSupersetOf"
	return func(actual []T) *failure.Summary {
		missing := missingFrom(subset, counts(actual))
		if len(missing) == 0 {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName, subset).
			Actual(actual).WarnIfLong().
			AddFindingf("Missing", "%#v", missing).
			Summary
	}
}

// BeEquivalentTo returns a comparison.Func which checks that the actual slice
// contains exactly the same items as `expected`, in any order.
//
// Multiplicity matters: {1, 1, 2} is not equivalent to {1, 2, 2}.
//
// As with Equal, items compare with `==`, so a slice holding NaN is never
// equivalent to anything.
func BeEquivalentTo[T comparable](expected []T) comparison.Func[[]T] {
	const cmpName = "should.BeEquivalentTo"
	return func(actual []T) *failure.Summary {
		unmatched := counts(actual)

		var missing, extra []T
		for _, item := range expected {
			if unmatched[item] > 0 {
				unmatched[item]--
			} else {
				missing = append(missing, item)
			}
		}
		for _, item := range actual {
			if unmatched[item] > 0 {
				extra = append(extra, item)
				unmatched[item]--
			}
		}
		if len(missing) == 0 && len(extra) == 0 {
			return nil
		}

		sb := comparison.NewSummaryBuilder(cmpName, expected).
			Actual(actual).WarnIfLong().
			Expected(expected).WarnIfLong()
		if len(missing) > 0 {
			sb.AddFindingf("Missing", "%#v", missing)
		}
		if len(extra) > 0 {
			sb.AddFindingf("Extra", "%#v", extra)
		}
		return sb.Summary
	}
}

// HaveUniqueItems implements comparison.Func[[]T] and asserts that no item
// appears more than once in the actual slice.
//
// Items compare with `==`, so NaNs are always unique.
func HaveUniqueItems[T comparable](actual []T) *failure.Summary {
	const cmpName = "should.HaveUniqueItems"

	// Duplicates are reported in order of first appearance.
	seen := counts(actual)
	var dups []T
	for _, item := range actual {
		if seen[item] > 1 {
			dups = append(dups, item)
			seen[item] = 0
		}
	}
	if len(dups) == 0 {
		return nil
	}
	var zero T
	return comparison.NewSummaryBuilder(cmpName, zero).
		Actual(actual).WarnIfLong().
		AddFindingf("Duplicates", "%#v", dups).
		Summary
}

// AllItems returns a comparison.Func which checks that every item of the
// actual slice passes `compare`.
//
// An empty slice passes.
func AllItems[T any](compare comparison.Func[T]) comparison.Func[[]T] {
	const cmpName = "should.AllItems"
	return func(actual []T) *failure.Summary {
		for i, item := range actual {
			if inner := compare(item); inner != nil {
				sb := comparison.NewSummaryBuilder(cmpName, item).
					Because("Item %d failed.", i)
				addNested(sb, "Item", inner)
				return sb.Summary
			}
		}
		return nil
	}
}

// SomeItem returns a comparison.Func which checks that at least one item of
// the actual slice passes `compare`.
func SomeItem[T any](compare comparison.Func[T]) comparison.Func[[]T] {
	const cmpName = "should.SomeItem"
	return func(actual []T) *failure.Summary {
		for _, item := range actual {
			if compare(item) == nil {
				return nil
			}
		}
		var zero T
		sb := comparison.NewSummaryBuilder(cmpName, zero).
			Because("No item passed.").
			Actual(actual).WarnIfLong()
		if len(actual) > 0 {
			addNested(sb, "Item 0", compare(actual[0]))
		}
		return sb.Summary
	}
}

// NoItem returns a comparison.Func which checks that no item of the actual
// slice passes `compare`.
func NoItem[T any](compare comparison.Func[T]) comparison.Func[[]T] {
	const cmpName = "should.NoItem"
	return func(actual []T) *failure.Summary {
		for i, item := range actual {
			if compare(item) == nil {
				return comparison.NewSummaryBuilder(cmpName, item).
					Because("Item %d passed.", i).
					Actual(actual).WarnIfLong().
					Summary
			}
		}
		return nil
	}
}
