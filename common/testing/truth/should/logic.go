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
	"fmt"

	"github.com/verity-go/verity/common/testing/truth/comparison"
	"github.com/verity-go/verity/common/testing/truth/failure"
)

// addNested copies the findings of `inner` into `sb`, prefixed with `label`.
func addNested(sb *comparison.SummaryBuilder, label string, inner *failure.Summary) {
	if inner == nil {
		return
	}
	sb.AddFindingf(label, "%s FAILED", comparison.RenderCLI{}.Comparison(inner))
	for _, f := range inner.Findings {
		nested := *f
		nested.Name = label + " " + f.Name
		sb.AddFinding(&nested)
	}
}

// Not returns a comparison.Func which passes iff `compare` fails.
//
// Example:
//
//	assert.That(t, "hello", should.Not(should.HavePrefix("x")))
func Not[T any](compare comparison.Func[T]) comparison.Func[T] {
	const cmpName = "should.Not"
	return func(actual T) *failure.Summary {
		if compare(actual) != nil {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName, actual).
			Because("Negated comparison passed.").
			Actual(actual).WarnIfLong().
			Summary
	}
}

// AllOf returns a comparison.Func which passes iff every one of `compares`
// passes. Comparisons are evaluated in order and evaluation stops at the first
// failure.
//
// AllOf with no comparisons always passes.
func AllOf[T any](compares ...comparison.Func[T]) comparison.Func[T] {
	const cmpName = "should.AllOf"
	return func(actual T) *failure.Summary {
		for i, compare := range compares {
			if inner := compare(actual); inner != nil {
				sb := comparison.NewSummaryBuilder(cmpName, actual).
					Because("Clause %d of %d failed.", i+1, len(compares))
				addNested(sb, fmt.Sprintf("Clause %d", i+1), inner)
				return sb.Summary
			}
		}
		return nil
	}
}

// AnyOf returns a comparison.Func which passes iff at least one of `compares`
// passes. Comparisons are evaluated in order and evaluation stops at the first
// success.
//
// AnyOf with no comparisons always fails.
func AnyOf[T any](compares ...comparison.Func[T]) comparison.Func[T] {
	const cmpName = "should.AnyOf"
	return func(actual T) *failure.Summary {
		inners := make([]*failure.Summary, 0, len(compares))
		for _, compare := range compares {
			inner := compare(actual)
			if inner == nil {
				return nil
			}
			inners = append(inners, inner)
		}
		sb := comparison.NewSummaryBuilder(cmpName, actual).
			Because("None of %d clauses passed.", len(compares))
		for i, inner := range inners {
			addNested(sb, fmt.Sprintf("Clause %d", i+1), inner)
		}
		return sb.Summary
	}
}
