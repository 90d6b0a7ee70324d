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
	"github.com/google/go-cmp/cmp"

	"github.com/verity-go/verity/common/testing/truth/comparison"
	"github.com/verity-go/verity/common/testing/truth/failure"
	"github.com/verity-go/verity/common/testing/typed"
)

// Match returns a comparison.Func which checks if the actual value matches
// `expected` structurally.
//
// Matching is computed with "github.com/google/go-cmp/cmp", and this function
// accepts additional cmp.Options to allow for handling of different
// types/fields/filtering proto Message semantics, etc.
//
// For convenience, `opts` implicitly includes:
//   - "google.golang.org/protobuf/testing/protocmp".Transform()
//
// This is done via the github.com/verity-go/verity/common/testing/registry
// package, which also allows process-wide registration of additional default
// cmp.Options.
//
// It is recommended that you use should.Equal when comparing primitive types.
func Match[T any](expected T, opts ...cmp.Option) comparison.Func[T] {
	const cmpName = "should.Match"

	return func(actual T) *failure.Summary {
		diff := typed.Diff(expected, actual, opts...)
		if diff == "" {
			return nil
		}

		return comparison.NewSummaryBuilder(cmpName, expected).
			Actual(actual).WarnIfLong().
			Expected(expected).WarnIfLong().
			AddCmpDiff(diff).
			Summary
	}
}

// NotMatch is the inverse of Match.
func NotMatch[T any](expected T, opts ...cmp.Option) comparison.Func[T] {
	const cmpName = "should.NotMatch"

	return func(actual T) *failure.Summary {
		if !typed.Equal(expected, actual, opts...) {
			return nil
		}

		return comparison.NewSummaryBuilder(cmpName, expected).
			Actual(actual).WarnIfLong().
			Summary
	}
}
