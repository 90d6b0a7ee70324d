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
	"strings"

	"github.com/verity-go/verity/common/testing/truth/comparison"
	"github.com/verity-go/verity/common/testing/truth/failure"
)

// ErrLike returns a comparison.Func which checks an error against `target`.
//
// `target` may be:
//   - nil, in which case the actual error must be nil.
//   - a string, in which case the actual error's message must contain it.
//   - an error, in which case errors.Is(actual, target) must hold.
//
// Any other target type yields a comparison which always fails.
func ErrLike(target any) comparison.Func[error] {
	switch x := target.(type) {
	case nil:
		return ErrLikeError(nil)
	case string:
		return ErrLikeString(x)
	case error:
		return ErrLikeError(x)
	}
	return func(error) *failure.Summary {
		return comparison.NewSummaryBuilder("should.ErrLike").
			Because("target must be nil, a string or an error, got %T", target).
			Summary
	}
}

// ErrLikeString returns a comparison.Func which checks that the actual error
// is non-nil and its message contains `substring`.
func ErrLikeString(substring string) comparison.Func[error] {
	const cmpName = "should.ErrLikeString"
	return func(actual error) *failure.Summary {
		if actual == nil {
			return comparison.NewSummaryBuilder(cmpName).
				Because("Actual is nil.").
				AddFindingf("Substring", "%q", substring).
				Summary
		}
		if strings.Contains(actual.Error(), substring) {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName).
			Because("Actual is missing substring.").
			Actual(actual).WarnIfLong().
			AddFindingf("Substring", "%q", substring).
			Summary
	}
}

// ErrLikeError returns a comparison.Func which checks that the actual error
// matches `target` with errors.Is.
//
// A nil target asserts that the actual error is nil.
func ErrLikeError(target error) comparison.Func[error] {
	const cmpName = "should.ErrLikeError"
	return func(actual error) *failure.Summary {
		if target == nil {
			if actual == nil {
				return nil
			}
			return comparison.NewSummaryBuilder(cmpName).
				Because("Unexpected error.").
				Actual(actual).WarnIfLong().
				Summary
		}
		if errors.Is(actual, target) {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName).
			Because("errors.Is(actual, expected) is false.").
			Actual(actual).WarnIfLong().
			Expected(target).WarnIfLong().
			Summary
	}
}
