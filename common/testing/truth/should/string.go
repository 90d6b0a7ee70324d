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
	"regexp"
	"strings"

	"github.com/verity-go/verity/common/testing/truth/comparison"
	"github.com/verity-go/verity/common/testing/truth/failure"
)

func stringCheck(cmpName, argName, arg string, want bool, pred func(actual, arg string) bool) comparison.Func[string] {
	return func(actual string) *failure.Summary {
		if pred(actual, arg) == want {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName).
			Actual(actual).WarnIfLong().
			AddFindingf(argName, "%q", arg).
			Summary
	}
}

// ContainSubstring returns a comparison.Func which checks to see if a string
// contains `substr`.
func ContainSubstring(substr string) comparison.Func[string] {
	return stringCheck("should.ContainSubstring", "Substring", substr, true, strings.Contains)
}

// NotContainSubstring returns a comparison.Func which checks to see if a
// string does not contain `substr`.
func NotContainSubstring(substr string) comparison.Func[string] {
	return stringCheck("should.NotContainSubstring", "Substring", substr, false, strings.Contains)
}

// HavePrefix returns a comparison.Func which checks to see if a string starts
// with `prefix`.
func HavePrefix(prefix string) comparison.Func[string] {
	return stringCheck("should.HavePrefix", "Prefix", prefix, true, strings.HasPrefix)
}

// NotHavePrefix returns a comparison.Func which checks to see if a string
// does not start with `prefix`.
func NotHavePrefix(prefix string) comparison.Func[string] {
	return stringCheck("should.NotHavePrefix", "Prefix", prefix, false, strings.HasPrefix)
}

// HaveSuffix returns a comparison.Func which checks to see if a string ends
// with `suffix`.
func HaveSuffix(suffix string) comparison.Func[string] {
	return stringCheck("should.HaveSuffix", "Suffix", suffix, true, strings.HasSuffix)
}

// NotHaveSuffix returns a comparison.Func which checks to see if a string
// does not end with `suffix`.
func NotHaveSuffix(suffix string) comparison.Func[string] {
	return stringCheck("should.NotHaveSuffix", "Suffix", suffix, false, strings.HasSuffix)
}

// EqualFold returns a comparison.Func which checks that a string equals
// `expected` under Unicode case-folding.
func EqualFold(expected string) comparison.Func[string] {
	return stringCheck("should.EqualFold", "Expected", expected, true, strings.EqualFold)
}

// MatchRegexp returns a comparison.Func which checks that a string matches the
// regular expression `pattern` (see regexp.MatchString, the match is not
// anchored).
//
// An invalid pattern fails every comparison.
func MatchRegexp(pattern string) comparison.Func[string] {
	const cmpName = "should.MatchRegexp"

	re, err := regexp.Compile(pattern)
	if err != nil {
		return func(string) *failure.Summary {
			return comparison.NewSummaryBuilder(cmpName).
				Because("Invalid pattern: %s", err).
				Summary
		}
	}

	return stringCheck(cmpName, "Pattern", pattern, true, func(actual, _ string) bool {
		return re.MatchString(actual)
	})
}
