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

// BeTrue implements comparison.Func[bool] and asserts that `actual` is true.
func BeTrue(actual bool) *failure.Summary {
	if actual {
		return nil
	}
	return comparison.NewSummaryBuilder("should.BeTrue").Summary
}

// BeFalse implements comparison.Func[bool] and asserts that `actual` is false.
func BeFalse(actual bool) *failure.Summary {
	if !actual {
		return nil
	}
	return comparison.NewSummaryBuilder("should.BeFalse").Summary
}
