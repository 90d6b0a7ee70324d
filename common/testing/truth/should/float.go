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

	"github.com/verity-go/verity/common/testing/truth/comparison"
	"github.com/verity-go/verity/common/testing/truth/failure"
)

// BeNaN checks that a float value is NaN.
func BeNaN[T float](actual T) *failure.Summary {
	if math.IsNaN(float64(actual)) {
		return nil
	}
	return comparison.NewSummaryBuilder("should.BeNaN", actual).
		Actual(actual).
		Summary
}

// NotBeNaN checks that a float value is not NaN.
func NotBeNaN[T float](actual T) *failure.Summary {
	if !math.IsNaN(float64(actual)) {
		return nil
	}
	return comparison.NewSummaryBuilder("should.NotBeNaN", actual).Summary
}
