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
	"testing"
)

func TestOrdered(t *testing.T) {
	t.Parallel()

	t.Run("7 > 3", shouldPass(BeGreaterThan(3)(7)))
	t.Run("3 > 7", shouldFail(BeGreaterThan(7)(3), "greater than 7", "Actual: 3"))
	t.Run("7 >= 7", shouldPass(BeGreaterThanOrEqual(7)(7)))
	t.Run("6 >= 7", shouldFail(BeGreaterThanOrEqual(7)(6)))

	t.Run("7 < 10", shouldPass(BeLessThan(10)(7)))
	t.Run("10 < 10", shouldFail(BeLessThan(10)(10), "less than 10"))
	t.Run("10 <= 10", shouldPass(BeLessThanOrEqual(10)(10)))
	t.Run("11 <= 10", shouldFail(BeLessThanOrEqual(10)(11)))

	t.Run("strings", shouldPass(BeLessThan("b")("a")))
	t.Run("floats", shouldPass(BeGreaterThan(7.0)(7.5)))
}

func TestBetween(t *testing.T) {
	t.Parallel()

	t.Run("inside", shouldPass(BeBetween(3, 10)(7)))
	t.Run("exclusive bound", shouldFail(BeBetween(3, 10)(10), "(3, 10)"))
	t.Run("inclusive bound", shouldPass(BeBetweenOrEqual(3, 10)(10)))
	t.Run("outside inclusive", shouldFail(BeBetweenOrEqual(3, 10)(11), "[3, 10]"))
	t.Run("inverted bounds", shouldFail(BeBetween(10, 3)(7), "is greater than `upper`"))
}
