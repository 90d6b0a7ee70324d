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
	"fmt"
	"testing"
)

func TestHaveType(t *testing.T) {
	t.Parallel()

	t.Run("concrete", shouldPass(HaveType[string]("x")))
	t.Run("interface", shouldPass(HaveType[error](errors.New("x"))))
	t.Run("stringer", shouldFail(HaveType[fmt.Stringer](12), "Actual type: int", "Expected type: fmt.Stringer"))
	t.Run("nil", shouldFail(HaveType[string](nil), "Actual type: <nil>"))

	t.Run("NotHaveType", shouldPass(NotHaveType[string](12)))
	t.Run("NotHaveType fail", shouldFail(NotHaveType[int](12), "should.NotHaveType[int]"))
}
