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

	"google.golang.org/protobuf/types/known/wrapperspb"
)

type point struct {
	X, Y int
}

func TestMatch(t *testing.T) {
	t.Parallel()

	t.Run("simple", shouldPass(Match(100)(100)))
	t.Run("simple fail", shouldFail(Match(100)(101), "Diff"))

	t.Run("pointers compare by value", shouldPass(Match(&point{1, 2})(&point{1, 2})))
	t.Run("struct fail", shouldFail(Match(point{1, 2})(point{1, 3}), "Diff", "Y"))

	t.Run("proto", shouldPass(Match(wrapperspb.String("hi"))(wrapperspb.String("hi"))))
	t.Run("proto fail", shouldFail(Match(wrapperspb.String("hi"))(wrapperspb.String("bye")), "Diff"))

	t.Run("NotMatch", shouldPass(NotMatch([]int{1})([]int{2})))
	t.Run("NotMatch fail", shouldFail(NotMatch([]int{1})([]int{1}), "should.NotMatch"))
}
