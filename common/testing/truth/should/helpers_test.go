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
	"strings"
	"testing"

	"github.com/verity-go/verity/common/testing/truth/comparison"
	"github.com/verity-go/verity/common/testing/truth/failure"
)

var render = comparison.RenderCLI{Verbose: true}

func shouldPass(summary *failure.Summary) func(*testing.T) {
	return func(t *testing.T) {
		t.Helper()
		if summary != nil {
			t.Errorf("expected comparison to pass, got:\n%s", render.Summary("", "", summary))
		}
	}
}

// shouldFail checks that `summary` is a failure and that its rendering
// contains every one of `substrings`.
func shouldFail(summary *failure.Summary, substrings ...string) func(*testing.T) {
	return func(t *testing.T) {
		t.Helper()
		if summary == nil {
			t.Fatal("expected comparison to fail, but it passed")
		}
		rendered := render.Summary("", "", summary)
		for _, sub := range substrings {
			if !strings.Contains(rendered, sub) {
				t.Errorf("rendered failure is missing %q:\n%s", sub, rendered)
			}
		}
	}
}
