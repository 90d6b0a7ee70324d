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

package comparison

import (
	"strings"
	"testing"

	"github.com/verity-go/verity/common/testing/truth/failure"
)

func TestSmartCmpDiff(t *testing.T) {
	t.Parallel()

	t.Run("short values get no diff", func(t *testing.T) {
		t.Parallel()

		s := NewSummaryBuilder("x").SmartCmpDiff(1, 2).Summary
		if s.FindingByName("Diff") != nil {
			t.Error("unexpected Diff finding")
		}
	})

	t.Run("long single line strings get a char diff", func(t *testing.T) {
		t.Parallel()

		a := strings.Repeat("X", 40) + "woat" + strings.Repeat("X", 40)
		b := strings.Repeat("X", 40) + "merp" + strings.Repeat("X", 40)
		diff := NewSummaryBuilder("x").SmartCmpDiff(a, b).Summary.FindingByName("Diff")
		if diff == nil || diff.Type != failure.HintCharDiff {
			t.Fatalf("expected char diff, got %+v", diff)
		}
		if !strings.Contains(diff.Value[0], "[-merp-]") || !strings.Contains(diff.Value[0], "{+woat+}") {
			t.Errorf("unexpected char diff: %q", diff.Value[0])
		}
	})

	t.Run("multi-line strings get a unified diff", func(t *testing.T) {
		t.Parallel()

		diff := NewSummaryBuilder("x").
			SmartCmpDiff("a\nb\nc\n", "a\nB\nc\n").Summary.FindingByName("Diff")
		if diff == nil || diff.Type != failure.HintUnifiedDiff {
			t.Fatalf("expected unified diff, got %+v", diff)
		}
		joined := strings.Join(diff.Value, "\n")
		if !strings.Contains(joined, "-B") || !strings.Contains(joined, "+b") {
			t.Errorf("unexpected unified diff:\n%s", joined)
		}
	})

	t.Run("pointers to equal values", func(t *testing.T) {
		t.Parallel()

		a, b := 100, 100
		diff := NewSummaryBuilder("x").SmartCmpDiff(&a, &b).Summary.FindingByName("Diff")
		// The pointers render differently, and cmp.Diff would see no difference
		// between the pointees anyway.
		if diff != nil {
			t.Errorf("unexpected diff: %+v", diff)
		}
	})

	t.Run("long structs get a cmp diff", func(t *testing.T) {
		t.Parallel()

		type thing struct {
			Name  string
			Count int
		}
		a := thing{Name: strings.Repeat("n", 20), Count: 1}
		b := thing{Name: strings.Repeat("n", 20), Count: 2}
		diff := NewSummaryBuilder("x").SmartCmpDiff(a, b).Summary.FindingByName("Diff")
		if diff == nil || diff.Type != failure.HintCmpDiff {
			t.Fatalf("expected cmp diff, got %+v", diff)
		}
	})

	t.Run("unexported fields do not panic", func(t *testing.T) {
		t.Parallel()

		type hidden struct{ v string }
		a := hidden{strings.Repeat("a", 40)}
		b := hidden{strings.Repeat("b", 40)}
		s := NewSummaryBuilder("x").SmartCmpDiff(a, b).Summary
		if s.FindingByName("Actual") == nil {
			t.Error("missing Actual finding")
		}
	})
}
