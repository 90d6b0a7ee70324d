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

package truth

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/verity-go/verity/common/testing/truth/comparison"
	"github.com/verity-go/verity/common/testing/truth/failure"
	"github.com/verity-go/verity/common/testing/typed"
)

func checkAtContext(t *testing.T, s *failure.Summary, wantLine int) {
	t.Helper()

	ctx := s.SourceContext
	if len(ctx) != 1 {
		t.Fatalf("failure.SourceContext len wrong: %d", len(ctx))
	}
	atCtx := ctx[0]
	if diff := typed.Diff(atCtx.Name, "at"); diff != "" {
		t.Fatal(diff)
	}
	if len(atCtx.Frames) != 1 {
		t.Fatalf("failure.SourceContext[0].Frames len wrong: %d", len(atCtx.Frames))
	}
	frame := atCtx.Frames[0]
	if diff := typed.Diff(filepath.Base(frame.Filename), "option_line_context_test.go"); diff != "" {
		t.Fatalf("unexpected filename: %s", diff)
	}
	if diff := typed.Diff(frame.Lineno, int64(wantLine)); diff != "" {
		t.Fatalf("unexpected line number: %s", diff)
	}
}

func TestLineContext(t *testing.T) {
	t.Parallel()

	mkFailure := func() *failure.Summary {
		return comparison.NewSummaryBuilder("line_context_test/TestLineContext").Summary
	}

	t.Run("non-nil", func(t *testing.T) {
		opt, line := LineContext(0).(summaryModifier), lineHere()
		s := mkFailure()
		opt(s)
		checkAtContext(t, s, line)
	})

	t.Run("helper", func(t *testing.T) {
		helper := func() summaryModifier { return LineContext(1).(summaryModifier) }
		opt, line := helper(), lineHere()
		s := mkFailure()
		opt(s)
		checkAtContext(t, s, line)
	})

	t.Run("nil summary", func(t *testing.T) {
		if ApplyAllOptions(nil, []Option{LineContext(0)}) != nil {
			t.Fatal("ApplyAllOptions(nil) returned non-nil")
		}
	})
}

func TestExplain(t *testing.T) {
	t.Parallel()

	s := comparison.NewSummaryBuilder("x").Because("reason").Summary
	s = ApplyAllOptions(s, []Option{Explain("first %d", 1), Explain("line a\nline b")})

	names := make([]string, len(s.Findings))
	for i, f := range s.Findings {
		names[i] = f.Name
	}
	if diff := typed.Diff(names, []string{"Explanation", "Explanation", "Because"}); diff != "" {
		t.Fatalf("unexpected findings: %s", diff)
	}
	if diff := typed.Diff(s.Findings[0].Value, []string{"line a", "line b"}); diff != "" {
		t.Fatal(diff)
	}
	if diff := typed.Diff(s.Findings[1].Value, []string{"first 1"}); diff != "" {
		t.Fatal(diff)
	}
}

// lineHere returns the line number of its caller.
func lineHere() int {
	_, _, line, _ := runtime.Caller(1)
	return line
}
