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
	"path/filepath"
	"strings"
	"testing"

	"github.com/verity-go/verity/common/testing/truth/failure"
	"github.com/verity-go/verity/common/testing/typed"
)

func equalInt(expected int) Func[int] {
	return func(actual int) *failure.Summary {
		if actual == expected {
			return nil
		}
		return NewSummaryBuilder("test.equalInt", expected).Actual(actual).Expected(expected).Summary
	}
}

func TestCastCompare(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		actual any
		pass   bool
		reason string
	}{
		{name: "exact type", actual: 100, pass: true},
		{name: "lossless widen", actual: uint8(100), pass: true},
		{name: "lossless float", actual: 100.0, pass: true},
		{name: "mismatched value", actual: int64(7), reason: "test.equalInt"},
		{name: "fractional float", actual: 100.5, reason: "builtin.LosslessConvertTo"},
		{name: "string", actual: "100", reason: "builtin.LosslessConvertTo"},
		{name: "nil", actual: nil, reason: "builtin.LosslessConvertTo"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			summary := equalInt(100).CastCompare(tc.actual)
			if tc.pass {
				if summary != nil {
					t.Fatalf("unexpected failure: %s", RenderCLI{}.Summary("", "", summary))
				}
				return
			}
			if summary == nil {
				t.Fatal("expected failure")
			}
			if diff := typed.Diff(tc.reason, summary.GetComparison().GetName()); diff != "" {
				t.Errorf("unexpected comparison name (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCastCompareNarrowing(t *testing.T) {
	t.Parallel()

	var fitsUint8 Func[uint8] = func(uint8) *failure.Summary { return nil }

	if s := fitsUint8.CastCompare(10000); s == nil {
		t.Error("10000 should not convert to uint8")
	}
	if s := fitsUint8.CastCompare(-1); s == nil {
		t.Error("-1 should not convert to uint8")
	}
	if s := fitsUint8.CastCompare(255); s != nil {
		t.Errorf("255 should convert to uint8: %v", s)
	}
}

func TestCastCompareNil(t *testing.T) {
	t.Parallel()

	var isNilPtr Func[*int] = func(p *int) *failure.Summary {
		if p == nil {
			return nil
		}
		return NewSummaryBuilder("test.isNilPtr").Summary
	}
	if s := isNilPtr.CastCompare(nil); s != nil {
		t.Errorf("nil should convert to (*int)(nil): %v", s)
	}
}

func TestCastCompareNamedTypes(t *testing.T) {
	t.Parallel()

	type name string
	var isBob Func[string] = func(s string) *failure.Summary {
		if s == "bob" {
			return nil
		}
		return NewSummaryBuilder("test.isBob").Summary
	}
	if s := isBob.CastCompare(name("bob")); s != nil {
		t.Errorf("named string should convert: %v", s)
	}
}

func TestWithLineContext(t *testing.T) {
	t.Parallel()

	cmp := equalInt(1).WithLineContext()
	summary := cmp(2)
	if summary == nil {
		t.Fatal("expected failure")
	}
	if len(summary.SourceContext) != 1 {
		t.Fatalf("SourceContext len = %d, want 1", len(summary.SourceContext))
	}
	ctx := summary.SourceContext[0]
	if ctx.Name != "at" || len(ctx.Frames) != 1 {
		t.Fatalf("unexpected context: %+v", ctx)
	}
	if got := filepath.Base(ctx.Frames[0].Filename); got != "func_test.go" {
		t.Errorf("filename = %q, want func_test.go", got)
	}

	if s := cmp(1); s != nil {
		t.Errorf("passing comparison gained a summary: %v", s)
	}
}

func TestWithLineContextTooManyFrames(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		if r == nil || !strings.Contains(r.(error).Error(), "more than one value") {
			t.Errorf("unexpected recover: %v", r)
		}
	}()
	equalInt(1).WithLineContext(1, 2)
}
