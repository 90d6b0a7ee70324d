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
	"slices"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/verity-go/verity/common/runtime/paniccatcher"
	"github.com/verity-go/verity/common/testing/truth/failure"
	"github.com/verity-go/verity/common/testing/typed"
)

// AddCmpDiff adds a 'Diff' finding which is type hinted to be the output of
// cmp.Diff.
//
// The diff is split into multiple lines, but is otherwise untouched.
func (sb *SummaryBuilder) AddCmpDiff(diff string) *SummaryBuilder {
	return sb.AddFinding(&failure.Finding{
		Name:  "Diff",
		Value: strings.Split(strings.TrimRight(diff, "\n"), "\n"),
		Type:  failure.HintCmpDiff,
	})
}

// AddUnifiedDiff adds a 'Diff' finding containing a unified line diff between
// `expected` and `actual`.
//
// Lines removed from `expected` are prefixed with "-", lines added in
// `actual` with "+".
func (sb *SummaryBuilder) AddUnifiedDiff(actual, expected string) *SummaryBuilder {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  3,
	})
	if err != nil || diff == "" {
		return sb
	}
	return sb.AddFinding(&failure.Finding{
		Name:  "Diff",
		Value: strings.Split(strings.TrimRight(diff, "\n"), "\n"),
		Type:  failure.HintUnifiedDiff,
	})
}

// AddCharDiff adds a 'Diff' finding showing a character level diff between
// two single-line strings.
//
// Text only in `expected` renders as `[-text-]`, text only in `actual`
// renders as `{+text+}`.
func (sb *SummaryBuilder) AddCharDiff(actual, expected string) *SummaryBuilder {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(expected, actual, false))

	var buf strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			buf.WriteString(d.Text)
		case diffmatchpatch.DiffDelete:
			buf.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			buf.WriteString("{+" + d.Text + "+}")
		}
	}
	return sb.AddFinding(&failure.Finding{
		Name:  "Diff",
		Value: []string{buf.String()},
		Type:  failure.HintCharDiff,
	})
}

// SmartCmpDiff does a couple things:
//   - It adds "Actual" and "Expected" findings. If they have long renderings,
//     they will be marked as LevelWarn.
//   - If either text representation is long, or they are identical, this will
//     also add a Diff. Strings get a line or character diff, everything else
//     uses cmp.Diff with the provided Options.
//
// "Long" is defined as a Value with multiple lines or which has > 30 characters
// in one line.
//
// The default cmp.Options include a Transformer to handle protobufs. To
// extend the default Options see
// `github.com/verity-go/verity/common/testing/registry`.
func (sb *SummaryBuilder) SmartCmpDiff(actual, expected any, extraCmpOpts ...cmp.Option) *SummaryBuilder {
	sb = sb.Actual(actual).WarnIfLong().
		Expected(expected).WarnIfLong()

	added := sb.Findings[len(sb.Findings)-2:]
	hasLong := false
	for _, finding := range added {
		if finding.Level == failure.LevelWarn {
			hasLong = true
			break
		}
	}
	as, aIsStr := actual.(string)
	es, eIsStr := expected.(string)
	multiline := aIsStr && eIsStr && (strings.Contains(as, "\n") || strings.Contains(es, "\n"))

	if !hasLong && !multiline && !slices.Equal(added[0].Value, added[1].Value) {
		return sb
	}

	if multiline {
		return sb.AddUnifiedDiff(as, es)
	}
	if aIsStr && eIsStr {
		return sb.AddCharDiff(as, es)
	}

	var diff string
	// cmp.Diff panics on structs with unexported fields; the Actual/Expected
	// findings are still useful without it.
	if p := paniccatcher.PCall(func() { diff = typed.Diff(expected, actual, extraCmpOpts...) }); p != nil {
		return sb
	}
	if diff == "" {
		return sb
	}
	return sb.AddCmpDiff(diff)
}
