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
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"

	"github.com/verity-go/verity/common/testing/truth/failure"
)

// longValueThreshold is the single-line length above which a value is
// considered "long" by WarnIfLong.
const longValueThreshold = 30

// SummaryBuilder builds a failure.Summary.
//
// All methods are chainable and tolerate a nil embedded Summary.
type SummaryBuilder struct {
	*failure.Summary
}

// NewSummaryBuilder makes a new SummaryBuilder for the comparison `comparisonName`.
//
// `exampleTypeArgs` are values whose types are rendered (with %T) as the type
// arguments of the comparison, e.g. passing `expected` to should.Equal will
// render as "should.Equal[int]".
func NewSummaryBuilder(comparisonName string, exampleTypeArgs ...any) *SummaryBuilder {
	ret := &SummaryBuilder{&failure.Summary{
		Comparison: &failure.Comparison{Name: comparisonName},
	}}
	if len(exampleTypeArgs) > 0 {
		ret.Comparison.TypeArguments = make([]string, len(exampleTypeArgs))
		for i, arg := range exampleTypeArgs {
			ret.Comparison.TypeArguments[i] = typeName(arg)
		}
	}
	return ret
}

func typeName(v any) string {
	if t, ok := v.(reflect.Type); ok {
		return t.String()
	}
	return fmt.Sprintf("%T", v)
}

func (sb *SummaryBuilder) fixNilSummary() {
	if sb.Summary == nil {
		sb.Summary = &failure.Summary{}
	}
	if sb.Comparison == nil {
		sb.Comparison = &failure.Comparison{}
	}
}

// AddComparisonArgs renders `args` with %#v and adds them to the
// Comparison.Arguments.
func (sb *SummaryBuilder) AddComparisonArgs(args ...any) *SummaryBuilder {
	sb.fixNilSummary()
	for _, arg := range args {
		sb.Comparison.Arguments = append(sb.Comparison.Arguments, fmt.Sprintf("%#v", arg))
	}
	return sb
}

// AddFinding adds a pre-rendered Finding.
func (sb *SummaryBuilder) AddFinding(f *failure.Finding) *SummaryBuilder {
	sb.fixNilSummary()
	sb.Findings = append(sb.Findings, f)
	return sb
}

// AddFindingf adds a new Finding with the given name and a Value produced by
// fmt.Sprintf, split on newlines.
func (sb *SummaryBuilder) AddFindingf(name, format string, args ...any) *SummaryBuilder {
	return sb.AddFinding(&failure.Finding{
		Name:  name,
		Value: strings.Split(fmt.Sprintf(format, args...), "\n"),
	})
}

// Because adds a "Because" Finding explaining the failure.
func (sb *SummaryBuilder) Because(format string, args ...any) *SummaryBuilder {
	return sb.AddFindingf("Because", format, args...)
}

// Actual adds an "Actual" Finding rendering `actual`.
func (sb *SummaryBuilder) Actual(actual any) *SummaryBuilder {
	return sb.AddFinding(&failure.Finding{Name: "Actual", Value: FormatValue(actual)})
}

// Expected adds an "Expected" Finding rendering `expected`.
func (sb *SummaryBuilder) Expected(expected any) *SummaryBuilder {
	return sb.AddFinding(&failure.Finding{Name: "Expected", Value: FormatValue(expected)})
}

// WarnIfLong marks the most recently added Finding as LevelWarn if its Value
// spans multiple lines, or has a single line longer than 30 characters.
//
// Warn-level Findings are elided by RenderCLI unless rendering verbosely.
func (sb *SummaryBuilder) WarnIfLong() *SummaryBuilder {
	sb.fixNilSummary()
	if len(sb.Findings) == 0 {
		return sb
	}
	last := sb.Findings[len(sb.Findings)-1]
	if isLong(last.Value) {
		last.Level = failure.LevelWarn
	}
	return sb
}

func isLong(value []string) bool {
	return len(value) > 1 || (len(value) == 1 && len(value[0]) > longValueThreshold)
}

// FormatValue renders a value for use as a Finding value.
//
// Strings are quoted, errors render their message, proto messages render as
// multi-line text protos and everything else uses %#v.
func FormatValue(v any) []string {
	var ret string
	switch x := v.(type) {
	case nil:
		ret = "nil"
	case string:
		ret = strconv.Quote(x)
	case proto.Message:
		ret = strings.TrimRight(prototext.MarshalOptions{Multiline: true, Indent: "  "}.Format(x), "\n")
		if ret == "" {
			ret = fmt.Sprintf("%T{}", x)
		}
	case error:
		ret = fmt.Sprintf("%T(%q)", x, x.Error())
	default:
		ret = fmt.Sprintf("%#v", v)
	}
	return strings.Split(ret, "\n")
}
