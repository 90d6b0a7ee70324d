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
	"fmt"
	"runtime"
	"strings"

	"github.com/verity-go/verity/common/testing/truth/failure"
)

// Option is an optional argument to assert.That, check.That and friends.
type Option interface {
	truthOption()
}

type summaryModifier func(*failure.Summary)

func (summaryModifier) truthOption() {}

// ApplyAllOptions applies all `opts` to `summary`.
//
// If summary is nil (i.e. the comparison passed), this returns nil.
func ApplyAllOptions(summary *failure.Summary, opts []Option) *failure.Summary {
	if summary == nil {
		return nil
	}
	for _, opt := range opts {
		if mod, ok := opt.(summaryModifier); ok {
			mod(summary)
		}
	}
	return summary
}

// LineContext returns an Option which adds an "at" SourceContext containing
// the file:line of the caller of LineContext, plus `skipFrames` additional
// frames up the stack.
//
// This is the Option equivalent of comparison.Func.WithLineContext.
func LineContext(skipFrames int) Option {
	_, filename, lineno, ok := runtime.Caller(1 + skipFrames)
	if !ok {
		return summaryModifier(func(*failure.Summary) {})
	}
	return summaryModifier(func(s *failure.Summary) {
		s.SourceContext = append(s.SourceContext, &failure.Stack{
			Name:   "at",
			Frames: []*failure.StackFrame{{Filename: filename, Lineno: int64(lineno)}},
		})
	})
}

// Explain returns an Option which adds an "Explanation" Finding ahead of all
// other Findings when the assertion fails.
//
// Example:
//
//	assert.That(t, 12, should.Equal(13), truth.Explain("Expected Failure (%s)", "Integer"))
func Explain(format string, args ...any) Option {
	msg := fmt.Sprintf(format, args...)
	return summaryModifier(func(s *failure.Summary) {
		s.Findings = append([]*failure.Finding{{
			Name:  "Explanation",
			Value: strings.Split(msg, "\n"),
		}}, s.Findings...)
	})
}
