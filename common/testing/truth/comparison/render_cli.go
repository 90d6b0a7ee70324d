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
	"path/filepath"
	"strings"

	"github.com/mgutz/ansi"

	"github.com/verity-go/verity/common/testing/truth/failure"
)

// RenderCLI renders failure Summaries as text suitable for `go test` output.
type RenderCLI struct {
	// If true, will render all Verbose findings.
	//
	// Otherwise this will print an omission message which describes how long the
	// omitted value is and to pass `-v` to the test to see them.
	Verbose bool

	// If true, will add ANSI color codes to Findings with appropriate types
	// (currently just simple +/- per-line colorization for diff Findings).
	Colorize bool

	// If true, SourceContext filenames are rendered in full rather than as
	// their base name.
	FullFilenames bool
}

func colorDiffLine(line string) string {
	code := ""
	switch {
	case strings.HasPrefix(line, "--- "):
		code = ansi.LightGreen
	case strings.HasPrefix(line, "-"):
		code = ansi.Green
	case strings.HasPrefix(line, "+++ "):
		code = ansi.LightRed
	case strings.HasPrefix(line, "+"):
		code = ansi.Red
	case strings.HasPrefix(line, "@@ "):
		code = ansi.Cyan
	}
	if code == "" {
		return line
	}
	return code + line + ansi.Reset
}

func colorCharDiff(line string) string {
	r := strings.NewReplacer(
		"[-", ansi.Green+"[-",
		"-]", "-]"+ansi.Reset,
		"{+", ansi.Red+"{+",
		"+}", "+}"+ansi.Reset,
	)
	return r.Replace(line)
}

// Finding renders a Finding to a set of output lines which would be
// suitable for display as CLI output (e.g. to be logged with testing.T.Log
// calls).
func (r RenderCLI) Finding(prefix string, f *failure.Finding) string {
	if len(f.Value) == 0 {
		return fmt.Sprintf("%s%s [no value]", prefix, f.Name)
	}
	if len(f.Value) == 1 && len(strings.TrimSpace(f.Value[0])) == 0 {
		return fmt.Sprintf("%s%s [blank one-line value]", prefix, f.Name)
	}

	if f.Level > failure.LevelError && !r.Verbose {
		valLen := len(f.Value) - 1 // one per newline
		for _, line := range f.Value {
			valLen += len(line)
		}
		return fmt.Sprintf("%s%s [verbose value len=%d (pass -v to see)]", prefix, f.Name, valLen)
	}

	value := make([]string, len(f.Value))
	copy(value, f.Value)
	if r.Colorize {
		for i, line := range value {
			switch f.Type {
			case failure.HintCmpDiff, failure.HintUnifiedDiff:
				value[i] = colorDiffLine(line)
			case failure.HintCharDiff:
				value[i] = colorCharDiff(line)
			}
		}
	}

	if len(value) == 1 {
		return fmt.Sprintf("%s%s: %s", prefix, f.Name, value[0])
	}
	for i, line := range value {
		value[i] = prefix + "    " + line
	}
	return fmt.Sprintf("%s%s: \\\n%s", prefix, f.Name, strings.Join(value, "\n"))
}

func (r RenderCLI) sourceContext(prefix string, s *failure.Stack) string {
	frames := make([]string, 0, len(s.Frames))
	for _, frame := range s.Frames {
		name := frame.Filename
		if !r.FullFilenames {
			name = filepath.Base(name)
		}
		frames = append(frames, fmt.Sprintf("%s:%d", name, frame.Lineno))
	}
	return fmt.Sprintf("%s(%s %s)", prefix, s.Name, strings.Join(frames, ", "))
}

// Comparison renders the name line of a Summary, e.g. "should.Equal[int]".
func (r RenderCLI) Comparison(s *failure.Summary) string {
	name := s.GetComparison().GetName()
	if name == "" {
		name = "UNKNOWN COMPARISON"
	}
	if args := s.GetComparison().GetTypeArguments(); len(args) > 0 {
		name = fmt.Sprintf("%s[%s]", name, strings.Join(args, ", "))
	}
	return name
}

// Summary pretty-prints the failure Summary for display via the `go test` CLI
// output.
//
// `name` is the assertion entry point, e.g. "assert.That". Each finding line
// is indented with `prefix`.
func (r RenderCLI) Summary(name string, prefix string, s *failure.Summary) string {
	if s == nil {
		return ""
	}

	header := r.Comparison(s) + " FAILED"
	if name != "" {
		header = name + " " + header
	}

	lines := make([]string, 0, 1+len(s.SourceContext)+len(s.Findings))
	lines = append(lines, header)
	for _, ctx := range s.SourceContext {
		lines = append(lines, r.sourceContext(prefix, ctx))
	}
	for _, finding := range s.Findings {
		lines = append(lines, r.Finding(prefix, finding))
	}
	return strings.Join(lines, "\n")
}
