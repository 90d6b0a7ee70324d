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

package fixture

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/mgutz/ansi"
)

// Report is the result of a run.
type Report struct {
	RunID    uuid.UUID     `json:"run_id"`
	Started  time.Time     `json:"started"`
	Duration time.Duration `json:"duration_ns"`
	Results  []*Result     `json:"results"`
}

// Count returns the number of results with outcome `o`.
func (r *Report) Count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

// OK returns true if no test Failed or Errored.
func (r *Report) OK() bool {
	return r.Count(Failed) == 0 && r.Count(Errored) == 0
}

// Lookup returns the result of the test "fixture.test", or nil.
func (r *Report) Lookup(fixture, test string) *Result {
	for _, res := range r.Results {
		if res.Fixture == fixture && res.Test == test {
			return res
		}
	}
	return nil
}

// TextOptions controls WriteText.
type TextOptions struct {
	// Colorize adds ANSI color codes to outcome labels.
	Colorize bool
	// Verbose includes passing tests and panic stacks.
	Verbose bool
}

var outcomeLabels = map[Outcome]struct {
	label string
	color string
}{
	Passed:  {"PASS", "green"},
	Failed:  {"FAIL", "red+b"},
	Errored: {"ERROR", "magenta+b"},
	Ignored: {"SKIP", "yellow"},
}

func (o TextOptions) label(outcome Outcome) string {
	l := outcomeLabels[outcome]
	label := fmt.Sprintf("%-5s", l.label)
	if o.Colorize {
		return ansi.Color(label, l.color)
	}
	return label
}

func indent(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = "    " + line
	}
	return strings.Join(lines, "\n")
}

// WriteText writes a human readable report to `w`.
//
// Each non-passing test gets a line with its log and panic; the last line
// summarizes the counts, e.g.:
//
//	Tests run: 5, Passed: 2, Failed: 1, Errors: 1, Ignored: 1, Time: 3ms
func (r *Report) WriteText(w io.Writer, opts TextOptions) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Run %s\n", r.RunID)
	for _, res := range r.Results {
		if res.Outcome == Passed && !opts.Verbose {
			continue
		}
		fmt.Fprintf(&b, "%s %s", opts.label(res.Outcome), res.FullName())
		if res.Outcome == Ignored {
			fmt.Fprintf(&b, ": %s\n", res.IgnoreReason)
			continue
		}
		fmt.Fprintf(&b, " (%s)\n", res.Duration)
		for _, line := range res.Log {
			fmt.Fprintln(&b, indent(line))
		}
		if res.Panic != nil {
			fmt.Fprintln(&b, indent(fmt.Sprintf("panic: %s [%s]", res.Panic.Reason, res.Panic.Type)))
			if opts.Verbose {
				fmt.Fprintln(&b, indent(strings.TrimRight(res.Panic.Stack, "\n")))
			}
		}
	}

	run := len(r.Results) - r.Count(Ignored)
	fmt.Fprintf(&b, "Tests run: %s, Passed: %s, Failed: %s, Errors: %s, Ignored: %s, Time: %s\n",
		humanize.Comma(int64(run)),
		humanize.Comma(int64(r.Count(Passed))),
		humanize.Comma(int64(r.Count(Failed))),
		humanize.Comma(int64(r.Count(Errored))),
		humanize.Comma(int64(r.Count(Ignored))),
		r.Duration)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON writes the report to `w` as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
