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

// Package truth implements an extensible, simple, assertion library for Go
// with minimal dependencies.
//
// Assertions are built from comparison.Func values (see the `should`
// package), which are applied with `assert.That` (stops the test) or
// `check.That` (marks the test failed and continues):
//
//	assert.That(t, actual, should.Equal(10))
//	check.That(t, name, should.HavePrefix("verity."))
//
// The same comparisons back the function-call style in the `classic` package
// and the embeddable `expect.Helper`, so all three phrasings of an assertion
// always agree.
package truth

import (
	"flag"
	"os"

	"golang.org/x/term"

	"github.com/verity-go/verity/common/testing/truth/comparison"
	"github.com/verity-go/verity/common/testing/truth/failure"
)

// TestingTB is the minimal subset of testing.TB which truth needs.
//
// *testing.T, *testing.B and *testing.F all implement it, as does the fixture
// runner's per-test handle.
type TestingTB interface {
	Helper()
	Log(args ...any)
	Fail()
	FailNow()
}

var (
	// Colorize controls whether Report adds ANSI color codes to diffs.
	//
	// Defaults to true iff stdout is a terminal.
	Colorize = term.IsTerminal(int(os.Stdout.Fd()))

	// Verbose forces verbose rendering of failures.
	//
	// Verbose rendering is also enabled when the test binary runs with `-v`.
	Verbose = false

	// FullSourceContextFilenames renders full paths (instead of base names) in
	// source context lines such as "(at sample_test.go:34)".
	FullSourceContextFilenames = false
)

func isVerbose() bool {
	if Verbose {
		return true
	}
	if f := flag.Lookup("test.v"); f != nil {
		v := f.Value.String()
		return v != "" && v != "false"
	}
	return false
}

// Renderer returns the RenderCLI configured from Colorize, Verbose and
// FullSourceContextFilenames.
func Renderer() comparison.RenderCLI {
	return comparison.RenderCLI{
		Verbose:       isVerbose(),
		Colorize:      Colorize,
		FullFilenames: FullSourceContextFilenames,
	}
}

// Report logs `summary` to `t` under the assertion entry point `name` (e.g.
// "assert.That").
//
// It does not fail the test; callers decide between Fail and FailNow.
func Report(t TestingTB, name string, summary *failure.Summary) {
	t.Helper()
	t.Log(Renderer().Summary(name, "", summary))
}
