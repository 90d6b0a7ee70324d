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

package truth_test

import (
	"fmt"
	"strings"

	"github.com/verity-go/verity/common/testing/truth"
	"github.com/verity-go/verity/common/testing/truth/assert"
	"github.com/verity-go/verity/common/testing/truth/check"
	"github.com/verity-go/verity/common/testing/truth/should"
)

// fakeTB is a minimal truth.TestingTB for the examples. In a real test, this
// would be *testing.T, *testing.B, etc.
type fakeTB struct {
	// true after first Log call
	firstLog bool
}

var _ truth.TestingTB = (*fakeTB)(nil)

func (*fakeTB) Helper() {}
func (f *fakeTB) Log(args ...any) {
	if !f.firstLog {
		fmt.Println("--- FAIL: FakeTestName (0.00s)")
		f.firstLog = true
	}
	fixedArgs := make([]string, 1+len(args))
	fixedArgs[0] = "    filename.go:NN:"
	for i, arg := range args {
		fixedArgs[i+1] = fmt.Sprint(arg)
	}
	indent := strings.Repeat(" ", 8)
	lines := strings.Split(strings.Join(fixedArgs, " "), "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = indent + lines[i]
	}
	fmt.Println(strings.Join(lines, "\n"))
}
func (*fakeTB) Fail()    {}
func (*fakeTB) FailNow() {}

func plainRendering() func() {
	oldColor, oldVerbose, oldFull := truth.Colorize, truth.Verbose, truth.FullSourceContextFilenames
	truth.Colorize, truth.Verbose, truth.FullSourceContextFilenames = false, false, false
	return func() {
		truth.Colorize, truth.Verbose, truth.FullSourceContextFilenames = oldColor, oldVerbose, oldFull
	}
}

func ExampleReport() {
	defer plainRendering()()

	assert.That(&fakeTB{}, 100, should.Equal(200))
	// Output:
	// --- FAIL: FakeTestName (0.00s)
	//     filename.go:NN: assert.That should.Equal[int] FAILED
	//         Actual: 100
	//         Expected: 200
}

func ExampleExplain() {
	defer plainRendering()()

	check.That(&fakeTB{}, 12, should.Equal(13), truth.Explain("Expected Failure (Integer)"))
	// Output:
	// --- FAIL: FakeTestName (0.00s)
	//     filename.go:NN: check.That should.Equal[int] FAILED
	//         Explanation: Expected Failure (Integer)
	//         Actual: 12
	//         Expected: 13
}

func ExampleExplain_passing() {
	defer plainRendering()()

	// Passing assertions log nothing, explanation or not.
	ok := check.That(&fakeTB{}, 12, should.Equal(12), truth.Explain("never shown"))
	fmt.Println(ok)
	// Output:
	// true
}
