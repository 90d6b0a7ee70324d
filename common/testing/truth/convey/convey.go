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

// Package convey lets convey-style assertions be used with truth.
//
// A convey-style assertion is a function `func(actual any, expected ...any)
// string` which returns "" on success, such as those in
// github.com/smarty/assertions:
//
//	convey.So(t, "Hello World!", assertions.ShouldStartWith, "Hello")
//	assert.That(t, any(list), convey.Adapt(assertions.ShouldContain, 3))
//
// Failures are reported through truth, like every other assertion.
package convey

import (
	"encoding/json"
	"reflect"
	"runtime"
	"strings"

	"github.com/verity-go/verity/common/testing/truth"
	"github.com/verity-go/verity/common/testing/truth/comparison"
	"github.com/verity-go/verity/common/testing/truth/failure"
)

// Assertion is a convey-style assertion function.
type Assertion func(actual any, expected ...any) string

// failureView is the JSON form of a failure message, which smarty/assertions
// produces while goconvey is loaded.
type failureView struct {
	Message  string `json:"Message"`
	Expected string `json:"Expected"`
	Actual   string `json:"Actual"`
}

func assertionName(fn Assertion) string {
	name := "Assertion"
	if f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()); f != nil {
		name = f.Name()
		if idx := strings.LastIndex(name, "."); idx >= 0 {
			name = name[idx+1:]
		}
	}
	return "convey." + name
}

// Adapt returns a comparison.Func which applies `fn` with `expected`.
//
// The comparison is named after the assertion, e.g. "convey.ShouldEqual".
func Adapt(fn Assertion, expected ...any) comparison.Func[any] {
	cmpName := assertionName(fn)
	return func(actual any) *failure.Summary {
		msg := fn(actual, expected...)
		if msg == "" {
			return nil
		}

		sb := comparison.NewSummaryBuilder(cmpName)
		var view failureView
		if err := json.Unmarshal([]byte(msg), &view); err == nil && view.Message != "" {
			sb.Because("%s", view.Message)
			if view.Expected != "" || view.Actual != "" {
				sb.AddFindingf("Expected", "%s", view.Expected).WarnIfLong()
				sb.AddFindingf("Actual", "%s", view.Actual).WarnIfLong()
			}
			return sb.Summary
		}
		return sb.Because("%s", msg).Summary
	}
}

// So asserts `actual` with the convey-style assertion `fn`, and stops the test
// on failure.
func So(t truth.TestingTB, actual any, fn Assertion, expected ...any) {
	if summary := Adapt(fn, expected...)(actual); summary != nil {
		t.Helper()
		truth.Report(t, "convey.So", summary)
		t.FailNow()
	}
}
