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
	"fmt"
	"strings"
)

// Outcome is the result of running a single test.
type Outcome int

const (
	// Passed means the test ran to completion without failures, or panicked
	// with its expected panic type.
	Passed Outcome = iota
	// Failed means an assertion failed, or an expected panic did not happen.
	Failed
	// Errored means the test panicked unexpectedly, or could not be run.
	Errored
	// Ignored means the test was not run.
	Ignored
)

// Outcomes lists every Outcome, in report order.
var Outcomes = []Outcome{Passed, Failed, Errored, Ignored}

var outcomeNames = map[Outcome]string{
	Passed:  "passed",
	Failed:  "failed",
	Errored: "errored",
	Ignored: "ignored",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	if _, ok := outcomeNames[o]; !ok {
		return nil, fmt.Errorf("unknown outcome %d", int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(text []byte) error {
	for k, name := range outcomeNames {
		if strings.EqualFold(name, string(text)) {
			*o = k
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", text)
}
