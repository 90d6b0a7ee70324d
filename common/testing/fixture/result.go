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
	"time"
)

// PanicInfo describes a panic raised by a test.
type PanicInfo struct {
	// Reason is the panic value, formatted with %v.
	Reason string `json:"reason"`
	// Type is the dynamic type of the panic value.
	Type  string `json:"type"`
	Stack string `json:"stack,omitempty"`
}

// Result is the result of running a single test.
type Result struct {
	Fixture string  `json:"fixture"`
	Test    string  `json:"test"`
	Outcome Outcome `json:"outcome"`

	Duration time.Duration `json:"duration_ns"`

	// Log holds everything the test logged, including rendered assertion
	// failures.
	Log []string `json:"log,omitempty"`

	// Panic is set if the test panicked, whether or not it was expected to.
	Panic *PanicInfo `json:"panic,omitempty"`

	IgnoreReason string   `json:"ignore_reason,omitempty"`
	Categories   []string `json:"categories,omitempty"`
	Description  string   `json:"description,omitempty"`
}

// FullName returns "Fixture.Test".
func (r *Result) FullName() string {
	return r.Fixture + "." + r.Test
}
