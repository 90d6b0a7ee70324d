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

package flag

import (
	"flag"
	"fmt"
	"slices"
	"strings"
)

type choiceFlag struct {
	target  *string
	choices []string
}

// String returns the current value.
func (f *choiceFlag) String() string {
	if f.target == nil {
		return ""
	}
	return *f.target
}

// Set accepts `val` if it is one of the choices.
func (f *choiceFlag) Set(val string) error {
	if !slices.Contains(f.choices, val) {
		return fmt.Errorf("value must be one of [%s], got %q", strings.Join(f.choices, ", "), val)
	}
	*f.target = val
	return nil
}

// Get retrieves the flag value.
func (f *choiceFlag) Get() any {
	return *f.target
}

// Choice returns a flag.Getter which only accepts one of `choices`, and stores
// it into `target`.
//
// `target` keeps its current value as the default.
func Choice(target *string, choices ...string) flag.Getter {
	return &choiceFlag{target: target, choices: choices}
}
