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
	"strings"
)

// stringSliceFlag accumulates values into a []string.
type stringSliceFlag []string

func (f stringSliceFlag) String() string { return strings.Join(f, ",") }

// Set appends each comma-separated element of val. Blank elements are
// skipped, so "-fixture a, b," yields [a b].
func (f *stringSliceFlag) Set(val string) error {
	for _, v := range strings.Split(val, ",") {
		if v = strings.TrimSpace(v); v != "" {
			*f = append(*f, v)
		}
	}
	return nil
}

func (f stringSliceFlag) Get() any { return []string(f) }

// StringSlice returns a flag.Getter appending to *s.
//
// The flag may be repeated, and each occurrence may hold a comma-separated
// list: "-category a -category b,c" yields [a b c].
func StringSlice(s *[]string) flag.Getter {
	return (*stringSliceFlag)(s)
}
