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

// Package typed has type-safe wrappers around go-cmp for use in tests.
package typed

import (
	"github.com/google/go-cmp/cmp"

	"github.com/verity-go/verity/common/testing/registry"
)

// Diff is cmp.Diff with both arguments constrained to the same type, and the
// options from the registry package applied before `opts`.
//
// The result uses cmp's "-want +got" convention, with `want` the first
// argument.
func Diff[T any](want, got T, opts ...cmp.Option) string {
	return cmp.Diff(want, got, append(registry.GetCmpOptions(), opts...)...)
}

// Equal is cmp.Equal with the same conventions as Diff.
func Equal[T any](want, got T, opts ...cmp.Option) bool {
	return cmp.Equal(want, got, append(registry.GetCmpOptions(), opts...)...)
}
