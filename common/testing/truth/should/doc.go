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

// Package should contains comparisons such as should.Equal to be used with
// the `assert` and `check` packages.
//
// Every comparison is a comparison.Func[T], i.e. a function from the actual
// value to a *failure.Summary, which is nil when the comparison passes.
// Comparisons taking arguments (like Equal(10)) return a comparison.Func[T];
// comparisons without arguments (like BeNil) are themselves a
// comparison.Func[T].
//
// Comparisons compose with Not, AllOf and AnyOf:
//
//	assert.That(t, 7, should.AllOf(should.BeGreaterThan(3), should.BeLessThan(10)))
package should
