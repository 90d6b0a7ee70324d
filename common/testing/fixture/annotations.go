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
	"reflect"

	"github.com/verity-go/verity/common/testing/truth"
)

// Annotation modifies how a single test is run or reported.
type Annotation interface {
	annotate(m *Meta)
}

// Annotations maps test names (method names without the "Test" prefix) to
// their annotations.
type Annotations map[string][]Annotation

// Annotated is implemented by fixtures which annotate their tests.
type Annotated interface {
	Annotations() Annotations
}

// Binder is implemented by fixtures which need the per-test TestingTB, such as
// those embedding expect.Helper.
type Binder interface {
	Bind(tb truth.TestingTB)
}

// SetUpper is implemented by fixtures with a per-test initialization hook.
type SetUpper interface {
	SetUp()
}

// TearDowner is implemented by fixtures with a per-test cleanup hook.
type TearDowner interface {
	TearDown()
}

// Meta is everything the annotations of a test say about it.
type Meta struct {
	// Ignored tests are reported without being run.
	Ignored      bool   `json:"ignored,omitempty"`
	IgnoreReason string `json:"ignore_reason,omitempty"`

	// ExpectedPanic, if set, is the type the test must panic with to pass.
	ExpectedPanic reflect.Type `json:"-"`

	Categories  []string `json:"categories,omitempty"`
	Description string   `json:"description,omitempty"`
}

// HasCategory returns true if the test belongs to `category`.
func (m *Meta) HasCategory(category string) bool {
	for _, c := range m.Categories {
		if c == category {
			return true
		}
	}
	return false
}

type annotationFunc func(m *Meta)

func (f annotationFunc) annotate(m *Meta) { f(m) }

// Ignore marks a test as not to be run.
func Ignore(reason string) Annotation {
	return annotationFunc(func(m *Meta) {
		m.Ignored = true
		m.IgnoreReason = reason
	})
}

// ExpectPanic marks a test as passing only if it panics with a value of type
// T.
//
// If T is an interface type, any panic value implementing T matches.
func ExpectPanic[T any]() Annotation {
	typ := reflect.TypeFor[T]()
	return annotationFunc(func(m *Meta) {
		m.ExpectedPanic = typ
	})
}

// Category adds the test to a category, for selection with Filter.
func Category(name string) Annotation {
	return annotationFunc(func(m *Meta) {
		m.Categories = append(m.Categories, name)
	})
}

// Description attaches a human readable description to the test.
func Description(text string) Annotation {
	return annotationFunc(func(m *Meta) {
		m.Description = text
	})
}

// panicMatches returns true if the panic value `reason` satisfies `expected`.
func panicMatches(reason any, expected reflect.Type) bool {
	actual := reflect.TypeOf(reason)
	if actual == nil {
		return false
	}
	if expected.Kind() == reflect.Interface {
		return actual.Implements(expected)
	}
	return actual == expected
}
