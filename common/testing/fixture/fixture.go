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
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/verity-go/verity/common/errors"
	"github.com/verity-go/verity/common/testing/truth"
)

// Factory returns a new, zero-state instance of a fixture.
//
// The instance's method set is used for test discovery, so factories usually
// return a pointer.
type Factory func() any

// Fixture is a named fixture factory along with its discovered tests.
type Fixture struct {
	Name    string
	Factory Factory
	Tests   []*Test
}

// Test is a single test of a Fixture.
type Test struct {
	// Name is the method name without the "Test" prefix.
	Name string
	// Method is the full method name.
	Method string
	Meta

	takesTB bool
	// err is set if the method has a signature which cannot be run.
	err error
}

// Runnable returns nil if the test method has a supported signature.
func (t *Test) Runnable() error {
	return t.err
}

var testingTBType = reflect.TypeFor[truth.TestingTB]()

// isTestMethod follows the `go test` rule: "Test" followed by nothing, or by
// something other than a lowercase letter.
func isTestMethod(name string) bool {
	rest, ok := strings.CutPrefix(name, "Test")
	if !ok {
		return false
	}
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return !unicode.IsLower(r)
}

// New discovers the tests of the fixture made by `factory`.
//
// It returns an error if the factory is unusable, or if the fixture annotates
// a test which does not exist. Test methods with unsupported signatures are
// kept, and report as Errored when run.
func New(name string, factory Factory) (*Fixture, error) {
	if name == "" {
		return nil, errors.Reason("fixture name is empty").Err()
	}
	if factory == nil {
		return nil, errors.Reason("fixture %q: factory is nil", name).Err()
	}
	instance := factory()
	if instance == nil {
		return nil, errors.Reason("fixture %q: factory returned nil", name).Err()
	}

	typ := reflect.TypeOf(instance)
	f := &Fixture{Name: name, Factory: factory}
	byName := map[string]*Test{}
	for i := 0; i < typ.NumMethod(); i++ {
		m := typ.Method(i)
		if !isTestMethod(m.Name) {
			continue
		}
		t := &Test{
			Name:   strings.TrimPrefix(m.Name, "Test"),
			Method: m.Name,
		}
		if t.Name == "" {
			t.Name = m.Name
		}

		// In(0) is the receiver.
		switch {
		case m.Type.NumOut() != 0:
			t.err = errors.Reason("method %s must not return values", m.Name).Err()
		case m.Type.NumIn() == 1:
		case m.Type.NumIn() == 2 && m.Type.In(1) == testingTBType:
			t.takesTB = true
		default:
			t.err = errors.Reason("method %s must take no arguments or a single truth.TestingTB, got %s", m.Name, m.Type).Err()
		}
		f.Tests = append(f.Tests, t)
		byName[t.Name] = t
	}
	sort.Slice(f.Tests, func(i, j int) bool { return f.Tests[i].Name < f.Tests[j].Name })

	if a, ok := instance.(Annotated); ok {
		var merr errors.MultiError
		for testName, annotations := range a.Annotations() {
			t, ok := byName[testName]
			if !ok {
				merr = append(merr, errors.Reason("fixture %q: annotation for unknown test %q", name, testName).Err())
				continue
			}
			for _, an := range annotations {
				an.annotate(&t.Meta)
			}
		}
		if err := merr.AsError(); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Lookup returns the test named `name`, or nil.
func (f *Fixture) Lookup(name string) *Test {
	for _, t := range f.Tests {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// Categories returns the sorted set of categories of all the fixture's tests.
func (f *Fixture) Categories() []string {
	seen := map[string]struct{}{}
	var ret []string
	for _, t := range f.Tests {
		for _, c := range t.Categories {
			if _, ok := seen[c]; !ok {
				seen[c] = struct{}{}
				ret = append(ret, c)
			}
		}
	}
	sort.Strings(ret)
	return ret
}

func (f *Fixture) invoke(instance any, t *Test, tb truth.TestingTB) {
	m := reflect.ValueOf(instance).MethodByName(t.Method)
	if t.takesTB {
		m.Call([]reflect.Value{reflect.ValueOf(&tb).Elem()})
		return
	}
	m.Call(nil)
}
