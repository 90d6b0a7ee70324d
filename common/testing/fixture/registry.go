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
	"sort"
	"sync"

	"github.com/verity-go/verity/common/errors"
)

// Registry is a set of fixtures, keyed by name.
type Registry struct {
	mu       sync.Mutex
	fixtures map[string]*Fixture
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{fixtures: map[string]*Fixture{}}
}

// Register discovers the fixture made by `factory` and adds it under `name`.
func (r *Registry) Register(name string, factory Factory) error {
	f, err := New(name, factory)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.fixtures[name]; ok {
		return errors.Reason("fixture %q is already registered", name).Err()
	}
	r.fixtures[name] = f
	return nil
}

// Lookup returns the fixture registered under `name`.
func (r *Registry) Lookup(name string) (*Fixture, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.fixtures[name]
	return f, ok
}

// Names returns the sorted names of all registered fixtures.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.fixtures))
	for name := range r.fixtures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all registered fixtures, sorted by name.
func (r *Registry) All() []*Fixture {
	names := r.Names()
	r.mu.Lock()
	defer r.mu.Unlock()
	ret := make([]*Fixture, len(names))
	for i, name := range names {
		ret[i] = r.fixtures[name]
	}
	return ret
}

// Select returns the fixtures named in `names`, in that order, or all
// fixtures if `names` is empty.
//
// Unknown names are returned as a MultiError.
func (r *Registry) Select(names []string) ([]*Fixture, error) {
	if len(names) == 0 {
		return r.All(), nil
	}
	var merr errors.MultiError
	ret := make([]*Fixture, 0, len(names))
	for _, name := range names {
		f, ok := r.Lookup(name)
		if !ok {
			merr = append(merr, errors.Reason("unknown fixture %q", name).Err())
			continue
		}
		ret = append(ret, f)
	}
	if err := merr.AsError(); err != nil {
		return nil, err
	}
	return ret, nil
}

// Default is the registry used by the package-level Register.
var Default = NewRegistry()

// Register adds a fixture to the Default registry.
//
// It is meant to be called from init functions, and panics if the fixture is
// malformed or the name is already taken.
func Register(name string, factory Factory) {
	if err := Default.Register(name, factory); err != nil {
		panic(err)
	}
}
