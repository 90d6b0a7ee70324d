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

// Package registry holds the process-wide cmp.Options used by every
// structural comparison in this module (should.Match, should.NotMatch and
// typed.Diff among them).
//
// The defaults make the common cases behave:
//   - proto messages compare by value through protocmp.Transform;
//   - protoreflect descriptors and reflect.Type values compare with `==`;
//   - funcs compare by code pointer;
//   - errors compare with errors.Is, so a wrapped sentinel matches itself.
//
// Packages may add their own options from init with RegisterCmpOption.
package registry

import (
	"reflect"
	"slices"
	"sync"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/testing/protocmp"
)

// identityTypes are interface types whose values are only ever equal to
// themselves.
var identityTypes = []reflect.Type{
	reflect.TypeFor[protoreflect.FileDescriptor](),
	reflect.TypeFor[protoreflect.MessageDescriptor](),
	reflect.TypeFor[protoreflect.FieldDescriptor](),
	reflect.TypeFor[protoreflect.OneofDescriptor](),
	reflect.TypeFor[protoreflect.EnumDescriptor](),
	reflect.TypeFor[protoreflect.EnumValueDescriptor](),
	reflect.TypeFor[protoreflect.ServiceDescriptor](),
	reflect.TypeFor[protoreflect.MethodDescriptor](),
	reflect.TypeFor[reflect.Type](),
}

func byIdentity() cmp.Option {
	return cmp.FilterPath(func(p cmp.Path) bool {
		return slices.Contains(identityTypes, p.Last().Type())
	}, cmp.Comparer(func(a, b any) bool { return a == b }))
}

func funcsByPointer() cmp.Option {
	return cmp.FilterPath(func(p cmp.Path) bool {
		return p.Last().Type().Kind() == reflect.Func
	}, cmp.Transformer("func.pointer", func(f any) uintptr {
		if f == nil {
			return 0
		}
		return reflect.ValueOf(f).Pointer()
	}))
}

var (
	mu      sync.Mutex
	options = []cmp.Option{
		protocmp.Transform(),
		byIdentity(),
		funcsByPointer(),
		cmpopts.EquateErrors(),
	}
)

// RegisterCmpOption appends opt to the registry.
//
// Panics if opt is nil. Duplicates are not detected.
func RegisterCmpOption(opt cmp.Option) {
	if opt == nil {
		panic("registry: cannot register a nil cmp.Option")
	}
	mu.Lock()
	defer mu.Unlock()
	options = append(options, opt)
}

// GetCmpOptions returns a snapshot of the registry.
func GetCmpOptions() []cmp.Option {
	mu.Lock()
	defer mu.Unlock()
	return slices.Clone(options)
}
