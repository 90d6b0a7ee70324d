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

package registry

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	t.Run("proto messages compare by value", func(t *testing.T) {
		t.Parallel()

		a := wrapperspb.String("hello")
		b := wrapperspb.String("hello")
		if diff := cmp.Diff(a, b, GetCmpOptions()...); diff != "" {
			t.Errorf("unexpected diff: %s", diff)
		}
	})

	t.Run("proto messages report differences", func(t *testing.T) {
		t.Parallel()

		diff := cmp.Diff(wrapperspb.Int64(1), wrapperspb.Int64(2), GetCmpOptions()...)
		if !strings.Contains(diff, "value") {
			t.Errorf("expected a diff on the value field, got %q", diff)
		}
	})

	t.Run("reflect.Type compares with ==", func(t *testing.T) {
		t.Parallel()

		type holder struct{ T reflect.Type }
		a := holder{reflect.TypeFor[int]()}
		b := holder{reflect.TypeFor[int]()}
		if !cmp.Equal(a, b, GetCmpOptions()...) {
			t.Error("expected identical reflect.Types to be equal")
		}
	})

	t.Run("functions compare by pointer", func(t *testing.T) {
		t.Parallel()

		type holder struct{ F func() }
		fn := func() {}
		if !cmp.Equal(holder{fn}, holder{fn}, GetCmpOptions()...) {
			t.Error("expected the same function to be equal")
		}
	})
}

func TestErrorsCompareWithIs(t *testing.T) {
	t.Parallel()

	type result struct{ Err error }
	wrapped := result{fmt.Errorf("reading: %w", io.EOF)}

	if !cmp.Equal(result{io.EOF}, result{io.EOF}, GetCmpOptions()...) {
		t.Error("expected a sentinel to equal itself")
	}
	if !cmp.Equal(wrapped, result{io.EOF}, GetCmpOptions()...) {
		t.Error("expected a wrapped sentinel to match it")
	}
	if cmp.Equal(result{io.ErrClosedPipe}, result{io.EOF}, GetCmpOptions()...) {
		t.Error("expected distinct sentinels to differ")
	}
}

func TestGetCmpOptionsIsACopy(t *testing.T) {
	t.Parallel()

	opts := GetCmpOptions()
	opts[0] = nil
	if GetCmpOptions()[0] == nil {
		t.Error("mutating the returned slice changed the registry")
	}
}

func TestRegisterCmpOptionNil(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	RegisterCmpOption(nil)
}
