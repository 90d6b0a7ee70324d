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

package convey

import (
	"fmt"

	"github.com/smarty/assertions"

	"github.com/verity-go/verity/common/errors"
	"github.com/verity-go/verity/common/runtime/paniccatcher"
)

// optionalWant returns the single optional expected value of an assertion
// named `name`, or a failure message if more than one was given.
func optionalWant(name string, expected []any) (want any, msg string) {
	switch len(expected) {
	case 0:
		return nil, ""
	case 1:
		return expected[0], ""
	}
	return nil, fmt.Sprintf("%s requires 0 or 1 expected value, got %d", name, len(expected))
}

// errText extracts the text to search for from a string or error target.
func errText(want any) (string, bool) {
	switch x := want.(type) {
	case string:
		return x, true
	case error:
		return x.Error(), true
	}
	return "", false
}

func badTarget(want any) string {
	return fmt.Sprintf("unexpected argument type %T, expected string or error", want)
}

// ShouldErrLike checks an error against an optional string or error target.
//
// With no target (or a nil one) the error must be nil. Otherwise the error
// must be non-nil and its text must contain the target's text.
//
//	So(t, err, ShouldErrLike)                    // err == nil
//	So(t, err, ShouldErrLike, "invalid syntax")  // substring of err.Error()
//	So(t, err, ShouldErrLike, strconv.ErrSyntax) // substring of ErrSyntax.Error()
func ShouldErrLike(actual any, expected ...any) string {
	want, msg := optionalWant("ShouldErrLike", expected)
	switch {
	case msg != "":
		return msg
	case want == nil:
		return assertions.ShouldBeNil(actual)
	case actual == nil:
		return assertions.ShouldNotBeNil(actual)
	}

	err, ok := actual.(error)
	if !ok {
		return assertions.ShouldImplement(actual, (*error)(nil))
	}
	text, ok := errText(want)
	if !ok {
		return badTarget(want)
	}
	return assertions.ShouldContainSubstring(err.Error(), text)
}

// ShouldContainErr checks that an errors.MultiError holds an error matching
// the target, in the ShouldErrLike sense.
//
// Members are tried first, then the leaves of nested errors. With no target,
// the MultiError must hold at least one non-nil error.
func ShouldContainErr(actual any, expected ...any) string {
	if len(expected) > 1 {
		return fmt.Sprintf("ShouldContainErr requires 0 or 1 expected value, got %d", len(expected))
	}
	if actual == nil {
		return assertions.ShouldNotBeNil(actual)
	}
	me, ok := actual.(errors.MultiError)
	if !ok {
		return assertions.ShouldHaveSameTypeAs(actual, errors.MultiError{})
	}
	if len(expected) == 0 {
		return assertions.ShouldNotBeNil(me.First())
	}

	want := expected[0]
	if _, ok := want.(errors.MultiError); ok {
		return "expected value must not be a MultiError"
	}
	if _, ok := errText(want); !ok && want != nil {
		return badTarget(want)
	}

	matches := func(err error) bool { return ShouldErrLike(err, want) == "" }
	for _, err := range me {
		if matches(err) {
			return ""
		}
	}
	for _, err := range errors.Leaves(me) {
		if matches(err) {
			return ""
		}
	}
	if want == nil {
		return "expected MultiError to contain a nil error"
	}
	return fmt.Sprintf("expected MultiError to contain %q", want)
}

// ShouldPanicLike calls a func() and checks what it panicked with, in the
// ShouldErrLike sense. Non-error panic values are matched on their %v text.
//
// With no target the function must not panic.
func ShouldPanicLike(function any, expected ...any) string {
	fn, ok := function.(func())
	if !ok {
		return fmt.Sprintf("unexpected argument type %T, expected `func()`", function)
	}
	caught := paniccatcher.PCall(fn)
	if caught == nil {
		return ShouldErrLike(nil, expected...)
	}
	reason, ok := caught.Reason.(error)
	if !ok {
		reason = fmt.Errorf("%v", caught.Reason)
	}
	return ShouldErrLike(reason, expected...)
}

// ShouldUnwrapTo checks that errors.Unwrap(actual) is exactly the expected
// error.
func ShouldUnwrapTo(actual any, expected ...any) string {
	err, ok := actual.(error)
	if !ok {
		return fmt.Sprintf("ShouldUnwrapTo requires an error actual type, got %T", actual)
	}
	if len(expected) != 1 {
		return fmt.Sprintf("ShouldUnwrapTo requires exactly one expected value, got %d", len(expected))
	}
	want, ok := expected[0].(error)
	if !ok {
		return fmt.Sprintf("ShouldUnwrapTo requires an error expected type, got %T", expected[0])
	}
	return assertions.ShouldEqual(errors.Unwrap(err), want)
}
