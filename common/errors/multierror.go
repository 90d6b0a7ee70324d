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

package errors

import (
	"fmt"
)

// MultiError is a simple `error` implementation which represents multiple
// `error` objects in one.
type MultiError []error

var _ interface {
	error
	Unwrap() []error
} = MultiError(nil)

// NewMultiError returns a MultiError holding `errs`.
func NewMultiError(errs ...error) MultiError {
	return MultiError(errs)
}

// MaybeAdd appends `err` if it is not nil.
func (m *MultiError) MaybeAdd(err error) {
	if err != nil {
		*m = append(*m, err)
	}
}

// Summary returns the number of non-nil errors and the first one.
func (m MultiError) Summary() (n int, first error) {
	for _, e := range m {
		if e != nil {
			if n == 0 {
				first = e
			}
			n++
		}
	}
	return
}

// First returns the first non-nil error, or nil.
func (m MultiError) First() error {
	_, first := m.Summary()
	return first
}

// Error implements error.
func (m MultiError) Error() string {
	n, first := m.Summary()
	switch n {
	case 0:
		return "(0 errors)"
	case 1:
		return first.Error()
	}
	s := "s"
	if n == 2 {
		s = ""
	}
	return fmt.Sprintf("%s (and %d other error%s)", first, n-1, s)
}

// Unwrap returns the non-nil errors, for errors.Is and errors.As.
func (m MultiError) Unwrap() []error {
	ret := make([]error, 0, len(m))
	for _, e := range m {
		if e != nil {
			ret = append(ret, e)
		}
	}
	return ret
}

// AsError returns nil if `m` holds no non-nil errors, and `m` otherwise.
//
// This avoids the "typed nil in an interface" trap when returning a
// MultiError as an error.
func (m MultiError) AsError() error {
	if m.First() == nil {
		return nil
	}
	return m
}

// SingleError returns the first error of a MultiError, or `err` itself.
func SingleError(err error) error {
	if me, ok := err.(MultiError); ok {
		return me.First()
	}
	return err
}

// Flatten collapses nested MultiErrors into one and drops nils.
//
// It returns nil if nothing remains. Annotated errors are not unwrapped.
func Flatten(err error) error {
	me, ok := err.(MultiError)
	if !ok {
		return err
	}
	ret := flattenInto(nil, me)
	if len(ret) == 0 {
		return nil
	}
	return ret
}

func flattenInto(dst MultiError, me MultiError) MultiError {
	for _, e := range me {
		switch x := e.(type) {
		case nil:
		case MultiError:
			dst = flattenInto(dst, x)
		default:
			dst = append(dst, e)
		}
	}
	return dst
}

// Append combines `errs` into one error, flattening MultiErrors.
//
// It returns nil if all are nil, the error itself if only one is non-nil,
// and a MultiError otherwise.
func Append(errs ...error) error {
	flat := flattenInto(nil, MultiError(errs))
	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	}
	return flat
}
