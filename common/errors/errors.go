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

// Package errors is an error library which adds annotation and aggregation
// to the standard errors package.
//
// Errors are annotated with Annotate or created with Reason; both record the
// source location, which RenderStack and Log display. Multiple errors are
// gathered into a MultiError. The standard Is, As and Unwrap are re-exported
// so callers need only one import.
package errors

import (
	"errors"
)

// Wrapped is implemented by errors which wrap another error.
type Wrapped interface {
	error
	InnerError() error
}

// New returns an error with the text `msg`, like the standard errors.New.
func New(msg string) error {
	return errors.New(msg)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err, if any.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
