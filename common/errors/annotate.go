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
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/verity-go/verity/common/logging"
)

type annotatedError struct {
	inner    error
	reason   string
	internal string
	file     string
	line     int
}

var _ Wrapped = (*annotatedError)(nil)

func (e *annotatedError) Error() string {
	switch {
	case e.inner == nil:
		return e.reason
	case e.reason == "":
		return e.inner.Error()
	}
	return e.reason + ": " + e.inner.Error()
}

func (e *annotatedError) InnerError() error { return e.inner }
func (e *annotatedError) Unwrap() error     { return e.inner }

// Annotator is a builder for annotating errors. Obtain one by calling Annotate
// on an existing error or using Reason.
//
// All methods are nil-safe, so that annotating a nil error yields nil.
type Annotator struct {
	err *annotatedError
}

func newAnnotator(inner error, reason string) *Annotator {
	ret := &Annotator{&annotatedError{inner: inner, reason: reason}}
	if _, file, line, ok := runtime.Caller(2); ok {
		ret.err.file, ret.err.line = file, line
	}
	return ret
}

// Annotate returns an Annotator wrapping `err` with a publicly readable
// reason. If `err` is nil, Annotate returns nil and Err will also return nil.
//
// The reason is formatted with fmt.Sprintf; the resulting Error() is
// "<reason>: <err.Error()>".
func Annotate(err error, reason string, args ...any) *Annotator {
	if err == nil {
		return nil
	}
	return newAnnotator(err, fmt.Sprintf(reason, args...))
}

// Reason builds a new error from a formatted reason.
//
// Prefer this form to errors.New(fmt.Sprintf("...")).
func Reason(reason string, args ...any) *Annotator {
	return newAnnotator(nil, fmt.Sprintf(reason, args...))
}

// InternalReason adds a reason which only appears in RenderStack output, not
// in Error().
func (a *Annotator) InternalReason(reason string, args ...any) *Annotator {
	if a == nil {
		return a
	}
	a.err.internal = fmt.Sprintf(reason, args...)
	return a
}

// Err returns the finalized annotated error.
func (a *Annotator) Err() error {
	if a == nil {
		return nil
	}
	return a.err
}

// Lines is a list of printable lines.
type Lines []string

// RenderStack renders every annotation layer of `err`, outermost first, with
// the source location where each was added.
func RenderStack(err error) Lines {
	var ret Lines
	Walk(err, func(err error) bool {
		switch e := err.(type) {
		case *annotatedError:
			line := e.reason
			if e.internal != "" {
				line = fmt.Sprintf("%s [%s]", line, e.internal)
			}
			if e.file != "" {
				line = fmt.Sprintf("%s (at %s:%d)", line, filepath.Base(e.file), e.line)
			}
			ret = append(ret, line)
		case MultiError:
			ret = append(ret, fmt.Sprintf("%d errors:", len(e)))
		default:
			if _, ok := err.(interface{ Unwrap() error }); !ok {
				ret = append(ret, err.Error())
			}
		}
		return true
	})
	return ret
}

// Log logs every line of RenderStack(err) at Error level.
func Log(ctx context.Context, err error) {
	log := logging.Get(ctx)
	for _, l := range RenderStack(err) {
		log.Errorf("%s", l)
	}
}
