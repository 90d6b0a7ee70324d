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

// Walk visits err and everything it wraps, depth first, outermost first.
//
// Containers are expanded in order: a MultiError (or anything with
// `Unwrap() []error`) is visited itself and then each member; a Wrapped or
// `Unwrap() error` value is visited and then its inner error. Traversal stops
// as soon as fn returns false. A nil err and an empty MultiError are never
// visited, since neither holds an error.
func Walk(err error, fn func(error) bool) {
	walk(err, fn)
}

// WalkLeaves is like Walk, but only calls fn for errors which wrap nothing.
//
// These are the errors which actually happened; everything else is context.
func WalkLeaves(err error, fn func(error) bool) {
	Walk(err, func(e error) bool {
		if len(children(e)) > 0 {
			return true
		}
		return fn(e)
	})
}

// Any reports whether fn returns true for any error visited by Walk.
func Any(err error, fn func(error) bool) bool {
	found := false
	Walk(err, func(e error) bool {
		found = fn(e)
		return !found
	})
	return found
}

// Contains reports whether sentinel appears anywhere in err's tree, compared
// by identity.
func Contains(err, sentinel error) bool {
	return Any(err, func(e error) bool { return e == sentinel })
}

// Leaves returns every error visited by WalkLeaves, in order.
func Leaves(err error) []error {
	var ret []error
	WalkLeaves(err, func(e error) bool {
		ret = append(ret, e)
		return true
	})
	return ret
}

func walk(err error, fn func(error) bool) bool {
	if err == nil {
		return true
	}
	if me, ok := err.(MultiError); ok && len(me) == 0 {
		return true
	}
	if !fn(err) {
		return false
	}
	for _, c := range children(err) {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

// children returns the errors directly wrapped by err.
func children(err error) []error {
	switch t := err.(type) {
	case MultiError:
		return t
	case Wrapped:
		if inner := t.InnerError(); inner != nil {
			return []error{inner}
		}
	case interface{ Unwrap() []error }:
		return t.Unwrap()
	case interface{ Unwrap() error }:
		if inner := t.Unwrap(); inner != nil {
			return []error{inner}
		}
	}
	return nil
}
