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

// Package paniccatcher captures panics along with the stack which raised them.
package paniccatcher

import (
	"runtime/debug"
)

// Panic is a snapshot of a panic, containing both the panic's reason and the
// system stack.
type Panic struct {
	// Reason is the value supplied to the recover function.
	Reason any
	// Stack is a stack dump at the time of the panic.
	Stack string
}

// Catch recovers from panic. It should be used as a deferred call.
//
// If the surrounding function panics, the panic will be recovered and `cb`
// will be invoked with details.
//
// Example:
//
//	func Foo() {
//	  defer paniccatcher.Catch(func(p *paniccatcher.Panic) {
//	    log.Printf("Panic: %s\n%s", p.Reason, p.Stack)
//	  })
//	  ...
//	}
func Catch(cb func(p *Panic)) {
	if reason := recover(); reason != nil {
		cb(&Panic{
			Reason: reason,
			Stack:  string(debug.Stack()),
		})
	}
}

// Do executes f. If a panic occurs during execution, it will be recovered and
// cb will be invoked with details.
func Do(f func(), cb func(p *Panic)) {
	defer Catch(cb)
	f()
}

// PCall executes f and returns the caught panic, or nil if f returned
// normally.
func PCall(f func()) (caught *Panic) {
	Do(f, func(p *Panic) { caught = p })
	return
}
