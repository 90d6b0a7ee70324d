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

// Package logging defines a context-carried Logger.
//
// A Logger is installed into a context.Context with SetFactory (usually by a
// backend package such as gologger), and retrieved with Get. Code which logs
// only needs a context:
//
//	logging.Infof(ctx, "running %d tests", n)
//
// The minimum level and a set of structured Fields also travel with the
// context, see SetLevel and SetFields.
package logging

import (
	"context"
)

// Logger is the logging interface implemented by backends.
type Logger interface {
	// Debugf logs a formatted message at Debug level.
	Debugf(format string, args ...any)
	// Infof logs a formatted message at Info level.
	Infof(format string, args ...any)
	// Warningf logs a formatted message at Warning level.
	Warningf(format string, args ...any)
	// Errorf logs a formatted message at Error level.
	Errorf(format string, args ...any)

	// LogCall logs a formatted message at level `l`.
	//
	// `calldepth` is the number of stack frames between the user's call site
	// and LogCall, so that backends can report the right source location.
	LogCall(l Level, calldepth int, format string, args []any)
}

// Factory builds a Logger for a context.
//
// It is called on every Get, so the returned Logger may capture the context's
// current level and fields.
type Factory func(context.Context) Logger

type factoryKeyType struct{}

var factoryKey factoryKeyType

// SetFactory returns a context which yields Loggers built by `f`.
//
// A nil `f` removes the factory; Get will then return a Null logger.
func SetFactory(ctx context.Context, f Factory) context.Context {
	return context.WithValue(ctx, factoryKey, f)
}

// GetFactory returns the Factory installed in the context, or nil.
func GetFactory(ctx context.Context) Factory {
	if f, ok := ctx.Value(factoryKey).(Factory); ok {
		return f
	}
	return nil
}

// Get returns the Logger for the context.
//
// If no factory is installed, a Null logger is returned.
func Get(ctx context.Context) Logger {
	if f := GetFactory(ctx); f != nil {
		if l := f(ctx); l != nil {
			return l
		}
	}
	return Null
}
