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

package logging

import "context"

// IsLogging reports whether the context logs messages at level `l`.
//
// Backends call this before formatting a message.
func IsLogging(ctx context.Context, l Level) bool {
	return l >= GetLevel(ctx)
}

// SetError returns a context whose fields carry `err` under ErrorKey.
func SetError(ctx context.Context, err error) context.Context {
	return SetField(ctx, ErrorKey, err)
}

// Logf logs through the context's Logger at level `l`.
func Logf(ctx context.Context, l Level, format string, args ...any) {
	Get(ctx).LogCall(l, 1, format, args)
}

// Debugf logs through the context's Logger at Debug level.
func Debugf(ctx context.Context, format string, args ...any) {
	Get(ctx).LogCall(Debug, 1, format, args)
}

// Infof logs through the context's Logger at Info level.
func Infof(ctx context.Context, format string, args ...any) {
	Get(ctx).LogCall(Info, 1, format, args)
}

// Warningf logs through the context's Logger at Warning level.
func Warningf(ctx context.Context, format string, args ...any) {
	Get(ctx).LogCall(Warning, 1, format, args)
}

// Errorf logs through the context's Logger at Error level.
func Errorf(ctx context.Context, format string, args ...any) {
	Get(ctx).LogCall(Error, 1, format, args)
}
