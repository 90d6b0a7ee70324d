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

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// ErrorKey is the Fields key conventionally holding an error.
const ErrorKey = "error"

// Fields is a set of structured key/value data attached to log messages.
type Fields map[string]any

// Copy returns a shallow copy of `f` with `other` merged on top.
func (f Fields) Copy(other Fields) Fields {
	ret := make(Fields, len(f)+len(other))
	for k, v := range f {
		ret[k] = v
	}
	for k, v := range other {
		ret[k] = v
	}
	return ret
}

// SortedKeys returns the keys of `f`, sorted.
func (f Fields) SortedKeys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders the fields as `{"key":value, ...}` with sorted keys.
func (f Fields) String() string {
	parts := make([]string, 0, len(f))
	for _, k := range f.SortedKeys() {
		var val string
		switch v := f[k].(type) {
		case error:
			val = fmt.Sprintf("%q", v.Error())
		case string:
			val = fmt.Sprintf("%q", v)
		case fmt.Stringer:
			val = fmt.Sprintf("%q", v.String())
		default:
			val = fmt.Sprintf("%#v", v)
		}
		parts = append(parts, fmt.Sprintf("%q:%s", k, val))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Debugf logs at Debug level with `f` added to the context's fields.
func (f Fields) Debugf(ctx context.Context, format string, args ...any) {
	Get(SetFields(ctx, f)).LogCall(Debug, 1, format, args)
}

// Infof logs at Info level with `f` added to the context's fields.
func (f Fields) Infof(ctx context.Context, format string, args ...any) {
	Get(SetFields(ctx, f)).LogCall(Info, 1, format, args)
}

// Warningf logs at Warning level with `f` added to the context's fields.
func (f Fields) Warningf(ctx context.Context, format string, args ...any) {
	Get(SetFields(ctx, f)).LogCall(Warning, 1, format, args)
}

// Errorf logs at Error level with `f` added to the context's fields.
func (f Fields) Errorf(ctx context.Context, format string, args ...any) {
	Get(SetFields(ctx, f)).LogCall(Error, 1, format, args)
}

type fieldsKeyType struct{}

var fieldsKey fieldsKeyType

// SetFields returns a context with `fields` merged over its current fields.
func SetFields(ctx context.Context, fields Fields) context.Context {
	if len(fields) == 0 {
		return ctx
	}
	return context.WithValue(ctx, fieldsKey, GetFields(ctx).Copy(fields))
}

// SetField is SetFields with a single key.
func SetField(ctx context.Context, key string, value any) context.Context {
	return SetFields(ctx, Fields{key: value})
}

// GetFields returns the fields of the context. The result must not be
// modified.
func GetFields(ctx context.Context) Fields {
	if f, ok := ctx.Value(fieldsKey).(Fields); ok {
		return f
	}
	return nil
}
